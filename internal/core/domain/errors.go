package domain

import "go.trai.ch/zerr"

var (
	// ErrGenerationFailed is returned when a generation run aborts.
	ErrGenerationFailed = zerr.New("release table generation failed")

	// ErrListingFetchFailed is returned when the upstream release listing cannot be retrieved.
	ErrListingFetchFailed = zerr.New("failed to fetch release listing")

	// ErrListingDecodeFailed is returned when the upstream release listing cannot be decoded.
	ErrListingDecodeFailed = zerr.New("failed to decode release listing")

	// ErrRateLimited is returned when the upstream API refuses requests due to rate limiting.
	ErrRateLimited = zerr.New("upstream API rate limit exceeded")

	// ErrTooManyPages is returned when the listing does not end within the configured page limit.
	ErrTooManyPages = zerr.New("release listing exceeded the page limit")

	// ErrChecksumFetchFailed is returned when a checksum resource cannot be retrieved.
	ErrChecksumFetchFailed = zerr.New("failed to fetch checksum")

	// ErrUnexpectedArtifactFormat is returned when an artifact passed the build and
	// architecture filters but its version or OS cannot be extracted.
	ErrUnexpectedArtifactFormat = zerr.New("unexpected artifact name format")

	// ErrCacheReadFailed is returned when the persisted release cache cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read release cache")

	// ErrCacheDecodeFailed is returned when the persisted release cache is malformed.
	ErrCacheDecodeFailed = zerr.New("failed to decode release cache")

	// ErrCacheWriteFailed is returned when the release cache cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write release cache")

	// ErrTemplateRenderFailed is returned when the generated source template fails to render.
	ErrTemplateRenderFailed = zerr.New("failed to render generated source")

	// ErrOutputWriteFailed is returned when the generated source cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write generated source")

	// ErrTokenReadFailed is returned when the token file exists but cannot be read.
	ErrTokenReadFailed = zerr.New("failed to read token file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
