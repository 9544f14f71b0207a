package domain

import "path/filepath"

const (
	// AppDirName is the name of the internal state directory.
	AppDirName = ".pyrelgen"

	// CacheFileName is the name of the default release cache database.
	CacheFileName = "releases.db"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "pyrelgen.yaml"

	// TokenFileName is the default name of the API token file.
	TokenFileName = ".github_token"

	// TokenEnvVar overrides the token file when set.
	TokenEnvVar = "GITHUB_TOKEN"

	// OutputDirName is the default directory of the generated package.
	OutputDirName = "releases"

	// OutputFileName is the default name of the generated source file.
	OutputFileName = "releases_gen.go"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default path of the release cache.
// It joins .pyrelgen and releases.db.
func DefaultCachePath() string {
	return filepath.Join(AppDirName, CacheFileName)
}

// DefaultOutputPath returns the default path of the generated source file.
// It joins releases and releases_gen.go.
func DefaultOutputPath() string {
	return filepath.Join(OutputDirName, OutputFileName)
}
