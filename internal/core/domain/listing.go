package domain

import "strings"

// ChecksumSuffix is appended to an artifact URL to locate its published checksum.
const ChecksumSuffix = ".sha256"

// Asset is a single downloadable file attached to an upstream release.
type Asset struct {
	Name string
	// URL is the browser download URL exactly as reported upstream.
	URL string
}

// Release is one upstream release with its assets in listing order.
type Release struct {
	TagName string
	Assets  []Asset
}

// ChecksumIndex returns the set of asset URLs that have a checksum asset advertised
// somewhere in the listing.
func ChecksumIndex(releases []Release) map[string]struct{} {
	index := make(map[string]struct{})
	for _, release := range releases {
		for _, asset := range release.Assets {
			if target, ok := strings.CutSuffix(asset.URL, ChecksumSuffix); ok {
				index[target] = struct{}{}
			}
		}
	}
	return index
}

// ChecksumURL returns the location of the checksum resource for an artifact URL.
func ChecksumURL(artifactURL string) string {
	return artifactURL + ChecksumSuffix
}
