package emitter

// sourceTemplate is the generated file layout. Each row is a NewRelease call rendered by
// domain.Record.Fragment and inserted verbatim.
const sourceTemplate = `// Code generated by {{generator}}; DO NOT EDIT.

package {{package}}

// Releases lists every known python-build-standalone release in upstream order.
var Releases = []Release{
{{#each rows}}
	{{{this}}},
{{/each}}
}

// Release describes one downloadable standalone interpreter build.
type Release struct {
	Kind               string
	Version            Version
	OS                 string
	Architecture       string
	BuildConfiguration string
	Checksum           string
	URL                string
}

// NewRelease returns a Release built from its fields.
func NewRelease(
	kind string,
	version Version,
	os string,
	architecture string,
	buildConfiguration string,
	checksum string,
	url string,
) Release {
	return Release{
		Kind:               kind,
		Version:            version,
		OS:                 os,
		Architecture:       architecture,
		BuildConfiguration: buildConfiguration,
		Checksum:           checksum,
		URL:                url,
	}
}

// Version is a major.minor.patch interpreter version.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

// NewVersion returns a Version built from its components.
func NewVersion(major, minor, patch uint8) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}
`
