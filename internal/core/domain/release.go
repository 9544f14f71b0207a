// Package domain contains the core types of the release table generator.
package domain

import (
	"fmt"
	"strconv"
)

// KindCPython is the only interpreter distribution family published upstream.
const KindCPython = "cpython"

// Version is a major.minor.patch interpreter version.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

// String returns the dotted form of the version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Record describes one interpreter build artifact as it appears in the generated table.
type Record struct {
	Kind               string
	Version            Version
	OS                 string
	Architecture       string
	BuildConfiguration string
	Checksum           string
	// URL is the raw download URL and the identity of the record.
	URL string
}

// Fragment renders the record as a single row of the generated table.
// The same record always renders to the same bytes.
func (r Record) Fragment() string {
	return "NewRelease(" +
		strconv.Quote(r.Kind) + ", " +
		fmt.Sprintf("NewVersion(%d, %d, %d)", r.Version.Major, r.Version.Minor, r.Version.Patch) + ", " +
		strconv.Quote(r.OS) + ", " +
		strconv.Quote(r.Architecture) + ", " +
		strconv.Quote(r.BuildConfiguration) + ", " +
		strconv.Quote(r.Checksum) + ", " +
		strconv.Quote(r.URL) + ")"
}

// EmitResult describes a written generated source file.
type EmitResult struct {
	Path string
	// Digest is the xxhash of the written content, hex encoded.
	Digest string
	// Unchanged reports that the previous file had identical content.
	Unchanged bool
}
