// Package extractor derives release metadata from artifact download names.
package extractor

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Rule is a named pattern whose first capture group is the extracted value.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Match is the outcome of applying a Rule. OK is false when the pattern is absent.
type Match struct {
	Value string
	OK    bool
}

// Apply searches s for the rule's pattern.
func (r Rule) Apply(s string) Match {
	m := r.Pattern.FindStringSubmatch(s)
	if m == nil {
		return Match{}
	}
	return Match{Value: m[1], OK: true}
}

// The extraction rules. Build and Architecture gate an artifact; Version and OS are
// required once both gates matched.
var (
	BuildRule        = Rule{Name: "build", Pattern: regexp.MustCompile(`-(pgo\+lto|pgo)-`)}
	ArchitectureRule = Rule{Name: "architecture", Pattern: regexp.MustCompile(`-(aarch64|i686|x86_64|x86)-`)}
	VersionRule      = Rule{Name: "version", Pattern: regexp.MustCompile(`cpython-(\d+\.\d+\.\d+)`)}
	OSRule           = Rule{Name: "os", Pattern: regexp.MustCompile(`-(windows|apple|linux)-`)}
)

// Extraction is the metadata derived from one artifact identifier.
// Record carries no checksum or URL; those are filled in by the caller.
type Extraction struct {
	Skip   bool
	Record domain.Record
}

// Extract applies the rules to an artifact identifier (a download URL or file name).
//
// Policy: the identifier is percent-unescaped, then the build rule and the architecture
// rule are evaluated in that order. If either is absent the artifact is not an
// interpreter archive of interest and Extract returns a skip with no error. Otherwise the
// version and OS rules must match; a miss means the upstream naming scheme changed and
// is reported as domain.ErrUnexpectedArtifactFormat.
func Extract(identifier string) (Extraction, error) {
	name := unescape(identifier)

	build := BuildRule.Apply(name)
	if !build.OK {
		return Extraction{Skip: true}, nil
	}
	arch := ArchitectureRule.Apply(name)
	if !arch.OK {
		return Extraction{Skip: true}, nil
	}

	version := VersionRule.Apply(name)
	if !version.OK {
		return Extraction{}, formatError(identifier, VersionRule.Name)
	}
	parsed, err := parseVersion(version.Value)
	if err != nil {
		return Extraction{}, zerr.With(formatError(identifier, VersionRule.Name), "version", version.Value)
	}
	osTag := OSRule.Apply(name)
	if !osTag.OK {
		return Extraction{}, formatError(identifier, OSRule.Name)
	}

	return Extraction{
		Record: domain.Record{
			Kind:               domain.KindCPython,
			Version:            parsed,
			OS:                 osTag.Value,
			Architecture:       arch.Value,
			BuildConfiguration: build.Value,
		},
	}, nil
}

func formatError(identifier, rule string) error {
	err := zerr.With(domain.ErrUnexpectedArtifactFormat, "artifact", identifier)
	return zerr.With(err, "rule", rule)
}

// unescape decodes percent-encoding such as %2B for '+'. Malformed escapes leave the
// identifier as is.
func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

func parseVersion(s string) (domain.Version, error) {
	parts := strings.Split(s, ".")
	var nums [3]uint8
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return domain.Version{}, err
		}
		nums[i] = uint8(n)
	}
	return domain.Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}
