package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/pyrelgen/internal/engine/extractor"
)

const releaseBase = "https://github.com/indygreg/python-build-standalone/releases/download/20230726/"

func TestRules(t *testing.T) {
	tests := []struct {
		name   string
		rule   extractor.Rule
		input  string
		want   string
		wantOK bool
	}{
		{"build pgo+lto", extractor.BuildRule, "cpython-3.11.4-x86_64-apple-darwin-pgo+lto-full.tar.zst", "pgo+lto", true},
		{"build pgo", extractor.BuildRule, "cpython-3.10.12-x86_64-unknown-linux-gnu-pgo-full.tar.zst", "pgo", true},
		{"build absent in debug build", extractor.BuildRule, "cpython-3.11.4-x86_64-unknown-linux-gnu-debug-full.tar.zst", "", false},
		{"build absent in source tarball", extractor.BuildRule, "Python-3.11.4.tgz", "", false},
		{"build needs trailing dash", extractor.BuildRule, "cpython-3.11.4-x86_64-apple-darwin-pgo.tar.zst", "", false},
		{"arch x86_64", extractor.ArchitectureRule, "cpython-3.11.4-x86_64-apple-darwin-pgo-full.tar.zst", "x86_64", true},
		{"arch aarch64", extractor.ArchitectureRule, "cpython-3.11.4-aarch64-apple-darwin-pgo-full.tar.zst", "aarch64", true},
		{"arch i686", extractor.ArchitectureRule, "cpython-3.11.4-i686-pc-windows-msvc-shared-pgo-full.tar.zst", "i686", true},
		{"arch x86", extractor.ArchitectureRule, "cpython-3.8.0-x86-pc-windows-pgo-full.tar.zst", "x86", true},
		{"arch unsupported", extractor.ArchitectureRule, "cpython-3.11.4-ppc64le-unknown-linux-gnu-pgo-full.tar.zst", "", false},
		{"version", extractor.VersionRule, "cpython-3.11.4+20230726-x86_64-apple-darwin-pgo-full.tar.zst", "3.11.4", true},
		{"version absent", extractor.VersionRule, "pypy-7.3-x86_64-linux-pgo-full.tar.zst", "", false},
		{"os apple", extractor.OSRule, "cpython-3.11.4-x86_64-apple-darwin-pgo-full.tar.zst", "apple", true},
		{"os windows", extractor.OSRule, "cpython-3.11.4-i686-pc-windows-msvc-shared-pgo-full.tar.zst", "windows", true},
		{"os linux", extractor.OSRule, "cpython-3.11.4-x86_64-unknown-linux-gnu-pgo-full.tar.zst", "linux", true},
		{"os absent", extractor.OSRule, "cpython-3.11.4-x86_64-unknown-freebsd-pgo-full.tar.zst", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.Apply(tt.input)
			assert.Equal(t, tt.wantOK, got.OK)
			assert.Equal(t, tt.want, got.Value)
		})
	}
}

func TestExtract_Record(t *testing.T) {
	got, err := extractor.Extract(releaseBase + "cpython-3.11.4%2B20230726-x86_64-apple-darwin-pgo%2Blto-full.tar.zst")
	require.NoError(t, err)
	require.False(t, got.Skip)
	assert.Equal(t, domain.Record{
		Kind:               "cpython",
		Version:            domain.Version{Major: 3, Minor: 11, Patch: 4},
		OS:                 "apple",
		Architecture:       "x86_64",
		BuildConfiguration: "pgo+lto",
	}, got.Record)
}

func TestExtract_Skips(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{"source tarball", "Python-3.11.4.tar.xz"},
		{"checksum file", "SHA256SUMS"},
		{"debug build", "cpython-3.11.4-x86_64-unknown-linux-gnu-debug-full.tar.zst"},
		{"install_only archive", "cpython-3.11.4+20230726-x86_64-apple-darwin-install_only.tar.gz"},
		{"unsupported architecture", "cpython-3.11.4-s390x-unknown-linux-gnu-pgo-full.tar.zst"},
		{"escaped build without architecture", releaseBase + "cpython-3.11.4-riscv64-unknown-linux-gnu-pgo%2Blto-full.tar.zst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.Extract(tt.identifier)
			require.NoError(t, err)
			assert.True(t, got.Skip)
			assert.Equal(t, domain.Record{}, got.Record)
		})
	}
}

func TestExtract_UnexpectedFormat(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{"missing version", "pypy-x86_64-apple-darwin-pgo-full.tar.zst"},
		{"missing os", "cpython-3.11.4-x86_64-unknown-freebsd-pgo-full.tar.zst"},
		{"version component overflows", "cpython-3.300.4-x86_64-apple-darwin-pgo-full.tar.zst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractor.Extract(tt.identifier)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrUnexpectedArtifactFormat.Error())
		})
	}
}
