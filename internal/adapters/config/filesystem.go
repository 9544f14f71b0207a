package config

import (
	"io"
	"os"

	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxConfigSize bounds how much of pyrelgen.yaml is read.
const maxConfigSize = 1 << 20

// FileSystem is the read-only view of the disk the Loader discovers pyrelgen.yaml through.
type FileSystem interface {
	// IsConfigFile reports whether path names an existing regular file.
	IsConfigFile(path string) bool
	// ReadConfig returns the contents of the configuration file at path.
	ReadConfig(path string) ([]byte, error)
}

// OSFS reads configuration from the host filesystem.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// IsConfigFile reports whether path is a regular file. Directories and sockets named
// pyrelgen.yaml are ignored so discovery keeps walking upward.
func (o *OSFS) IsConfigFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadConfig reads path, rejecting files larger than maxConfigSize.
func (o *OSFS) ReadConfig(path string) ([]byte, error) {
	// #nosec G304 -- only pyrelgen.yaml candidates found during discovery reach here
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxConfigSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxConfigSize {
		return nil, zerr.With(domain.ErrConfigReadFailed, "limit_bytes", maxConfigSize)
	}
	return data, nil
}
