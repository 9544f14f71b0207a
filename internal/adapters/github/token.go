package github

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// ReadToken returns the API token. The GITHUB_TOKEN environment variable wins over the
// token file. A missing file yields an empty token and no error.
func ReadToken(path string) (string, error) {
	if token := strings.TrimSpace(os.Getenv(domain.TokenEnvVar)); token != "" {
		return token, nil
	}
	if path == "" {
		return "", nil
	}

	//nolint:gosec // Path comes from the user's own configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrTokenReadFailed.Error()), "path", path)
	}

	return strings.TrimSpace(string(data)), nil
}
