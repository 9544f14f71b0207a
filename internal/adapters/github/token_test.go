package github_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pyrelgen/internal/adapters/github"
	"go.trai.ch/pyrelgen/internal/core/domain"
)

func TestReadToken(t *testing.T) {
	t.Run("reads and trims file", func(t *testing.T) {
		t.Setenv(domain.TokenEnvVar, "")
		path := filepath.Join(t.TempDir(), domain.TokenFileName)
		require.NoError(t, os.WriteFile(path, []byte("file-token\n"), domain.FilePerm))

		token, err := github.ReadToken(path)
		require.NoError(t, err)
		assert.Equal(t, "file-token", token)
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv(domain.TokenEnvVar, "env-token")
		path := filepath.Join(t.TempDir(), domain.TokenFileName)
		require.NoError(t, os.WriteFile(path, []byte("file-token"), domain.FilePerm))

		token, err := github.ReadToken(path)
		require.NoError(t, err)
		assert.Equal(t, "env-token", token)
	})

	t.Run("missing file is empty", func(t *testing.T) {
		t.Setenv(domain.TokenEnvVar, "")
		token, err := github.ReadToken(filepath.Join(t.TempDir(), "absent"))
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("unreadable path fails", func(t *testing.T) {
		t.Setenv(domain.TokenEnvVar, "")
		// A directory cannot be read as a file.
		_, err := github.ReadToken(t.TempDir())
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrTokenReadFailed.Error())
	})
}
