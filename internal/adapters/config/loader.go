// Package config provides the configuration loader for pyrelgen.
package config

import (
	"bytes"
	"errors"
	"go/token"
	"io"
	"net/url"
	"path/filepath"
	"regexp"
	"time"

	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/pyrelgen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const maxPerPage = 100

var validRepositoryRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a Loader reading through fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Load discovers pyrelgen.yaml by walking up from cwd, overlays it on the defaults and
// validates the result. Relative paths resolve against the directory holding the file,
// or cwd when there is none.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	baseDir := cwd

	configPath, found := l.findConfiguration(cwd)
	if found {
		file, err := l.readFile(configPath)
		if err != nil {
			return nil, zerr.With(err, "path", configPath)
		}
		if err := apply(&cfg, file); err != nil {
			return nil, zerr.With(err, "path", configPath)
		}
		baseDir = filepath.Dir(configPath)
	}

	cfg.TokenFile = resolvePath(baseDir, cfg.TokenFile)
	cfg.Output = resolvePath(baseDir, cfg.Output)
	cfg.CachePath = resolvePath(baseDir, cfg.CachePath)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	if u, err := url.Parse(cfg.APIURL); err == nil && u.Scheme == "http" {
		l.Logger.Warn("api_url uses plain http, the API token is sent unencrypted")
	}

	return &cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if l.fs.IsConfigFile(candidate) {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) readFile(configPath string) (*File, error) {
	data, err := l.fs.ReadConfig(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return &file, nil
}

func apply(cfg *domain.Config, file *File) error {
	if file.Repository != "" {
		cfg.Repository = file.Repository
	}
	if file.APIURL != "" {
		cfg.APIURL = file.APIURL
	}
	if file.PerPage != nil {
		cfg.PerPage = *file.PerPage
	}
	if file.MaxPages != nil {
		cfg.MaxPages = *file.MaxPages
	}
	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", "timeout")
		}
		cfg.Timeout = timeout
	}
	if file.TokenFile != "" {
		cfg.TokenFile = file.TokenFile
	}
	if file.Output != "" {
		cfg.Output = file.Output
	}
	if file.Package != "" {
		cfg.Package = file.Package
	}
	if file.Cache != "" {
		cfg.CachePath = file.Cache
	}
	cfg.Trace = file.Trace
	return nil
}

func validate(cfg *domain.Config) error {
	if !validRepositoryRegex.MatchString(cfg.Repository) {
		return invalid("repository", cfg.Repository)
	}
	if u, err := url.Parse(cfg.APIURL); err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return invalid("api_url", cfg.APIURL)
	}
	if cfg.PerPage < 1 || cfg.PerPage > maxPerPage {
		return invalid("per_page", cfg.PerPage)
	}
	if cfg.MaxPages < 1 {
		return invalid("max_pages", cfg.MaxPages)
	}
	if cfg.Timeout <= 0 {
		return invalid("timeout", cfg.Timeout.String())
	}
	if !token.IsIdentifier(cfg.Package) {
		return invalid("package", cfg.Package)
	}
	if _, ok := domain.CacheFormatOf(cfg.CachePath); !ok {
		return invalid("cache", cfg.CachePath)
	}
	return nil
}

func invalid(field string, value any) error {
	err := zerr.With(domain.ErrInvalidConfig, "field", field)
	return zerr.With(err, "value", value)
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}
