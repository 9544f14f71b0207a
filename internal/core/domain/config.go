package domain

import "time"

const (
	// DefaultRepository is the upstream project publishing standalone interpreter builds.
	DefaultRepository = "indygreg/python-build-standalone"

	// DefaultAPIURL is the base URL of the release hosting API.
	DefaultAPIURL = "https://api.github.com"

	// DefaultPerPage is the page size requested from the listing endpoint (the API maximum).
	DefaultPerPage = 100

	// DefaultMaxPages bounds how many listing pages are followed.
	DefaultMaxPages = 50

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultPackage is the package name of the generated source file.
	DefaultPackage = "releases"
)

// Config holds the resolved settings of a generation run.
// All paths are absolute or relative to the working directory.
type Config struct {
	Repository string
	APIURL     string
	PerPage    int
	MaxPages   int
	Timeout    time.Duration
	TokenFile  string
	Output     string
	Package    string
	CachePath  string
	// Trace logs the duration of every generation phase.
	Trace bool
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Repository: DefaultRepository,
		APIURL:     DefaultAPIURL,
		PerPage:    DefaultPerPage,
		MaxPages:   DefaultMaxPages,
		Timeout:    DefaultTimeout,
		TokenFile:  TokenFileName,
		Output:     DefaultOutputPath(),
		Package:    DefaultPackage,
		CachePath:  DefaultCachePath(),
	}
}
