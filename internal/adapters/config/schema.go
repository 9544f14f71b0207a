package config

// File represents the structure of the pyrelgen.yaml configuration file.
// Absent keys keep their defaults.
type File struct {
	Repository string `yaml:"repository"`
	APIURL     string `yaml:"api_url"`
	PerPage    *int   `yaml:"per_page"`
	MaxPages   *int   `yaml:"max_pages"`
	Timeout    string `yaml:"timeout"`
	TokenFile  string `yaml:"token_file"`
	Output     string `yaml:"output"`
	Package    string `yaml:"package"`
	Cache      string `yaml:"cache"`
	Trace      bool   `yaml:"trace"`
}
