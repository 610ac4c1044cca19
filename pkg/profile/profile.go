// Package profile holds the user profile that parameterizes the
// reflection prompts.
package profile

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Profile describes the person the reflections are written for.
type Profile struct {
	PersonName string `yaml:"person_name"`
	Language   string `yaml:"language"`
	Interests  string `yaml:"interests"`
}

// Default returns the built-in profile used when no file is given.
func Default() *Profile {
	return &Profile{
		PersonName: "Stefano",
		Language:   "English",
		Interests:  "philosophy, technology and neuroscience",
	}
}

// Load reads a YAML profile file. Missing fields fall back to the
// defaults.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read profile file", goerr.V("path", path))
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, goerr.Wrap(err, "failed to parse profile YAML", goerr.V("path", path))
	}

	fill := Default()
	if p.PersonName == "" {
		p.PersonName = fill.PersonName
	}
	if p.Language == "" {
		p.Language = fill.Language
	}
	if p.Interests == "" {
		p.Interests = fill.Interests
	}
	return p, nil
}
