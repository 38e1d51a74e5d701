// Package config loads persisted formatting settings (a project-level
// ".portfmt.yml") into parser.Settings. The teacher has no config-file
// layer of its own to generalize (it reads all state from CLI flags and
// an in-session editor), so this package is grounded directly on
// gopkg.in/yaml.v2 rather than on a teacher source file; see DESIGN.md.
package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"foss.freebsd.org/portfmt/internal/parser"
)

// File is the on-disk shape of a project's ".portfmt.yml".
type File struct {
	Wrapcol              uint `yaml:"wrapcol"`
	TargetCommandWrapcol uint `yaml:"target_command_wrapcol"`
	AlwaysSort           bool `yaml:"always_sort"`
	AllowFuzzyMatching   bool `yaml:"allow_fuzzy_matching"`
}

// Load reads a YAML config from path and applies it on top of base,
// leaving base untouched for any field the file doesn't set.
func Load(path string, base parser.Settings) (parser.Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return parser.Settings{}, err
	}
	defer f.Close()
	return LoadFrom(f, base)
}

// LoadFrom reads a YAML config from r and applies it on top of base.
func LoadFrom(r io.Reader, base parser.Settings) (parser.Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return parser.Settings{}, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return parser.Settings{}, err
	}
	out := base
	if f.Wrapcol != 0 {
		out.Wrapcol = f.Wrapcol
	}
	if f.TargetCommandWrapcol != 0 {
		out.TargetCommandWrapcol = f.TargetCommandWrapcol
	}
	out.AlwaysSort = out.AlwaysSort || f.AlwaysSort
	out.AllowFuzzyMatching = out.AllowFuzzyMatching || f.AllowFuzzyMatching
	return out, nil
}
