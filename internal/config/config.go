package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory when no
// --config flag is given.
const FileName = "moneyreport.yaml"

// Config represents the moneyreport.yaml configuration.
type Config struct {
	Input       InputConfig  `yaml:"input"`
	Lookup      LookupConfig `yaml:"lookup"`
	Output      OutputConfig `yaml:"output"`
	RunLog      string       `yaml:"run_log,omitempty"`
	MetricsFile string       `yaml:"metrics_file,omitempty"`
}

// InputConfig locates the statement exports.
type InputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // parser name, e.g. "statement"
}

// LookupConfig locates the description -> category file.
type LookupConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig controls what a run writes.
type OutputConfig struct {
	Path          string `yaml:"path"`
	UnmatchedPath string `yaml:"unmatched_path,omitempty"`
	Summary       bool   `yaml:"summary"`
}

// Load reads a moneyreport.yaml file from disk. Keys missing from the file
// keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Resolve loads path when it is set. Otherwise it loads FileName from the
// working directory if present, falling back to Default.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg, err := Load(FileName)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the layout of the original money report script: statements
// in data/, lookup in category_lookup.csv, report in out.csv.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Dir:    "data",
			Format: "statement",
		},
		Lookup: LookupConfig{
			Path: "category_lookup.csv",
		},
		Output: OutputConfig{
			Path: "out.csv",
		},
	}
}
