// Package config loads the optional CLI configuration file. Flags
// always override file values; the file only supplies defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked for in the current and
// home directories.
const FileName = ".lexkit.yaml"

// Config holds tool-wide defaults.
type Config struct {
	// Format is the default output format (text, json, csv, xml).
	Format string `yaml:"format"`
	// Color is the default color mode for text output.
	Color string `yaml:"color"`
	// NamesDir is an extra directory searched for name definition
	// files, after the input and current directories.
	NamesDir string `yaml:"names_dir"`
	// MaxFileSize bounds enumerated input files in bytes.
	MaxFileSize int64 `yaml:"max_file_size"`
	// IncludeHidden also enumerates dot-files.
	IncludeHidden bool `yaml:"include_hidden"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:      "text",
		Color:       "auto",
		MaxFileSize: 10 * 1024 * 1024,
	}
}

// Load reads a configuration file and fills unset fields with
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Discover loads FileName from the current directory, then the user's
// home directory. A missing file is not an error: the built-in
// defaults are returned.
func Discover() (*Config, error) {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Color == "" {
		c.Color = def.Color
	}
	if c.MaxFileSize == 0 {
		c.MaxFileSize = def.MaxFileSize
	}
}
