// Package config loads sigclip's CLI configuration from TOML, YAML, or
// JSON files. The kernel packages take explicit parameters and never read
// configuration; this exists for the command-line driver.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/valcour/sigclip/pkg/clip"
)

// Config holds all configuration options for sigclip.
type Config struct {
	// Default sigma-clipping parameters
	Clip ClipConfig `koanf:"clip"`

	// Input parsing settings
	Input InputConfig `koanf:"input"`

	// Output settings
	Output OutputConfig `koanf:"output"`
}

// ClipConfig carries the default clipping parameters applied when the
// corresponding flags are not given.
type ClipConfig struct {
	Method    string  `koanf:"method"` // mean or median
	MaxIter   int     `koanf:"max_iter"`
	LowSigma  float64 `koanf:"low_sigma"`
	HighSigma float64 `koanf:"high_sigma"`
	MinCount  int     `koanf:"min_count"`
}

// Params converts the configured defaults into kernel parameters.
func (c ClipConfig) Params() clip.Params {
	return clip.Params{
		MaxIter:   c.MaxIter,
		LowSigma:  c.LowSigma,
		HighSigma: c.HighSigma,
		MinCount:  c.MinCount,
	}
}

// InputConfig controls sample file parsing.
type InputConfig struct {
	// Comment is the prefix that marks a line as a comment.
	Comment string `koanf:"comment"`
	// Column selects which whitespace-separated column holds the samples
	// (0-based).
	Column int `koanf:"column"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format"` // text, json, markdown
	Color   bool   `koanf:"color"`
	Verbose bool   `koanf:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Clip: ClipConfig{
			Method:    "mean",
			MaxIter:   5,
			LowSigma:  3,
			HighSigma: 3,
			MinCount:  3,
		},
		Input: InputConfig{
			Comment: "#",
			Column:  0,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file, layered over the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault tries standard config locations in the current directory
// and falls back to the defaults.
func LoadOrDefault() *Config {
	names := []string{
		"sigclip.toml",
		"sigclip.yaml",
		"sigclip.yml",
		"sigclip.json",
		".sigclip.toml",
		".sigclip.yaml",
		".sigclip.yml",
		".sigclip.json",
	}

	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			if cfg, err := Load(name); err == nil {
				return cfg
			}
		}
	}

	return DefaultConfig()
}
