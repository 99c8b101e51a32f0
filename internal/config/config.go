// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "config.yaml"

type Config struct {
	Input struct {
		PrimaryFile   string   `yaml:"primaryFile"`
		BlacklistFile string   `yaml:"blacklistFile"`
		MergeFiles    []string `yaml:"mergeFiles"`
	} `yaml:"input"`

	Deck struct {
		AllowDuplicates bool `yaml:"allowDuplicates"`
	} `yaml:"deck"`

	WordProcessing struct {
		MinWordLength int    `yaml:"minWordLength"`
		SectionMarker string `yaml:"sectionMarker"`
	} `yaml:"wordProcessing"`

	Output struct {
		File         string `yaml:"file"`
		Stylesheet   string `yaml:"stylesheet"`
		RandomOrder  bool   `yaml:"randomOrder"`
		ShowProgress bool   `yaml:"showProgress"`
		Format       string `yaml:"format"`
		Seed         int64  `yaml:"seed"`
	} `yaml:"output"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := newConfig()
	cfg.Input.PrimaryFile = "gre_words_magoosh.txt"
	cfg.Input.BlacklistFile = "blacklist.txt"
	cfg.Input.MergeFiles = []string{"graduateshotline_gre_words.txt"}
	setDefaults(cfg)
	return cfg
}

// newConfig presets the booleans whose default is true; yaml leaves them
// alone when the file does not mention them.
func newConfig() *Config {
	var cfg Config
	cfg.Output.ShowProgress = true
	return &cfg
}

// Load reads and parses the configuration at path. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	cfg := newConfig()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	// Set default values
	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(cfg *Config) {
	if cfg.WordProcessing.MinWordLength == 0 {
		cfg.WordProcessing.MinWordLength = 3
	}
	if cfg.WordProcessing.SectionMarker == "" {
		cfg.WordProcessing.SectionMarker = "Words"
	}
	if cfg.Output.File == "" {
		cfg.Output.File = "StudySet.html"
	}
	if cfg.Output.Stylesheet == "" {
		cfg.Output.Stylesheet = "card_grid_stylesheet.css"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Input.PrimaryFile == "" && len(c.Input.MergeFiles) == 0 {
		return fmt.Errorf("at least one vocabulary file is required")
	}
	if c.WordProcessing.MinWordLength < 0 {
		return fmt.Errorf("minWordLength must not be negative")
	}
	if c.Output.File == "" {
		return fmt.Errorf("output file is required")
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported output format %q", c.Output.Format)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.Log.Format)
	}
	return nil
}
