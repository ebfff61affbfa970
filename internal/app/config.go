package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
)

// DefaultConfigFile is read from the working directory when no path is given.
const DefaultConfigFile = "critiplot.yaml"

// Config holds runtime options.
type Config struct {
	OutputDir     string          `yaml:"output_dir"`
	Formats       []domain.Format `yaml:"formats"`
	DPI           int             `yaml:"dpi"`
	Theme         string          `yaml:"theme"`
	MaxInputBytes int64           `yaml:"max_input_bytes"`
	Concurrency   int             `yaml:"concurrency"`
	StrictTotals  bool            `yaml:"strict_totals"`
	Manifest      bool            `yaml:"manifest"`
	Logging       LoggingConfig   `yaml:"logging"`
}

// LoggingConfig selects the log level and encoding.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // console or json
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		OutputDir:     ".",
		Formats:       append([]domain.Format(nil), domaintypes.AllFormats...),
		DPI:           300,
		Theme:         "default",
		MaxInputBytes: 20 << 20,
		Concurrency:   4,
		Manifest:      true,
		Logging:       LoggingConfig{Level: "warn", Encoding: "console"},
	}
}

// LoadConfig reads path over the defaults, then applies environment
// overrides. An empty path tries $CRITIPLOT_CONFIG and then ./critiplot.yaml;
// a missing default file is not an error, a missing explicit one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		if env := os.Getenv("CRITIPLOT_CONFIG"); env != "" {
			path, explicit = env, true
		} else {
			path = DefaultConfigFile
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	names := make([]string, len(cfg.Formats))
	for i, f := range cfg.Formats {
		names[i] = string(f)
	}
	if cfg.Formats, err = ParseFormats(names); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnvOverrides applies CRITIPLOT_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CRITIPLOT_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("CRITIPLOT_FORMATS"); v != "" {
		formats, err := ParseFormats(strings.Split(v, ","))
		if err != nil {
			return fmt.Errorf("CRITIPLOT_FORMATS: %w", err)
		}
		c.Formats = formats
	}
	if v := os.Getenv("CRITIPLOT_DPI"); v != "" {
		dpi, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CRITIPLOT_DPI: %w", err)
		}
		c.DPI = dpi
	}
	if v := os.Getenv("CRITIPLOT_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("CRITIPLOT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CRITIPLOT_STRICT_TOTALS"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CRITIPLOT_STRICT_TOTALS: %w", err)
		}
		c.StrictTotals = strict
	}
	return nil
}

// ParseFormats parses format names, dropping blanks and duplicates.
func ParseFormats(names []string) ([]domain.Format, error) {
	var out []domain.Format
	seen := make(map[domain.Format]bool)
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		f, err := domaintypes.ParseFormat(n)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if len(c.Formats) == 0 {
		return fmt.Errorf("config: at least one output format is required")
	}
	for _, f := range c.Formats {
		if _, err := domaintypes.ParseFormat(string(f)); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.DPI < 36 || c.DPI > 1200 {
		return fmt.Errorf("config: dpi %d out of range 36..1200", c.DPI)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("config: concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.MaxInputBytes <= 0 {
		return fmt.Errorf("config: max_input_bytes must be positive")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: output_dir is required")
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Logging.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("config: logging encoding %q (use console or json)", c.Logging.Encoding)
	}
	return nil
}
