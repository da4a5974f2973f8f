// Package config holds the run configuration of the messengers tool.
//
// Values are layered, later layers winning:
//
//  1. Default()
//  2. a YAML file (Load)
//  3. MESSENGERS_* environment variables (ApplyEnv)
//  4. command-line flags, applied by the CLI
//
// Validate is called once all layers are in place.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MESSENGERS_"

// ErrInvalid is wrapped by every validation and environment error.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete set of run settings. Field names in YAML follow the
// json tags.
type Config struct {
	// Input is the scenario file. Empty or "-" reads the plain-text format
	// from standard input.
	Input string `json:"input"`
	// Interactive asks for every cell on the terminal instead of reading Input.
	Interactive bool `json:"interactive"`

	// Format selects the report: "text" or "json".
	Format string `json:"format"`
	// Source is the city distances are measured from.
	Source int `json:"source"`
	// Lenient accepts malformed numeric tokens the way atoi does.
	Lenient bool `json:"lenient"`

	// ShowMatrix prints the input matrix before the text report.
	ShowMatrix bool `json:"showMatrix"`
	// Timeline appends the arrival timeline to the text report.
	Timeline bool `json:"timeline"`
	// DOTPath, when set, receives a Graphviz export of the road network.
	DOTPath string `json:"dotPath"`
	// MetricsPath, when set, receives run metrics in the Prometheus
	// textfile format.
	MetricsPath string `json:"metricsPath"`

	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Format:     "text",
		ShowMatrix: true,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads the YAML file at path over Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from MESSENGERS_* variables found by lookup
// (os.LookupEnv in production). Unset and empty variables are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return v, ok && v != ""
	}

	strs := map[string]*string{
		"INPUT":            &c.Input,
		"FORMAT":           &c.Format,
		"DOT":              &c.DOTPath,
		"METRICS_TEXTFILE": &c.MetricsPath,
		"LOG_LEVEL":        &c.LogLevel,
		"LOG_FORMAT":       &c.LogFormat,
	}
	for name, dst := range strs {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"INTERACTIVE": &c.Interactive,
		"LENIENT":     &c.Lenient,
		"MATRIX":      &c.ShowMatrix,
		"TIMELINE":    &c.Timeline,
	}
	for name, dst := range bools {
		v, ok := get(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalid, EnvPrefix, name, v)
		}
		*dst = b
	}

	if v, ok := get("SOURCE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sSOURCE=%q is not an integer", ErrInvalid, EnvPrefix, v)
		}
		c.Source = n
	}

	return nil
}

// Validate normalises case and rejects settings the tool cannot honour.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)

	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: format must be 'text' or 'json', got %q", ErrInvalid, c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log-format must be 'text' or 'json', got %q", ErrInvalid, c.LogFormat)
	}
	if c.Source < 0 {
		return fmt.Errorf("%w: source must be >= 0, got %d", ErrInvalid, c.Source)
	}
	if c.Interactive && c.Input != "" && c.Input != "-" {
		return fmt.Errorf("%w: interactive mode cannot be combined with input file %q", ErrInvalid, c.Input)
	}

	return nil
}

// ReadsStdin reports whether the scenario comes from standard input.
func (c *Config) ReadsStdin() bool {
	return c.Interactive || c.Input == "" || c.Input == "-"
}
