package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/messengers/internal/config"
)

// envMap turns a map into a lookup function.
func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "text", cfg.Format)
	require.True(t, cfg.ShowMatrix)
	require.False(t, cfg.Timeline)
	require.Equal(t, 0, cfg.Source)
	require.True(t, cfg.ReadsStdin())
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "full.yaml"))
	require.NoError(t, err)
	require.Equal(t, &config.Config{
		Input:       "empire.hcl",
		Format:      "json",
		Source:      2,
		Lenient:     true,
		ShowMatrix:  false,
		Timeline:    true,
		DOTPath:     "out/empire.dot",
		MetricsPath: "out/messengers.prom",
		LogLevel:    "debug",
		LogFormat:   "json",
	}, cfg)
	require.NoError(t, cfg.Validate())
	require.False(t, cfg.ReadsStdin())

	// missing keys keep their defaults
	cfg, err = config.Load(filepath.Join("testdata", "partial.yaml"))
	require.NoError(t, err)
	want := config.Default()
	want.Timeline = true
	require.Equal(t, want, cfg)

	_, err = config.Load(filepath.Join("testdata", "broken.yaml"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join("testdata", "absent.yaml"))
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{
		"MESSENGERS_INPUT":            "cities.txt",
		"MESSENGERS_FORMAT":           "JSON",
		"MESSENGERS_SOURCE":           "3",
		"MESSENGERS_LENIENT":          "true",
		"MESSENGERS_MATRIX":           "0",
		"MESSENGERS_TIMELINE":         "1",
		"MESSENGERS_DOT":              "e.dot",
		"MESSENGERS_METRICS_TEXTFILE": "m.prom",
		"MESSENGERS_LOG_LEVEL":        "warn",
		"MESSENGERS_LOG_FORMAT":       "json",
		"MESSENGERS_INTERACTIVE":      "", // empty is ignored
		"UNRELATED":                   "x",
	})))
	require.NoError(t, cfg.Validate())
	require.Equal(t, &config.Config{
		Input:       "cities.txt",
		Format:      "json",
		Source:      3,
		Lenient:     true,
		ShowMatrix:  false,
		Timeline:    true,
		DOTPath:     "e.dot",
		MetricsPath: "m.prom",
		LogLevel:    "warn",
		LogFormat:   "json",
	}, cfg)
}

func TestApplyEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		"MESSENGERS_SOURCE":   "capital",
		"MESSENGERS_LENIENT":  "maybe",
		"MESSENGERS_TIMELINE": "yes please",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			err := config.Default().ApplyEnv(envMap(map[string]string{k: v}))
			require.ErrorIs(t, err, config.ErrInvalid)
			require.Contains(t, err.Error(), k)
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{"MixedCaseNormalised", func(c *config.Config) { c.Format, c.LogLevel = "Text", "DEBUG" }, true},
		{"StdinDash", func(c *config.Config) { c.Input = "-"; c.Interactive = true }, true},
		{"UnknownFormat", func(c *config.Config) { c.Format = "yaml" }, false},
		{"UnknownLevel", func(c *config.Config) { c.LogLevel = "trace" }, false},
		{"UnknownLogFormat", func(c *config.Config) { c.LogFormat = "logfmt" }, false},
		{"NegativeSource", func(c *config.Config) { c.Source = -1 }, false},
		{"InteractiveWithFile", func(c *config.Config) { c.Interactive = true; c.Input = "a.txt" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}
