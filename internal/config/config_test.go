package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"colorkit/internal/ui"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "DEBUG", "COLORKIT_PALETTE", "COLORKIT_FORMAT", "COLORKIT_METRICS_FILE"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	if cfg.Palette != "monochromatic" {
		t.Errorf("Palette = %q, want monochromatic", cfg.Palette)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
	if cfg.MetricsFile != "" {
		t.Errorf("MetricsFile = %q, want empty", cfg.MetricsFile)
	}
	if !cfg.Env.IsProduction() || cfg.Env.Verbose() {
		t.Errorf("unexpected env %+v", cfg.Env)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFileMalformedKeepsDefaults(t *testing.T) {
	clearEnv(t)

	var logs bytes.Buffer
	prev := ui.SetLogOutput(&logs)
	t.Cleanup(func() { ui.SetLogOutput(prev) })

	path := filepath.Join(t.TempDir(), "colorkit.json")
	if err := os.WriteFile(path, []byte(`{"palette": "triadic", "format": `), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadFile(path)
	if cfg.Palette != "monochromatic" || cfg.Format != "text" {
		t.Errorf("partial file values leaked into config: %+v", cfg)
	}
	if !strings.Contains(logs.String(), "Ignoring "+path) {
		t.Errorf("missing warning, got %q", logs.String())
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "colorkit.json")
	body := `{"palette": "Triadic", "format": "json", "swatch_width": 14}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadFile(path)
	if cfg.Palette != "triadic" || cfg.Format != "json" || cfg.SwatchWidth != 14 {
		t.Errorf("file values not applied: %+v", cfg)
	}

	t.Setenv("COLORKIT_FORMAT", "YAML")
	t.Setenv("COLORKIT_METRICS_FILE", "/tmp/colorkit.prom")
	cfg = LoadFile(path)
	if cfg.Format != "yaml" {
		t.Errorf("Format = %q, want yaml from env", cfg.Format)
	}
	if cfg.MetricsFile != "/tmp/colorkit.prom" {
		t.Errorf("MetricsFile = %q", cfg.MetricsFile)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Palette: "tetradic", Format: "xml", SwatchWidth: 3, Env: &EnvConfig{}}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"palette must be one of", "format must be one of", "swatch_width"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestLoadEnvDevelopment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "Development")

	env := LoadEnv()
	if !env.IsDevelopment() {
		t.Fatalf("Env = %q, want development", env.Env)
	}
	if env.LogLevel != "debug" || !env.Verbose() {
		t.Errorf("development should default to debug logging, got %q", env.LogLevel)
	}

	t.Setenv("APP_ENV", "staging")
	if env := LoadEnv(); !env.IsProduction() {
		t.Errorf("unknown env should normalize to production, got %q", env.Env)
	}
}
