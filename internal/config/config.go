package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"colorkit/internal/palette"
	"colorkit/internal/ui"
)

// DefaultFile is read from the working directory when present.
const DefaultFile = "colorkit.json"

// Output formats understood by the CLI.
var Formats = []string{"text", "json", "yaml", "css"}

// Config holds all colorkit configuration values.
type Config struct {
	Palette     string `json:"palette"`
	Format      string `json:"format"`
	MetricsFile string `json:"metrics_file"`
	SwatchWidth int    `json:"swatch_width"`
	PreviewText string `json:"preview_text"`

	// Environment configuration (loaded from env vars)
	Env *EnvConfig `json:"-"`
}

// Load reads configuration from colorkit.json with sensible defaults.
// Environment variables override file values.
func Load() *Config {
	return LoadFile(DefaultFile)
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) *Config {
	cfg := &Config{
		Palette:     palette.Monochromatic.String(),
		Format:      "text",
		SwatchWidth: 11,
		PreviewText: "The quick brown fox jumps over the lazy dog",
		Env:         LoadEnv(),
	}

	if file, err := os.Open(path); err == nil {
		defer file.Close()
		fromFile := *cfg
		if err := json.NewDecoder(file).Decode(&fromFile); err != nil {
			ui.LogStatus("warning", fmt.Sprintf("Ignoring %s: %v", path, err))
		} else {
			*cfg = fromFile
		}
	}

	if cfg.Env.Palette != "" {
		cfg.Palette = cfg.Env.Palette
	}
	if cfg.Env.Format != "" {
		cfg.Format = cfg.Env.Format
	}
	if cfg.Env.MetricsFile != "" {
		cfg.MetricsFile = cfg.Env.MetricsFile
	}

	cfg.Palette = strings.ToLower(strings.TrimSpace(cfg.Palette))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))

	return cfg
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	if _, err := palette.ParseType(c.Palette); err != nil {
		errs = append(errs, fmt.Sprintf("palette must be one of %s, got %q", typeList(), c.Palette))
	}
	if !ValidFormat(c.Format) {
		errs = append(errs, fmt.Sprintf("format must be one of %s, got %q", strings.Join(Formats, ", "), c.Format))
	}
	if c.SwatchWidth < 9 {
		errs = append(errs, "swatch_width must be at least 9")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

// ValidFormat reports whether f is a supported output format.
func ValidFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

func typeList() string {
	names := make([]string, 0, len(palette.Types()))
	for _, t := range palette.Types() {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}
