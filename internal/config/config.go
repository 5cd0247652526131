// Package config loads the optional YAML application configuration.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "image-labeller"
	configFileName = "config.yaml"
)

// Theme holds the color scheme. Colors are hex strings ("#rrggbb"); the
// accents cycle across label buttons and count badges in label order.
type Theme struct {
	Background string   `yaml:"background"`
	Card       string   `yaml:"card"`
	Text       string   `yaml:"text"`
	Muted      string   `yaml:"muted"`
	Accents    []string `yaml:"accents"`
}

// Window holds the initial window geometry.
type Window struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Config represents the application configuration.
type Config struct {
	Theme  Theme  `yaml:"theme"`
	Window Window `yaml:"window"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme: Theme{
			Background: "#0b1224",
			Card:       "#0f1c33",
			Text:       "#e4ecff",
			Muted:      "#b7c4e0",
			Accents: []string{
				"#ff6b6b", "#fcbf49", "#7ee0c3",
				"#6fa3ff", "#c77dff", "#ff7ab5",
			},
		},
		Window: Window{Width: 1300, Height: 900},
	}
}

// Load reads the config from the user's config directory. A missing file
// yields the defaults; a malformed file is an error.
func Load() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(filepath.Join(configDir, configDirName, configFileName))
}

// LoadFrom reads the config from an explicit path. Fields absent from the
// file keep their default values.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Theme.Accents) == 0 {
		cfg.Theme.Accents = Default().Theme.Accents
	}
	return cfg, nil
}

// AccentColor returns the accent for position i, cycling through the
// palette. Unparseable entries fall back to the first default accent.
func (t Theme) AccentColor(i int) color.NRGBA {
	hex := t.Accents[i%len(t.Accents)]
	c, err := ParseHexColor(hex)
	if err != nil {
		c, _ = ParseHexColor(Default().Theme.Accents[0])
	}
	return c
}

// ParseHexColor parses a "#rrggbb" string.
func ParseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}
