// Package config loads, saves and watches the player's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/OpticalFlyer/peppy/action"
)

// ErrConfigurationMissing is returned when a required option, label or
// colour is absent. It is the same error the listener map reports.
var ErrConfigurationMissing = action.ErrConfigurationMissing

// Load reads the configuration from path.
// If the file doesn't exist, it returns the default configuration.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	cfg := &Config{}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("config: ignoring unknown option %s in %s", key, path)
	}

	return migrateConfig(cfg), nil
}

// Save writes the configuration to path atomically.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// migrateConfig fills options missing from older files with defaults.
func migrateConfig(cfg *Config) *Config {
	def := DefaultConfig()

	if cfg.Version == 0 {
		cfg.Version = def.Version
	}
	if cfg.Screen.Width == 0 || cfg.Screen.Height == 0 {
		cfg.Screen = def.Screen
	}
	if cfg.Colors == nil {
		cfg.Colors = map[string]string{}
	}
	for k, v := range def.Colors {
		if _, ok := cfg.Colors[k]; !ok {
			cfg.Colors[k] = v
		}
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
	for k, v := range def.Labels {
		if _, ok := cfg.Labels[k]; !ok {
			cfg.Labels[k] = v
		}
	}
	return cfg
}

// Color returns the named colour from the [colors] section.
func (c *Config) Color(name string) (color.RGBA, error) {
	v, ok := c.Colors[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("color %q: %w", name, ErrConfigurationMissing)
	}
	return ParseColor(v)
}

// Label returns the display label for key from the [labels] section.
func (c *Config) Label(key string) (string, error) {
	v, ok := c.Labels[key]
	if !ok {
		return "", fmt.Errorf("label %q: %w", key, ErrConfigurationMissing)
	}
	return v, nil
}

// ParseColor parses an "r,g,b" string.
func ParseColor(s string) (color.RGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("color %q: want r,g,b", s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
		}
		rgb[i] = uint8(n)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}
