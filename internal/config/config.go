package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the persisted application preferences. Everything here is a
// preference, not project data: a missing or unreadable file just means
// defaults.
type Config struct {
	WindowWidth      int     `json:"windowWidth,omitempty"`
	WindowHeight     int     `json:"windowHeight,omitempty"`
	LogLevel         string  `json:"logLevel,omitempty"`
	LastBPM          int     `json:"lastBpm,omitempty"`
	BeatsPerMeasure  int     `json:"beatsPerMeasure,omitempty"`
	BeatUnit         int     `json:"beatUnit,omitempty"`
	PixelsPerMeasure float64 `json:"pixelsPerMeasure,omitempty"`
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		WindowWidth:      1024,
		WindowHeight:     640,
		LogLevel:         "INFO",
		LastBPM:          120,
		BeatsPerMeasure:  4,
		BeatUnit:         4,
		PixelsPerMeasure: 200,
	}
}

// Dir returns the config directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "arranger"), nil
}

// Path returns the full path to config.json.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist. Unknown fields are ignored; zero fields are backfilled so an old
// file keeps working after new preferences are added.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return Default(), err
	}
	cfg.backfill()
	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) backfill() {
	d := Default()
	if c.WindowWidth <= 0 {
		c.WindowWidth = d.WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = d.WindowHeight
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LastBPM <= 0 {
		c.LastBPM = d.LastBPM
	}
	if c.BeatsPerMeasure <= 0 {
		c.BeatsPerMeasure = d.BeatsPerMeasure
	}
	if c.BeatUnit <= 0 {
		c.BeatUnit = d.BeatUnit
	}
	if c.PixelsPerMeasure <= 0 {
		c.PixelsPerMeasure = d.PixelsPerMeasure
	}
}
