// Package config loads and saves the waytour application configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultContentDir   = "assets/tour"
	DefaultDurationMs   = 1200.0
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultTargetFPS    = 60
	DefaultPanelWidth   = 300
)

type Config struct {
	ContentDir   string       `yaml:"content_dir"`
	DurationMs   float64      `yaml:"duration_ms"`
	WindowWidth  int          `yaml:"window_width"`
	WindowHeight int          `yaml:"window_height"`
	TargetFPS    int          `yaml:"target_fps"`
	PanelWidth   int          `yaml:"panel_width"`
	Camera       CameraConfig `yaml:"camera"`

	// Anchors are named scene positions that panels may attach to through
	// their anchorId front matter key.
	Anchors map[string][3]float64 `yaml:"anchors"`
}

// CameraConfig is the camera's starting pose before the first waypoint.
type CameraConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Z    float64 `yaml:"z"`
	FOVY float64 `yaml:"fovy"`
}

func DefaultConfig() *Config {
	return &Config{
		ContentDir:   DefaultContentDir,
		DurationMs:   DefaultDurationMs,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		TargetFPS:    DefaultTargetFPS,
		PanelWidth:   DefaultPanelWidth,
		Camera: CameraConfig{
			Y:    4,
			Z:    30,
			FOVY: 45,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) validate() error {
	if c.DurationMs <= 0 {
		return fmt.Errorf("config: duration_ms must be positive, got %v", c.DurationMs)
	}
	if c.PanelWidth <= 0 {
		return fmt.Errorf("config: panel_width must be positive, got %d", c.PanelWidth)
	}
	return nil
}
