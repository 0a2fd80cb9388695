// Package config holds server and physics tuning, loaded from a YAML file
// with sane defaults for anything omitted.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fenwick/tilecollider/shared/physics"
)

// Config is the root configuration for the dedicated server.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Physics PhysicsConfig `yaml:"physics"`
}

// ServerConfig contains process-level settings.
type ServerConfig struct {
	Port        uint   `yaml:"port"`
	TickRate    int    `yaml:"tick_rate"`
	Name        string `yaml:"name"`
	Version     string `yaml:"version"` // required client version, empty accepts any
	LevelsDir   string `yaml:"levels_dir"`
	Level       string `yaml:"level"` // empty picks the first level alphabetically
	WatchLevels bool   `yaml:"watch_levels"`
}

// PhysicsConfig contains the simulation tuning constants. Speeds are in
// units/s, accelerations in units/s².
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	MoveAccel      float64 `yaml:"move_accel"`
	MaxMoveSpeed   float64 `yaml:"max_move_speed"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	Damping        float64 `yaml:"damping"`
	BodyHalfWidth  float64 `yaml:"body_half_width"`
	BodyHalfHeight float64 `yaml:"body_half_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:      7373,
			TickRate:  20,
			Name:      "Tilecollider Server",
			LevelsDir: "assets",
		},
		Physics: PhysicsConfig{
			Gravity:        900,
			MaxFallSpeed:   600,
			MoveAccel:      900,
			MaxMoveSpeed:   240,
			JumpSpeed:      360,
			Damping:        0.8,
			BodyHalfWidth:  8,
			BodyHalfHeight: 20,
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.Server.TickRate)
	}
	if c.Physics.Damping < 0 || c.Physics.Damping > 1 {
		return fmt.Errorf("damping must be in [0, 1], got %v", c.Physics.Damping)
	}
	if c.Physics.BodyHalfWidth <= 0 || c.Physics.BodyHalfHeight <= 0 {
		return fmt.Errorf("body half extents must be positive")
	}
	return nil
}

// World builds the physics world for the configured tick rate.
func (p PhysicsConfig) World(tickRate int) *physics.World {
	return &physics.World{
		Dt:           1.0 / float64(tickRate),
		Gravity:      p.Gravity,
		MaxFallSpeed: p.MaxFallSpeed,
		MoveAccel:    p.MoveAccel,
		MaxMoveSpeed: p.MaxMoveSpeed,
		JumpSpeed:    p.JumpSpeed,
		Damping:      p.Damping,
	}
}
