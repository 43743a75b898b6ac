// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// SnowConfig contains configuration for a snowfall simulation. All options
// have working defaults; zero or out-of-range values are replaced by the
// defaults when the config is normalized, never rejected.
type SnowConfig struct {
	// FlakeCount is the number of flakes kept alive for the whole run.
	FlakeCount int `json:"flakeCount"`
	// Gravity scales the per-flake base fall speed.
	Gravity float64 `json:"gravity"`
	// Wind is a constant horizontal push applied to every flake, scaled by depth.
	Wind float64 `json:"wind"`
	// SizeBase is the radius of a flake at full depth (z = 1).
	SizeBase float64 `json:"sizeBase"`
	// Stickiness is the per-frame probability in [0, 1] that a flake touching
	// an obstacle actually sticks to it.
	Stickiness float64 `json:"stickiness"`
	// MeltSpeed is the opacity lost per frame while a flake is landed.
	MeltSpeed float64 `json:"meltSpeed"`
	// MouseInteraction enables the pointer repulsion field.
	MouseInteraction bool `json:"mouseInteraction"`
	// MouseRepulsionRadius is the radius of the pointer repulsion field.
	MouseRepulsionRadius float64 `json:"mouseRepulsionRadius"`

	// ObstacleSelectors name the on-screen elements flakes accumulate on.
	ObstacleSelectors []string `json:"obstacleSelectors"`
}

// DefaultConfig returns a default snowfall configuration
func DefaultConfig() *SnowConfig {
	return &SnowConfig{
		FlakeCount:           150,
		Gravity:              0.8,
		Wind:                 0,
		SizeBase:             4,
		Stickiness:           0.45,
		MeltSpeed:            0.008,
		MouseInteraction:     true,
		MouseRepulsionRadius: 100,
	}
}

// LoadConfig loads a configuration from a file. Options absent from the file
// keep their default values; unknown keys are ignored.
func LoadConfig(path string) (*SnowConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *SnowConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Normalized returns a copy of the config with every option the simulation
// requires to be positive replaced by its default when it is not. Wind and
// Stickiness are left alone: any wind value is meaningful, and a Stickiness
// outside [0, 1] simply behaves as never/always sticking.
func (c *SnowConfig) Normalized() *SnowConfig {
	def := DefaultConfig()
	out := *c
	if out.FlakeCount <= 0 {
		out.FlakeCount = def.FlakeCount
	}
	if out.Gravity <= 0 {
		out.Gravity = def.Gravity
	}
	if out.SizeBase <= 0 {
		out.SizeBase = def.SizeBase
	}
	if out.MeltSpeed <= 0 {
		out.MeltSpeed = def.MeltSpeed
	}
	if out.MouseRepulsionRadius <= 0 {
		out.MouseRepulsionRadius = def.MouseRepulsionRadius
	}
	return &out
}
