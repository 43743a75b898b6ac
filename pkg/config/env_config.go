// pkg/config/env_config.go
package config

import (
	"os"
	"strconv"
)

// Environment variable names recognized by ApplyEnv.
const (
	EnvFlakeCount           = "SNOWFALL_FLAKE_COUNT"
	EnvGravity              = "SNOWFALL_GRAVITY"
	EnvWind                 = "SNOWFALL_WIND"
	EnvSizeBase             = "SNOWFALL_SIZE_BASE"
	EnvStickiness           = "SNOWFALL_STICKINESS"
	EnvMeltSpeed            = "SNOWFALL_MELT_SPEED"
	EnvMouseInteraction     = "SNOWFALL_MOUSE_INTERACTION"
	EnvMouseRepulsionRadius = "SNOWFALL_MOUSE_REPULSION_RADIUS"
)

// ApplyEnv overlays SNOWFALL_* environment variables onto the config.
// Unset or unparsable variables leave the existing value untouched.
func (c *SnowConfig) ApplyEnv() {
	c.FlakeCount = getEnvInt(EnvFlakeCount, c.FlakeCount)
	c.Gravity = getEnvFloat(EnvGravity, c.Gravity)
	c.Wind = getEnvFloat(EnvWind, c.Wind)
	c.SizeBase = getEnvFloat(EnvSizeBase, c.SizeBase)
	c.Stickiness = getEnvFloat(EnvStickiness, c.Stickiness)
	c.MeltSpeed = getEnvFloat(EnvMeltSpeed, c.MeltSpeed)
	c.MouseInteraction = getEnvBool(EnvMouseInteraction, c.MouseInteraction)
	c.MouseRepulsionRadius = getEnvFloat(EnvMouseRepulsionRadius, c.MouseRepulsionRadius)
}

// getEnvInt returns the integer value of the environment variable, or the
// fallback when it is unset or invalid.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvFloat returns the float value of the environment variable, or the
// fallback when it is unset or invalid.
func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvBool returns the boolean value of the environment variable, or the
// fallback when it is unset or invalid.
func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
