package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the raycast configuration.
// Search order: customPath -> ~/.raycast/configs/raycast.yaml -> ./configs/raycast.yaml -> embedded default
//
// Files are unmarshalled over the defaults, so a partial override keeps the
// default for every key it omits while explicit values, including zeros such
// as max_bounces: 0, are honored.
func Load(customPath string) (Config, error) {
	// A custom path is authoritative: failures there are reported, not skipped.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := Default()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.sanitized(), nil
	}

	if userCfgPath := userConfigPath("raycast.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg := Default()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.sanitized(), nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "raycast.yaml")); err == nil {
		cfg := Default()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.sanitized(), nil
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.sanitized(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".raycast", "configs", filename)
}

// sanitized clamps nonsensical values so any loaded file still yields a
// playable configuration. Zero bounce and teleport budgets are legitimate
// settings (rays stop at the first mirror or portal) and pass through.
func (c Config) sanitized() Config {
	def := Default()
	if c.Trace.MaxTraceDistance <= 0 {
		c.Trace.MaxTraceDistance = def.Trace.MaxTraceDistance
	}
	if c.Trace.MaxBounces < 0 {
		c.Trace.MaxBounces = 0
	}
	if c.Trace.MaxTeleports < 0 {
		c.Trace.MaxTeleports = 0
	}
	if c.Render.FOVDegrees <= 0 || c.Render.FOVDegrees >= 180 {
		c.Render.FOVDegrees = def.Render.FOVDegrees
	}
	if c.Render.RayCount < 0 {
		c.Render.RayCount = 0
	}
	if c.Player.MoveSpeed <= 0 {
		c.Player.MoveSpeed = def.Player.MoveSpeed
	}
	if c.Player.TurnSpeed <= 0 {
		c.Player.TurnSpeed = def.Player.TurnSpeed
	}
	if c.Player.SprintMultiplier < 1 {
		c.Player.SprintMultiplier = def.Player.SprintMultiplier
	}
	if c.Player.CollisionRadius <= 0 || c.Player.CollisionRadius >= 0.5 {
		c.Player.CollisionRadius = def.Player.CollisionRadius
	}
	return c
}
