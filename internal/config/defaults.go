package config

import (
	_ "embed"
)

//go:embed defaults/raycast.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Trace: TraceConfig{
			MaxTraceDistance: 24.0,
			MaxBounces:       16,
			MaxTeleports:     8,
		},
		Render: RenderConfig{
			FOVDegrees: 70.0,
			RayCount:   0,
			Minimap:    true,
			TintEchoes: true,
		},
		Player: PlayerConfig{
			MoveSpeed:        3.0,
			TurnSpeed:        120.0,
			SprintMultiplier: 1.8,
			CollisionRadius:  0.25,
		},
	}
}

// DefaultYAML returns the embedded default YAML, suitable for writing out as
// a starting point for user overrides.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
