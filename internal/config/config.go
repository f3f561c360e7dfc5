// Package config provides YAML-based configuration loading and quality
// presets for the raycast platform.
package config

// Config contains all tunables for a raycast session.
type Config struct {
	Trace  TraceConfig  `yaml:"trace"`
	Render RenderConfig `yaml:"render"`
	Player PlayerConfig `yaml:"player"`
}

// TraceConfig bounds ray traversal.
type TraceConfig struct {
	MaxTraceDistance float64 `yaml:"max_trace_distance"`
	MaxBounces       int     `yaml:"max_bounces"`
	MaxTeleports     int     `yaml:"max_teleports"`
}

// RenderConfig defines the view and its decorations.
type RenderConfig struct {
	FOVDegrees float64 `yaml:"fov_degrees"`
	RayCount   int     `yaml:"ray_count"` // 0 = one ray per screen column
	Minimap    bool    `yaml:"minimap"`
	TintEchoes bool    `yaml:"tint_echoes"` // tint columns seen through mirrors or portals
}

// PlayerConfig defines player movement.
type PlayerConfig struct {
	MoveSpeed        float64 `yaml:"move_speed"`        // cells per second
	TurnSpeed        float64 `yaml:"turn_speed"`        // degrees per second
	SprintMultiplier float64 `yaml:"sprint_multiplier"` // applied to move speed while sprinting
	CollisionRadius  float64 `yaml:"collision_radius"`  // cells
}

// QualityPreset represents a named rendering quality level.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityNormal QualityPreset = "normal"
	QualityHigh   QualityPreset = "high"
)

// ApplyQualityPreset adjusts the trace and render budgets for a preset.
// The normal preset leaves the loaded values untouched.
func ApplyQualityPreset(cfg *Config, preset QualityPreset) {
	switch preset {
	case QualityLow:
		cfg.Render.RayCount = 60
		cfg.Trace.MaxBounces = 4
		cfg.Trace.MaxTeleports = 4
	case QualityHigh:
		cfg.Render.RayCount = 0
		cfg.Trace.MaxBounces = 32
		cfg.Trace.MaxTeleports = 16
	}
}
