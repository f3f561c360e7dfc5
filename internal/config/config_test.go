package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raycast.yaml")
	override := "render:\n  fov_degrees: 90\n  ray_count: 120\nplayer:\n  move_speed: 5\n"
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Render.FOVDegrees != 90 || cfg.Render.RayCount != 120 {
		t.Errorf("render overrides not applied: %+v", cfg.Render)
	}
	if cfg.Player.MoveSpeed != 5 {
		t.Errorf("MoveSpeed = %v, expected 5", cfg.Player.MoveSpeed)
	}
	// Fields absent from the override fall back to defaults.
	def := Default()
	if cfg.Trace != def.Trace {
		t.Errorf("Trace = %+v, expected defaults %+v", cfg.Trace, def.Trace)
	}
	if cfg.Player.TurnSpeed != def.Player.TurnSpeed {
		t.Errorf("TurnSpeed = %v, expected default %v", cfg.Player.TurnSpeed, def.Player.TurnSpeed)
	}
}

func TestLoadKeepsExplicitZeroBudgets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raycast.yaml")
	override := "trace:\n  max_bounces: 0\n  max_teleports: 0\n"
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	// A zero budget is a real setting, not an absent field: rays must stop at
	// the first mirror or portal instead of inheriting the default budgets.
	if cfg.Trace.MaxBounces != 0 || cfg.Trace.MaxTeleports != 0 {
		t.Errorf("Trace = %+v, expected explicit zero budgets to survive", cfg.Trace)
	}
	if cfg.Trace.MaxTraceDistance != Default().Trace.MaxTraceDistance {
		t.Errorf("MaxTraceDistance = %v, expected default", cfg.Trace.MaxTraceDistance)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing explicit config path")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v diverges from Default() %+v", cfg, Default())
	}
}

func TestSanitizedRejectsBrokenValues(t *testing.T) {
	cfg := Config{}
	cfg.Render.FOVDegrees = 360
	cfg.Player.CollisionRadius = 0.9
	got := cfg.sanitized()

	def := Default()
	if got.Render.FOVDegrees != def.Render.FOVDegrees {
		t.Errorf("FOVDegrees = %v, expected default", got.Render.FOVDegrees)
	}
	if got.Player.CollisionRadius != def.Player.CollisionRadius {
		t.Errorf("CollisionRadius = %v, expected default", got.Player.CollisionRadius)
	}
	if got.Trace.MaxTraceDistance != def.Trace.MaxTraceDistance {
		t.Errorf("MaxTraceDistance = %v, expected default", got.Trace.MaxTraceDistance)
	}
}

func TestQualityPresets(t *testing.T) {
	low := Default()
	ApplyQualityPreset(&low, QualityLow)
	if low.Render.RayCount != 60 || low.Trace.MaxBounces != 4 {
		t.Errorf("low preset not applied: %+v", low)
	}

	high := Default()
	ApplyQualityPreset(&high, QualityHigh)
	if high.Render.RayCount != 0 || high.Trace.MaxBounces != 32 {
		t.Errorf("high preset not applied: %+v", high)
	}

	normal := Default()
	ApplyQualityPreset(&normal, QualityNormal)
	if normal != Default() {
		t.Error("normal preset should leave the config untouched")
	}
}
