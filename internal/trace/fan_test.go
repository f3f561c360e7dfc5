package trace

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

func TestFanOffsets(t *testing.T) {
	fan := FanConfig{FOVDegrees: 90, RayCount: 5}
	offsets := fan.Offsets()

	if len(offsets) != 5 {
		t.Fatalf("len(offsets) = %d, expected 5", len(offsets))
	}
	half := core.Deg2Rad(45)
	if !almostEqual(offsets[0], -half, eps) {
		t.Errorf("first offset = %v, expected %v", offsets[0], -half)
	}
	if !almostEqual(offsets[4], half, eps) {
		t.Errorf("last offset = %v, expected %v", offsets[4], half)
	}
	if !almostEqual(offsets[2], 0, eps) {
		t.Errorf("center offset = %v, expected 0", offsets[2])
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] <= offsets[i-1] {
			t.Errorf("offsets not strictly increasing at %d", i)
		}
	}
}

func TestFanSingleRay(t *testing.T) {
	offsets := FanConfig{FOVDegrees: 70, RayCount: 1}.Offsets()
	if len(offsets) != 1 || offsets[0] != 0 {
		t.Errorf("single-ray fan should be one centered ray, got %v", offsets)
	}
}

func TestCastFanOrderAndCount(t *testing.T) {
	g := boxGrid(t, 9, 9)
	pose := Pose{Pos: core.V(4.5, 4.5), Dir: core.V(1, 0)}
	fan := FanConfig{FOVDegrees: 60, RayCount: 33}

	hits := CastFan(g, pose, bigConfig(), fan, nil)
	if len(hits) != fan.RayCount {
		t.Fatalf("got %d hits, expected %d", len(hits), fan.RayCount)
	}
	for i, h := range hits {
		if h.Kind != WallHit {
			t.Errorf("ray %d: expected WallHit in a closed box", i)
		}
	}

	// Fan order is left to right: the first ray points above the center
	// one in screen terms (negative offset), the last below.
	offsets := fan.Offsets()
	for i, h := range hits {
		dir := pose.Dir.Rotated(offsets[i])
		// The end point must lie along the ray's own direction.
		to := h.End.Sub(pose.Pos).Normalized()
		if !vecAlmostEqual(to, dir, 1e-6) {
			t.Errorf("ray %d: end point off the ray direction", i)
		}
	}
}

func TestCastFanDeterministic(t *testing.T) {
	g := boxGrid(t, 16, 12)
	pose := Pose{Pos: core.V(3.3, 6.7), Dir: core.V(1, 0).Rotated(0.4)}
	cfg := bigConfig()
	fan := FanConfig{FOVDegrees: 70, RayCount: 120}

	// The parallel fan must agree with per-ray serial casts exactly, and
	// repeated runs must be identical.
	offsets := fan.Offsets()
	serial := make([]HitRecord, len(offsets))
	for i, off := range offsets {
		serial[i] = CastRay(g, pose.Pos, pose.Dir.Rotated(off), off, cfg)
	}

	for run := 0; run < 3; run++ {
		hits := CastFan(g, pose, cfg, fan, nil)
		for i := range hits {
			if hits[i] != serial[i] {
				t.Fatalf("run %d ray %d: parallel result diverges from serial", run, i)
			}
		}
	}
}

func TestCastFanReusesBuffer(t *testing.T) {
	g := boxGrid(t, 9, 9)
	pose := Pose{Pos: core.V(4.5, 4.5), Dir: core.V(0, -1)}
	fan := FanConfig{FOVDegrees: 70, RayCount: 40}

	buf := make([]HitRecord, fan.RayCount)
	out := CastFan(g, pose, bigConfig(), fan, buf)
	if &out[0] != &buf[0] {
		t.Error("CastFan should reuse a correctly sized buffer")
	}

	out = CastFan(g, pose, bigConfig(), fan, make([]HitRecord, 3))
	if len(out) != fan.RayCount {
		t.Errorf("CastFan with wrong-sized buffer returned %d records", len(out))
	}
}

func TestPerpendicularEqualsForwardComponent(t *testing.T) {
	// For a wall straight ahead, the perpendicular distance of every fan ray
	// equals the forward component of its travel, which is what keeps the
	// rendered wall flat.
	g := boxGrid(t, 9, 9)
	pose := Pose{Pos: core.V(4.5, 4.5), Dir: core.V(1, 0)}
	fan := FanConfig{FOVDegrees: 40, RayCount: 21}

	hits := CastFan(g, pose, bigConfig(), fan, nil)
	for i, h := range hits {
		forward := h.End.Sub(pose.Pos).Dot(pose.Dir)
		if !almostEqual(h.Distance, forward, 1e-6) {
			t.Errorf("ray %d: Distance = %v, forward component = %v", i, h.Distance, forward)
		}
		// A narrow fan onto the flat east wall: all perpendicular distances
		// are equal even though travels differ.
		if !almostEqual(h.Distance, hits[0].Distance, 1e-6) {
			t.Errorf("ray %d: flat wall rendered bowed (%v vs %v)", i, h.Distance, hits[0].Distance)
		}
	}

	if math.Abs(hits[0].Travel-hits[len(hits)/2].Travel) < 1e-9 {
		t.Error("edge and center travels should differ for an off-axis ray")
	}
}
