package trace

import (
	"runtime"
	"sync"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

// FanConfig describes the ray fan cast each frame.
type FanConfig struct {
	// FOVDegrees is the horizontal field of view covered by the fan.
	FOVDegrees float64
	// RayCount is the number of rays spread across the field of view,
	// normally one per screen column.
	RayCount int
}

// Offsets returns the angular offset of each ray from the viewer's forward
// direction, in radians, in fan order from the left edge of the view to the
// right.
func (f FanConfig) Offsets() []float64 {
	n := f.RayCount
	if n < 1 {
		n = 1
	}
	offsets := make([]float64, n)
	if n == 1 {
		return offsets
	}
	fov := core.Deg2Rad(f.FOVDegrees)
	interval := fov / float64(n-1)
	for i := range offsets {
		offsets[i] = float64(i)*interval - fov/2
	}
	return offsets
}

// CastFan casts the full ray fan for one frame and returns one HitRecord per
// ray, in fan order. Each ray is a pure function of the grid, the pose and
// its angle, so the fan is split across worker goroutines with no shared
// mutable state: workers write disjoint slice ranges and the grid is
// read-only for the duration of the call.
//
// out is reused when it has the right length, keeping the per-frame
// allocation constant.
func CastFan(g *world.Grid, pose Pose, cfg Config, fan FanConfig, out []HitRecord) []HitRecord {
	offsets := fan.Offsets()
	if len(out) != len(offsets) {
		out = make([]HitRecord, len(offsets))
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(offsets) {
		workers = len(offsets)
	}
	if workers <= 1 {
		castRange(g, pose, cfg, offsets, out, 0, len(offsets))
		return out
	}

	var wg sync.WaitGroup
	chunk := (len(offsets) + workers - 1) / workers
	for start := 0; start < len(offsets); start += chunk {
		end := core.Min(start+chunk, len(offsets))
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			castRange(g, pose, cfg, offsets, out, start, end)
		}(start, end)
	}
	wg.Wait()
	return out
}

// castRange traces the rays in [start, end).
func castRange(g *world.Grid, pose Pose, cfg Config, offsets []float64, out []HitRecord, start, end int) {
	for i := start; i < end; i++ {
		dir := pose.Dir.Rotated(offsets[i])
		out[i] = CastRay(g, pose.Pos, dir, offsets[i], cfg)
	}
}
