package trace

import (
	"math"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

// Config bounds a single ray trace. Exceeding any limit is not an error; it
// is a defined Miss outcome, which is what guarantees every trace terminates
// in bounded work.
type Config struct {
	// MaxTraceDistance is the total path length, in cell units, after which
	// a ray gives up.
	MaxTraceDistance float64
	// MaxBounces is the number of mirror reflections allowed per ray.
	MaxBounces int
	// MaxTeleports is the number of portal transfers allowed per ray.
	MaxTeleports int
}

// DefaultConfig returns the documented trace limits.
func DefaultConfig() Config {
	return Config{
		MaxTraceDistance: 24,
		MaxBounces:       16,
		MaxTeleports:     8,
	}
}

// HitKind classifies how a ray terminated.
type HitKind uint8

const (
	// Miss means the ray ran out of distance, bounces or teleports.
	Miss HitKind = iota
	// WallHit means the ray struck a wall face.
	WallHit
)

// HitRecord is the terminal result of one ray trace. It is created fresh per
// ray per frame and owned by the caller.
type HitRecord struct {
	Kind HitKind

	// Distance is the perpendicular distance: the travel projected onto the
	// forward axis via cos of the ray's angular offset, which removes the
	// fisheye distortion in column heights.
	Distance float64

	// Travel is the raw accumulated path length across all segments.
	Travel float64

	// Face is the side of the wall cell that was struck (WallHit only).
	Face world.Side

	// WallX is the fractional position along the struck face, used for
	// shading variation (WallHit only).
	WallX float64

	Bounces   int
	Teleports int

	// End is the terminal position of the ray, for map overlays.
	End core.Vec2
}

// Pose is a continuous position with a unit facing direction.
type Pose struct {
	Pos core.Vec2
	Dir core.Vec2
}

// CastRay walks a single ray through the grid until it terminates. The grid
// is only read, never written, so any number of rays may run concurrently
// over the same grid. angleOffset is the ray's angle relative to the
// viewer's forward direction and is used for the perpendicular correction.
//
// The bounce and teleport chains are explicit loop iterations with counters,
// not recursion, so stack depth stays constant and termination follows
// directly from the three limits.
func CastRay(g *world.Grid, origin, dir core.Vec2, angleOffset float64, cfg Config) HitRecord {
	dir = dir.Normalized()

	var bounces, teleports int
	segBase := 0.0    // distance accumulated by finished segments
	segStart := origin // continuous position where the current segment began
	st := newStepper(origin, dir)

	for {
		t, entered := st.advance()
		total := segBase + t
		if total > cfg.MaxTraceDistance {
			end := segStart.Add(dir.Scale(cfg.MaxTraceDistance - segBase))
			return HitRecord{
				Kind:      Miss,
				Travel:    cfg.MaxTraceDistance,
				Bounces:   bounces,
				Teleports: teleports,
				End:       end,
			}
		}

		hitPos := segStart.Add(dir.Scale(t))
		cell := g.At(st.col, st.row)

		switch cell.Kind {
		case world.Wall:
			return HitRecord{
				Kind:      WallHit,
				Distance:  total * math.Cos(angleOffset),
				Travel:    total,
				Face:      entered,
				WallX:     wallX(hitPos, entered),
				Bounces:   bounces,
				Teleports: teleports,
				End:       hitPos,
			}

		case world.Mirror:
			// One-sided by orientation: a non-oriented edge passes the ray
			// through unchanged.
			if !cell.Mirror.Has(entered) {
				continue
			}
			bounces++
			if bounces > cfg.MaxBounces {
				return HitRecord{
					Kind:      Miss,
					Travel:    total,
					Bounces:   bounces,
					Teleports: teleports,
					End:       hitPos,
				}
			}
			dir = Reflect(dir, entered)
			segBase = total
			segStart = hitPos.Add(dir.Scale(reflectEpsilon))
			st = newStepper(segStart, dir)

		case world.Portal:
			id, ok := cell.EntranceOn(entered)
			if !ok {
				continue
			}
			self := world.Entrance{Col: st.col, Row: st.row, Sub: entered}
			exit, err := g.Exit(id, self)
			if err != nil {
				// Inert entrance: pass through as empty space.
				continue
			}
			teleports++
			if teleports > cfg.MaxTeleports {
				return HitRecord{
					Kind:      Miss,
					Travel:    total,
					Bounces:   bounces,
					Teleports: teleports,
					End:       hitPos,
				}
			}
			segBase = total
			segStart, dir = PortalTransform(hitPos, dir, self, exit)
			st = newStepper(segStart, dir)

		case world.Empty:
			// Keep walking.
		}
	}
}

// wallX returns the fractional coordinate of the hit point along the struck
// face: along X for horizontal edges, along Y for vertical ones.
func wallX(pos core.Vec2, face world.Side) float64 {
	if face.Horizontal() {
		return pos.X - math.Floor(pos.X)
	}
	return pos.Y - math.Floor(pos.Y)
}
