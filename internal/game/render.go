package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/trace"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

// Floor rune for the lower half of the view.
const floorChar = '.'

// Render draws the current frame into the provided screen buffer.
// The screen is pre-cleared before this call.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 {
		return
	}
	if g.State().TooSmall {
		dst.DrawTextCentered(h/2, "terminal too small")
		return
	}

	viewH := h - 1 // bottom row is the status line
	g.renderView(dst, w, viewH)
	if g.cfg.Render.Minimap {
		g.renderMinimap(dst, w, viewH)
	}
	g.renderStatus(dst, w, h)

	if g.paused {
		dst.DrawTextCentered(viewH/2, "── PAUSED ──")
	}
}

// renderView rasterizes the traced fan into vertical wall slices. Column
// height is inversely proportional to perpendicular distance, which keeps
// flat walls flat across the fan.
func (g *Game) renderView(dst *core.Screen, w, viewH int) {
	n := len(g.hits)
	if n == 0 || viewH <= 0 {
		return
	}
	horizon := viewH / 2

	for x := 0; x < w; x++ {
		hit := g.hits[x*n/w]

		for y := horizon; y < viewH; y++ {
			dst.SetCell(x, y, floorChar, core.ColorFloor)
		}
		if hit.Kind != trace.WallHit {
			continue
		}

		dist := hit.Distance
		if dist < 1e-4 {
			dist = 1e-4
		}
		colH := int(float64(viewH) / dist)
		if colH > viewH {
			colH = viewH
		}
		if colH < 1 {
			colH = 1
		}
		yTop := (viewH - colH) / 2
		dst.DrawColumn(x, yTop, yTop+colH-1, g.wallRune(hit), g.wallColor(hit))
	}
}

// wallRune shades by distance: near walls are dense, far walls sparse.
func (g *Game) wallRune(hit trace.HitRecord) rune {
	t := hit.Distance / g.cfg.Trace.MaxTraceDistance
	switch {
	case t < 0.2:
		return '█'
	case t < 0.45:
		return '▓'
	case t < 0.7:
		return '▒'
	default:
		return '░'
	}
}

// wallColor distinguishes wall faces, and tints columns whose ray arrived
// through a mirror or a portal so reflections and teleports read differently
// from plain geometry.
func (g *Game) wallColor(hit trace.HitRecord) core.Color {
	if g.cfg.Render.TintEchoes {
		if hit.Teleports > 0 {
			return core.ColorPortalEcho
		}
		if hit.Bounces > 0 {
			return core.ColorMirrorEcho
		}
	}
	if hit.Face.Horizontal() {
		return core.ColorWallLit
	}
	return core.ColorWallShaded
}

// renderMinimap overlays a top-down view in the top-right corner when the
// grid fits there.
func (g *Game) renderMinimap(dst *core.Screen, w, viewH int) {
	cols, rows := g.grid.Cols(), g.grid.Rows()
	if cols > w/2 || rows > viewH-2 {
		return
	}
	x0, y0 := w-cols-1, 1

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var r rune
			var c core.Color
			switch g.grid.At(x, y).Kind {
			case world.Wall:
				r, c = '#', core.ColorGray
			case world.Mirror:
				r, c = 'M', core.ColorCyan
			case world.Portal:
				r, c = 'o', core.ColorMagenta
			default:
				continue
			}
			dst.SetCell(x0+x, y0+y, r, c)
		}
	}

	px := int(math.Floor(g.pose.Pos.X))
	py := int(math.Floor(g.pose.Pos.Y))
	dst.SetCell(x0+px, y0+py, headingRune(g.pose.Dir), core.ColorBrightYellow)

	if g.editing {
		if col, row, _, ok := g.editTarget(); ok {
			dst.SetCell(x0+col, y0+row, 'x', core.ColorBrightRed)
		}
	}
}

// headingRune picks an arrow for the player's dominant facing.
func headingRune(d core.Vec2) rune {
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X > 0 {
			return '>'
		}
		return '<'
	}
	if d.Y > 0 {
		return 'v'
	}
	return '^'
}

// renderStatus draws the bottom status line.
func (g *Game) renderStatus(dst *core.Screen, w, h int) {
	heading := math.Mod(g.pose.Dir.Angle()*180/math.Pi+360, 360)
	mode := "play"
	if g.editing {
		mode = "edit"
	}
	line := fmt.Sprintf(" %s | %s | pos %.1f,%.1f | dir %3.0f | tp %d",
		g.level.Name, mode, g.pose.Pos.X, g.pose.Pos.Y, heading, g.teleports)
	if g.editing {
		if g.editStatus != "" {
			line += " | " + g.editStatus
		} else {
			line += " | 1 wall  2 mirror  3 portal  0 clear"
		}
	}
	if len(line) > w {
		line = line[:w]
	}
	dst.DrawTextColored(0, h-1, line, core.ColorGray)
}
