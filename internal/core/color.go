package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for world elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// Semantic palette of the first-person view. A column's color encodes how its
// ray reached the wall, so reflections and teleports read differently from
// plain geometry.
const (
	ColorWallLit    = ColorWhite    // wall struck on a horizontal face
	ColorWallShaded = ColorGray     // wall struck on a vertical face
	ColorMirrorEcho = ColorCyan     // ray arrived via at least one reflection
	ColorPortalEcho = ColorMagenta  // ray arrived via at least one teleport
	ColorFloor      = ColorDarkGray // lower half of the view
)
