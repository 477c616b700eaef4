// Package draw is the terminal drawing surface: a colour half-block canvas
// scaled from logical arena units to terminal cells, plus ANSI helpers.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Color is an xterm-256 colour code. Zero means "no pixel".
type Color uint8

// Palette used by the renderer.
const (
	Empty      Color = 0
	NeonGreen  Color = 46
	NeonRed    Color = 197
	NeonCyan   Color = 51
	NeonYellow Color = 226
	HotPink    Color = 205
	White      Color = 231
	PaleGreen  Color = 157
	PaleRed    Color = 217
	Crimson    Color = 196
	Grey       Color = 244
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
