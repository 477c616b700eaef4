// Package physics provides collision detection and bounds utilities.
package physics

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// CircleBounds returns the bounding square of a circle centred at (cx, cy).
// Circles collide as their bounding squares.
func CircleBounds(cx, cy, radius float64) Rect {
	return Rect{X: cx - radius, Y: cy - radius, W: radius * 2, H: radius * 2}
}

// Overlaps reports whether two rectangles intersect.
// Touching edges do not count as an overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Center returns the centre point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
