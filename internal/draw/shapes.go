package draw

import (
	"math"
	"sort"
)

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, color Color) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, color)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DashedVLine draws a vertical dashed line at logical x from y0 to y1.
func (c *Canvas) DashedVLine(x, y0, y1, dash float64, color Color) {
	for y := y0; y < y1; y += dash * 2 {
		end := math.Min(y+dash, y1)
		c.DrawLine(Point{X: x, Y: y}, Point{X: x, Y: end}, color)
	}
}

// FillRect fills an axis-aligned rectangle given in logical space.
func (c *Canvas) FillRect(x, y, w, h float64, color Color) {
	x0 := int(math.Round(x * c.scaleX))
	y0 := int(math.Round(y * c.scaleY))
	x1 := max(int(math.Round((x+w)*c.scaleX)), x0+1)
	y1 := max(int(math.Round((y+h)*c.scaleY)), y0+1)

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, color)
		}
	}
}

// FillCircle fills a circle centred at (cx, cy) with a logical radius.
// The radius is scaled per axis so circles stay round in logical space.
func (c *Canvas) FillCircle(cx, cy, radius float64, color Color) {
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	rx := math.Max(radius*c.scaleX, 0.5)
	ry := math.Max(radius*c.scaleY, 0.5)

	for py := int(math.Floor(pcy - ry)); py <= int(math.Ceil(pcy+ry)); py++ {
		for px := int(math.Floor(pcx - rx)); px <= int(math.Ceil(pcx+rx)); px++ {
			nx := (float64(px) - pcx) / rx
			ny := (float64(py) - pcy) / ry
			if nx*nx+ny*ny <= 1 {
				c.setPixel(px, py, color)
			}
		}
	}
}

// StrokeCircle draws the outline of a circle using a fixed number of segments.
func (c *Canvas) StrokeCircle(cx, cy, radius float64, color Color) {
	const segments = 24
	prev := Point{X: cx + radius, Y: cy}
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / segments
		next := Point{X: cx + math.Cos(angle)*radius, Y: cy + math.Sin(angle)*radius}
		c.DrawLine(prev, next, color)
		prev = next
	}
}

// FillPolygon fills a polygon using the scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) FillPolygon(points []Point, color Color) {
	if len(points) < 3 {
		return
	}

	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y, color)
			}
		}
	}

	// Outline keeps thin shapes visible at small terminal sizes.
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%len(points)], color)
	}
}
