package loop

import (
	"math"

	"github.com/tomz197/neonduel/internal/draw"
	"github.com/tomz197/neonduel/internal/loop/config"
	"github.com/tomz197/neonduel/internal/loop/session"
	"github.com/tomz197/neonduel/internal/object"
)

// palette maps entity colours onto terminal colours.
var palette = [...]draw.Color{
	object.ColorNone:      draw.Empty,
	object.ColorGreen:     draw.NeonGreen,
	object.ColorRed:       draw.NeonRed,
	object.ColorCyan:      draw.NeonCyan,
	object.ColorYellow:    draw.NeonYellow,
	object.ColorPink:      draw.HotPink,
	object.ColorWhite:     draw.White,
	object.ColorPaleGreen: draw.PaleGreen,
	object.ColorPaleRed:   draw.PaleRed,
	object.ColorCrash:     draw.Crimson,
}

func termColor(c object.Color) draw.Color {
	if int(c) < len(palette) {
		return palette[c]
	}
	return draw.White
}

// drawArena draws every entity of the match. It never mutates the match.
// Text labels go to tw and are flushed after the canvas.
func drawArena(c *draw.Canvas, tw *draw.TextWriter, m *session.Match) {
	c.DashedVLine(config.LaneWidth, 0, config.ArenaHeight, config.MidlineDash, draw.Grey)

	if m.Players[object.LaneLeft] == nil {
		return
	}

	for _, e := range m.Enemies {
		drawEntity(c, tw, e)
	}
	for _, p := range m.PowerUps {
		drawEntity(c, tw, p)
	}
	for _, p := range m.Players {
		drawEntity(c, tw, p)
		for _, b := range p.Bullets {
			drawEntity(c, tw, b)
		}
	}
	for _, p := range m.Particles {
		drawEntity(c, tw, p)
	}
	for _, t := range m.Texts {
		drawEntity(c, tw, t)
	}
}

// drawEntity dispatches over the entity kinds.
func drawEntity(c *draw.Canvas, tw *draw.TextWriter, obj object.Object) {
	switch o := obj.(type) {
	case *object.Player:
		drawPlayer(c, o)
	case *object.Bullet:
		c.FillRect(o.X-config.BulletWidth/2, o.Y, config.BulletWidth, config.BulletHeight, draw.White)
	case *object.Enemy:
		drawEnemy(c, o)
	case *object.PowerUp:
		c.FillCircle(o.X, o.Y, o.Radius, termColor(o.Kind.Color()))
		col, row := c.LogicalToTerminal(o.X, o.Y)
		tw.WriteAt(col, row, o.Kind.Label(), draw.Grey)
	case *object.Particle:
		if o.Life < config.ParticleFadeCutoff {
			return
		}
		c.SetFloat(o.X, o.Y, termColor(o.Color))
	case *object.FloatingText:
		color := termColor(o.Color)
		if o.Life < config.ParticleFadeCutoff {
			color = draw.Grey
		}
		col, row := c.LogicalToTerminal(o.X, o.Y)
		tw.WriteAt(col-len(o.Text)/2, row, o.Text, color)
	}
}

func drawPlayer(c *draw.Canvas, p *object.Player) {
	if p.Dead {
		return
	}
	color := termColor(p.Color())
	c.FillPolygon([]draw.Point{
		{X: p.X + p.Size/2, Y: p.Y},
		{X: p.X, Y: p.Y + p.Size},
		{X: p.X + p.Size, Y: p.Y + p.Size},
	}, color)

	if p.TripleShot > 0 {
		c.FillRect(p.X, p.Y+p.Size-2, 3, 3, draw.NeonCyan)
		c.FillRect(p.X+p.Size-3, p.Y+p.Size-2, 3, 3, draw.NeonCyan)
	}
	if p.Shield && shieldVisible(p) {
		cx, cy := p.Bounds().Center()
		c.StrokeCircle(cx, cy, config.ShieldRingRadius, draw.NeonYellow)
	}
}

// shieldVisible blinks the ring while a respawn grace window runs out.
func shieldVisible(p *object.Player) bool {
	if p.ShieldGrace <= 0 {
		return true
	}
	phase := int(math.Floor(p.ShieldGrace.Seconds() * config.PlayerBlinkFreq))
	return phase%2 == 0
}

func drawEnemy(c *draw.Canvas, e *object.Enemy) {
	color := termColor(e.Color())
	if e.Garbage {
		cx, cy := e.Bounds().Center()
		c.FillCircle(cx, cy, e.Size/2, color)
		if e.HP < config.GarbageHP {
			c.StrokeCircle(cx, cy, e.Size/2, draw.Grey)
		}
		return
	}
	c.FillRect(e.X, e.Y, e.Size, e.Size, color)
}
