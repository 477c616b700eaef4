package object

import (
	"github.com/tomz197/neonduel/internal/loop/config"
	"github.com/tomz197/neonduel/internal/physics"
)

// Bullet is a shot fired by a player. It lives in its owner's collection.
type Bullet struct {
	X, Y      float64 // X is the horizontal centre, Y the top edge
	VX, VY    float64 // Velocity per tick
	destroyed bool
}

// NewBullet creates a bullet at (x, y) moving by (vx, vy) each tick.
func NewBullet(x, y, vx, vy float64) *Bullet {
	return &Bullet{X: x, Y: y, VX: vx, VY: vy}
}

// Update moves the bullet and marks it once it leaves the top of the arena.
func (b *Bullet) Update(_ UpdateContext) {
	b.X += b.VX
	b.Y += b.VY
	if b.Y < 0 {
		b.destroyed = true
	}
}

// Bounds returns the bullet's hitbox.
func (b *Bullet) Bounds() physics.Rect {
	return physics.Rect{
		X: b.X - config.BulletWidth/2,
		Y: b.Y,
		W: config.BulletWidth,
		H: config.BulletHeight,
	}
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}
