package object

import (
	"time"

	"github.com/tomz197/neonduel/internal/input"
	"github.com/tomz197/neonduel/internal/loop/config"
	"github.com/tomz197/neonduel/internal/physics"
)

// Hit is the outcome of a player absorbing a hit.
type Hit int

const (
	HitIgnored Hit = iota // Player was already dead
	HitBlocked            // Shield consumed, no life lost
	HitCrashed            // Life lost, player respawns
	HitKilled             // Last life lost
)

// Player is one ship, confined to the lower half of its lane.
type Player struct {
	Lane     Lane
	Controls input.Controls
	X, Y     float64 // Top-left corner
	Size     float64

	Lives int
	Score int
	Meter int // Kills since the last garbage was sent
	Dead  bool

	Shield      bool
	ShieldGrace time.Duration // Remaining respawn window; the shield drops when it runs out
	TripleShot  time.Duration // Remaining triple-shot time

	Bullets   []*Bullet
	fired     bool
	sinceShot time.Duration // Time since the last shot
}

// NewPlayer creates a player at its lane's spawn point.
// Left lane plays WASD + Space, right lane arrows + Enter.
func NewPlayer(lane Lane) *Player {
	controls := input.SchemeWASD
	if lane == LaneRight {
		controls = input.SchemeArrows
	}
	p := &Player{
		Lane:     lane,
		Controls: controls,
		Size:     config.PlayerSize,
		Lives:    config.InitialLives,
	}
	p.X, p.Y = p.SpawnPoint()
	return p
}

// SpawnPoint returns the fixed respawn position for the player's lane.
func (p *Player) SpawnPoint() (float64, float64) {
	x := p.Lane.MinX() + config.ArenaWidth/4 - config.PlayerSize/2
	y := config.ArenaHeight - config.PlayerSpawnOffsetY
	return x, y
}

// Update handles timers, movement, firing and the player's bullets.
func (p *Player) Update(ctx UpdateContext) {
	if p.Dead {
		return
	}

	dt := ctx.Delta
	if p.TripleShot > 0 {
		p.TripleShot = max(p.TripleShot-dt, 0)
	}
	if p.ShieldGrace > 0 {
		p.ShieldGrace -= dt
		if p.ShieldGrace <= 0 {
			p.ShieldGrace = 0
			p.Shield = false
		}
	}
	p.sinceShot += dt

	keys := ctx.Keys
	if keys.Pressed(p.Controls.Left) {
		p.X -= config.PlayerSpeed
	}
	if keys.Pressed(p.Controls.Right) {
		p.X += config.PlayerSpeed
	}
	if keys.Pressed(p.Controls.Up) {
		p.Y -= config.PlayerSpeed
	}
	if keys.Pressed(p.Controls.Down) {
		p.Y += config.PlayerSpeed
	}
	p.X = physics.Clamp(p.X, p.Lane.MinX(), p.Lane.MaxX()-p.Size)
	p.Y = physics.Clamp(p.Y, config.ArenaHeight/2, config.ArenaHeight-p.Size)

	if keys.Pressed(p.Controls.Fire) {
		p.Shoot()
	}

	for _, b := range p.Bullets {
		b.Update(ctx)
	}
}

// Shoot fires once strictly more than the cooldown has elapsed since the
// previous shot. Returns true if it fired.
func (p *Player) Shoot() bool {
	if p.fired && p.sinceShot <= config.ShotCooldown {
		return false
	}
	p.fired = true
	p.sinceShot = 0

	p.Bullets = append(p.Bullets, NewBullet(p.X+p.Size/2, p.Y, 0, -config.BulletSpeed))
	if p.TripleShot > 0 {
		sideY := p.Y + config.SideBulletOffset
		p.Bullets = append(p.Bullets,
			NewBullet(p.X, sideY, -config.SideBulletDrift, -config.SideBulletSpeed),
			NewBullet(p.X+p.Size, sideY, config.SideBulletDrift, -config.SideBulletSpeed),
		)
	}
	return true
}

// AddScore adds points and advances the attack meter. Returns true when the
// meter filled, in which case it is already reset to 0.
func (p *Player) AddScore(points int) bool {
	p.Score += points
	p.Meter++
	if p.Meter >= config.AttackMeterMax {
		p.Meter = 0
		return true
	}
	return false
}

// AbsorbHit applies one hit to the player. A shield blocks exactly one hit.
func (p *Player) AbsorbHit() Hit {
	if p.Dead {
		return HitIgnored
	}
	if p.Shield {
		p.Shield = false
		return HitBlocked
	}

	if p.Lives > 0 {
		p.Lives--
	}
	if p.Lives == 0 {
		p.Dead = true
		p.Bullets = nil
		return HitKilled
	}
	return HitCrashed
}

// Respawn moves the player back to its spawn point with a temporary shield.
func (p *Player) Respawn() {
	p.X, p.Y = p.SpawnPoint()
	p.Shield = true
	p.ShieldGrace = config.ShieldGrace
}

// ApplyPowerUp applies a picked-up power-up.
// A shield picked up while a respawn window runs still drops when it ends.
func (p *Player) ApplyPowerUp(kind PowerKind) {
	switch kind {
	case PowerTriple:
		p.TripleShot = config.TripleShotDuration
	case PowerShield:
		p.Shield = true
	case PowerHeal:
		p.Lives = min(p.Lives+1, config.MaxLives)
	}
}

// CompactBullets drops destroyed bullets.
func (p *Player) CompactBullets() {
	p.Bullets = Compact(p.Bullets)
}

// Bounds returns the player's hitbox.
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

// Color returns the player's palette entry.
func (p *Player) Color() Color {
	if p.Lane == LaneRight {
		return ColorRed
	}
	return ColorGreen
}

// MarkDestroyed is a no-op; players stay in memory to render the final state.
func (p *Player) MarkDestroyed() {}

// IsDestroyed always returns false.
func (p *Player) IsDestroyed() bool {
	return false
}
