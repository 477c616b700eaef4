package session

import (
	"math"

	"github.com/tomz197/neonduel/internal/loop/config"
	"github.com/tomz197/neonduel/internal/object"
	"github.com/tomz197/neonduel/internal/physics"
)

// resolveCollisions runs once per step after every entity has moved.
// Enemies resolve in collection order against the player owning their lane.
// Removal is by flag only; collections are compacted afterwards.
func (m *Match) resolveCollisions() {
	for _, e := range m.Enemies {
		if e.IsDestroyed() {
			continue
		}
		m.resolveEnemy(e, m.Players[e.Lane])
	}
	for _, pu := range m.PowerUps {
		if pu.IsDestroyed() {
			continue
		}
		m.resolvePowerUp(pu)
	}
}

func (m *Match) resolveEnemy(e *object.Enemy, p *object.Player) {
	if p.Dead {
		return
	}

	if physics.Overlaps(e.Bounds(), p.Bounds()) {
		e.MarkDestroyed()
		m.damagePlayer(p)
		return
	}

	bounds := e.Bounds()
	for _, b := range p.Bullets {
		if b.IsDestroyed() || !physics.Overlaps(b.Bounds(), bounds) {
			continue
		}
		b.MarkDestroyed()
		cx, cy := bounds.Center()
		if !e.Hit() {
			object.SpawnExplosion(cx, cy, object.ColorWhite, config.HitParticles, m.rng, m)
			return
		}
		object.SpawnExplosion(cx, cy, e.Color(), config.KillParticles, m.rng, m)
		m.score(p, e.Points())
		m.rollPowerUp(cx, e.Y)
		return
	}
}

// score awards points and sends garbage when the attack meter fills.
func (m *Match) score(p *object.Player, points int) {
	if !p.AddScore(points) {
		return
	}
	target := p.Lane.Opponent()
	m.Spawn(object.NewEnemy(target, true, m.level, m.rng))
	object.SpawnExplosion(p.Lane.FlashX(), config.FlashY, p.Color(), config.FlashParticles, m.rng, m)
	m.logger.Debug("garbage sent", "match", m.id, "from", p.Lane, "to", target)
}

func (m *Match) rollPowerUp(x, y float64) {
	if m.rng.Float64() >= config.PowerUpDropChance {
		return
	}
	m.Spawn(object.NewPowerUp(x, y, m.rng))
}

// damagePlayer applies one hit and its effects. A crash respawns the player
// after clearing nearby enemies in the lane; the last life triggers the
// game-over check.
func (m *Match) damagePlayer(p *object.Player) {
	cx := p.X + config.PlayerCenterShift
	cy := p.Y + config.PlayerCenterShift

	switch p.AbsorbHit() {
	case object.HitIgnored:
	case object.HitBlocked:
		object.SpawnExplosion(cx, cy, object.ColorYellow, config.BlockParticles, m.rng, m)
		m.Spawn(object.NewFloatingText(p.X, p.Y-config.FloatingTextLift, "BLOCKED", object.ColorYellow))
	case object.HitCrashed:
		m.crash(p, cx, cy)
		m.clearAround(p)
		p.Respawn()
	case object.HitKilled:
		m.crash(p, cx, cy)
		m.logger.Debug("player eliminated", "match", m.id, "player", p.Lane, "score", p.Score)
		m.checkGameOver()
	}
}

func (m *Match) crash(p *object.Player, cx, cy float64) {
	m.Spawn(object.NewFloatingText(cx, p.Y-config.FloatingTextLift, "CRASH!", object.ColorCrash))
	object.SpawnExplosion(cx, cy, p.Color(), config.CrashParticles, m.rng, m)
}

// clearAround removes every live enemy in the player's lane within the
// clear band of its current position, garbage included.
func (m *Match) clearAround(p *object.Player) {
	for _, e := range m.Enemies {
		if e.IsDestroyed() || e.Lane != p.Lane {
			continue
		}
		if math.Abs(e.Y-p.Y) >= config.RespawnClearBand {
			continue
		}
		e.MarkDestroyed()
		object.SpawnExplosion(e.X, e.Y, object.ColorWhite, config.ClearParticles, m.rng, m)
	}
}

// resolvePowerUp hands the power-up to the first live player touching it,
// player one first.
func (m *Match) resolvePowerUp(pu *object.PowerUp) {
	for _, p := range m.Players {
		if p.Dead || !physics.Overlaps(pu.Bounds(), p.Bounds()) {
			continue
		}
		pu.MarkDestroyed()
		p.ApplyPowerUp(pu.Kind)
		m.Spawn(object.NewFloatingText(pu.X, pu.Y, pu.Kind.String(), object.ColorWhite))
		object.SpawnExplosion(pu.X, pu.Y, pu.Kind.Color(), config.PickupParticles, m.rng, m)
		return
	}
}
