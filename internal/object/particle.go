package object

import (
	"sync"

	"github.com/tomz197/neonduel/internal/loop/config"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity per tick
	Life   float64 // 1.0 when spawned, removed at 0
	Color  Color
}

// NewParticle creates a single particle from the pool with a random velocity.
func NewParticle(x, y float64, color Color, rng Rand) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = (rng.Float64() - 0.5) * config.ParticleSpread
	p.VY = (rng.Float64() - 0.5) * config.ParticleSpread
	p.Life = 1.0
	p.Color = color
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates count particles bursting from (x, y).
func SpawnExplosion(x, y float64, color Color, count int, rng Rand, spawner Spawner) {
	if spawner == nil {
		return
	}
	for i := 0; i < count; i++ {
		spawner.Spawn(NewParticle(x, y, color, rng))
	}
}

// Update moves the particle and decays its life.
func (p *Particle) Update(_ UpdateContext) {
	p.X += p.VX
	p.Y += p.VY
	p.Life -= config.ParticleDecay
}

// MarkDestroyed ends the particle's life.
func (p *Particle) MarkDestroyed() {
	p.Life = 0
}

// IsDestroyed returns true once the particle has faded out.
func (p *Particle) IsDestroyed() bool {
	return p.Life <= 0
}
