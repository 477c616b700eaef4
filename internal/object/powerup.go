package object

import (
	"github.com/tomz197/neonduel/internal/loop/config"
	"github.com/tomz197/neonduel/internal/physics"
)

// PowerKind identifies a power-up effect.
type PowerKind int

const (
	PowerTriple PowerKind = iota
	PowerShield
	PowerHeal
)

func (k PowerKind) String() string {
	switch k {
	case PowerTriple:
		return "TRIPLE"
	case PowerShield:
		return "SHIELD"
	case PowerHeal:
		return "HEAL"
	default:
		return "UNKNOWN"
	}
}

// Label is the single letter drawn on the power-up.
func (k PowerKind) Label() string {
	return k.String()[:1]
}

// Color returns the palette entry for the kind.
func (k PowerKind) Color() Color {
	switch k {
	case PowerTriple:
		return ColorCyan
	case PowerShield:
		return ColorYellow
	default:
		return ColorPink
	}
}

// PowerKindFor maps a uniform draw in [0, 1) onto the 40/40/20 kind weights.
func PowerKindFor(r float64) PowerKind {
	switch {
	case r < config.TripleWeight:
		return PowerTriple
	case r < config.TripleWeight+config.ShieldWeight:
		return PowerShield
	default:
		return PowerHeal
	}
}

// PowerUp is a falling pickup. It is not bound to a lane.
type PowerUp struct {
	X, Y      float64 // Centre
	VY        float64
	Radius    float64
	Kind      PowerKind
	destroyed bool
}

// NewPowerUp creates a power-up of a randomly drawn kind centred at (x, y).
func NewPowerUp(x, y float64, rng Rand) *PowerUp {
	return &PowerUp{
		X:      x,
		Y:      y,
		VY:     config.PowerUpSpeed,
		Radius: config.PowerUpRadius,
		Kind:   PowerKindFor(rng.Float64()),
	}
}

// Update moves the power-up down and marks it once it leaves the arena.
func (p *PowerUp) Update(_ UpdateContext) {
	p.Y += p.VY
	if p.Y > config.ArenaHeight {
		p.destroyed = true
	}
}

// Bounds returns the bounding square of the power-up.
func (p *PowerUp) Bounds() physics.Rect {
	return physics.CircleBounds(p.X, p.Y, p.Radius)
}

// MarkDestroyed marks the power-up for removal.
func (p *PowerUp) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the power-up is marked for destruction.
func (p *PowerUp) IsDestroyed() bool {
	return p.destroyed
}
