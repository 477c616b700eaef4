package object

import (
	"github.com/tomz197/neonduel/internal/loop/config"
	"github.com/tomz197/neonduel/internal/physics"
)

// Enemy descends through one lane. Garbage enemies are the tougher circles
// a player sends into the opponent's lane.
type Enemy struct {
	Lane      Lane
	X, Y      float64 // Top-left corner
	VY        float64 // Downward speed per tick
	Size      float64 // Width and height; garbage draws as a circle of this diameter
	HP        int
	Garbage   bool
	destroyed bool
}

// SpeedMultiplier returns the enemy speed scale at the given level.
func SpeedMultiplier(level int) float64 {
	return 1 + float64(level)*config.LevelSpeedIncrease
}

// NewEnemy creates an enemy above the top of the given lane at a random x.
func NewEnemy(lane Lane, garbage bool, level int, rng Rand) *Enemy {
	e := &Enemy{
		Lane:    lane,
		X:       lane.MinX() + config.EnemySpawnMargin + rng.Float64()*config.EnemySpawnSpan,
		Y:       config.EnemySpawnY,
		Garbage: garbage,
	}

	mult := SpeedMultiplier(level)
	if garbage {
		e.Size = config.GarbageSize
		e.HP = config.GarbageHP
		e.VY = config.GarbageSpeed * mult
	} else {
		e.Size = config.EnemySize
		e.HP = config.EnemyHP
		e.VY = (config.EnemyMinSpeed + rng.Float64()*config.EnemySpeedRange) * mult
	}
	return e
}

// Update moves the enemy down. Leaving the bottom is a silent removal.
func (e *Enemy) Update(_ UpdateContext) {
	e.Y += e.VY
	if e.Y > config.ArenaHeight {
		e.destroyed = true
	}
}

// Hit consumes one hit point. Returns true if the enemy was destroyed.
func (e *Enemy) Hit() bool {
	if e.HP > 0 {
		e.HP--
	}
	if e.HP == 0 {
		e.destroyed = true
		return true
	}
	return false
}

// Points returns the score awarded for destroying this enemy.
func (e *Enemy) Points() int {
	if e.Garbage {
		return config.ScoreGarbage
	}
	return config.ScoreEnemy
}

// Color returns the enemy's palette entry.
func (e *Enemy) Color() Color {
	switch {
	case e.Garbage:
		return ColorWhite
	case e.Lane == LaneRight:
		return ColorPaleRed
	default:
		return ColorPaleGreen
	}
}

// Bounds returns the enemy's hitbox. Garbage circles use their bounding square.
func (e *Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.Size, H: e.Size}
}

// MarkDestroyed marks the enemy for removal.
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is marked for destruction.
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}
