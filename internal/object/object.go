// Package object defines the simulation entities of a duel: players, their
// bullets, enemies, power-ups and transient effects.
//
// Entities never remove themselves from a collection. They mark themselves
// destroyed and the owning session compacts its collections once per tick.
// Nothing here draws; rendering dispatches over the concrete types elsewhere.
package object

import (
	"time"

	"github.com/tomz197/neonduel/internal/input"
	"github.com/tomz197/neonduel/internal/loop/config"
)

// Rand is the subset of *rand.Rand the entities draw from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Spawner allows effects to be spawned during a step.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta time.Duration
	Keys  input.Keys
}

// Object is an updatable simulation entity.
type Object interface {
	// Update advances the object by one tick.
	Update(ctx UpdateContext)
	Destructible
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the tick.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// Compact drops destroyed items in place and returns the shortened slice.
// Pooled items are released. Order of the survivors is preserved.
func Compact[T Destructible](items []T) []T {
	kept := items[:0]
	for _, item := range items {
		if !item.IsDestroyed() {
			kept = append(kept, item)
			continue
		}
		if r, ok := any(item).(Releasable); ok {
			r.Release()
		}
	}
	clear(items[len(kept):])
	return kept
}

// Lane is one player's half of the arena.
type Lane int

const (
	LaneLeft Lane = iota
	LaneRight
)

// Opponent returns the other lane.
func (l Lane) Opponent() Lane {
	if l == LaneLeft {
		return LaneRight
	}
	return LaneLeft
}

// MinX returns the left edge of the lane.
func (l Lane) MinX() float64 {
	if l == LaneRight {
		return config.LaneWidth
	}
	return 0
}

// MaxX returns the right edge of the lane.
func (l Lane) MaxX() float64 {
	return l.MinX() + config.LaneWidth
}

// FlashX is where the attack flash is shown for this lane.
func (l Lane) FlashX() float64 {
	if l == LaneRight {
		return config.ArenaWidth * 0.75
	}
	return config.ArenaWidth * 0.25
}

func (l Lane) String() string {
	if l == LaneRight {
		return "P2"
	}
	return "P1"
}

// Color is a logical palette entry; the renderer decides how it looks.
type Color uint8

const (
	ColorNone Color = iota
	ColorGreen
	ColorRed
	ColorCyan
	ColorYellow
	ColorPink
	ColorWhite
	ColorPaleGreen
	ColorPaleRed
	ColorCrash
)
