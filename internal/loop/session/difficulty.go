package session

import (
	"time"

	"github.com/tomz197/neonduel/internal/loop/config"
	"github.com/tomz197/neonduel/internal/object"
)

// advanceLevel escalates difficulty once the level timer passes the level
// duration. Thresholds only ever shrink, down to the floor.
func (m *Match) advanceLevel(dt time.Duration) {
	m.levelTimer += dt
	if m.levelTimer <= config.LevelDuration {
		return
	}
	m.level++
	m.levelTimer = 0
	for i := range m.threshold {
		m.threshold[i] = max(config.MinThreshold, m.threshold[i]-config.ThresholdStep)
	}
	m.logger.Debug("level up", "match", m.id, "level", m.level, "threshold", m.threshold[0])
}

// advanceSpawns ticks both lane timers. A lane whose timer passes its
// threshold gets one normal enemy if its player is alive. The timer resets
// either way.
func (m *Match) advanceSpawns() {
	for i := range m.spawnTimer {
		m.spawnTimer[i]++
		if m.spawnTimer[i] <= m.threshold[i] {
			continue
		}
		lane := object.Lane(i)
		if !m.Players[lane].Dead {
			m.Enemies = append(m.Enemies, object.NewEnemy(lane, false, m.level, m.rng))
		}
		m.spawnTimer[i] = float64(m.rng.Intn(config.SpawnTimerJitter))
	}
}

// Threshold returns the current spawn threshold of a lane, in ticks.
func (m *Match) Threshold(lane object.Lane) float64 {
	return m.threshold[lane]
}
