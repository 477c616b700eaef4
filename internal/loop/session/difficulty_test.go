package session

import (
	"math"
	"testing"
	"time"

	"github.com/tomz197/neonduel/internal/loop/config"
	"github.com/tomz197/neonduel/internal/object"
)

func TestLevelNeedsStrictlyMoreThanDuration(t *testing.T) {
	m, sink := newQuietMatch(t, nil)

	m.advanceLevel(config.LevelDuration)
	if m.Level() != config.InitialLevel {
		t.Fatalf("level = %d after exactly one level duration", m.Level())
	}
	m.Step(time.Millisecond, nil)
	if m.Level() != config.InitialLevel+1 {
		t.Fatalf("level = %d, want %d", m.Level(), config.InitialLevel+1)
	}
	if got := m.Threshold(object.LaneLeft); got != config.InitialThreshold-config.ThresholdStep {
		t.Errorf("threshold = %v, want %v", got, config.InitialThreshold-config.ThresholdStep)
	}
	if m.levelTimer != 0 {
		t.Errorf("level timer = %v, want reset", m.levelTimer)
	}
	if last := sink.boards[len(sink.boards)-1]; last.Level != m.Level() {
		t.Errorf("scoreboard level = %d, want %d", last.Level, m.Level())
	}
}

func TestThresholdsShrinkToFloor(t *testing.T) {
	m, _ := newQuietMatch(t, nil)

	prev := [2]float64{m.Threshold(object.LaneLeft), m.Threshold(object.LaneRight)}
	for i := 0; i < 40; i++ {
		m.advanceLevel(config.LevelDuration + time.Millisecond)
		for lane := range prev {
			got := m.Threshold(object.Lane(lane))
			if got > prev[lane] {
				t.Fatalf("level %d: threshold grew from %v to %v", i, prev[lane], got)
			}
			if got < config.MinThreshold {
				t.Fatalf("level %d: threshold %v below floor", i, got)
			}
			prev[lane] = got
		}
	}
	if prev[0] != config.MinThreshold || prev[1] != config.MinThreshold {
		t.Errorf("thresholds = %v, want both at the floor", prev)
	}
	if m.Level() != config.InitialLevel+40 {
		t.Errorf("level = %d", m.Level())
	}
}

func TestSpawnTimers(t *testing.T) {
	m, _ := newQuietMatch(t, fixedRand{f: 0.5, n: 7})
	m.spawnTimer = [2]float64{config.InitialThreshold, 0}

	m.advanceSpawns()

	if len(m.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(m.Enemies))
	}
	e := m.Enemies[0]
	if e.Lane != object.LaneLeft || e.Garbage {
		t.Errorf("spawned %+v, want a normal left-lane enemy", e)
	}
	wantVY := (config.EnemyMinSpeed + 0.5*config.EnemySpeedRange) * object.SpeedMultiplier(m.Level())
	if math.Abs(e.VY-wantVY) > 1e-9 {
		t.Errorf("vy = %v, want %v", e.VY, wantVY)
	}
	if m.spawnTimer != [2]float64{7, 1} {
		t.Errorf("timers = %v, want [7 1]", m.spawnTimer)
	}
}

func TestSpawnTimerAtThresholdWaits(t *testing.T) {
	m, _ := newQuietMatch(t, nil)
	m.spawnTimer = [2]float64{config.InitialThreshold - 1, -1e9}

	m.advanceSpawns()
	if len(m.Enemies) != 0 {
		t.Error("a timer equal to the threshold must not spawn")
	}
}

func TestNoSpawnsForDeadPlayer(t *testing.T) {
	m, _ := newQuietMatch(t, fixedRand{f: 0.5, n: 4})
	p2 := m.Players[object.LaneRight]
	p2.Lives = 1
	p2.AbsorbHit()
	m.spawnTimer = [2]float64{-1e9, config.InitialThreshold}

	m.advanceSpawns()

	if len(m.Enemies) != 0 {
		t.Error("no enemy should spawn in a dead player's lane")
	}
	if m.spawnTimer[object.LaneRight] != 4 {
		t.Errorf("timer = %v, want reset to 4", m.spawnTimer[object.LaneRight])
	}
}
