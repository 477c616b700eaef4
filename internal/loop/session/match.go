// Package session runs one duel: it owns every entity collection, steps the
// simulation with an injected frame delta and resolves all interactions.
//
// A Match is not safe for concurrent use. Hosts step it from one goroutine
// and read its collections between steps for rendering.
package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/neonduel/internal/input"
	"github.com/tomz197/neonduel/internal/loop/config"
	"github.com/tomz197/neonduel/internal/object"
)

// State is the phase of a match.
type State int

const (
	StateIdle   State = iota // Menu shown, nothing simulated
	StateActive              // Simulation stepping
	StateEnding              // Both players dead, effects playing out
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateEnding:
		return "ending"
	default:
		return "unknown"
	}
}

// Result is the outcome of a finished match.
type Result struct {
	MatchID string
	Scores  [2]int
	Draw    bool
	Winner  object.Lane // Valid when Draw is false
}

func (r Result) String() string {
	if r.Draw {
		return "DRAW"
	}
	return r.Winner.String() + " WINS ON SCORE"
}

// HighScore is the best final score of the match.
func (r Result) HighScore() int {
	return max(r.Scores[0], r.Scores[1])
}

// Options configure a Match. Zero values get sensible defaults.
type Options struct {
	Rand   object.Rand
	Logger *log.Logger
	Sink   Sink
}

// Match is a single duel and everything in it.
type Match struct {
	Players   [2]*object.Player // Indexed by object.Lane
	Enemies   []*object.Enemy
	PowerUps  []*object.PowerUp
	Particles []*object.Particle
	Texts     []*object.FloatingText

	state      State
	id         string
	level      int
	levelTimer time.Duration
	spawnTimer [2]float64 // Ticks since the last spawn, per lane
	threshold  [2]float64 // Ticks between spawns, per lane
	gameOverIn time.Duration
	result     Result
	played     bool

	pending []object.Object // Spawned during the current step

	rng    object.Rand
	logger *log.Logger
	sink   Sink

	board Scoreboard
	menu  Menu
}

// Compile-time check that Match routes spawned objects.
var _ object.Spawner = (*Match)(nil)

// New creates an idle match and pushes the title menu.
func New(opts Options) *Match {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Sink == nil {
		opts.Sink = nopSink{}
	}

	m := &Match{
		rng:    opts.Rand,
		logger: opts.Logger,
		sink:   opts.Sink,
		level:  config.InitialLevel,
	}
	m.setMenu(TitleMenu())
	return m
}

// Start begins a new match from Idle. It is a no-op while a match runs.
func (m *Match) Start() {
	if m.state != StateIdle {
		return
	}

	m.Players = [2]*object.Player{
		object.NewPlayer(object.LaneLeft),
		object.NewPlayer(object.LaneRight),
	}
	m.Enemies = nil
	m.PowerUps = nil
	for _, p := range m.Particles {
		p.Release()
	}
	m.Particles = nil
	m.Texts = nil
	m.pending = m.pending[:0]

	m.level = config.InitialLevel
	m.levelTimer = 0
	for i := range m.spawnTimer {
		m.spawnTimer[i] = m.rng.Float64() * config.InitialTimerJitter
		m.threshold[i] = config.InitialThreshold
	}
	m.gameOverIn = 0
	m.result = Result{}
	m.id = uuid.NewString()
	m.state = StateActive

	m.logger.Info("match started", "match", m.id)
	m.board = m.scoreboard()
	m.sink.Scoreboard(m.board)
}

// Step advances the match by one tick of length dt with the given key state.
func (m *Match) Step(dt time.Duration, keys input.Keys) {
	ctx := object.UpdateContext{Delta: dt, Keys: keys}

	switch m.state {
	case StateIdle:
		return
	case StateEnding:
		m.updateEffects(ctx)
		m.flushSpawned()
		m.compactEffects()
		m.gameOverIn -= dt
		if m.gameOverIn <= 0 {
			m.finish()
		}
		return
	}

	m.advanceLevel(dt)
	m.advanceSpawns()

	for _, p := range m.Players {
		p.Update(ctx)
	}
	for _, e := range m.Enemies {
		e.Update(ctx)
	}
	for _, p := range m.PowerUps {
		p.Update(ctx)
	}
	m.updateEffects(ctx)

	m.resolveCollisions()

	m.flushSpawned()
	for _, p := range m.Players {
		p.CompactBullets()
	}
	m.Enemies = object.Compact(m.Enemies)
	m.PowerUps = object.Compact(m.PowerUps)
	m.compactEffects()

	m.pushScoreboard()
}

// Spawn queues an object to be added after the current step.
// Implements object.Spawner.
func (m *Match) Spawn(obj object.Object) {
	m.pending = append(m.pending, obj)
}

// flushSpawned moves queued objects into their collections.
func (m *Match) flushSpawned() {
	for _, obj := range m.pending {
		switch o := obj.(type) {
		case *object.Particle:
			m.Particles = append(m.Particles, o)
		case *object.FloatingText:
			m.Texts = append(m.Texts, o)
		case *object.Enemy:
			m.Enemies = append(m.Enemies, o)
		case *object.PowerUp:
			m.PowerUps = append(m.PowerUps, o)
		default:
			m.logger.Warn("dropping spawned object of unknown kind", "type", fmt.Sprintf("%T", obj))
		}
	}
	clear(m.pending)
	m.pending = m.pending[:0]
}

func (m *Match) updateEffects(ctx object.UpdateContext) {
	for _, p := range m.Particles {
		p.Update(ctx)
	}
	for _, t := range m.Texts {
		t.Update(ctx)
	}
}

func (m *Match) compactEffects() {
	m.Particles = object.Compact(m.Particles)
	m.Texts = object.Compact(m.Texts)
}

// checkGameOver moves the match into Ending once both players are dead.
func (m *Match) checkGameOver() {
	if m.state != StateActive {
		return
	}
	for _, p := range m.Players {
		if !p.Dead {
			return
		}
	}
	m.state = StateEnding
	m.gameOverIn = config.GameOverMenuDelay
	m.logger.Debug("both players down", "match", m.id)
}

// finish records the result and returns the match to Idle.
func (m *Match) finish() {
	p1, p2 := m.Players[object.LaneLeft], m.Players[object.LaneRight]
	r := Result{MatchID: m.id, Scores: [2]int{p1.Score, p2.Score}}
	switch {
	case p1.Score > p2.Score:
		r.Winner = object.LaneLeft
	case p2.Score > p1.Score:
		r.Winner = object.LaneRight
	default:
		r.Draw = true
	}

	m.result = r
	m.played = true
	m.state = StateIdle
	m.logger.Info("match over", "match", m.id, "p1", r.Scores[0], "p2", r.Scores[1], "result", r.String())
	m.setMenu(GameOverMenu(r))
}

func (m *Match) scoreboard() Scoreboard {
	var b Scoreboard
	for i, p := range m.Players {
		b.Scores[i] = p.Score
		b.Lives[i] = p.Lives
		b.Meters[i] = p.Meter
	}
	b.Level = m.level
	return b
}

func (m *Match) pushScoreboard() {
	b := m.scoreboard()
	if b == m.board {
		return
	}
	m.board = b
	m.sink.Scoreboard(b)
}

func (m *Match) setMenu(menu Menu) {
	m.menu = menu
	m.sink.Menu(menu)
}

// State returns the current phase.
func (m *Match) State() State { return m.state }

// ID returns the id of the current or last match, empty before the first.
func (m *Match) ID() string { return m.id }

// Level returns the current difficulty level.
func (m *Match) Level() int { return m.level }

// Menu returns the menu last pushed to the sink.
func (m *Match) Menu() Menu { return m.menu }

// Scoreboard returns the scoreboard last pushed to the sink.
func (m *Match) Scoreboard() Scoreboard { return m.board }

// Result returns the outcome of the last finished match.
// The bool is false until a match has finished.
func (m *Match) Result() (Result, bool) { return m.result, m.played }
