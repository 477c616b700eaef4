// Package loop runs a duel in a terminal: it reads keys, steps the match
// with the measured frame delta and draws the arena, HUD and menu.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/neonduel/internal/draw"
	"github.com/tomz197/neonduel/internal/input"
	"github.com/tomz197/neonduel/internal/loop/config"
	"github.com/tomz197/neonduel/internal/loop/session"
	"github.com/tomz197/neonduel/internal/object"
	"github.com/tomz197/neonduel/internal/save"
)

// Options configures Run.
type Options struct {
	Context      context.Context // Stops the game when done; defaults to context.Background
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	Saver        save.Saver    // Optional; high scores are not persisted without it
	Rand         object.Rand   // Optional; seeded from the clock by default
	IdleTimeout  time.Duration // Disconnect after this long without input on the menu; 0 disables
}

// Game is the host side of one match: terminal, input stream and UI state.
type Game struct {
	match  *session.Match
	ui     *hud
	canvas *draw.Canvas
	text   draw.TextWriter
	stream *input.Stream
	writer io.Writer
	opts   Options

	keys         input.Keys
	startHeld    bool
	lastInput    time.Time
	prevState    session.State
	highScore    int
	running      bool
	termSizeFunc draw.TermSizeFunc
}

// NewGame prepares a game reading keys from r and drawing to w.
func NewGame(r *bufio.Reader, w io.Writer, opts Options) *Game {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	termWidth, termHeight, _ := opts.TermSizeFunc()
	ui := &hud{}
	g := &Game{
		ui:           ui,
		canvas:       draw.NewScaledCanvas(termWidth, termHeight, config.ArenaWidth, config.ArenaHeight),
		stream:       input.StartStream(r),
		writer:       w,
		opts:         opts,
		running:      true,
		termSizeFunc: opts.TermSizeFunc,
	}
	g.match = session.New(session.Options{Rand: opts.Rand, Logger: opts.Logger, Sink: ui})
	g.loadHighScore()
	return g
}

// Run starts the main loop with the standard Input → Update → Draw cycle.
// It returns when the player quits, the input ends, the session idles out
// or opts.Context is done.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	return NewGame(r, w, opts).Run()
}

// Run drives the game until it stops.
func (g *Game) Run() error {
	draw.HideCursor(g.writer)
	defer draw.ShowCursor(g.writer)
	draw.ClearScreen(g.writer)

	lastTime := time.Now()
	g.lastInput = lastTime

	for g.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		g.processInput(frameStart)

		// ===== UPDATE PHASE =====
		g.updateScreen()
		g.update(dt)

		// ===== DRAW PHASE =====
		if err := g.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(g.writer)
	return nil
}

// processInput drains pending key bytes into the key table.
func (g *Game) processInput(now time.Time) {
	keys, arrived := g.stream.Read(now)
	g.keys = keys
	if arrived {
		g.lastInput = now
	}

	if keys.Pressed(input.KeyQuit) || g.stream.Closed() {
		g.running = false
		return
	}
	if err := g.opts.Context.Err(); err != nil {
		g.opts.Logger.Info("stopping session", "state", g.match.State(), "reason", err)
		g.running = false
		return
	}

	if g.opts.IdleTimeout > 0 && g.match.State() == session.StateIdle && now.Sub(g.lastInput) > g.opts.IdleTimeout {
		g.opts.Logger.Info("closing idle session", "idle", now.Sub(g.lastInput).Round(time.Second))
		g.running = false
	}
}

// updateScreen picks up terminal resizes.
func (g *Game) updateScreen() {
	termWidth, termHeight, err := g.termSizeFunc()
	if err != nil {
		return
	}
	g.canvas.Resize(termWidth, termHeight)
}

// update starts matches from the menu and steps a running one.
func (g *Game) update(dt time.Duration) {
	start := g.keys.Pressed(input.KeySpace) || g.keys.Pressed(input.KeyEnter)
	pressed := start && !g.startHeld
	g.startHeld = start

	if g.match.State() == session.StateIdle {
		if pressed {
			g.stream.Reset()
			g.match.Start()
		}
	} else {
		g.match.Step(dt, g.keys)
	}

	state := g.match.State()
	if state == session.StateIdle && g.prevState != session.StateIdle {
		g.onGameOver()
	}
	g.prevState = state
}

// onGameOver persists a new high score.
func (g *Game) onGameOver() {
	result, ok := g.match.Result()
	if !ok {
		return
	}
	score := result.HighScore()
	if score > g.highScore {
		g.highScore = score
	}
	if g.opts.Saver == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.SaveTimeout)
	defer cancel()
	changed, err := save.RecordHighScore(ctx, g.opts.Saver, score)
	if err != nil {
		g.opts.Logger.Error("failed to record high score", "match", result.MatchID, "err", err)
		return
	}
	if changed {
		g.opts.Logger.Info("new high score", "match", result.MatchID, "score", score)
	}
}

func (g *Game) loadHighScore() {
	if g.opts.Saver == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), config.SaveTimeout)
	defer cancel()
	r, err := save.Load(ctx, g.opts.Saver)
	if err != nil {
		g.opts.Logger.Warn("failed to load save record", "err", err)
		return
	}
	g.highScore = r.HighScore
}

// drawFrame clears the screen and draws the arena with its overlays.
func (g *Game) drawFrame() error {
	draw.ClearScreen(g.writer)
	g.canvas.Clear()

	drawArena(g.canvas, &g.text, g.match)

	// Render canvas to terminal
	if err := g.canvas.Render(g.writer); err != nil {
		return err
	}

	// Text goes after the canvas so it stays on top.
	if g.match.State() == session.StateIdle {
		drawMenu(&g.text, g.canvas, g.ui.menu, g.highScore)
	} else {
		drawHUD(&g.text, g.canvas, g.ui.board)
	}
	return g.text.Flush(g.writer)
}

// Match exposes the running match.
func (g *Game) Match() *session.Match {
	return g.match
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.highScore
}
