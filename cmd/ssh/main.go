package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/neonduel/internal/config"
	"github.com/tomz197/neonduel/internal/draw"
	"github.com/tomz197/neonduel/internal/loop"
	loopconfig "github.com/tomz197/neonduel/internal/loop/config"
	"github.com/tomz197/neonduel/internal/save"
)

// shutdownTimeout bounds how long running duels get to stop on shutdown.
const shutdownTimeout = 5 * time.Second

func main() {
	settings, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}
	logger := settings.Log.NewLogger(os.Stderr, "ssh")

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config",
		"host", settings.SSH.Host,
		"port", settings.SSH.Port,
		"hostKeyPath", settings.SSH.HostKeyPath,
		"workingDir", workingDir,
	)

	arcadeCtx, stopArcade := context.WithCancel(context.Background())
	defer stopArcade()
	arcade := &arcade{
		ctx:    arcadeCtx,
		logger: logger,
		saver:  save.Open(settings.Save.Path, settings.Save.URL),
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSH.Host, settings.SSH.Port)),
		wish.WithMiddleware(
			arcade.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if settings.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", net.JoinHostPort(settings.SSH.Host, settings.SSH.Port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server", "sessions", arcade.active())

	// Stop running duels and let their loops restore the terminals.
	stopArcade()
	arcade.wait(shutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// arcade runs one independent duel per SSH session.
type arcade struct {
	ctx    context.Context // Cancelled on shutdown
	logger *log.Logger
	saver  save.Saver

	mu       sync.Mutex
	sessions int
	wg       sync.WaitGroup
}

// middleware handles SSH sessions and runs a duel on each.
func (a *arcade) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := a.logger.With("user", sess.User())
		logger.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		a.track(1)
		defer a.track(-1)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		err := loop.Run(bufio.NewReader(sess), sess, loop.Options{
			Context:      a.ctx,
			TermSizeFunc: sizeTracker.getSize,
			Logger:       logger,
			Saver:        a.saver,
			IdleTimeout:  loopconfig.InactivityDisconnect,
		})
		if err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

func (a *arcade) track(delta int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions += delta
	a.wg.Add(delta)
}

func (a *arcade) active() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessions
}

// wait blocks until every session has ended or the timeout passes.
func (a *arcade) wait(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		a.logger.Warn("sessions still running at shutdown", "sessions", a.active())
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
