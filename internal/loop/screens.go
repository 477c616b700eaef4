package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/neonduel/internal/draw"
	"github.com/tomz197/neonduel/internal/loop/session"
)

// hud is the UI sink: it keeps the last pushed scoreboard and menu for drawing.
type hud struct {
	board session.Scoreboard
	menu  session.Menu
}

func (h *hud) Scoreboard(b session.Scoreboard) { h.board = b }
func (h *hud) Menu(m session.Menu)             { h.menu = m }

// drawHUD draws scores, lives and meters for both players plus the level.
func drawHUD(tw *draw.TextWriter, c *draw.Canvas, b session.Scoreboard) {
	termWidth := c.TerminalWidth()

	left := fmt.Sprintf("P1  SCORE %d  LIVES %s  ATK %s", b.Scores[0], lives(b.Lives[0]), meter(b.Meters[0]))
	tw.WriteAt(2, 1, left, draw.NeonGreen)

	right := fmt.Sprintf("P2  SCORE %d  LIVES %s  ATK %s", b.Scores[1], lives(b.Lives[1]), meter(b.Meters[1]))
	tw.WriteAt(termWidth-len([]rune(right)), 1, right, draw.NeonRed)

	tw.WriteCentered(termWidth, 1, fmt.Sprintf("LEVEL %d", b.Level), draw.White)
}

func lives(n int) string {
	return strings.Repeat("♥", max(n, 0))
}

// meter renders the attack meter as filled and empty cells.
func meter(n int) string {
	const size = 8
	n = min(max(n, 0), size)
	return strings.Repeat("■", n) + strings.Repeat("□", size-n)
}

// drawMenu draws the idle overlay.
func drawMenu(tw *draw.TextWriter, c *draw.Canvas, m session.Menu, highScore int) {
	termWidth := c.TerminalWidth()
	centerY := c.TerminalHeight() / 2

	tw.WriteCentered(termWidth, centerY-4, spaced(m.Title), draw.NeonCyan)
	tw.WriteCentered(termWidth, centerY-2, m.Subtitle, draw.White)

	tw.WriteCentered(termWidth, centerY, "P1: A/D/W/S move, SPACE fire", draw.NeonGreen)
	tw.WriteCentered(termWidth, centerY+1, "P2: ARROWS move, ENTER fire", draw.NeonRed)

	tw.WriteCentered(termWidth, centerY+3, "[ "+m.Button+" ]", draw.NeonYellow)
	tw.WriteCentered(termWidth, centerY+4, "press SPACE or ENTER, Q to quit", draw.Grey)

	if highScore > 0 {
		tw.WriteCentered(termWidth, centerY+6, fmt.Sprintf("HIGH SCORE %d", highScore), draw.HotPink)
	}
}

// spaced puts a space between the letters of a title.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
