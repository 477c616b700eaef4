package session

// Scoreboard is the HUD state shown while a match runs.
type Scoreboard struct {
	Scores [2]int
	Lives  [2]int
	Meters [2]int
	Level  int
}

// Menu is the idle-state overlay.
type Menu struct {
	Title    string
	Subtitle string
	Button   string
}

// Sink receives UI updates. Pushes happen synchronously from Start and Step
// and only when the pushed value changed.
type Sink interface {
	Scoreboard(Scoreboard)
	Menu(Menu)
}

type nopSink struct{}

func (nopSink) Scoreboard(Scoreboard) {}
func (nopSink) Menu(Menu)             {}

// TitleMenu is the menu shown before the first match.
func TitleMenu() Menu {
	return Menu{
		Title:    "NEON DUEL",
		Subtitle: "DEFEND YOUR LANE",
		Button:   "START",
	}
}

// GameOverMenu is the menu shown after a match ends.
func GameOverMenu(r Result) Menu {
	return Menu{
		Title:    "GAME OVER",
		Subtitle: r.String(),
		Button:   "REMATCH",
	}
}
