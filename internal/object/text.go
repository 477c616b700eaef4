package object

import "github.com/tomz197/neonduel/internal/loop/config"

// FloatingText is a label that drifts upward and fades.
type FloatingText struct {
	X, Y  float64
	Text  string
	Color Color
	Life  float64
}

// NewFloatingText creates a label at (x, y) with full life.
func NewFloatingText(x, y float64, text string, color Color) *FloatingText {
	return &FloatingText{X: x, Y: y, Text: text, Color: color, Life: 1.0}
}

// Update lifts the text and decays its life.
func (t *FloatingText) Update(_ UpdateContext) {
	t.Y -= config.TextRise
	t.Life -= config.TextDecay
}

// MarkDestroyed ends the text's life.
func (t *FloatingText) MarkDestroyed() {
	t.Life = 0
}

// IsDestroyed returns true once the text has faded out.
func (t *FloatingText) IsDestroyed() bool {
	return t.Life <= 0
}
