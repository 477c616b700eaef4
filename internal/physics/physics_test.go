package physics

import "testing"

func TestOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", Rect{X: 0, Y: 0, W: 10, H: 10}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"above", Rect{X: 0, Y: -6, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(base, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", base, tt.b, got, tt.want)
			}
			if got := Overlaps(tt.b, base); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v", tt.b)
			}
		})
	}
}

func TestCircleBounds(t *testing.T) {
	r := CircleBounds(100, 50, 15)
	want := Rect{X: 85, Y: 35, W: 30, H: 30}
	if r != want {
		t.Fatalf("CircleBounds = %v, want %v", r, want)
	}
	cx, cy := r.Center()
	if cx != 100 || cy != 50 {
		t.Errorf("Center = (%v, %v), want (100, 50)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp below = %v, want 0", got)
	}
	if got := Clamp(13, 0, 10); got != 10 {
		t.Errorf("Clamp above = %v, want 10", got)
	}
	if got := Clamp(4, 0, 10); got != 4 {
		t.Errorf("Clamp inside = %v, want 4", got)
	}
}
