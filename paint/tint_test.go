package paint

import (
	"math"
	"testing"
)

func TestBrightness(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want float64
	}{
		{"white", RGB(1, 1, 1), 1},
		{"black", RGB(0, 0, 0), 0},
		{"red", RGB(1, 0, 0), math.Sqrt(0.299)},
		{"green", RGB(0, 1, 0), math.Sqrt(0.587)},
		{"blue", RGB(0, 0, 1), math.Sqrt(0.114)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Brightness(tt.c); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Brightness(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestTint(t *testing.T) {
	base := Color{R: 0.2, G: 0.3, B: 0.4, A: 0.8}
	content := Color{R: 0.9, G: 0.1, B: 0.2, A: 1}

	t.Run("weight 0 returns base", func(t *testing.T) {
		if got := Tint(base, content, 0); got != base {
			t.Errorf("got %v, want %v", got, base)
		}
	})

	t.Run("weight 1 returns content", func(t *testing.T) {
		if got := Tint(base, content, 1); got != content {
			t.Errorf("got %v, want %v", got, content)
		}
	})

	t.Run("same color is a fixed point", func(t *testing.T) {
		for _, w := range []float64{0.1, 0.25, 0.5, 0.9} {
			if got := Tint(base, base, w); got != base {
				t.Errorf("weight %v: got %v, want %v", w, got, base)
			}
		}
	})

	t.Run("short circuits", func(t *testing.T) {
		transparent := Color{R: 0.5, G: 0.2, B: 0.1, A: 0}
		if got := Tint(transparent, RGB(0, 0, 0), 0.5); got != transparent {
			t.Errorf("transparent base: got %v, want %v", got, transparent)
		}
		black := Color{A: 0.7}
		if got := Tint(black, content, 0.5); got != black {
			t.Errorf("black base: got %v, want %v", got, black)
		}
		gray := RGB(0.4, 0.4, 0.4)
		if got := Tint(base, gray, 0.5); got != base {
			t.Errorf("gray content: got %v, want %v", got, base)
		}
	})

	t.Run("short circuits win over weight 1", func(t *testing.T) {
		transparent := Color{R: 0.5, G: 0.2, B: 0.1, A: 0}
		if got := Tint(transparent, content, 1); got != transparent {
			t.Errorf("transparent base: got %v, want %v", got, transparent)
		}
		black := Color{A: 0.7}
		if got := Tint(black, content, 1); got != black {
			t.Errorf("black base: got %v, want %v", got, black)
		}
		if got := Tint(base, RGB(0.4, 0.4, 0.4), 1); got != base {
			t.Errorf("gray content: got %v, want %v", got, base)
		}
	})

	t.Run("keeps base alpha and stays in range", func(t *testing.T) {
		bright := Color{R: 1, G: 0.9, B: 0.8, A: 0.6}
		dark := Color{R: 0, G: 0, B: 0.2, A: 1}
		for _, tc := range [][2]Color{{base, content}, {bright, dark}, {dark, bright}} {
			got := Tint(tc[0], tc[1], 0.5)
			if got.A != tc[0].A {
				t.Errorf("Tint(%v, %v).A = %v, want %v", tc[0], tc[1], got.A, tc[0].A)
			}
			for _, ch := range []float64{got.R, got.G, got.B} {
				if ch < 0 || ch > 1 || math.IsNaN(ch) {
					t.Errorf("Tint(%v, %v) = %v: channel out of range", tc[0], tc[1], got)
				}
			}
		}
	})

	t.Run("moves toward content", func(t *testing.T) {
		got := Tint(base, content, 0.5)
		if got.R <= base.R {
			t.Errorf("red channel %v did not move toward content", got.R)
		}
	})
}

func TestMatchBrightnessOverflow(t *testing.T) {
	// A bright base over a dark content scales the content past 1, which
	// must be folded back into range.
	got := matchBrightness(Color{R: 1, G: 1, B: 1, A: 0.5}, Color{R: 0.1, G: 0.05, B: 0.02, A: 1})
	if got.A != 1 {
		t.Errorf("alpha = %v, want 1", got.A)
	}
	for _, ch := range []float64{got.R, got.G, got.B} {
		if ch > 1+1e-9 {
			t.Errorf("channel %v exceeds 1", ch)
		}
	}
}
