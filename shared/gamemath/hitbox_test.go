package gamemath

import (
	"testing"

	"pgregory.net/rapid"
)

func TestOverlapsUsesInsets(t *testing.T) {
	char := Box{X: 100, Y: 180, W: 100, H: 250, In: Insets{Top: 130, Left: 35, Right: 35}}

	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{"inside sprite but outside left inset", Box{X: 70, Y: 360, W: 60, H: 60}, false},
		{"touching hitbox edge", Box{X: 165, Y: 360, W: 60, H: 60}, false},
		{"inside hitbox", Box{X: 150, Y: 360, W: 60, H: 60}, true},
		{"above top inset", Box{X: 150, Y: 200, W: 60, H: 60}, false},
		{"below feet", Box{X: 150, Y: 430, W: 60, H: 60}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(char, tt.other); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.other, char); got != tt.want {
				t.Fatalf("Overlaps not symmetric")
			}
		})
	}
}

func TestLooseOverlap(t *testing.T) {
	boss := Box{X: 0, Y: 0, W: 250, H: 400}
	near := Box{X: 220, Y: 100, W: 100, H: 250, In: Insets{Top: 130, Left: 35, Right: 35}}

	if Overlaps(boss, near) {
		t.Fatalf("strict overlap should miss")
	}
	if LooseOverlap(boss, near, 10, 0.5) {
		t.Fatalf("min overlap not enforced")
	}
	touching := near
	touching.X = 200
	if !LooseOverlap(boss, touching, 10, 0.1) {
		t.Fatalf("expected loose overlap")
	}
}

func genBox(t *rapid.T, label string) Box {
	w := rapid.Float64Range(1, 300).Draw(t, label+"w")
	h := rapid.Float64Range(1, 300).Draw(t, label+"h")
	return Box{
		X: rapid.Float64Range(-500, 500).Draw(t, label+"x"),
		Y: rapid.Float64Range(-500, 500).Draw(t, label+"y"),
		W: w,
		H: h,
		In: Insets{
			Top:    rapid.Float64Range(0, h/3).Draw(t, label+"top"),
			Bottom: rapid.Float64Range(0, h/3).Draw(t, label+"bottom"),
			Left:   rapid.Float64Range(0, w/3).Draw(t, label+"left"),
			Right:  rapid.Float64Range(0, w/3).Draw(t, label+"right"),
		},
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := genBox(t, "a"), genBox(t, "b")
		if Overlaps(a, b) != Overlaps(b, a) {
			t.Fatalf("asymmetric overlap for %+v %+v", a, b)
		}
		if Overlaps(a, b) && (HorizontalOverlap(a, b) <= 0 || VerticalOverlap(a, b) <= 0) {
			t.Fatalf("overlapping boxes with empty span")
		}
	})
}
