package gamemath

import "math"

// Insets are per-side margins that shrink a sprite rectangle to its hitbox.
type Insets struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Box is a sprite rectangle with its hitbox insets.
type Box struct {
	X, Y, W, H float64
	In         Insets
}

func (b Box) Left() float64   { return b.X + b.In.Left }
func (b Box) Right() float64  { return b.X + b.W - b.In.Right }
func (b Box) Top() float64    { return b.Y + b.In.Top }
func (b Box) Bottom() float64 { return b.Y + b.H - b.In.Bottom }

// Width and Height of the inset-adjusted hitbox.
func (b Box) Width() float64  { return b.Right() - b.Left() }
func (b Box) Height() float64 { return b.Bottom() - b.Top() }

// Overlaps is the inset-adjusted rectangle test every collision check builds on.
func Overlaps(a, b Box) bool {
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() < b.Bottom() &&
		a.Bottom() > b.Top()
}

// HorizontalOverlap returns the width shared by the two hitbox spans.
// Negative when they are apart.
func HorizontalOverlap(a, b Box) float64 {
	return math.Min(a.Right(), b.Right()) - math.Max(a.Left(), b.Left())
}

// VerticalOverlap returns the height shared by the two hitbox spans.
func VerticalOverlap(a, b Box) float64 {
	return math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Top(), b.Top())
}

// LooseOverlap grows a by tolerance on every side and requires the shared
// width to be at least minFraction of the narrower hitbox.
func LooseOverlap(a, b Box, tolerance, minFraction float64) bool {
	grown := a
	grown.X -= tolerance
	grown.Y -= tolerance
	grown.W += 2 * tolerance
	grown.H += 2 * tolerance
	if !Overlaps(grown, b) {
		return false
	}
	return HorizontalOverlap(grown, b) >= minFraction*math.Min(a.Width(), b.Width())
}
