package gamemath

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// JumpArc returns the point at progress t in [0,1] on a parabolic jump from
// start to target that peaks arcHeight above the straight line.
func JumpArc(startX, startY, targetX, targetY, arcHeight, t float64) (x, y float64) {
	x = startX + (targetX-startX)*t
	y = startY + (targetY-startY)*t - arcHeight*math.Sin(math.Pi*t)
	return x, y
}

// ArcEase is a linear ease with a sine lift, for tweening the vertical axis
// of a jump.
func ArcEase(arcHeight float32) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		p := t / d
		return b + c*p - arcHeight*float32(math.Sin(math.Pi*float64(p)))
	}
}

// JumpTween steps a jump arc in whole steps.
type JumpTween struct {
	x, y *gween.Tween
}

// NewJumpTween builds a tween pair covering the jump in steps updates of 1.
func NewJumpTween(startX, startY, targetX, targetY, arcHeight float64, steps int) *JumpTween {
	d := float32(steps)
	return &JumpTween{
		x: gween.New(float32(startX), float32(targetX), d, ease.Linear),
		y: gween.New(float32(startY), float32(targetY), d, ArcEase(float32(arcHeight))),
	}
}

// Step advances one step and returns the new position and whether the jump
// has landed.
func (j *JumpTween) Step() (x, y float64, done bool) {
	fx, _ := j.x.Update(1)
	fy, finished := j.y.Update(1)
	return float64(fx), float64(fy), finished
}
