package components

import (
	"github.com/automoto/pollo/config"
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

type StatusBarData struct {
	Kind       config.BarKind
	Percentage float64
	Tier       int
	Images     []string
	Strict     bool
	Layout     config.StatusBarLayout

	// Displayed fill eases toward Percentage
	Displayed float64
	Fill      *gween.Tween
}

// SetPercentage clamps pct to [0,100] and picks the tier image.
func (s *StatusBarData) SetPercentage(pct float64) {
	s.Percentage = gamemath.ClampPercentage(pct)
	s.Tier = gamemath.StatusTier(s.Percentage, s.Strict)
	if s.Tier >= len(s.Images) {
		s.Tier = len(s.Images) - 1
	}
	if s.Tier < 0 {
		s.Tier = 0
	}
}

// Image returns the current tier image, or "" when the bar has none.
func (s *StatusBarData) Image() string {
	if len(s.Images) == 0 {
		return ""
	}
	return s.Images[s.Tier]
}

// StartFill begins easing the displayed fill toward the current percentage
// over d units of Update time.
func (s *StatusBarData) StartFill(d float32) {
	s.Fill = gween.New(float32(s.Displayed), float32(s.Percentage), d, ease.OutQuad)
}

var StatusBar = donburi.NewComponentType[StatusBarData]()
