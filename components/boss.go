package components

import (
	"github.com/automoto/pollo/config"
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type BossData struct {
	Phase     config.BossPhase
	Attacking bool
	Settling  bool // falling back to the resting Y after a jump

	// Attack sequence driven by the TimerBossStep deadline
	Stage  config.BossStage
	Step   int
	Start  math.Vec2
	Target math.Vec2
	Jump   *gamemath.JumpTween

	PatrolDir float64 // -1 left, +1 right
}

var Boss = donburi.NewComponentType[BossData]()
