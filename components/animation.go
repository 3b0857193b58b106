package components

import (
	"github.com/automoto/pollo/assets/animations"
	"github.com/automoto/pollo/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     config.StateID
	Animations       map[config.StateID]*animations.Animation
	Halted           bool
}

// SetAnimation switches to state's animation and restarts it. Returns false
// if the actor has no animation for that state.
func (a *AnimationData) SetAnimation(state config.StateID) bool {
	if a.CurrentState == state && a.CurrentAnimation != nil {
		return true
	}
	anim, ok := a.Animations[state]
	if !ok || anim == nil {
		return false
	}
	a.CurrentAnimation = anim
	a.CurrentState = state
	anim.Restart()
	return true
}

var Animation = donburi.NewComponentType[AnimationData]()
