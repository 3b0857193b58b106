package systems

import (
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/yohamta/donburi"
)

// UpdateAnimations advances every animation on its own frame duration and
// copies the current frame to the sprite. A frame missing from the image
// cache is skipped and the previous image stays.
func UpdateAnimations(ecs *engine.ECS) {
	now := ecs.Now()
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		animData := components.Animation.Get(e)
		if animData.Halted || animData.CurrentAnimation == nil {
			return
		}
		anim := animData.CurrentAnimation
		if len(anim.Frames) == 0 {
			ecs.WarnOnce("empty:"+animData.CurrentState.String(), "empty animation %s", animData.CurrentState)
			return
		}
		anim.Update(now)

		if !e.HasComponent(components.Sprite) {
			return
		}
		img := anim.Image()
		if !ecs.Images.Has(img) {
			ecs.WarnOnce(img, "missing frame %s", img)
			return
		}
		components.Sprite.Get(e).Image = img
	})

	// Coin pulse, in milliseconds of game time
	dt := float32(cfg.Timing.Frame) / 1e6
	components.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		pickup := components.Pickup.Get(e)
		if pickup.Pulse == nil {
			return
		}
		if e.HasComponent(components.Animation) && components.Animation.Get(e).Halted {
			return
		}
		v, _, done := pickup.Pulse.Update(dt)
		pickup.Grow = float64(v)
		if done {
			pickup.Pulse.Reset()
		}
	})
}

// setAnimation switches e to state. An actor without that animation keeps
// its current one.
func setAnimation(ecs *engine.ECS, e *donburi.Entry, state cfg.StateID) {
	if !e.HasComponent(components.Animation) {
		return
	}
	animData := components.Animation.Get(e)
	if animData.Halted {
		return
	}
	if !animData.SetAnimation(state) {
		ecs.WarnOnce("state:"+state.String(), "no %s animation", state)
	}
}
