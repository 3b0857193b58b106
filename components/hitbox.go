package components

import (
	"github.com/automoto/pollo/shared/gamemath"
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	Insets gamemath.Insets
}

var Hitbox = donburi.NewComponentType[HitboxData]()

// BoxOf returns the sprite rectangle and hitbox insets of an entry.
func BoxOf(e *donburi.Entry) gamemath.Box {
	obj := Object.Get(e)
	box := gamemath.Box{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	if e.HasComponent(Hitbox) {
		box.In = Hitbox.Get(e).Insets
	}
	return box
}
