package components

import "github.com/yohamta/donburi"

type SpriteData struct {
	Image    string
	Mirrored bool // facing left
}

var Sprite = donburi.NewComponentType[SpriteData]()
