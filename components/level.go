package components

import (
	"github.com/automoto/pollo/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level  *leveldata.Level
	Clouds []Cloud
}

// Cloud drifts left across the background.
type Cloud struct {
	X, Y float64
}

var Level = donburi.NewComponentType[LevelData]()
