package components

import (
	cfg "github.com/automoto/pollo/config"
	"github.com/yohamta/donburi"
)

// LoopCommand starts or stops a looping sound.
type LoopCommand struct {
	Sound cfg.SoundID
	Start bool
}

// AudioData queues sounds until UpdateAudio hands them to the sink
// (singleton component).
type AudioData struct {
	PendingSFX   []cfg.SoundID
	PendingLoops []LoopCommand
	Looping      map[cfg.SoundID]bool
}

var Audio = donburi.NewComponentType[AudioData]()
