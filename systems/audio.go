package systems

import (
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/systems/factory"
)

// UpdateAudio hands queued sounds and loop changes to the sound sink
func UpdateAudio(ecs *engine.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)

	for _, cmd := range audioData.PendingLoops {
		if cmd.Start {
			ecs.Sound.StartLoop(cmd.Sound)
		} else {
			ecs.Sound.StopLoop(cmd.Sound)
		}
	}
	audioData.PendingLoops = audioData.PendingLoops[:0]

	for _, soundID := range audioData.PendingSFX {
		ecs.Sound.Play(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect to be played
func PlaySFX(ecs *engine.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(ecs)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// StartLoop queues a looping sound. Starting a loop that is already playing
// is a no-op.
func StartLoop(ecs *engine.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(ecs)
	if audioData.Looping[sound] {
		return
	}
	audioData.Looping[sound] = true
	audioData.PendingLoops = append(audioData.PendingLoops, components.LoopCommand{Sound: sound, Start: true})
}

func StopLoop(ecs *engine.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(ecs)
	if !audioData.Looping[sound] {
		return
	}
	delete(audioData.Looping, sound)
	audioData.PendingLoops = append(audioData.PendingLoops, components.LoopCommand{Sound: sound})
}

// GetOrCreateAudio returns the singleton Audio component, creating it if needed
func GetOrCreateAudio(ecs *engine.ECS) *components.AudioData {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		entry = factory.CreateAudio(ecs)
	}
	audioData := components.Audio.Get(entry)
	if audioData.Looping == nil {
		audioData.Looping = make(map[cfg.SoundID]bool)
	}
	return audioData
}
