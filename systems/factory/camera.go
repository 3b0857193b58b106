package factory

import (
	"github.com/automoto/pollo/archetypes"
	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/yohamta/donburi"
)

func CreateCamera(ecs *engine.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}

func CreateInput(ecs *engine.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

func CreateAudio(ecs *engine.ECS) *donburi.Entry {
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(audio, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
		Looping:    make(map[cfg.SoundID]bool),
	})
	return audio
}

func CreateGameState(ecs *engine.ECS) *donburi.Entry {
	state := archetypes.GameState.Spawn(ecs)
	components.GameState.SetValue(state, components.GameStateData{State: cfg.GamePlaying})
	return state
}
