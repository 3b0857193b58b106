package systems

import (
	"testing"

	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/engine/mocks"
	"go.uber.org/mock/gomock"
)

func TestUpdateAudioDrainsQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundSink(ctrl)

	ecs := newTestECS(t)
	ecs.Sound = sound

	gomock.InOrder(
		sound.EXPECT().StartLoop(cfg.SoundMusic),
		sound.EXPECT().Play(cfg.SoundJump),
		sound.EXPECT().Play(cfg.SoundThrow),
	)

	StartLoop(ecs, cfg.SoundMusic)
	StartLoop(ecs, cfg.SoundMusic)
	PlaySFX(ecs, cfg.SoundJump)
	PlaySFX(ecs, cfg.SoundThrow)
	UpdateAudio(ecs)

	// Queue is empty now
	UpdateAudio(ecs)
}

func TestStopLoopOnlyWhenLooping(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundSink(ctrl)

	ecs := newTestECS(t)
	ecs.Sound = sound

	StopLoop(ecs, cfg.SoundWalking)
	UpdateAudio(ecs)

	gomock.InOrder(
		sound.EXPECT().StartLoop(cfg.SoundWalking),
		sound.EXPECT().StopLoop(cfg.SoundWalking),
	)
	StartLoop(ecs, cfg.SoundWalking)
	StopLoop(ecs, cfg.SoundWalking)
	UpdateAudio(ecs)
}

func TestWalkingLoopFollowsMovement(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundSink(ctrl)

	ecs := newTestECS(t)
	ecs.Sound = sound
	standingCharacter(ecs, 100)

	right := true
	ecs.Input = engine.InputFunc(func() engine.InputState {
		return engine.InputState{Right: right}
	})

	sound.EXPECT().StartLoop(cfg.SoundWalking)
	UpdateInput(ecs)
	UpdateCharacter(ecs)
	UpdateAudio(ecs)

	sound.EXPECT().StopLoop(cfg.SoundWalking)
	right = false
	UpdateInput(ecs)
	UpdateCharacter(ecs)
	UpdateAudio(ecs)
}
