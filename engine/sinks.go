package engine

import "github.com/automoto/pollo/config"

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=./mocks/sinks_mock.go -package=mocks . RenderSink,SoundSink

// RenderSink receives draw calls. Translate shifts every following draw
// until it is translated back.
type RenderSink interface {
	Translate(dx, dy float64)
	DrawSprite(img string, x, y, w, h float64, mirrored bool)
	DrawText(s string, x, y float64)
}

// SoundSink plays sounds. Calls are fire-and-forget and may be ignored.
type SoundSink interface {
	Play(id config.SoundID)
	StartLoop(id config.SoundID)
	StopLoop(id config.SoundID)
}

// InputState is the instantaneous state of the game controls.
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
	Throw bool
}

// InputSource is sampled once per frame.
type InputSource interface {
	Poll() InputState
}

// ImageCache reports which images are loaded.
type ImageCache interface {
	Has(path string) bool
}

type nopSound struct{}

func (nopSound) Play(config.SoundID)      {}
func (nopSound) StartLoop(config.SoundID) {}
func (nopSound) StopLoop(config.SoundID)  {}

// NopSound discards every sound.
var NopSound SoundSink = nopSound{}

type noInput struct{}

func (noInput) Poll() InputState { return InputState{} }

// InputFunc adapts a function to an InputSource.
type InputFunc func() InputState

func (f InputFunc) Poll() InputState { return f() }

// NoInput never presses anything.
var NoInput InputSource = noInput{}

// ImageSet is an ImageCache backed by a set of paths.
type ImageSet map[string]struct{}

func NewImageSet(paths ...string) ImageSet {
	s := make(ImageSet, len(paths))
	for _, p := range paths {
		s[p] = struct{}{}
	}
	return s
}

func (s ImageSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}
