// Package game wires the systems into a running level. It has no display
// dependency: the frontend supplies sinks and an input source.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/leveldata"
	"github.com/automoto/pollo/systems"
	"github.com/automoto/pollo/systems/factory"
	"github.com/yohamta/donburi"
)

// Game is one run of a level, from start to game over or victory.
type Game struct {
	ecs   *engine.ECS
	onEnd func(outcome cfg.GameStateID)
	ended bool
}

type options struct {
	sound  engine.SoundSink
	input  engine.InputSource
	images engine.ImageCache
	seed   int64
	onEnd  func(outcome cfg.GameStateID)
}

type Option func(*options)

func WithSound(s engine.SoundSink) Option { return func(o *options) { o.sound = s } }

func WithInput(in engine.InputSource) Option { return func(o *options) { o.input = in } }

func WithImages(c engine.ImageCache) Option { return func(o *options) { o.images = c } }

func WithSeed(seed int64) Option { return func(o *options) { o.seed = seed } }

// WithOnEnd registers a callback run once when the game halts.
func WithOnEnd(fn func(outcome cfg.GameStateID)) Option { return func(o *options) { o.onEnd = fn } }

// LoadLevel loads the configured level from the embedded level files.
func LoadLevel() (*leveldata.Level, error) {
	return leveldata.Load(leveldata.Embedded(), cfg.Level.Path)
}

// New builds the world for level and registers the systems on their cadences.
func New(level *leveldata.Level, opts ...Option) (*Game, error) {
	o := options{
		sound:  engine.NopSound,
		input:  engine.NoInput,
		images: engine.NewImageSet(cfg.AllImages()...),
		seed:   cfg.Level.RandomSeed,
	}
	for _, opt := range opts {
		opt(&o)
	}

	ecs := engine.NewECS(donburi.NewWorld())
	ecs.Sound = o.sound
	ecs.Input = o.input
	ecs.Images = o.images
	ecs.Rand = rand.New(rand.NewSource(o.seed))

	factory.CreateCamera(ecs)
	factory.CreateInput(ecs)
	factory.CreateAudio(ecs)
	factory.CreateGameState(ecs)
	if _, err := factory.CreateLevel(ecs, level); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	frame := cfg.Timing.Frame
	ecs.
		AddSystem(frame, systems.UpdateInput).
		AddSystem(frame, systems.UpdateCharacter).
		AddSystem(frame, systems.UpdateEnemies).
		AddSystem(frame, systems.UpdateClouds).
		AddSystem(frame, systems.UpdatePhysics).
		AddSystem(frame, systems.UpdateObjects).
		AddSystem(cfg.Timing.WorldTick, systems.UpdateCollisions).
		AddSystem(cfg.Timing.WorldTick, systems.UpdateProjectiles).
		AddSystem(cfg.Timing.WorldTick, systems.UpdatePickups).
		AddSystem(cfg.Boss.BehaviorInterval, systems.UpdateBoss).
		AddSystem(frame, systems.UpdateBossSequence).
		AddSystem(frame, systems.UpdateAnimations).
		AddSystem(frame, systems.UpdateTimers).
		AddSystem(frame, systems.UpdateDeaths).
		AddSystem(frame, systems.UpdateGameState).
		AddSystem(frame, systems.UpdateStatusBars).
		AddSystem(frame, systems.UpdateAudio)

	ecs.
		AddRenderer(systems.DrawWorld).
		AddRenderer(systems.DrawHUD)

	systems.StartLoop(ecs, cfg.SoundMusic)

	return &Game{ecs: ecs, onEnd: o.onEnd}, nil
}

// Update advances the game by dt. Once halted only queued sounds are
// still delivered.
func (g *Game) Update(dt time.Duration) {
	if g.ecs.Stopped() {
		systems.UpdateAudio(g.ecs)
		return
	}
	g.ecs.Update(dt)

	if g.ecs.Stopped() && !g.ended {
		g.ended = true
		if g.onEnd != nil {
			g.onEnd(g.state().Outcome)
		}
	}
}

func (g *Game) Draw(sink engine.RenderSink) {
	g.ecs.Draw(sink)
}

// Now is the game's virtual time.
func (g *Game) Now() time.Duration { return g.ecs.Now() }

// IsGameOver reports that the character died. It is set as soon as the
// death is detected; IsHalted follows once the death animation has played.
func (g *Game) IsGameOver() bool { return g.state().Outcome == cfg.GameOver }

// IsVictory reports that the boss died.
func (g *Game) IsVictory() bool { return g.state().Outcome == cfg.GameVictory }

func (g *Game) IsHalted() bool { return g.state().State == cfg.GameHalted }

// Stats is a snapshot for the HUD and end screens.
type Stats struct {
	Energy  int
	Bottles int
	Coins   int
	Boss    int
}

func (g *Game) Stats() Stats {
	var s Stats
	if e, ok := components.Character.First(g.ecs.World); ok {
		s.Energy = components.Health.Get(e).Energy
		c := components.Character.Get(e)
		s.Bottles, s.Coins = c.CollectedBottles, c.CollectedCoins
	}
	if e, ok := components.Boss.First(g.ecs.World); ok {
		s.Boss = components.Health.Get(e).Energy
	}
	return s
}

func (g *Game) state() *components.GameStateData {
	entry, ok := components.GameState.First(g.ecs.World)
	if !ok {
		return &components.GameStateData{}
	}
	return components.GameState.Get(entry)
}
