package game

import (
	"testing"
	"time"

	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/engine/mocks"
	"github.com/automoto/pollo/shared/leveldata"
	"github.com/automoto/pollo/systems/factory"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
	"go.uber.org/mock/gomock"
)

func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:   "test",
		EndX:   2600,
		Width:  3000,
		Height: 480,
	}
}

func newGame(t *testing.T, level *leveldata.Level, opts ...Option) *Game {
	t.Helper()
	g, err := New(level, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func character(g *Game) *donburi.Entry {
	return tags.Character.MustFirst(g.ecs.World)
}

func count(g *Game, c donburi.IComponentType) int {
	return query.NewQuery(filter.Contains(c)).Count(g.ecs.World)
}

// settle lets the character fall to the ground.
func settle(t *testing.T, g *Game) {
	t.Helper()
	g.Update(time.Second)
	if !components.Physics.Get(character(g)).OnGround {
		t.Fatalf("character still airborne")
	}
}

func TestNewRejectsNilLevel(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSideHitSequence(t *testing.T) {
	level := testLevel()
	level.Enemies = []leveldata.EnemySpawn{{X: 1500, Y: 360, Kind: "normal", Speed: 0.2}}
	g := newGame(t, level)
	settle(t, g)

	chicken := tags.Enemy.MustFirst(g.ecs.World)
	components.Enemy.Get(chicken).Speed = 0
	obj := components.Object.Get(chicken)
	obj.X = components.Object.Get(character(g)).X + 20
	obj.Update()

	g.Update(cfg.Timing.WorldTick)
	health := components.Health.Get(character(g))
	if health.Energy != 80 {
		t.Fatalf("energy = %d, want 80", health.Energy)
	}
	hitAt := health.LastHit
	if hitAt <= time.Second || hitAt > g.Now() {
		t.Fatalf("last hit = %v, now %v", hitAt, g.Now())
	}

	g.Update(hitAt + 200*time.Millisecond - g.Now())
	if got := components.Health.Get(character(g)).Energy; got != 80 {
		t.Fatalf("energy 200ms later = %d, want 80", got)
	}

	g.Update(hitAt + 1100*time.Millisecond - g.Now())
	if got := components.Health.Get(character(g)).Energy; got != 60 {
		t.Fatalf("energy 1100ms later = %d, want 60", got)
	}
}

func TestBossDiesAfterFiveBottles(t *testing.T) {
	level := testLevel()
	level.Boss = []leveldata.EnemySpawn{{X: 2500, Y: 55, Kind: "boss"}}

	var outcome cfg.GameStateID
	g := newGame(t, level, WithOnEnd(func(o cfg.GameStateID) { outcome = o }))
	settle(t, g)

	boss := tags.Boss.MustFirst(g.ecs.World)
	hit := func() {
		bottle := factory.CreateProjectile(g.ecs, character(g))
		obj := components.Object.Get(bottle)
		obj.X, obj.Y = 2600, 200
		obj.Update()
		g.Update(cfg.Timing.WorldTick)
	}

	for i, want := range []int{80, 60, 40, 20} {
		hit()
		if got := components.Health.Get(boss).Energy; got != want {
			t.Fatalf("hit %d: boss energy = %d, want %d", i+1, got, want)
		}
		if got := components.Animation.Get(boss).CurrentState; got != cfg.Hurt {
			t.Fatalf("hit %d: animation = %v, want hurt", i+1, got)
		}
	}

	hit()
	if !components.Health.Get(boss).Dead {
		t.Fatalf("boss alive after fifth bottle")
	}
	g.Update(cfg.Timing.Frame)
	if !g.IsVictory() || g.IsGameOver() {
		t.Fatalf("victory = %v, game over = %v", g.IsVictory(), g.IsGameOver())
	}

	g.Update(3 * time.Second)
	if boss.Valid() || count(g, tags.Boss) != 0 {
		t.Fatalf("boss still in the world")
	}
	if !g.IsHalted() || outcome != cfg.GameVictory {
		t.Fatalf("halted = %v, outcome = %v", g.IsHalted(), outcome)
	}
}

func TestThrowDebounce(t *testing.T) {
	held := false
	input := engine.InputFunc(func() engine.InputState {
		return engine.InputState{Throw: held}
	})
	g := newGame(t, testLevel(), WithInput(input))
	settle(t, g)
	components.Character.Get(character(g)).CollectedBottles = 2

	held = true
	for i := 0; i < 3; i++ {
		g.Update(cfg.Timing.Frame)
	}

	if n := count(g, tags.Projectile); n != 1 {
		t.Fatalf("%d projectiles, want 1", n)
	}
	if got := components.Character.Get(character(g)).CollectedBottles; got != 1 {
		t.Fatalf("bottles = %d, want 1", got)
	}
}

func TestGameOverSignalsEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundSink(ctrl)
	// First match wins, so the exact expectation goes ahead of the catch-all
	sound.EXPECT().Play(cfg.SoundGameOver).Times(1)
	sound.EXPECT().Play(gomock.Any()).AnyTimes()
	sound.EXPECT().StartLoop(gomock.Any()).AnyTimes()
	sound.EXPECT().StopLoop(gomock.Any()).AnyTimes()

	level := testLevel()
	level.Enemies = []leveldata.EnemySpawn{{X: 1500, Y: 360, Kind: "normal", Speed: 0.2}}

	ends := 0
	g := newGame(t, level, WithSound(sound), WithOnEnd(func(cfg.GameStateID) { ends++ }))
	settle(t, g)
	components.Health.Get(character(g)).Energy = 20

	chicken := tags.Enemy.MustFirst(g.ecs.World)
	components.Enemy.Get(chicken).Speed = 0
	obj := components.Object.Get(chicken)
	obj.X = components.Object.Get(character(g)).X + 20
	obj.Update()

	g.Update(cfg.Timing.WorldTick + cfg.Timing.Frame)
	if !g.IsGameOver() || g.IsHalted() {
		t.Fatalf("game over = %v, halted = %v", g.IsGameOver(), g.IsHalted())
	}

	g.Update(2 * time.Second)
	if !g.IsHalted() || ends != 1 {
		t.Fatalf("halted = %v, end callbacks = %d", g.IsHalted(), ends)
	}

	// A halted game only delivers sound
	before := g.Now()
	g.Update(time.Second)
	if g.Now() != before {
		t.Fatalf("clock moved after halt")
	}
	if ends != 1 {
		t.Fatalf("end callback ran again")
	}
}

func TestDrawUsesSinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockRenderSink(ctrl)
	sink.EXPECT().Translate(gomock.Any(), gomock.Any()).Times(2)
	sink.EXPECT().DrawSprite(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).MinTimes(1)
	sink.EXPECT().DrawText(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	g := newGame(t, testLevel())
	g.Update(cfg.Timing.Frame)
	g.Draw(sink)
}

func TestEmbeddedLevelPlays(t *testing.T) {
	level, err := LoadLevel()
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	g := newGame(t, level)
	g.Update(5 * time.Second)

	if count(g, tags.Enemy) != len(level.Enemies)+len(level.Boss) {
		t.Fatalf("enemies lost without a fight")
	}
	if g.IsGameOver() || g.IsHalted() {
		t.Fatalf("idle character lost the game")
	}
}
