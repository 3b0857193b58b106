package systems

import (
	"testing"

	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/leveldata"
	"github.com/automoto/pollo/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

func newTestECS(t *testing.T) *engine.ECS {
	t.Helper()
	return newWorldECS()
}

func newWorldECS() *engine.ECS {
	ecs := engine.NewECS(donburi.NewWorld())
	ecs.Images = engine.NewImageSet(cfg.AllImages()...)
	factory.CreateSpace(ecs, 4000, 720, 48, 48)
	factory.CreateCamera(ecs)
	factory.CreateInput(ecs)
	factory.CreateAudio(ecs)
	factory.CreateGameState(ecs)
	return ecs
}

// standingCharacter creates the character on the ground at x.
func standingCharacter(ecs *engine.ECS, x float64) *donburi.Entry {
	return characterAt(ecs, x, cfg.Character.RestY, 0)
}

func characterAt(ecs *engine.ECS, x, y, velY float64) *donburi.Entry {
	c := factory.CreateCharacter(ecs)
	moveTo(c, x, y)
	physics := components.Physics.Get(c)
	physics.VelocityY = velY
	physics.OnGround = y >= cfg.Character.RestY && velY == 0
	return c
}

func chickenAt(ecs *engine.ECS, kind cfg.EnemyKind, x, y float64) *donburi.Entry {
	return factory.CreateEnemy(ecs, leveldata.EnemySpawn{X: x, Y: y, Kind: string(kind), Speed: 0.2})
}

func moveTo(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X, obj.Y = x, y
	obj.Update()
}

func energy(e *donburi.Entry) int {
	return components.Health.Get(e).Energy
}

func pendingSFX(ecs *engine.ECS) []cfg.SoundID {
	return GetOrCreateAudio(ecs).PendingSFX
}

func countSFX(ecs *engine.ECS, id cfg.SoundID) int {
	n := 0
	for _, s := range pendingSFX(ecs) {
		if s == id {
			n++
		}
	}
	return n
}

func inputFunc(throw func() bool) engine.InputSource {
	return engine.InputFunc(func() engine.InputState {
		return engine.InputState{Throw: throw()}
	})
}

func count(ecs *engine.ECS, c donburi.IComponentType) int {
	return query.NewQuery(filter.Contains(c)).Count(ecs.World)
}
