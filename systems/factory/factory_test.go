package factory

import (
	"testing"

	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/shared/leveldata"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

func newECS() *engine.ECS {
	ecs := engine.NewECS(donburi.NewWorld())
	CreateSpace(ecs, 4000, 720, 48, 48)
	return ecs
}

func TestCreateEnemyDefaults(t *testing.T) {
	ecs := newECS()

	small := CreateEnemy(ecs, leveldata.EnemySpawn{X: 700, Kind: "small"})
	obj := components.Object.Get(small)
	if obj.Y != 380 || obj.W != 40 {
		t.Fatalf("small chicken at y %v width %v", obj.Y, obj.W)
	}
	speed := components.Enemy.Get(small).Speed
	if speed < 0.15 || speed > 0.40 {
		t.Fatalf("speed %v outside range", speed)
	}

	odd := CreateEnemy(ecs, leveldata.EnemySpawn{X: 900, Kind: "dragon"})
	if kind := components.Enemy.Get(odd).Kind; kind != cfg.KindNormal {
		t.Fatalf("unknown kind became %v", kind)
	}
}

func TestCreateEnemyScattersWithoutPosition(t *testing.T) {
	ecs := newECS()
	for i := 0; i < 20; i++ {
		e := CreateEnemy(ecs, leveldata.EnemySpawn{Kind: "normal"})
		x := components.Object.Get(e).X
		if x < cfg.Level.ChickenMinX || x >= cfg.Level.ChickenMinX+cfg.Level.ChickenSpread {
			t.Fatalf("scattered chicken at %v", x)
		}
	}
}

func TestCreateLevel(t *testing.T) {
	ecs := engine.NewECS(donburi.NewWorld())
	level := &leveldata.Level{
		Width:   3000,
		EndX:    2600,
		Enemies: []leveldata.EnemySpawn{{X: 700, Kind: "normal"}},
		Boss:    []leveldata.EnemySpawn{{X: 2500, Kind: "boss"}},
		Coins:   []leveldata.Point{{X: 300, Y: 200}},
		Bottles: []leveldata.Point{{X: 400, Y: 350}},
	}

	if _, err := CreateLevel(ecs, level); err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}
	if _, ok := components.Space.First(ecs.World); !ok {
		t.Fatalf("no collision space")
	}

	counts := map[string]int{}
	for name, tag := range map[string]donburi.IComponentType{
		"character": tags.Character,
		"enemy":     tags.Enemy,
		"boss":      tags.Boss,
		"coin":      tags.Coin,
		"bottle":    tags.BottlePickup,
		"bar":       tags.StatusBar,
	} {
		counts[name] = query.NewQuery(filter.Contains(tag)).Count(ecs.World)
	}

	want := map[string]int{"character": 1, "enemy": 2, "boss": 1, "coin": 1, "bottle": 1, "bar": 4}
	for k, v := range want {
		if counts[k] != v {
			t.Errorf("%s count = %d, want %d", k, counts[k], v)
		}
	}
}

func TestCreateLevelRejectsNil(t *testing.T) {
	if _, err := CreateLevel(newECS(), nil); err == nil {
		t.Fatalf("expected error")
	}
}
