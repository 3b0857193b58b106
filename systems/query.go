package systems

import (
	"sort"

	"github.com/automoto/pollo/components"
	cfg "github.com/automoto/pollo/config"
	"github.com/automoto/pollo/engine"
	"github.com/automoto/pollo/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

func characterEntry(ecs *engine.ECS) (*donburi.Entry, bool) {
	return tags.Character.First(ecs.World)
}

func bossEntry(ecs *engine.ECS) (*donburi.Entry, bool) {
	return tags.Boss.First(ecs.World)
}

// getOrCreateGameState returns the singleton GameState component.
func getOrCreateGameState(ecs *engine.ECS) *components.GameStateData {
	entry, ok := components.GameState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.GameState))
		components.GameState.SetValue(entry, components.GameStateData{State: cfg.GamePlaying})
	}
	return components.GameState.Get(entry)
}

func levelEndX(ecs *engine.ECS) float64 {
	if entry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(entry).Level; level != nil && level.EndX > 0 {
			return level.EndX
		}
	}
	return cfg.Level.EndX
}

// collect snapshots the entries matching q so callers can add or remove
// components without disturbing the iteration.
func collect(ecs *engine.ECS, q *query.Query) []*donburi.Entry {
	var out []*donburi.Entry
	q.Each(ecs.World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// nearby returns the entries with tag near e. The resolv space is used as a
// broad phase when e is registered in one; otherwise every tagged entry is
// returned. Results are ordered by position so resolution is deterministic.
func nearby(ecs *engine.ECS, e *donburi.Entry, resolvTag string, tag donburi.IComponentType) []*donburi.Entry {
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space == nil {
		return collect(ecs, query.NewQuery(filter.Contains(tag)))
	}

	check := obj.Check(0, 0, resolvTag)
	if check == nil {
		return nil
	}

	seen := make(map[donburi.Entity]bool, len(check.Objects))
	out := make([]*donburi.Entry, 0, len(check.Objects))
	for _, o := range check.Objects {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || other == e || !other.Valid() || seen[other.Entity()] {
			continue
		}
		if !other.HasComponent(tag) {
			continue
		}
		seen[other.Entity()] = true
		out = append(out, other)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := components.Object.Get(out[i]), components.Object.Get(out[j])
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	return out
}
