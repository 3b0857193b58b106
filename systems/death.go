package systems

import (
	"time"

	"github.com/automoto/pollo/components"
	"github.com/automoto/pollo/engine"
	"github.com/yohamta/donburi"
)

// UpdateDeaths removes entities whose removal time has passed. Expired
// entries are collected first and removed afterwards.
func UpdateDeaths(ecs *engine.ECS) {
	now := ecs.Now()
	var expired []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		if now >= components.Death.Get(e).RemoveAt {
			expired = append(expired, e)
		}
	})
	removeEntries(ecs, expired)
}

// scheduleRemoval marks e for removal after delay. An existing schedule is kept.
func scheduleRemoval(ecs *engine.ECS, e *donburi.Entry, delay time.Duration) {
	if e.HasComponent(components.Death) {
		return
	}
	donburi.Add(e, components.Death, &components.DeathData{RemoveAt: ecs.Now() + delay})
}

// flushDeaths removes every entity waiting for removal, due or not.
func flushDeaths(ecs *engine.ECS) {
	var pending []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		pending = append(pending, e)
	})
	removeEntries(ecs, pending)
}

func removeEntries(ecs *engine.ECS, entries []*donburi.Entry) {
	if len(entries) == 0 {
		return
	}
	spaceEntry, hasSpace := components.Space.First(ecs.World)

	for _, e := range entries {
		if !ecs.World.Valid(e.Entity()) {
			continue
		}
		if hasSpace && e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
		ecs.World.Remove(e.Entity())
	}
}
