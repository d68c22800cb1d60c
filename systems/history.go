package systems

import (
	"github.com/automoto/quackdash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	untracked = donburi.NewQuery(filter.And(
		filter.Contains(components.Object),
		filter.Not(filter.Contains(components.TranslationHistory)),
	))
	orphanedHistory = donburi.NewQuery(filter.And(
		filter.Contains(components.TranslationHistory),
		filter.Not(filter.Contains(components.Object)),
	))
	tracked = donburi.NewQuery(filter.Contains(components.TranslationHistory, components.Object))
)

// RemoveTranslationHistory drops history from entities that lost their position.
func RemoveTranslationHistory(e *ecs.ECS) {
	var toRemove []*donburi.Entry
	orphanedHistory.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		entry.RemoveComponent(components.TranslationHistory)
	}
}

// AddTranslationHistory starts tracking positioned entities at their current
// position with zero delta. Runs before any movement of the tick.
func AddTranslationHistory(e *ecs.ECS) {
	var toAdd []*donburi.Entry
	untracked.Each(e.World, func(entry *donburi.Entry) {
		toAdd = append(toAdd, entry)
	})
	for _, entry := range toAdd {
		donburi.Add(entry, components.TranslationHistory, &components.TranslationHistoryData{
			Previous: components.Object.Get(entry).Position(),
		})
	}
}

// RecordTranslationHistory captures this tick's motion. Runs once per tick
// after movement and wrapping, before animation reads the delta.
func RecordTranslationHistory(e *ecs.ECS) {
	tracked.Each(e.World, func(entry *donburi.Entry) {
		history := components.TranslationHistory.Get(entry)
		history.Record(components.Object.Get(entry).Position())
	})
}
