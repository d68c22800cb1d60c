package systems

import (
	"github.com/automoto/quackdash/logger"
	"github.com/automoto/quackdash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var sessionScoped = donburi.NewQuery(filter.Contains(tags.Playing))

// EndSession removes every entity scoped to the active play session and drops
// the atlas frames cut for it.
func EndSession(e *ecs.ECS) {
	var toRemove []*donburi.Entry
	sessionScoped.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		RemoveEntity(entry)
	}
	clearFrameCache()
	logger.WithSystem("session").WithField("removed", len(toRemove)).Debug("session ended")
}

// MarkPlaying scopes entry to the active play session.
func MarkPlaying(entry *donburi.Entry) {
	if entry.Valid() && !entry.HasComponent(tags.Playing) {
		entry.AddComponent(tags.Playing)
	}
}
