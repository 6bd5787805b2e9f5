package classic

import (
	"github.com/vovakirdan/astrotap/internal/ecs"
	"github.com/vovakirdan/astrotap/internal/engine"
	"github.com/vovakirdan/astrotap/internal/events"
)

// updateEscape removes entities that drifted past the play rectangle plus
// their escape padding. Escapes count against the run but do not touch the
// spawn cooldown, so the replacement asteroid appears on the next tick.
// Runs before the hit system: an asteroid that is out of bounds this tick
// can no longer be tapped.
func (m *Mode) updateEscape(ctx *engine.Context, stats *RunStats) {
	var escaped []ecs.Entity
	for _, e := range ctx.World.Query(transformKind, escapeKind) {
		t := ecs.MustGet[Transform](ctx.World, e)
		b := ecs.MustGet[EscapeBounds](ctx.World, e)

		if t.X < -b.Padding || t.X > m.cfg.Area.Width+b.Padding ||
			t.Y < -b.Padding || t.Y > m.cfg.Area.Height+b.Padding {
			escaped = append(escaped, e)
		}
	}

	for _, e := range escaped {
		ctx.World.RemoveEntity(e)
		stats.Escaped++
		ctx.Bus.Publish(events.AsteroidEscaped{Entity: e})
	}
}
