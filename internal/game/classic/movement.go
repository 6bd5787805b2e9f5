package classic

import (
	"github.com/vovakirdan/astrotap/internal/ecs"
	"github.com/vovakirdan/astrotap/internal/engine"
)

// updateMovement integrates linear position and rotation for every entity
// carrying a transform and a velocity, regardless of what the entity is.
func (m *Mode) updateMovement(ctx *engine.Context, dt float64) {
	for _, e := range ctx.World.Query(transformKind, velocityKind) {
		t := ecs.MustGet[Transform](ctx.World, e)
		v := ecs.MustGet[Velocity](ctx.World, e)

		t.X += v.VX * dt
		t.Y += v.VY * dt
		t.Rotation += v.AngularVelocity * dt
	}
}
