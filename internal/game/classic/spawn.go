package classic

import (
	"github.com/vovakirdan/astrotap/internal/engine"
	"github.com/vovakirdan/astrotap/internal/events"
)

// updateSpawn counts the spawn cooldown down and, once it reaches zero
// while no asteroid exists, spawns one above the top edge at a random x,
// falling at the difficulty-scaled base speed. At most one asteroid exists
// at any instant.
func (m *Mode) updateSpawn(ctx *engine.Context, stats *RunStats, dt float64) {
	stats.SpawnCooldown -= dt
	if stats.SpawnCooldown < 0 {
		stats.SpawnCooldown = 0
	}

	if stats.SpawnCooldown > 0 {
		return
	}
	if len(ctx.World.Query(asteroidKind)) > 0 {
		return
	}

	m.spawnAsteroid(ctx, stats)
}

func (m *Mode) spawnAsteroid(ctx *engine.Context, stats *RunStats) {
	radius := m.cfg.Asteroid.Radius
	x := ctx.Rand.FloatRange(0, m.cfg.Area.Width)

	e := ctx.World.CreateEntity()
	mustAttach(ctx.World, e, Transform{X: x, Y: -radius})
	mustAttach(ctx.World, e, Velocity{
		VY:              m.cfg.Asteroid.BaseSpeed * stats.DifficultyMultiplier,
		AngularVelocity: m.cfg.Asteroid.AngularVelocity,
	})
	mustAttach(ctx.World, e, ColliderCircle{Radius: radius})
	mustAttach(ctx.World, e, EscapeBounds{Padding: m.cfg.Asteroid.EscapePadding})
	mustAttach(ctx.World, e, AsteroidTag{})

	stats.Spawned++
	m.rerollCooldown(ctx, stats)

	ctx.Bus.Publish(events.AsteroidSpawned{Entity: e})
}
