package classic

import (
	"github.com/vovakirdan/astrotap/internal/ecs"
	"github.com/vovakirdan/astrotap/internal/engine"
	"github.com/vovakirdan/astrotap/internal/events"
)

// updateHit drains the pointer buffer accumulated since the previous tick
// and resolves each tap in arrival order. A tap inside the asteroid's
// collider destroys it, scores, and rerolls the spawn cooldown; every
// other tap is a miss. Taps buffered after the drain wait for the next
// tick.
func (m *Mode) updateHit(ctx *engine.Context, stats *RunStats) {
	taps := m.pointerBuf
	m.pointerBuf = nil
	if len(taps) == 0 {
		return
	}

	for _, tap := range taps {
		if m.resolveTap(ctx, stats, tap) {
			stats.Hits++
			stats.Score += m.cfg.Scoring.PerHit
			m.rerollCooldown(ctx, stats)
			continue
		}
		stats.Misses++
		ctx.Bus.Publish(events.HitMissed{X: tap.X, Y: tap.Y, TimestampMs: tap.TimestampMs})
	}
}

// resolveTap tests the tap against the live asteroid, if any. On a hit the
// asteroid is removed before the destroy events fire, so handlers observe
// a world without it.
func (m *Mode) resolveTap(ctx *engine.Context, stats *RunStats, tap events.PointerDown) bool {
	for _, e := range ctx.World.Query(asteroidKind, transformKind, colliderKind) {
		t := ecs.MustGet[Transform](ctx.World, e)
		c := ecs.MustGet[ColliderCircle](ctx.World, e)

		dx := tap.X - t.X
		dy := tap.Y - t.Y
		if dx*dx+dy*dy > c.Radius*c.Radius {
			continue
		}

		x, y := t.X, t.Y
		ctx.World.RemoveEntity(e)
		ctx.Bus.Publish(events.AsteroidDestroyed{Entity: e, X: x, Y: y})
		ctx.Bus.Publish(events.ParticlesRequested{X: x, Y: y, Kind: events.ParticlesExplosion})
		return true
	}
	return false
}
