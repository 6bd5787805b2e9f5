// Package classic implements the classic tap-the-asteroid game mode: one
// falling asteroid at a time, eliminated by a pointer tap before it leaves
// the play area. The mode is an ordered system pipeline over the entity
// store; each system lives in its own file and runs once per tick in a
// fixed order.
package classic

import "github.com/vovakirdan/astrotap/internal/ecs"

// Transform is an entity's position and rotation in play-area units.
type Transform struct {
	X, Y     float64
	Rotation float64
}

// Velocity is an entity's linear and angular velocity, per second.
type Velocity struct {
	VX, VY          float64
	AngularVelocity float64
}

// ColliderCircle is a circular hit area centered on the transform.
type ColliderCircle struct {
	Radius float64
}

// EscapeBounds is the margin beyond the play rectangle an entity may reach
// before it counts as escaped.
type EscapeBounds struct {
	Padding float64
}

// AsteroidTag marks the asteroid entity. At most one exists at any instant.
type AsteroidTag struct{}

// RunStats is the per-run counter record, attached to a dedicated run
// entity on mode entry and mutated by the systems every tick. It is never
// destroyed individually; it disappears with the enclosing world.
type RunStats struct {
	Spawned              int
	Escaped              int
	Hits                 int
	Misses               int
	Score                int
	DifficultyMultiplier float64
	Elapsed              float64 // Seconds of running simulation time
	SpawnCooldown        float64 // Seconds until the next spawn is allowed
}

// Component-type keys used by the systems' queries.
var (
	transformKind = ecs.KindOf[Transform]()
	velocityKind  = ecs.KindOf[Velocity]()
	colliderKind  = ecs.KindOf[ColliderCircle]()
	escapeKind    = ecs.KindOf[EscapeBounds]()
	asteroidKind  = ecs.KindOf[AsteroidTag]()
)
