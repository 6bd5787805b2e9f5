// Package events defines the typed records exchanged over the event bus:
// the lifecycle state, the intents raised by a UI shell, and the
// notifications published by the simulation core. Shells and the core share
// this package and nothing else, which keeps the presentation layer fully
// decoupled from the simulation.
package events

import "github.com/vovakirdan/astrotap/internal/ecs"

// State is the engine lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateQuit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Inbound intents, published by a UI shell into the bus.

// StartRequested asks the engine to start a run (from idle or quit).
type StartRequested struct{}

// PauseToggleRequested flips between running and paused.
type PauseToggleRequested struct{}

// QuitRequested ends the current run and persists its result.
type QuitRequested struct{}

// SettingsUpdateRequested applies new gameplay tunables. Values take effect
// on the next tick; out-of-range values are clamped by the mode.
type SettingsUpdateRequested struct {
	UIOpacity             float64
	SpeedLevel            int
	DifficultyProgression bool
}

// PointerDown is a pointer tap in play-area coordinates. Taps may arrive at
// any real-time instant; the mode buffers them and drains the buffer exactly
// once per tick.
type PointerDown struct {
	X, Y        float64
	TimestampMs int64
}

// Outbound notifications, published by the core for shells to consume.

// StateChanged is published after every lifecycle transition, once the
// transition's side effect has completed.
type StateChanged struct {
	Previous, Current State
}

// RenderFrameReady carries the per-tick render snapshot.
type RenderFrameReady struct {
	Frame RenderFrame
}

// StatsUpdated carries the per-tick statistics snapshot.
type StatsUpdated struct {
	Snapshot StatsSnapshot
}

// AsteroidSpawned is published when the spawn system creates an asteroid.
type AsteroidSpawned struct {
	Entity ecs.Entity
}

// AsteroidEscaped is published when an asteroid leaves the play area.
type AsteroidEscaped struct {
	Entity ecs.Entity
}

// AsteroidDestroyed is published when a tap eliminates an asteroid. X and Y
// are the asteroid's position at the moment of the hit.
type AsteroidDestroyed struct {
	Entity ecs.Entity
	X, Y   float64
}

// HitMissed is published for a buffered tap that touched no asteroid.
type HitMissed struct {
	X, Y        float64
	TimestampMs int64
}

// ParticlesRequested asks the presentation layer for a cosmetic effect.
type ParticlesRequested struct {
	X, Y float64
	Kind ParticleKind
}

// ParticleKind identifies a cosmetic particle effect.
type ParticleKind string

const (
	ParticlesExplosion ParticleKind = "explosion"
)
