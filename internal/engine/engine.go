// Package engine owns the simulation object graph (world, bus, random
// source, active mode) and runs the lifecycle state machine and the
// fixed-tick loop. The host constructs an Engine, drives Tick at a fixed
// cadence, and tears the engine down when the session ends; nothing in
// here is reachable through globals.
package engine

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astrotap/internal/ecs"
	"github.com/vovakirdan/astrotap/internal/eventbus"
	"github.com/vovakirdan/astrotap/internal/events"
	"github.com/vovakirdan/astrotap/internal/rng"
	"github.com/vovakirdan/astrotap/internal/storage"
)

// State is the engine lifecycle state. It is shared with shells through the
// events package; the alias keeps engine callers readable.
type State = events.State

const (
	StateIdle    = events.StateIdle
	StateRunning = events.StateRunning
	StatePaused  = events.StatePaused
	StateQuit    = events.StateQuit
)

// DefaultMaxDelta is the dt clamp applied when Options leaves it unset.
const DefaultMaxDelta = 250 * time.Millisecond

// Context is the engine-owned object graph handed to the active mode.
type Context struct {
	World *ecs.World
	Bus   *eventbus.Bus
	Rand  *rng.Source
	Clock Clock
	Store storage.Store
	Log   *log.Logger

	// State reports the current lifecycle state.
	State func() State
}

// Mode is a game mode driven by the engine. OnUpdate receives the clamped
// elapsed time in seconds and is called exactly once per tick, only while
// the engine is running. OnExit returns an awaitable handle for the mode's
// final persistence so the owner can sequence teardown after durability.
type Mode interface {
	Name() string
	OnEnter(ctx *Context)
	OnUpdate(ctx *Context, dt float64)
	OnExit(ctx *Context) *storage.Task
}

// Options configures a new Engine.
type Options struct {
	Mode  Mode
	Store storage.Store
	Clock Clock // Defaults to a WallClock
	Seed  int64 // RNG seed; 0 means derive from the current time

	// MaxDelta clamps a single simulation step. Defaults to DefaultMaxDelta.
	MaxDelta time.Duration

	Logger *log.Logger
}

// Engine owns the world, bus, clock, random source, and the active mode.
// It is single-threaded: Tick, Publish-driven transitions, and Shutdown all
// run on the caller's goroutine.
type Engine struct {
	world  *ecs.World
	bus    *eventbus.Bus
	rand   *rng.Source
	clock  Clock
	store  storage.Store
	logger *log.Logger

	mode     Mode
	state    State
	maxDelta time.Duration

	lastMs  int64
	hasLast bool

	subs     []*eventbus.Subscription
	exitTask *storage.Task
	closed   bool
}

// New constructs an engine in the idle state and wires the lifecycle
// transitions to the inbound intent events.
func New(opts Options) *Engine {
	clock := opts.Clock
	if clock == nil {
		clock = NewWallClock()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	maxDelta := opts.MaxDelta
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	e := &Engine{
		world:    ecs.NewWorld(),
		bus:      eventbus.New(),
		rand:     rng.New(seed),
		clock:    clock,
		store:    opts.Store,
		logger:   logger,
		mode:     opts.Mode,
		state:    StateIdle,
		maxDelta: maxDelta,
	}

	e.subs = append(e.subs,
		eventbus.Subscribe(e.bus, func(events.StartRequested) { e.handleStart() }),
		eventbus.Subscribe(e.bus, func(events.PauseToggleRequested) { e.handlePauseToggle() }),
		eventbus.Subscribe(e.bus, func(events.QuitRequested) { e.handleQuit() }),
	)

	return e
}

// Bus returns the engine-owned event bus. Shells publish intents into it
// and subscribe to the outbound snapshots.
func (e *Engine) Bus() *eventbus.Bus {
	return e.bus
}

// World returns the engine-owned entity store.
func (e *Engine) World() *ecs.World {
	return e.world
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

func (e *Engine) context() *Context {
	return &Context{
		World: e.world,
		Bus:   e.bus,
		Rand:  e.rand,
		Clock: e.clock,
		Store: e.store,
		Log:   e.logger,
		State: func() State { return e.state },
	}
}

// transition moves to next, runs the side effect, then publishes
// StateChanged. The publication happens strictly after the side effect so
// subscribers observe a consistent world.
func (e *Engine) transition(next State, sideEffect func()) {
	prev := e.state
	e.state = next
	if sideEffect != nil {
		sideEffect()
	}
	e.logger.Debug("lifecycle transition", "from", prev, "to", next)
	e.bus.Publish(events.StateChanged{Previous: prev, Current: next})
}

func (e *Engine) handleStart() {
	if e.closed || (e.state != StateIdle && e.state != StateQuit) {
		return
	}
	// No state carries across quit: every run begins in a fresh world.
	e.world = ecs.NewWorld()
	e.transition(StateRunning, func() {
		e.mode.OnEnter(e.context())
	})
}

func (e *Engine) handlePauseToggle() {
	if e.closed {
		return
	}
	switch e.state {
	case StateRunning:
		e.transition(StatePaused, nil)
	case StatePaused:
		e.transition(StateRunning, nil)
	}
}

func (e *Engine) handleQuit() {
	if e.closed || (e.state != StateRunning && e.state != StatePaused) {
		return
	}
	e.transition(StateQuit, func() {
		e.exitTask = e.mode.OnExit(e.context())
	})
}

// Tick advances the simulation. The host invokes it at a fixed external
// cadence; each call computes the elapsed real time since the previous call
// and, only while running, calls the mode's OnUpdate exactly once. Ticks in
// any other state are harmless no-ops for the simulation.
func (e *Engine) Tick() {
	if e.closed {
		return
	}

	now := e.clock.NowMillis()
	if !e.hasLast {
		e.lastMs = now
		e.hasLast = true
		return
	}
	deltaMs := now - e.lastMs
	e.lastMs = now

	if e.state != StateRunning {
		return
	}

	// Clamp so a suspend/resume gap cannot become one catastrophic step.
	if max := e.maxDelta.Milliseconds(); deltaMs > max {
		deltaMs = max
	}
	if deltaMs < 0 {
		deltaMs = 0
	}

	e.mode.OnUpdate(e.context(), float64(deltaMs)/1000.0)
}

// Shutdown tears the engine down: it quits the active mode if necessary,
// waits for the mode's final persistence, cancels the engine's own
// subscriptions, and marks the engine closed so a late tick cannot fire
// into disposed state. It is idempotent.
func (e *Engine) Shutdown() error {
	if e.closed {
		return nil
	}

	if e.state == StateRunning || e.state == StatePaused {
		e.handleQuit()
	}

	for _, sub := range e.subs {
		sub.Cancel()
	}
	e.subs = nil
	e.closed = true

	if e.exitTask != nil {
		if err := e.exitTask.Wait(); err != nil {
			e.logger.Warn("final persistence failed", "mode", e.mode.Name(), "err", err)
			return err
		}
	}
	return nil
}
