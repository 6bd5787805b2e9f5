package engine

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astrotap/internal/eventbus"
	"github.com/vovakirdan/astrotap/internal/events"
	"github.com/vovakirdan/astrotap/internal/storage"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	ms int64
}

func (c *fakeClock) NowMillis() int64 { return c.ms }

func (c *fakeClock) advance(d time.Duration) { c.ms += d.Milliseconds() }

// recordingMode records lifecycle calls and update deltas.
type recordingMode struct {
	enters  int
	exits   int
	updates []float64
}

func (m *recordingMode) Name() string { return "recording" }

func (m *recordingMode) OnEnter(*Context) { m.enters++ }

func (m *recordingMode) OnUpdate(_ *Context, dt float64) {
	m.updates = append(m.updates, dt)
}

func (m *recordingMode) OnExit(*Context) *storage.Task {
	m.exits++
	return storage.Completed(nil)
}

func newTestEngine(t *testing.T) (*Engine, *recordingMode, *fakeClock) {
	t.Helper()
	mode := &recordingMode{}
	clock := &fakeClock{}
	eng := New(Options{
		Mode:   mode,
		Store:  storage.NewMemory(),
		Clock:  clock,
		Seed:   1,
		Logger: log.New(io.Discard),
	})
	return eng, mode, clock
}

// tick advances the clock by d and runs one engine tick.
func tick(eng *Engine, clock *fakeClock, d time.Duration) {
	clock.advance(d)
	eng.Tick()
}

func TestLifecycleTransitions(t *testing.T) {
	eng, mode, _ := newTestEngine(t)

	if eng.State() != StateIdle {
		t.Fatalf("initial state = %v, want idle", eng.State())
	}

	eng.Bus().Publish(events.StartRequested{})
	if eng.State() != StateRunning || mode.enters != 1 {
		t.Fatalf("after start: state=%v enters=%d", eng.State(), mode.enters)
	}

	eng.Bus().Publish(events.PauseToggleRequested{})
	if eng.State() != StatePaused {
		t.Fatalf("after pause toggle: state=%v", eng.State())
	}

	eng.Bus().Publish(events.PauseToggleRequested{})
	if eng.State() != StateRunning {
		t.Fatalf("after second toggle: state=%v", eng.State())
	}

	eng.Bus().Publish(events.QuitRequested{})
	if eng.State() != StateQuit || mode.exits != 1 {
		t.Fatalf("after quit: state=%v exits=%d", eng.State(), mode.exits)
	}

	// Restart from quit re-enters the mode in a fresh world.
	oldWorld := eng.World()
	eng.Bus().Publish(events.StartRequested{})
	if eng.State() != StateRunning || mode.enters != 2 {
		t.Fatalf("restart from quit: state=%v enters=%d", eng.State(), mode.enters)
	}
	if eng.World() == oldWorld {
		t.Error("restart did not discard the previous world")
	}
}

func TestIgnoredTransitions(t *testing.T) {
	eng, mode, _ := newTestEngine(t)

	// Pause and quit are meaningless while idle.
	eng.Bus().Publish(events.PauseToggleRequested{})
	eng.Bus().Publish(events.QuitRequested{})
	if eng.State() != StateIdle || mode.exits != 0 {
		t.Fatalf("idle engine reacted: state=%v exits=%d", eng.State(), mode.exits)
	}

	// A second start while running is ignored.
	eng.Bus().Publish(events.StartRequested{})
	eng.Bus().Publish(events.StartRequested{})
	if mode.enters != 1 {
		t.Errorf("enters = %d, want 1", mode.enters)
	}
}

func TestStateChangedPublishedAfterSideEffect(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	var got []events.StateChanged
	eventbus.Subscribe(eng.Bus(), func(ev events.StateChanged) {
		got = append(got, ev)
	})

	eng.Bus().Publish(events.StartRequested{})
	eng.Bus().Publish(events.PauseToggleRequested{})
	eng.Bus().Publish(events.QuitRequested{})

	want := []events.StateChanged{
		{Previous: StateIdle, Current: StateRunning},
		{Previous: StateRunning, Current: StatePaused},
		{Previous: StatePaused, Current: StateQuit},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d StateChanged events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTickOnlyUpdatesWhileRunning(t *testing.T) {
	eng, mode, clock := newTestEngine(t)

	// Idle ticks are no-ops.
	tick(eng, clock, 16*time.Millisecond)
	tick(eng, clock, 16*time.Millisecond)
	if len(mode.updates) != 0 {
		t.Fatalf("idle ticks produced %d updates", len(mode.updates))
	}

	eng.Bus().Publish(events.StartRequested{})
	tick(eng, clock, 16*time.Millisecond)
	if len(mode.updates) != 1 {
		t.Fatalf("running tick produced %d updates, want 1", len(mode.updates))
	}
	if dt := mode.updates[0]; dt != 0.016 {
		t.Errorf("dt = %v, want 0.016", dt)
	}

	eng.Bus().Publish(events.PauseToggleRequested{})
	tick(eng, clock, 16*time.Millisecond)
	if len(mode.updates) != 1 {
		t.Error("paused tick invoked OnUpdate")
	}
}

func TestDeltaClamp(t *testing.T) {
	mode := &recordingMode{}
	clock := &fakeClock{}
	eng := New(Options{
		Mode:     mode,
		Store:    storage.NewMemory(),
		Clock:    clock,
		Seed:     1,
		MaxDelta: 100 * time.Millisecond,
		Logger:   log.New(io.Discard),
	})

	eng.Bus().Publish(events.StartRequested{})
	eng.Tick() // establish the baseline timestamp

	// A ten-second stall must not become one ten-second step.
	tick(eng, clock, 10*time.Second)
	if len(mode.updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(mode.updates))
	}
	if dt := mode.updates[0]; dt != 0.1 {
		t.Errorf("clamped dt = %v, want 0.1", dt)
	}
}

func TestFirstTickEstablishesBaseline(t *testing.T) {
	eng, mode, clock := newTestEngine(t)
	clock.ms = 5000 // engine must not treat clock origin as the previous tick

	eng.Bus().Publish(events.StartRequested{})
	eng.Tick()
	if len(mode.updates) != 0 {
		t.Fatalf("first tick simulated with dt=%v", mode.updates)
	}

	tick(eng, clock, 16*time.Millisecond)
	if len(mode.updates) != 1 || mode.updates[0] != 0.016 {
		t.Errorf("second tick updates = %v, want [0.016]", mode.updates)
	}
}

func TestShutdownQuitsAndStopsTicks(t *testing.T) {
	eng, mode, clock := newTestEngine(t)

	eng.Bus().Publish(events.StartRequested{})
	tick(eng, clock, 16*time.Millisecond)

	if err := eng.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if mode.exits != 1 {
		t.Errorf("exits = %d, want 1", mode.exits)
	}

	// A timer firing after shutdown must not reach the mode.
	before := len(mode.updates)
	tick(eng, clock, 16*time.Millisecond)
	if len(mode.updates) != before {
		t.Error("tick after shutdown reached the mode")
	}

	// Intent events after shutdown are ignored too.
	eng.Bus().Publish(events.StartRequested{})
	if mode.enters != 1 {
		t.Error("start after shutdown re-entered the mode")
	}

	if err := eng.Shutdown(); err != nil {
		t.Errorf("second Shutdown: %v", err)
	}
}
