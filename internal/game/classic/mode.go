package classic

import (
	"fmt"

	"github.com/vovakirdan/astrotap/internal/config"
	"github.com/vovakirdan/astrotap/internal/ecs"
	"github.com/vovakirdan/astrotap/internal/engine"
	"github.com/vovakirdan/astrotap/internal/eventbus"
	"github.com/vovakirdan/astrotap/internal/events"
	"github.com/vovakirdan/astrotap/internal/storage"
)

// Tunable clamp ranges for settings updates.
const (
	minSpeedLevel = 1
	maxSpeedLevel = 5
	minUIOpacity  = 0.2
	maxUIOpacity  = 1.0
)

// Mode is the classic game mode. It owns the run entity, the mode's
// tunables, the pointer buffer, and the mode's bus subscriptions. All
// methods run on the engine's tick goroutine.
type Mode struct {
	cfg config.ClassicConfig

	run ecs.Entity

	// Tunables, applied immediately by settings events.
	speedLevel  int
	progression bool
	uiOpacity   float64

	// Pointer taps buffered since the previous tick; drained exactly once
	// at the start of the hit system.
	pointerBuf []events.PointerDown

	subs []*eventbus.Subscription

	// Async load of the previous run's persisted state. Results are only
	// read after the task completes (polled at the start of each tick).
	loadTask     *storage.Task
	loadedResult *storage.LastResult
	loadedConfig *storage.Settings
	bestScore    int
}

var _ engine.Mode = (*Mode)(nil)

// New creates the mode with the given configuration.
func New(cfg config.ClassicConfig) *Mode {
	return &Mode{cfg: cfg}
}

// Name returns the mode identifier, used for logging and storage keys.
func (m *Mode) Name() string {
	return "classic"
}

// LoadDone exposes the handle for the asynchronous load started by
// OnEnter, mainly for hosts and tests that want to sequence against it.
func (m *Mode) LoadDone() *storage.Task {
	return m.loadTask
}

// OnEnter resets a fresh run: a new run entity carrying RunStats, default
// tunables, the mode's subscriptions, a non-blocking load of the previous
// run's persisted result and settings, and an initial render snapshot.
func (m *Mode) OnEnter(ctx *engine.Context) {
	m.run = ctx.World.CreateEntity()
	mustAttach(ctx.World, m.run, RunStats{})

	m.speedLevel = clampInt(m.cfg.Defaults.SpeedLevel, minSpeedLevel, maxSpeedLevel)
	m.progression = m.cfg.Defaults.DifficultyProgression
	m.uiOpacity = clampFloat(m.cfg.Defaults.UIOpacity, minUIOpacity, maxUIOpacity)
	m.pointerBuf = nil
	m.bestScore = 0
	m.loadedResult = nil
	m.loadedConfig = nil

	m.subs = append(m.subs,
		eventbus.Subscribe(ctx.Bus, func(ev events.PointerDown) {
			// Taps outside a running simulation are dropped by design.
			if ctx.State() == engine.StateRunning {
				m.pointerBuf = append(m.pointerBuf, ev)
			}
		}),
		eventbus.Subscribe(ctx.Bus, func(ev events.SettingsUpdateRequested) {
			m.applySettings(ev)
		}),
		eventbus.Subscribe(ctx.Bus, func(events.StateChanged) {
			// Republish the frame so modal flags update while no ticks run.
			m.publishFrame(ctx)
		}),
	)

	m.startLoad(ctx)
	m.publishFrame(ctx)
}

// OnUpdate runs the system pipeline once, in its fixed order.
func (m *Mode) OnUpdate(ctx *engine.Context, dt float64) {
	m.pollLoad()

	stats := ecs.MustGet[RunStats](ctx.World, m.run)
	stats.Elapsed += dt

	m.updateDifficulty(stats)
	m.updateSpawn(ctx, stats, dt)
	m.updateMovement(ctx, dt)
	m.updateEscape(ctx, stats)
	m.updateHit(ctx, stats)
	m.publishStats(ctx, stats)
	m.publishFrame(ctx)
}

// OnExit begins the asynchronous persistence of the final run statistics
// and settings, cancels the mode's subscriptions, and returns the
// persistence handle so the owner can await durability before discarding
// the world.
func (m *Mode) OnExit(ctx *engine.Context) *storage.Task {
	stats := ecs.MustGet[RunStats](ctx.World, m.run)
	result := storage.LastResult{
		Spawned:              stats.Spawned,
		Escaped:              stats.Escaped,
		Hits:                 stats.Hits,
		Misses:               stats.Misses,
		Score:                stats.Score,
		DifficultyMultiplier: stats.DifficultyMultiplier,
		TimeMs:               int64(stats.Elapsed * 1000),
	}
	settings := storage.Settings{
		UIOpacity:             m.uiOpacity,
		SpeedLevel:            m.speedLevel,
		DifficultyProgression: m.progression,
	}

	store := ctx.Store
	task := storage.Run(func() error {
		if err := storage.SaveLastResult(store, result); err != nil {
			return fmt.Errorf("classic: persist last result: %w", err)
		}
		if err := storage.SaveSettings(store, settings); err != nil {
			return fmt.Errorf("classic: persist settings: %w", err)
		}
		return nil
	})

	// The lifecycle state is already quit here, so this frame carries the
	// end-of-run UI flags. The StateChanged publication happens after the
	// subscriptions below are cancelled and would be missed otherwise.
	m.publishFrame(ctx)

	for _, sub := range m.subs {
		sub.Cancel()
	}
	m.subs = nil

	return task
}

// startLoad begins the non-blocking read of the previous run's persisted
// state. The goroutine writes only task-owned fields; the tick loop reads
// them after observing task completion, so there is no shared mutation.
func (m *Mode) startLoad(ctx *engine.Context) {
	store := ctx.Store
	logger := ctx.Log
	m.loadTask = storage.Run(func() error {
		if result, ok, err := storage.LoadLastResult(store); err != nil {
			logger.Warn("loading last result failed", "err", err)
		} else if ok {
			m.loadedResult = &result
		}
		if settings, ok, err := storage.LoadSettings(store); err != nil {
			logger.Warn("loading settings failed", "err", err)
		} else if ok {
			m.loadedConfig = &settings
		}
		return nil
	})
}

// pollLoad applies the loaded state once the task has completed. Settings
// events that already arrived win over the persisted record.
func (m *Mode) pollLoad() {
	if m.loadTask == nil {
		return
	}
	select {
	case <-m.loadTask.Done():
	default:
		return
	}

	if m.loadedResult != nil {
		m.bestScore = m.loadedResult.Score
	}
	if m.loadedConfig != nil {
		m.applySettings(events.SettingsUpdateRequested{
			UIOpacity:             m.loadedConfig.UIOpacity,
			SpeedLevel:            m.loadedConfig.SpeedLevel,
			DifficultyProgression: m.loadedConfig.DifficultyProgression,
		})
	}
	m.loadTask = nil
}

// applySettings clamps and applies new tunables; they take effect on the
// next tick.
func (m *Mode) applySettings(ev events.SettingsUpdateRequested) {
	m.speedLevel = clampInt(ev.SpeedLevel, minSpeedLevel, maxSpeedLevel)
	m.uiOpacity = clampFloat(ev.UIOpacity, minUIOpacity, maxUIOpacity)
	m.progression = ev.DifficultyProgression
}

// rerollCooldown draws the next spawn cooldown: a fixed override when
// configured, otherwise uniform from the configured range.
func (m *Mode) rerollCooldown(ctx *engine.Context, stats *RunStats) {
	if m.cfg.Spawn.CooldownFixed > 0 {
		stats.SpawnCooldown = m.cfg.Spawn.CooldownFixed
		return
	}
	stats.SpawnCooldown = ctx.Rand.FloatRange(m.cfg.Spawn.CooldownMin, m.cfg.Spawn.CooldownMax)
}

// mustAttach attaches a component to an entity the mode just created.
// Failure means the world is corrupt, which is not recoverable.
func mustAttach[T any](w *ecs.World, e ecs.Entity, c T) {
	if err := ecs.Attach(w, e, c); err != nil {
		panic(fmt.Sprintf("classic: attach %T to %v: %v", c, e, err))
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
