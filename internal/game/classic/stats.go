package classic

import (
	"github.com/vovakirdan/astrotap/internal/engine"
	"github.com/vovakirdan/astrotap/internal/events"
)

// publishStats snapshots the run counters after the gameplay systems have
// run and publishes them for HUDs and observers.
func (m *Mode) publishStats(ctx *engine.Context, stats *RunStats) {
	ctx.Bus.Publish(events.StatsUpdated{Snapshot: events.StatsSnapshot{
		Spawned:              stats.Spawned,
		Escaped:              stats.Escaped,
		Hits:                 stats.Hits,
		Misses:               stats.Misses,
		Score:                stats.Score,
		DifficultyMultiplier: stats.DifficultyMultiplier,
		Elapsed:              stats.Elapsed,
		Paused:               ctx.State() == engine.StatePaused,
	}})
}
