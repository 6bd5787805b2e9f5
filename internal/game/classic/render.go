package classic

import (
	"github.com/vovakirdan/astrotap/internal/ecs"
	"github.com/vovakirdan/astrotap/internal/engine"
	"github.com/vovakirdan/astrotap/internal/events"
)

// publishFrame materializes the complete render snapshot for the current
// world state and publishes it. Also called outside the tick pipeline on
// lifecycle transitions, so modal flags stay fresh while paused or idle.
func (m *Mode) publishFrame(ctx *engine.Context) {
	frame := events.RenderFrame{
		UI:          m.uiState(ctx.State()),
		TimestampMs: ctx.Clock.NowMillis(),
	}

	for _, e := range ctx.World.Query(transformKind, colliderKind) {
		t := ecs.MustGet[Transform](ctx.World, e)
		c := ecs.MustGet[ColliderCircle](ctx.World, e)
		frame.Shapes = append(frame.Shapes, events.ShapeModel{
			X:        t.X,
			Y:        t.Y,
			Radius:   c.Radius,
			Rotation: t.Rotation,
			Opacity:  m.uiOpacity,
		})
	}

	if stats, ok := ecs.Get[RunStats](ctx.World, m.run); ok {
		frame.Hud = events.HudModel{
			Score:                stats.Score,
			Hits:                 stats.Hits,
			Misses:               stats.Misses,
			Escaped:              stats.Escaped,
			BestScore:            m.bestScore,
			Elapsed:              stats.Elapsed,
			DifficultyMultiplier: stats.DifficultyMultiplier,
		}
	}

	ctx.Bus.Publish(events.RenderFrameReady{Frame: frame})
}

func (m *Mode) uiState(s engine.State) events.UiState {
	return events.UiState{
		ShowStartScreen: s == engine.StateIdle,
		ShowPauseModal:  s == engine.StatePaused,
		ShowQuitModal:   s == engine.StateQuit,
	}
}
