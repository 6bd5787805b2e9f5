package events

// Snapshot records published once per tick. All of them are immutable,
// fully-materialized value types: the mode builds them from world state and
// never touches them again after publication.

// ShapeModel is one drawable shape of a render frame, in play-area
// coordinates.
type ShapeModel struct {
	X, Y     float64
	Radius   float64
	Rotation float64
	Opacity  float64
}

// HudModel summarizes the run for the heads-up display.
type HudModel struct {
	Score                int
	Hits                 int
	Misses               int
	Escaped              int
	BestScore            int
	Elapsed              float64
	DifficultyMultiplier float64
}

// UiState carries the UI-visibility flags derived from the lifecycle state.
type UiState struct {
	ShowStartScreen bool
	ShowPauseModal  bool
	ShowQuitModal   bool
}

// RenderFrame is the complete per-tick render snapshot.
type RenderFrame struct {
	Shapes      []ShapeModel
	Hud         HudModel
	UI          UiState
	TimestampMs int64
}

// StatsSnapshot is the per-tick statistics snapshot, tagged with the paused
// flag at publication time.
type StatsSnapshot struct {
	Spawned              int
	Escaped              int
	Hits                 int
	Misses               int
	Score                int
	DifficultyMultiplier float64
	Elapsed              float64
	Paused               bool
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s StatsSnapshot) Hash() uint64 {
	h := uint64(s.Spawned)                                //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Escaped)                          //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Hits)                             //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Misses)                           //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)                            //#nosec G115 -- hash computation
	h = h*31 + uint64(s.DifficultyMultiplier*1000)        //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Elapsed*1000)                     //#nosec G115 -- hash computation
	if s.Paused {
		h = h*31 + 1
	} else {
		h = h * 31
	}
	return h
}
