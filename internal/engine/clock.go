package engine

import "time"

// Clock supplies the current time in milliseconds since an arbitrary
// monotonic epoch. The engine uses it only to compute per-tick deltas and
// to timestamp snapshots, so the epoch never matters.
type Clock interface {
	NowMillis() int64
}

// WallClock is the production Clock, anchored at construction time so the
// reading is monotonic for the life of the engine.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a clock anchored at the current instant.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
func (c *WallClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}
