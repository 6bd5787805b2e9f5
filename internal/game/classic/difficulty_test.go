package classic

import (
	"testing"

	"github.com/vovakirdan/astrotap/internal/config"
)

func TestBaseMultiplierTable(t *testing.T) {
	want := map[int]float64{1: 1, 2: 1.5, 3: 2, 4: 3, 5: 4}
	for level, mult := range want {
		if got := baseMultiplier(level); got != mult {
			t.Errorf("baseMultiplier(%d) = %v, want %v", level, got, mult)
		}
	}
	// Out-of-range levels clamp into the table.
	if got := baseMultiplier(0); got != 1 {
		t.Errorf("baseMultiplier(0) = %v, want 1", got)
	}
	if got := baseMultiplier(9); got != 4 {
		t.Errorf("baseMultiplier(9) = %v, want 4", got)
	}
}

func TestProgressionBonus(t *testing.T) {
	m := New(config.DefaultClassicConfig())
	m.speedLevel = 1
	m.progression = true

	cases := []struct {
		elapsed float64
		want    float64
	}{
		{0, 1},
		{9.99, 1},
		{10, 1.1},
		{25, 1.2},
		{100, 2},
		{200, 3},    // exactly at the cap
		{10000, 3},  // clamped
	}
	for _, tc := range cases {
		stats := &RunStats{Elapsed: tc.elapsed}
		m.updateDifficulty(stats)
		if stats.DifficultyMultiplier != tc.want {
			t.Errorf("elapsed %v: multiplier = %v, want %v", tc.elapsed, stats.DifficultyMultiplier, tc.want)
		}
	}
}

func TestProgressionNeverBelowBase(t *testing.T) {
	m := New(config.DefaultClassicConfig())
	m.speedLevel = 5 // base 4 exceeds the 3.0 ramp cap
	m.progression = true

	stats := &RunStats{Elapsed: 500}
	m.updateDifficulty(stats)
	if stats.DifficultyMultiplier != 4 {
		t.Errorf("multiplier = %v, want the base 4 when it exceeds the cap", stats.DifficultyMultiplier)
	}
}

func TestProgressionDisabled(t *testing.T) {
	m := New(config.DefaultClassicConfig())
	m.speedLevel = 3
	m.progression = false

	stats := &RunStats{Elapsed: 9999}
	m.updateDifficulty(stats)
	if stats.DifficultyMultiplier != 2 {
		t.Errorf("multiplier = %v, want the constant base 2", stats.DifficultyMultiplier)
	}
}

func TestProgressionMonotonic(t *testing.T) {
	m := New(config.DefaultClassicConfig())
	m.speedLevel = 2
	m.progression = true

	prev := 0.0
	for elapsed := 0.0; elapsed <= 300; elapsed += 5 {
		stats := &RunStats{Elapsed: elapsed}
		m.updateDifficulty(stats)
		if stats.DifficultyMultiplier < prev {
			t.Fatalf("multiplier decreased at elapsed %v: %v < %v", elapsed, stats.DifficultyMultiplier, prev)
		}
		prev = stats.DifficultyMultiplier
	}
}
