package classic

import "math"

// speedMultipliers maps the discrete speed level (1-5) to a base
// difficulty multiplier.
var speedMultipliers = [...]float64{1, 1.5, 2, 3, 4}

// progressionCap bounds the progression bonus; the multiplier never ramps
// past this value (a base above the cap stays at its base).
const progressionCap = 3.0

// baseMultiplier returns the base multiplier for a speed level, clamping
// out-of-range levels into [1, 5].
func baseMultiplier(level int) float64 {
	level = clampInt(level, minSpeedLevel, maxSpeedLevel)
	return speedMultipliers[level-1]
}

// updateDifficulty recomputes the difficulty multiplier: the base for the
// current speed level, plus 0.1 for every full 10 seconds of elapsed run
// time when progression is enabled, clamped to [base, 3.0].
func (m *Mode) updateDifficulty(stats *RunStats) {
	base := baseMultiplier(m.speedLevel)
	if !m.progression {
		stats.DifficultyMultiplier = base
		return
	}

	mult := base + 0.1*math.Floor(stats.Elapsed/10)
	if mult > progressionCap {
		mult = progressionCap
	}
	if mult < base {
		mult = base
	}
	stats.DifficultyMultiplier = mult
}
