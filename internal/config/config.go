// Package config provides YAML-based configuration loading for the
// simulation core and its shells.
package config

// ClassicConfig contains all tunables for the classic tap-the-asteroid mode.
type ClassicConfig struct {
	Area     AreaConfig     `yaml:"area"`
	Asteroid AsteroidConfig `yaml:"asteroid"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Engine   EngineConfig   `yaml:"engine"`
}

// AreaConfig defines the play rectangle, in logical units.
type AreaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AsteroidConfig defines the single moving target.
type AsteroidConfig struct {
	Radius          float64 `yaml:"radius"`           // Collider radius
	BaseSpeed       float64 `yaml:"base_speed"`       // Downward units/second before difficulty scaling
	AngularVelocity float64 `yaml:"angular_velocity"` // Radians/second, cosmetic spin
	EscapePadding   float64 `yaml:"escape_padding"`   // Margin beyond the play rectangle before an escape counts
}

// SpawnConfig defines the spawn-cooldown behavior.
type SpawnConfig struct {
	CooldownMin   float64 `yaml:"cooldown_min"`   // Seconds, lower bound of the reroll range
	CooldownMax   float64 `yaml:"cooldown_max"`   // Seconds, upper bound of the reroll range
	CooldownFixed float64 `yaml:"cooldown_fixed"` // Seconds; > 0 overrides the range with a fixed cooldown
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	PerHit int `yaml:"per_hit"`
}

// DefaultsConfig defines the tunables applied when the mode is entered,
// before any persisted settings or settings events arrive.
type DefaultsConfig struct {
	SpeedLevel            int     `yaml:"speed_level"`            // Discrete 1-5
	DifficultyProgression bool    `yaml:"difficulty_progression"` // Slow ramp with elapsed time
	UIOpacity             float64 `yaml:"ui_opacity"`             // 0.2-1.0
}

// EngineConfig defines engine-level timing behavior.
type EngineConfig struct {
	// MaxDeltaMs clamps a single simulation step so a suspend/resume gap
	// cannot produce one catastrophic step.
	MaxDeltaMs int `yaml:"max_delta_ms"`
}
