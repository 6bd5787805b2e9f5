package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// DefaultClassicConfig returns the default classic-mode configuration.
func DefaultClassicConfig() ClassicConfig {
	return ClassicConfig{
		Area: AreaConfig{
			Width:  360,
			Height: 640,
		},
		Asteroid: AsteroidConfig{
			Radius:          24,
			BaseSpeed:       72,
			AngularVelocity: 1.5,
			EscapePadding:   120,
		},
		Spawn: SpawnConfig{
			CooldownMin:   0.5,
			CooldownMax:   1.5,
			CooldownFixed: 0,
		},
		Scoring: ScoringConfig{
			PerHit: 10,
		},
		Defaults: DefaultsConfig{
			SpeedLevel:            2,
			DifficultyProgression: true,
			UIOpacity:             1.0,
		},
		Engine: EngineConfig{
			MaxDeltaMs: 250,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for the classic mode.
func GetDefaultYAML() []byte {
	return defaultClassicYAML
}
