package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pursuit.yaml
var defaultPursuitYAML []byte

// DefaultPursuitConfig returns the built-in pursuit configuration.
func DefaultPursuitConfig() PursuitConfig {
	return PursuitConfig{
		Surface: SurfaceConfig{
			Width: 640,
		},
		Player: PlayerConfig{
			Speed:  0.1,
			Radius: 0.8,
		},
		Adversary: AdversaryConfig{
			Speed:        0.025,
			Radius:       0.5,
			ReplanEvery:  30,
			ChaseRadius:  5,
			Reward:       200,
			RespawnDelay: 5 * time.Second,
		},
		Items: ItemsConfig{
			DotReward:    100,
			DotRadius:    0.15,
			PelletReward: 50,
			PelletRadius: 0.4,
		},
		Effects: EffectsConfig{
			ScaredDuration:   15 * time.Second,
			PathViewDuration: 15 * time.Second,
		},
		Gameplay: GameplayConfig{
			Lives: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPursuitYAML
}
