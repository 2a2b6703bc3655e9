// Package config provides YAML/TOML game configuration loading and
// difficulty management for pursuit.
package config

import "time"

// PursuitConfig contains all tunables of the pursuit simulation.
// Distances are expressed in tiles or half-tiles so one file works for any
// map size; the game converts them to surface units at level load.
type PursuitConfig struct {
	Surface    SurfaceConfig    `yaml:"surface" toml:"surface"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Adversary  AdversaryConfig  `yaml:"adversary" toml:"adversary"`
	Items      ItemsConfig      `yaml:"items" toml:"items"`
	Effects    EffectsConfig    `yaml:"effects" toml:"effects"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// SurfaceConfig defines the simulated drawing surface.
type SurfaceConfig struct {
	Width float64 `yaml:"width" toml:"width"` // surface units across the map
}

// PlayerConfig defines the player agent.
type PlayerConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"`   // tiles per tick
	Radius float64 `yaml:"radius" toml:"radius"` // half-tiles
}

// AdversaryConfig defines the autonomous chasers.
type AdversaryConfig struct {
	Speed        float64       `yaml:"speed" toml:"speed"`               // tiles per tick
	Radius       float64       `yaml:"radius" toml:"radius"`             // half-tiles
	ReplanEvery  int           `yaml:"replan_every" toml:"replan_every"` // ticks between path recomputation
	ChaseRadius  int           `yaml:"chase_radius" toml:"chase_radius"` // path edges
	Reward       int           `yaml:"reward" toml:"reward"`
	RespawnDelay time.Duration `yaml:"respawn_delay" toml:"respawn_delay"`
}

// ItemsConfig defines collectibles.
type ItemsConfig struct {
	DotReward    int     `yaml:"dot_reward" toml:"dot_reward"`
	DotRadius    float64 `yaml:"dot_radius" toml:"dot_radius"` // half-tiles
	PelletReward int     `yaml:"pellet_reward" toml:"pellet_reward"`
	PelletRadius float64 `yaml:"pellet_radius" toml:"pellet_radius"` // half-tiles
}

// EffectsConfig defines the durations of the timed global flags.
type EffectsConfig struct {
	ScaredDuration   time.Duration `yaml:"scared_duration" toml:"scared_duration"`
	PathViewDuration time.Duration `yaml:"path_view_duration" toml:"path_view_duration"`
}

// GameplayConfig defines run-level rules.
type GameplayConfig struct {
	Lives int `yaml:"lives" toml:"lives"` // spare lives; dying with none left ends the run
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
