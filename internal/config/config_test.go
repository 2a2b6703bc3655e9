package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultPursuitConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultPursuitConfig() {
		t.Errorf("embedded defaults drifted from DefaultPursuitConfig():\n got %+v\nwant %+v", cfg, DefaultPursuitConfig())
	}
}

func TestLoadPursuitYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "adversary:\n  chase_radius: 8\neffects:\n  scared_duration: 10s\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPursuit(path)
	if err != nil {
		t.Fatalf("LoadPursuit() error = %v", err)
	}
	if cfg.Adversary.ChaseRadius != 8 {
		t.Errorf("ChaseRadius = %d, expected 8", cfg.Adversary.ChaseRadius)
	}
	if cfg.Effects.ScaredDuration != 10*time.Second {
		t.Errorf("ScaredDuration = %v, expected 10s", cfg.Effects.ScaredDuration)
	}
	if cfg.Adversary.ReplanEvery != 30 {
		t.Errorf("unset fields should keep defaults, ReplanEvery = %d", cfg.Adversary.ReplanEvery)
	}
}

func TestLoadPursuitTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := `
[gameplay]
lives = 5

[adversary]
respawn_delay = "3s"
speed = 0.05
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPursuit(path)
	if err != nil {
		t.Fatalf("LoadPursuit() error = %v", err)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	if cfg.Adversary.RespawnDelay != 3*time.Second {
		t.Errorf("RespawnDelay = %v, expected 3s", cfg.Adversary.RespawnDelay)
	}
	if cfg.Adversary.Speed != 0.05 {
		t.Errorf("Speed = %v, expected 0.05", cfg.Adversary.Speed)
	}
}

func TestLoadPursuitErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPursuit(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("surface:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadPursuit(bad)
	if err == nil {
		t.Error("invalid config should fail validation")
	}
	if cfg != DefaultPursuitConfig() {
		t.Error("failed load should return defaults")
	}
}

func TestApplyPursuitPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		enabled  bool
		initial  float64
		lives    int
		advSpeed float64
	}{
		{DifficultyEasy, true, 0.0, 4, 0.02},
		{DifficultyNormal, true, 0.3, 2, 0.025},
		{DifficultyHard, true, 0.7, 1, 0.03},
		{DifficultyFixed, false, 0.0, 2, 0.025},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPursuitConfig()
			ApplyPursuitPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.initial)
			}
			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tt.lives)
			}
			if cfg.Adversary.Speed != tt.advSpeed {
				t.Errorf("Adversary.Speed = %v, expected %v", cfg.Adversary.Speed, tt.advSpeed)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should parse to empty")
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 1.0},
		{500, 1.5},
		{1000, 2.0},
		{5000, 2.0},
	}
	for _, tt := range tests {
		if got := d.Speed(1.0, tt.score, 0); got != tt.want {
			t.Errorf("Speed(score=%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}

	off := NewDifficultyManager(DifficultyConfig{
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})
	if got := off.Speed(1.0, 1000, 0); got != 1.0 {
		t.Errorf("disabled progression should keep base speed, got %v", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := d.Level(0, 50); got != 0.75 {
		t.Errorf("Level(ticks=50) = %v, expected 0.75", got)
	}
	high := NewDifficultyManager(DifficultyConfig{InitialLevel: 2})
	if got := high.Level(0, 0); got != 1.0 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}
