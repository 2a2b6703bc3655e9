package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadPursuit loads the pursuit configuration.
// Search order: customPath -> ~/.pursuit/configs/pursuit.{yaml,toml} ->
// ./configs/pursuit.yaml -> embedded default -> DefaultPursuitConfig.
// Files are decoded over the defaults, so a file may set only some fields.
// Only an explicit customPath can produce an error; broken files found during
// the search are skipped.
func LoadPursuit(customPath string) (PursuitConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPursuitConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return DefaultPursuitConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("pursuit.yaml"),
		userConfigPath("pursuit.toml"),
		filepath.Join("configs", "pursuit.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decode("pursuit.yaml", DefaultYAML()); err == nil {
		return cfg, nil
	}
	return DefaultPursuitConfig(), nil
}

// decode parses data as TOML when path ends in .toml and as YAML otherwise.
func decode(path string, data []byte) (PursuitConfig, error) {
	cfg := DefaultPursuitConfig()
	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate reports settings the simulation cannot run with.
func (c PursuitConfig) Validate() error {
	switch {
	case c.Surface.Width <= 0:
		return fmt.Errorf("config: surface.width must be positive, got %v", c.Surface.Width)
	case c.Adversary.ReplanEvery <= 0:
		return fmt.Errorf("config: adversary.replan_every must be positive, got %d", c.Adversary.ReplanEvery)
	case c.Gameplay.Lives < 0:
		return fmt.Errorf("config: gameplay.lives must not be negative, got %d", c.Gameplay.Lives)
	case c.Player.Speed < 0 || c.Adversary.Speed < 0:
		return fmt.Errorf("config: speeds must not be negative")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pursuit", "configs", filename)
}

// ApplyPursuitPreset modifies the config based on a difficulty preset.
func ApplyPursuitPreset(cfg *PursuitConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 4
		cfg.Adversary.Speed = 0.02
	case DifficultyHard:
		cfg.Gameplay.Lives = 1
		cfg.Adversary.Speed = 0.03
		cfg.Adversary.ChaseRadius = 7
	}
}
