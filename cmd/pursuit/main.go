// pursuit is a terminal maze chase: collect every dot while adversaries hunt
// you along shortest paths, and turn the tables with a power pellet.
//
// Usage:
//
//	pursuit play [game]      - Play (pursuit or pursuit_endless)
//	pursuit menu             - Pick mode and level interactively
//	pursuit list             - List game modes and levels
//	pursuit scores [game]    - Show high scores
//	pursuit serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.pursuit/scores.db)
//	--config <path>       - Game config (YAML or TOML)
//	--difficulty <preset> - easy, normal, hard, fixed
//	--levels <dir>        - Use the maps in dir instead of the built-in pack
//	--map <file|id>       - Play a single map file or level
//	--log-file <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/games/pursuit"
	"github.com/vovakirdan/tui-pursuit/internal/levels"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagMap        string
	flagLogFile    string

	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pursuit",
	Short: "Pursuit - a maze chase in your terminal",
	Long: `Pursuit is a maze chase played in the terminal.

Collect every dot to clear the level. Adversaries patrol the maze and chase
you along the shortest path once you come close. A power pellet (P) makes
them edible for a while; a path pellet (H) reveals where they are heading.

Available commands:
  play     - Play directly
  menu     - Interactive mode and level picker
  list     - Show game modes and levels
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  pursuit play
  pursuit play pursuit_endless --difficulty hard
  pursuit play --map ./maps/spiral.txt
  pursuit play --map spiral
  pursuit menu --levels ./maps
  pursuit serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.pursuit/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to game config (YAML or TOML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of map files to use instead of the built-in pack")
	pf.StringVar(&flagMap, "map", "", "Single map to play: a file path or a level ID")
	pf.StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup applies the global flags to the game package before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		pursuit.SetLogger(log.NewWithOptions(f, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
			Prefix:          "pursuit",
		}))
	}

	pursuit.SetConfigPath(flagConfig)
	pursuit.SetDifficultyPreset(flagDifficulty)

	pack, err := loadPack()
	if err != nil {
		return err
	}
	pursuit.SetLevels(pack)
	return nil
}

// loadPack resolves the level pack from --map and --levels. With both set,
// --map names a level inside the --levels directory.
// Nil means the built-in pack.
func loadPack() ([]levels.Level, error) {
	switch {
	case flagMap != "":
		lvl, err := levels.Resolve(flagMap, flagLevelsDir)
		if err != nil {
			return nil, err
		}
		return []levels.Level{lvl}, nil

	case flagLevelsDir != "":
		pack, err := levels.NewLoader(flagLevelsDir).LoadAll()
		if err != nil {
			return nil, err
		}
		if len(pack) == 0 {
			return nil, fmt.Errorf("no valid maps in %s", flagLevelsDir)
		}
		return pack, nil
	}
	return nil, nil
}

// currentPack returns the pack the games will play.
func currentPack() []levels.Level {
	pack, err := loadPack()
	if err != nil || len(pack) == 0 {
		return levels.Builtin()
	}
	return pack
}
