// Package pursuit implements the maze pursuit game: a player collects dots
// while adversaries hunt it along shortest paths through the level graph.
package pursuit

import (
	"errors"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/ecs"
	"github.com/vovakirdan/tui-pursuit/internal/levels"
	"github.com/vovakirdan/tui-pursuit/internal/maze"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// levelClearTicks is the pause between clearing a level and loading the next.
const levelClearTicks = 90

// Clock returns the current time. Timed effects are measured against it.
type Clock func() time.Time

// Package-level settings applied on the next Reset. SSH sessions reset
// concurrently, so access goes through settingsMu.
var (
	settingsMu         sync.Mutex
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
	levelPack          []levels.Level
	logger             = log.New(io.Discard)
)

// SetConfigPath sets the config file to load on Reset. Empty uses the search order.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-based). 0 means start from the beginning.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = level
}

// SetLevels replaces the level pack. Nil restores the built-in pack.
func SetLevels(pack []levels.Level) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	levelPack = pack
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	logger = l
}

type settings struct {
	configPath string
	preset     string
	startLevel int
	pack       []levels.Level
}

// takeSettings snapshots the package settings. The start level applies to
// one game only and is cleared.
func takeSettings() settings {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	s := settings{
		configPath: configPath,
		preset:     difficultyPreset,
		startLevel: selectedStartLevel,
		pack:       levelPack,
	}
	selectedStartLevel = 0
	return s
}

// Game implements registry.Game for pursuit.
type Game struct {
	mode   Mode
	clock  Clock
	logger *log.Logger
	rng    *rand.Rand

	cfg        config.PursuitConfig
	difficulty *config.DifficultyManager

	pack       []levels.Level
	levelIndex int
	level      levels.Level
	startLevel int // per-game override of selectedStartLevel

	engine   *ecs.Engine[*World]
	render   *RenderSystem
	resolver *Resolver
	world    *World

	// ticks counts simulated ticks across levels, for time-based difficulty.
	ticks int

	screenW int
	screenH int

	paused       bool
	pausedAt     time.Time // when the game last stopped for a pause or a small screen
	levelCleared bool
	clearTicks   int
	won          bool
	tooSmall     bool
}

// New creates a new campaign mode game.
func New() *Game {
	return newGame(ModeCampaign)
}

// NewEndless creates a new endless mode game that loops the level pack.
func NewEndless() *Game {
	return newGame(ModeEndless)
}

func newGame(mode Mode) *Game {
	settingsMu.Lock()
	l := logger
	settingsMu.Unlock()

	g := &Game{
		mode:   mode,
		clock:  time.Now,
		logger: l,
		engine: ecs.NewEngine[*World](),
		render: NewRenderSystem(),
	}
	g.engine.RegisterSystem(NewControlSystem())
	g.engine.RegisterSystem(NewSeekSystem())
	g.engine.RegisterSystem(NewMovementSystem())
	g.engine.RegisterSystem(g.render)
	g.resolver = NewResolver(g.engine)
	return g
}

func init() {
	registry.Register("pursuit", func() registry.Game {
		return New()
	})
	registry.Register("pursuit_endless", func() registry.Game {
		return NewEndless()
	})
}

// SetClock replaces the time source. Call before Reset.
func (g *Game) SetClock(c Clock) {
	g.clock = c
}

// StartAt makes the next Reset begin at the given 1-based level. Unlike
// SetStartLevel it only affects this game, so concurrent sessions can pick
// their own level.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// Resize adapts to a new screen size without restarting the level. A screen
// too small for the maze holds the game like a pause.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.world != nil {
		g.hold(g.clock(), g.paused, g.tooSmallFor(g.world.Graph))
	}
}

func (g *Game) tooSmallFor(graph *maze.Graph) bool {
	return g.screenW < requiredWidth(graph) || g.screenH < requiredHeight(graph)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "pursuit_endless"
	}
	return "pursuit"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Pursuit (Endless)"
	}
	return "Pursuit"
}

// Reset loads configuration and starts the first level with a fresh score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.ticks = 0
	g.won = false

	set := takeSettings()
	c, err := config.LoadPursuit(set.configPath)
	if err != nil {
		g.logger.Warn("config not loaded, using defaults", "path", set.configPath, "err", err)
		c = config.DefaultPursuitConfig()
	}
	config.ApplyPursuitPreset(&c, config.ParsePreset(set.preset))
	g.cfg = c
	g.difficulty = config.NewDifficultyManager(c.Difficulty)

	g.pack = set.pack
	if len(g.pack) == 0 {
		g.pack = levels.Builtin()
	}

	start := set.startLevel
	if g.startLevel > 0 {
		start = g.startLevel
	}
	g.levelIndex = 0
	if g.mode == ModeCampaign && start > 0 && start <= len(g.pack) {
		g.levelIndex = start - 1
	}
	// Applies once; restarting begins from the first level.
	g.startLevel = 0

	g.level = g.pack[g.levelIndex]
	g.build(0, c.Gameplay.Lives)
}

// ErrNotStarted is returned by Reload on a game that was never Reset.
var ErrNotStarted = errors.New("pursuit: game not started, call Reset first")

// Reload replaces the current level with the given map text, resetting score,
// lives and every timed effect. Invalid text leaves the game untouched.
func (g *Game) Reload(text string) error {
	if g.world == nil {
		return ErrNotStarted
	}
	lvl, err := levels.Parse("custom", text)
	if err != nil {
		return err
	}
	g.level = lvl
	g.won = false
	g.build(0, g.cfg.Gameplay.Lives)
	return nil
}

// build discards every entity and the previous graph and populates a fresh
// world from the current level, carrying over score and lives.
func (g *Game) build(score, lives int) {
	g.engine.Reset()
	g.paused, g.tooSmall = false, false
	g.levelCleared = false
	g.clearTicks = 0

	graph := maze.Build(g.level.Layout)
	tile := graph.TileSize(g.cfg.Surface.Width)
	speed := g.difficulty.Speed(g.cfg.Adversary.Speed, score, g.ticks)

	w := &World{
		Graph:    graph,
		TileSize: tile,
		Rules:    rulesFor(g.cfg, tile, speed),
		Score:    score,
		Lives:    lives,
		Now:      g.clock(),
		rng:      g.rng,
		logger:   g.logger,
	}
	g.world = w
	populate(g.engine, w)
	g.render.Update(w)

	g.hold(w.Now, false, g.tooSmallFor(graph))

	g.logger.Info("level loaded",
		"level", g.level.ID,
		"tile", tile,
		"entities", g.engine.Len(),
		"adversaries", g.engine.Count(ecs.KindSeekGoal),
		"pickups", g.engine.Count(ecs.KindPickup))
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	w := g.world

	if input.Has(core.ActionRestart) && (w.GameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	now := g.clock()
	if input.Has(core.ActionPause) && !w.GameOver && !g.won {
		g.togglePause(now)
	}

	if w.GameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.clearTicks++
		if g.clearTicks >= levelClearTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	w.Now = now
	w.Input = headingFor(input.Direction())

	expireTimers(w, func(x, y float64) {
		spawnAdversary(g.engine, w, x, y)
	})
	g.engine.Tick(w)
	g.resolver.Update(w)
	// The draw list was built before the collision pass; rebuild it so
	// collected items and eaten adversaries vanish this tick.
	g.render.Update(w)

	w.Tick++
	g.ticks++

	if !w.GameOver && g.engine.Count(ecs.KindPickup) == 0 {
		g.levelCleared = true
		g.clearTicks = 0
		g.logger.Info("level cleared", "level", g.level.ID, "score", w.Score)
	}

	return core.StepResult{State: g.State()}
}

// togglePause freezes or resumes the game.
func (g *Game) togglePause(now time.Time) {
	g.hold(now, !g.paused, g.tooSmall)
}

// hold sets the pause and small-screen flags. The game is stopped while
// either is up; timed effects are shifted by the stopped interval when both
// come down, so they resume with the time they had left.
func (g *Game) hold(now time.Time, paused, tooSmall bool) {
	was := g.paused || g.tooSmall
	g.paused, g.tooSmall = paused, tooSmall
	switch is := paused || tooSmall; {
	case is && !was:
		g.pausedAt = now
	case was && !is:
		shiftTimers(g.world, now.Sub(g.pausedAt))
	}
}

// advanceLevel moves to the next level of the pack.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.mode == ModeCampaign && g.levelIndex >= len(g.pack) {
		g.won = true
		g.levelCleared = false
		g.logger.Info("campaign won", "score", g.world.Score)
		return
	}
	g.level = g.pack[g.levelIndex%len(g.pack)]
	g.build(g.world.Score, g.world.Lives)
}

func headingFor(a core.Action) ecs.Heading {
	switch a {
	case core.ActionUp:
		return ecs.HeadingUp
	case core.ActionLeft:
		return ecs.HeadingLeft
	case core.ActionDown:
		return ecs.HeadingDown
	case core.ActionRight:
		return ecs.HeadingRight
	default:
		return ecs.HeadingNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score,
		Lives:    g.world.Lives,
		Level:    g.level.ID,
		LevelKey: g.level.Fingerprint(),
		GameOver: g.world.GameOver || g.won,
		Paused:   g.paused,
	}
}

// World exposes the simulation state for inspection.
func (g *Game) World() *World {
	return g.world
}

// Engine exposes the entity engine for inspection.
func (g *Game) Engine() *ecs.Engine[*World] {
	return g.engine
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}
