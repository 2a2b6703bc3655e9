package pursuit

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/ecs"
	"github.com/vovakirdan/tui-pursuit/internal/maze"
)

// Rules are the tunables of one level expressed in surface units.
// They are derived from the configuration when a level is built.
type Rules struct {
	PlayerSpeed     float64 // units per tick
	AdversarySpeed  float64 // units per tick
	PlayerRadius    float64
	AdversaryRadius float64
	DotRadius       float64
	PelletRadius    float64

	ReplanEvery int // ticks
	ChaseRadius int // path edges

	DotReward       int
	PelletReward    int
	AdversaryReward int

	ScaredFor    time.Duration
	PathViewFor  time.Duration
	RespawnDelay time.Duration
}

// rulesFor converts cfg to surface units for the given tile size.
// adversarySpeed is in tiles per tick and already scaled by difficulty.
func rulesFor(cfg config.PursuitConfig, tile, adversarySpeed float64) Rules {
	half := tile / 2
	replan := max(cfg.Adversary.ReplanEvery, 1)

	// Adversaries only steer on replan ticks; more than one tile per plan
	// would carry them through the wall at the end of a corridor.
	advSpeed := math.Min(adversarySpeed*tile, tile/float64(replan))

	return Rules{
		PlayerSpeed:     cfg.Player.Speed * tile,
		AdversarySpeed:  advSpeed,
		PlayerRadius:    cfg.Player.Radius * half,
		AdversaryRadius: cfg.Adversary.Radius * half,
		DotRadius:       cfg.Items.DotRadius * half,
		PelletRadius:    cfg.Items.PelletRadius * half,

		ReplanEvery: replan,
		ChaseRadius: cfg.Adversary.ChaseRadius,

		DotReward:       cfg.Items.DotReward,
		PelletReward:    cfg.Items.PelletReward,
		AdversaryReward: cfg.Adversary.Reward,

		ScaredFor:    cfg.Effects.ScaredDuration,
		PathViewFor:  cfg.Effects.PathViewDuration,
		RespawnDelay: cfg.Adversary.RespawnDelay,
	}
}

// respawn is an eaten adversary waiting to come back.
type respawn struct {
	at   time.Time
	x, y float64
}

// World is the state shared by every system and the collision pass.
// It is rebuilt from scratch on each level load.
type World struct {
	Graph    *maze.Graph
	TileSize float64
	Rules    Rules

	Score    int
	Lives    int
	GameOver bool
	Scared   Timer
	PathView Timer

	// Tick counts simulated ticks since the level was built, starting at 0.
	Tick uint64
	// Now is the clock reading for the current tick.
	Now time.Time
	// Input is the directional signal received this tick, if any.
	Input ecs.Heading

	Player *ecs.Entity
	// Frame is the draw list produced by the render dispatch system.
	Frame []Sprite

	respawns []respawn
	rng      *rand.Rand
	logger   *log.Logger
}

// IsScared reports whether adversaries are currently vulnerable.
func (w *World) IsScared() bool {
	return w.Scared.Active(w.Now)
}

// ShowPaths reports whether adversary paths are currently displayed.
func (w *World) ShowPaths() bool {
	return w.PathView.Active(w.Now)
}

// TileAt returns the tile containing surface point (x, y).
func (w *World) TileAt(x, y float64) ecs.Tile {
	return ecs.Tile{
		X: int(math.Floor(x / w.TileSize)),
		Y: int(math.Floor(y / w.TileSize)),
	}
}

// NodeAt returns the graph node containing (x, y), or nil outside the map.
func (w *World) NodeAt(x, y float64) *maze.Node {
	t := w.TileAt(x, y)
	return w.Graph.Get(t.X, t.Y)
}

// TileCenter returns the surface coordinates of the center of tile (tx, ty).
func (w *World) TileCenter(tx, ty int) (x, y float64) {
	return float64(tx)*w.TileSize + w.TileSize/2, float64(ty)*w.TileSize + w.TileSize/2
}

// PlayerNode returns the node the player currently stands on.
func (w *World) PlayerNode() *maze.Node {
	pos := ecs.Must[*ecs.Position](w.Player)
	return w.NodeAt(pos.X, pos.Y)
}

// PendingRespawns returns how many eaten adversaries are waiting to return.
func (w *World) PendingRespawns() int {
	return len(w.respawns)
}

func (w *World) randomTile() ecs.Tile {
	n := w.Graph.RandomPassable(w.rng)
	return ecs.Tile{X: n.X, Y: n.Y}
}
