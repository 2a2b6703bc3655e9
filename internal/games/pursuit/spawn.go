package pursuit

import (
	"math"

	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/ecs"
	"github.com/vovakirdan/tui-pursuit/internal/maze"
)

// Power-up markers.
const (
	PowerPellet = 'P' // scares adversaries
	PathPellet  = 'H' // reveals adversary paths
)

// populate creates every entity described by the graph's map text and admits
// it. The player is created last, at the first start tile.
func populate(eng *ecs.Engine[*World], w *World) {
	tile := w.TileSize
	r := w.Rules

	w.Graph.Each(func(x, y int, ch rune) {
		cx, cy := w.TileCenter(x, y)
		switch ch {
		case maze.Wall:
			spawnWall(eng, float64(x)*tile, float64(y)*tile, tile)
		case maze.Dot:
			spawnPickup(eng, cx, cy, r.DotRadius, ecs.Pickup{Reward: r.DotReward}, core.ColorYellow)
		case PowerPellet:
			spawnPickup(eng, cx, cy, r.PelletRadius, ecs.Pickup{Reward: r.PelletReward, Effect: ecs.EffectScare}, core.ColorRed)
		case PathPellet:
			spawnPickup(eng, cx, cy, r.PelletRadius, ecs.Pickup{Reward: r.PelletReward, Effect: ecs.EffectReveal}, core.ColorGreen)
		case maze.Ghost:
			spawnAdversary(eng, w, cx, cy)
		}
	})

	if start := w.Graph.Start(); start != nil {
		cx, cy := w.TileCenter(start.X, start.Y)
		w.Player = spawnPlayer(eng, cx, cy, r.PlayerRadius)
	}
}

func spawnWall(eng *ecs.Engine[*World], x, y, size float64) *ecs.Entity {
	e := eng.CreateEntity().
		Set(&ecs.Position{X: x, Y: y}).
		Set(ecs.RectShape(size, size)).
		Set(&ecs.Colour{Fill: core.ColorBlue, Stroke: core.ColorBlue}).
		Set(&ecs.Solid{})
	eng.Admit(e)
	return e
}

func spawnPickup(eng *ecs.Engine[*World], x, y, radius float64, p ecs.Pickup, fill core.Color) *ecs.Entity {
	e := eng.CreateEntity().
		Set(&ecs.Position{X: x, Y: y}).
		Set(ecs.CircleShape(radius)).
		Set(&ecs.Colour{Fill: fill}).
		Set(&p)
	eng.Admit(e)
	return e
}

// spawnAdversary creates an adversary in patrol mode heading for a random
// passable tile.
func spawnAdversary(eng *ecs.Engine[*World], w *World, x, y float64) *ecs.Entity {
	waypoint := w.randomTile()
	e := eng.CreateEntity().
		Set(&ecs.Position{X: x, Y: y}).
		Set(&ecs.Velocity{}).
		Set(ecs.CircleShape(w.Rules.AdversaryRadius)).
		Set(&ecs.Colour{Fill: core.ColorGreen, Stroke: core.ColorDefault}).
		Set(&ecs.SeekGoal{
			TargetX:  waypoint.X,
			TargetY:  waypoint.Y,
			Mode:     ecs.ModePatrol,
			Waypoint: waypoint,
		})
	eng.Admit(e)
	return e
}

func spawnPlayer(eng *ecs.Engine[*World], x, y, radius float64) *ecs.Entity {
	shape := ecs.CircleShape(radius)
	shape.Circle.StartAngle = math.Pi / 4
	shape.Circle.EndAngle = math.Pi * 7 / 4

	dir := &ecs.Direction{}
	dir.Face(ecs.HeadingRight)

	e := eng.CreateEntity().
		Set(&ecs.Position{X: x, Y: y}).
		Set(&ecs.Velocity{}).
		Set(shape).
		Set(&ecs.Colour{Fill: core.ColorBrightYellow}).
		Set(&ecs.Control{}).
		Set(dir)
	eng.Admit(e)
	return e
}
