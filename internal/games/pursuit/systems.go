package pursuit

import (
	"slices"

	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/ecs"
	"github.com/vovakirdan/tui-pursuit/internal/maze"
)

// ControlSystem applies the tick's directional signal to steered entities.
// The signal takes effect immediately and replaces any previous heading.
type ControlSystem struct {
	ecs.Roster
}

func NewControlSystem() *ControlSystem {
	return &ControlSystem{Roster: ecs.NewRoster(ecs.KindControl, ecs.KindVelocity, ecs.KindDirection)}
}

func (s *ControlSystem) Update(w *World) {
	if w.Input == ecs.HeadingNone {
		return
	}
	dx, dy := w.Input.Unit()
	for _, e := range s.Entities() {
		vel := ecs.Must[*ecs.Velocity](e)
		vel.DX = dx * w.Rules.PlayerSpeed
		vel.DY = dy * w.Rules.PlayerSpeed
		ecs.Must[*ecs.Direction](e).Face(w.Input)
	}
}

// SeekSystem steers adversaries along shortest paths. Plans are recomputed
// only on ticks divisible by Rules.ReplanEvery; in between, adversaries keep
// their velocity.
type SeekSystem struct {
	ecs.Roster
}

func NewSeekSystem() *SeekSystem {
	return &SeekSystem{Roster: ecs.NewRoster(ecs.KindPosition, ecs.KindVelocity, ecs.KindSeekGoal)}
}

func (s *SeekSystem) Update(w *World) {
	if w.Tick%uint64(w.Rules.ReplanEvery) != 0 {
		return
	}

	target := w.PlayerNode()
	scared := w.IsScared()

	for _, e := range s.Entities() {
		pos := ecs.Must[*ecs.Position](e)
		vel := ecs.Must[*ecs.Velocity](e)
		goal := ecs.Must[*ecs.SeekGoal](e)
		replan(w, pos, vel, goal, target, scared)
	}
}

// replan runs one planning cycle for a single adversary.
func replan(w *World, pos *ecs.Position, vel *ecs.Velocity, goal *ecs.SeekGoal, player *maze.Node, scared bool) {
	cur := w.NodeAt(pos.X, pos.Y)
	if cur == nil {
		vel.Stop()
		goal.Path = nil
		return
	}

	var path []*maze.Node
	goal.Mode = ecs.ModePatrol
	if !scared && player != nil {
		chase := maze.FindPath(cur, player)
		if len(chase) > 0 && len(chase)-1 <= w.Rules.ChaseRadius {
			goal.Mode = ecs.ModeChase
			goal.TargetX, goal.TargetY = player.X, player.Y
			path = chase
		}
	}
	if goal.Mode == ecs.ModePatrol {
		goal.TargetX, goal.TargetY = goal.Waypoint.X, goal.Waypoint.Y
		path = maze.FindPath(cur, w.Graph.Get(goal.TargetX, goal.TargetY))
	}

	goal.Path = goal.Path[:0]
	for _, n := range path {
		goal.Path = append(goal.Path, ecs.Tile{X: n.X, Y: n.Y})
	}

	if len(path) < 2 {
		// Arrived or stuck: hold still and head somewhere new next cycle.
		vel.Stop()
		goal.Waypoint = w.randomTile()
		return
	}

	next := path[1]
	speed := w.Rules.AdversarySpeed
	switch {
	case next.X > cur.X:
		vel.DX, vel.DY = speed, 0
	case next.X < cur.X:
		vel.DX, vel.DY = -speed, 0
	case next.Y < cur.Y:
		vel.DX, vel.DY = 0, -speed
	case next.Y > cur.Y:
		vel.DX, vel.DY = 0, speed
	}
}

// MovementSystem integrates velocity into position.
type MovementSystem struct {
	ecs.Roster
}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{Roster: ecs.NewRoster(ecs.KindPosition, ecs.KindVelocity)}
}

func (s *MovementSystem) Update(*World) {
	for _, e := range s.Entities() {
		pos := ecs.Must[*ecs.Position](e)
		vel := ecs.Must[*ecs.Velocity](e)
		pos.X += vel.DX
		pos.Y += vel.DY
	}
}

// SpriteKind tells the renderer which glyph family to use.
type SpriteKind uint8

const (
	SpriteWall SpriteKind = iota
	SpriteDot
	SpritePowerPellet
	SpritePathPellet
	SpriteAdversary
	SpritePlayer
)

// Sprite is one entry of the draw list handed to the renderer.
type Sprite struct {
	Kind   SpriteKind
	X, Y   float64 // Position component as stored
	Shape  ecs.Shape
	Fill   core.Color
	Stroke core.Color
	Facing ecs.Heading
	Path   []ecs.Tile // planned route, only while paths are shown
}

// RenderSystem copies the drawable state of every entity into World.Frame.
// It never writes to components. Each update builds a new frame, so a frame
// taken earlier is never overwritten.
type RenderSystem struct {
	ecs.Roster
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{Roster: ecs.NewRoster(ecs.KindPosition, ecs.KindShape, ecs.KindColour)}
}

func (s *RenderSystem) Update(w *World) {
	w.Frame = make([]Sprite, 0, s.Len())
	scared := w.IsScared()
	paths := w.ShowPaths()

	for _, e := range s.Entities() {
		pos := ecs.Must[*ecs.Position](e)
		col := ecs.Must[*ecs.Colour](e)
		sp := Sprite{
			X:      pos.X,
			Y:      pos.Y,
			Shape:  *ecs.Must[*ecs.Shape](e),
			Fill:   col.Fill,
			Stroke: col.Stroke,
		}

		switch {
		case e.Has(ecs.KindSolid):
			sp.Kind = SpriteWall
		case e.Has(ecs.KindPickup):
			sp.Kind = pickupSprite(ecs.Must[*ecs.Pickup](e).Effect)
		case e.Has(ecs.KindSeekGoal):
			sp.Kind = SpriteAdversary
			goal := ecs.Must[*ecs.SeekGoal](e)
			if goal.Mode == ecs.ModeChase {
				sp.Stroke = core.ColorRed
			}
			if scared {
				sp.Fill = core.ColorBlue
			}
			if paths {
				sp.Path = slices.Clone(goal.Path)
			}
		case e.Has(ecs.KindControl):
			sp.Kind = SpritePlayer
			if dir, ok := ecs.Lookup[*ecs.Direction](e); ok {
				sp.Facing = dir.Facing
			}
		default:
			continue
		}
		w.Frame = append(w.Frame, sp)
	}
}

func pickupSprite(effect ecs.Effect) SpriteKind {
	switch effect {
	case ecs.EffectScare:
		return SpritePowerPellet
	case ecs.EffectReveal:
		return SpritePathPellet
	default:
		return SpriteDot
	}
}
