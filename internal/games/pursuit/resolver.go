package pursuit

import (
	"github.com/vovakirdan/tui-pursuit/internal/ecs"
	"github.com/vovakirdan/tui-pursuit/internal/physics"
)

var (
	pickupMask    = ecs.MaskOf(ecs.KindPosition, ecs.KindShape, ecs.KindPickup)
	wallMask      = ecs.MaskOf(ecs.KindPosition, ecs.KindShape, ecs.KindSolid)
	adversaryMask = ecs.MaskOf(ecs.KindPosition, ecs.KindShape, ecs.KindSeekGoal)
)

// Resolver is the per-tick collision pass for the player. It runs after the
// engine tick, outside any system, and applies three checks in order:
// pickups, walls, adversaries.
type Resolver struct {
	engine *ecs.Engine[*World]
}

// NewResolver creates a resolver over the entities of eng.
func NewResolver(eng *ecs.Engine[*World]) *Resolver {
	return &Resolver{engine: eng}
}

// Update runs the collision pass once.
func (r *Resolver) Update(w *World) {
	if w.Player == nil || w.GameOver {
		return
	}
	r.collect(w)
	r.containWalls(w)
	r.contactAdversaries(w)
}

func playerCircle(w *World) physics.Circle {
	pos := ecs.Must[*ecs.Position](w.Player)
	shape := ecs.Must[*ecs.Shape](w.Player)
	return physics.Circle{X: pos.X, Y: pos.Y, Radius: shape.Circle.Radius}
}

func circleOf(e *ecs.Entity) physics.Circle {
	pos := ecs.Must[*ecs.Position](e)
	shape := ecs.Must[*ecs.Shape](e)
	return physics.Circle{X: pos.X, Y: pos.Y, Radius: shape.Circle.Radius}
}

// boxOf returns the bounding box of e. Rectangles are positioned by their
// top-left corner, circles by their center.
func boxOf(e *ecs.Entity) physics.Box {
	pos := ecs.Must[*ecs.Position](e)
	shape := ecs.Must[*ecs.Shape](e)
	if shape.Form == ecs.FormRect {
		return physics.Box{X: pos.X, Y: pos.Y, Width: shape.Rect.Width, Height: shape.Rect.Height}
	}
	return physics.Circle{X: pos.X, Y: pos.Y, Radius: shape.Circle.Radius}.Bounds()
}

// collect consumes every item the player overlaps.
func (r *Resolver) collect(w *World) {
	player := playerCircle(w)
	for _, e := range r.engine.Query(pickupMask) {
		if !physics.CirclesOverlap(player, circleOf(e)) {
			continue
		}
		p := ecs.Must[*ecs.Pickup](e)
		w.Score += p.Reward
		switch p.Effect {
		case ecs.EffectScare:
			w.Scared.Arm(w.Now, w.Rules.ScaredFor)
			w.logger.Info("power pellet collected", "for", w.Rules.ScaredFor)
		case ecs.EffectReveal:
			w.PathView.Arm(w.Now, w.Rules.PathViewFor)
			w.logger.Info("path pellet collected", "for", w.Rules.PathViewFor)
		}
		r.engine.Evict(e)
	}
}

// containWalls pushes the player out of every wall it penetrates. Walls are
// processed in admission order and each sees the position left by the
// previous one, so two walls can push back and forth.
func (r *Resolver) containWalls(w *World) {
	pos := ecs.Must[*ecs.Position](w.Player)
	radius := ecs.Must[*ecs.Shape](w.Player).Circle.Radius

	for _, e := range r.engine.Query(wallMask) {
		c, side := physics.ResolveWall(physics.Circle{X: pos.X, Y: pos.Y, Radius: radius}, boxOf(e))
		if side != physics.SideNone {
			pos.X, pos.Y = c.X, c.Y
		}
	}
}

// contactAdversaries settles player/adversary overlap. While adversaries are
// scared every touched adversary is eaten; otherwise the first touch costs the
// player a life and ends the pass.
func (r *Resolver) contactAdversaries(w *World) {
	scared := w.IsScared()
	for _, e := range r.engine.Query(adversaryMask) {
		if !physics.BoxesOverlap(playerCircle(w).Bounds(), boxOf(e)) {
			continue
		}
		if scared {
			r.eat(w, e)
			continue
		}
		r.die(w)
		return
	}
}

func (r *Resolver) eat(w *World, e *ecs.Entity) {
	pos := ecs.Must[*ecs.Position](e)
	w.Score += w.Rules.AdversaryReward
	w.respawns = append(w.respawns, respawn{
		at: w.Now.Add(w.Rules.RespawnDelay),
		x:  pos.X,
		y:  pos.Y,
	})
	w.logger.Info("adversary eaten", "score", w.Score)
	r.engine.Evict(e)
}

// die costs the player a life, or the game when none are left, and returns
// the player to the start tile at rest.
func (r *Resolver) die(w *World) {
	if w.Lives == 0 {
		w.GameOver = true
		w.logger.Info("game over", "score", w.Score)
	} else {
		w.Lives--
		w.logger.Info("life lost", "lives", w.Lives)
	}

	pos := ecs.Must[*ecs.Position](w.Player)
	if start := w.Graph.Start(); start != nil {
		pos.X, pos.Y = w.TileCenter(start.X, start.Y)
	}
	ecs.Must[*ecs.Velocity](w.Player).Stop()
}
