package pursuit

import "github.com/vovakirdan/tui-pursuit/internal/ecs"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// AgentSnapshot is the observable state of one moving entity.
type AgentSnapshot struct {
	X, Y   float64
	DX, DY float64
	Mode   string // adversaries only
}

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Level       string
	Mode        string // "campaign" or "endless"
	Score       int
	Lives       int
	Pickups     int
	Scared      bool
	PathView    bool
	Respawns    int
	Player      AgentSnapshot
	Adversaries []AgentSnapshot
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	if w == nil {
		return Snapshot{Mode: string(g.mode)}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case w.GameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:     w.Tick,
		Level:    g.level.ID,
		Mode:     string(g.mode),
		Score:    w.Score,
		Lives:    w.Lives,
		Pickups:  g.engine.Count(ecs.KindPickup),
		Scared:   w.IsScared(),
		PathView: w.ShowPaths(),
		Respawns: w.PendingRespawns(),
		State:    state,
	}
	if w.Player != nil {
		s.Player = agentOf(w.Player)
	}
	for _, e := range g.engine.Query(adversaryMask) {
		a := agentOf(e)
		a.Mode = ecs.Must[*ecs.SeekGoal](e).Mode.String()
		s.Adversaries = append(s.Adversaries, a)
	}
	return s
}

func agentOf(e *ecs.Entity) AgentSnapshot {
	pos := ecs.Must[*ecs.Position](e)
	a := AgentSnapshot{X: pos.X, Y: pos.Y}
	if vel, ok := ecs.Lookup[*ecs.Velocity](e); ok {
		a.DX, a.DY = vel.DX, vel.DY
	}
	return a
}
