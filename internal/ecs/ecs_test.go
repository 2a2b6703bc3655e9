package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type world struct {
	order []string
}

type recordingSystem struct {
	Roster
	name string
}

func (s *recordingSystem) Update(w *world) {
	w.order = append(w.order, s.name)
}

type mover struct {
	Roster
}

func newMover() *mover {
	return &mover{Roster: NewRoster(KindPosition, KindVelocity)}
}

func (s *mover) Update(*world) {
	for _, e := range s.Entities() {
		pos := Must[*Position](e)
		vel := Must[*Velocity](e)
		pos.X += vel.DX
		pos.Y += vel.DY
	}
}

// spawner admits and evicts while the tick is running.
type spawner struct {
	Roster
	engine *Engine[*world]
	victim *Entity
	seenAt int
}

func (s *spawner) Update(*world) {
	if s.victim != nil {
		s.engine.Evict(s.victim)
	}
	s.engine.Admit(s.engine.CreateEntity().Set(&Position{}))
	s.seenAt = s.engine.Len()
}

func TestEntitySetGetReplace(t *testing.T) {
	eng := NewEngine[*world]()
	e := eng.CreateEntity()

	_, ok := e.Get(KindPosition)
	assert.False(t, ok, "new entity should have no components")

	first := &Position{X: 1, Y: 2}
	second := &Position{X: 3, Y: 4}
	ret := e.Set(first).Set(second)
	require.Same(t, e, ret, "Set should return the entity for chaining")

	got, ok := Lookup[*Position](e)
	require.True(t, ok)
	assert.Same(t, second, got, "second Set should replace the first")
	assert.Equal(t, MaskOf(KindPosition), e.Mask())

	e.Remove(KindPosition)
	assert.False(t, e.Has(KindPosition))
}

func TestGetUnknownKind(t *testing.T) {
	e := NewEngine[*world]().CreateEntity()
	_, ok := e.Get(Kind(200))
	assert.False(t, ok)
}

func TestMustPanicsOnMissingComponent(t *testing.T) {
	e := NewEngine[*world]().CreateEntity()
	assert.Panics(t, func() { Must[*Velocity](e) })
}

func TestEntityIDsAreUnique(t *testing.T) {
	eng := NewEngine[*world]()
	seen := make(map[ID]bool)
	for range 100 {
		id := eng.CreateEntity().ID()
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}

func TestAdmitMatchesRequirements(t *testing.T) {
	eng := NewEngine[*world]()
	mv := newMover()
	eng.RegisterSystem(mv)

	moving := eng.CreateEntity().Set(&Position{}).Set(&Velocity{DX: 1})
	static := eng.CreateEntity().Set(&Position{})
	eng.Admit(moving)
	eng.Admit(static)

	assert.Equal(t, 2, eng.Len(), "both entities join the master list")
	assert.Contains(t, mv.Entities(), moving)
	assert.NotContains(t, mv.Entities(), static)
}

func TestAdmitIsOneShot(t *testing.T) {
	eng := NewEngine[*world]()
	mv := newMover()
	eng.RegisterSystem(mv)

	late := eng.CreateEntity().Set(&Position{})
	eng.Admit(late)
	late.Set(&Velocity{DX: 1})
	assert.NotContains(t, mv.Entities(), late, "gaining a component must not re-admit")

	early := eng.CreateEntity().Set(&Position{}).Set(&Velocity{DX: 1})
	eng.Admit(early)
	early.Remove(KindVelocity)
	assert.Contains(t, mv.Entities(), early, "losing a component must not evict")
}

func TestAdmitTwiceIsNoop(t *testing.T) {
	eng := NewEngine[*world]()
	mv := newMover()
	eng.RegisterSystem(mv)

	e := eng.CreateEntity().Set(&Position{}).Set(&Velocity{})
	eng.Admit(e)
	eng.Admit(e)
	assert.Equal(t, 1, eng.Len())
	assert.Equal(t, 1, mv.Len())
}

func TestSystemRegisteredLateMissesEarlierEntities(t *testing.T) {
	eng := NewEngine[*world]()
	e := eng.CreateEntity().Set(&Position{}).Set(&Velocity{})
	eng.Admit(e)

	mv := newMover()
	eng.RegisterSystem(mv)
	assert.Equal(t, 0, mv.Len())
}

func TestEvictRemovesEverywhere(t *testing.T) {
	eng := NewEngine[*world]()
	mv := newMover()
	eng.RegisterSystem(mv)

	e := eng.CreateEntity().Set(&Position{}).Set(&Velocity{})
	eng.Admit(e)
	eng.Evict(e)

	assert.Equal(t, 0, eng.Len())
	assert.Equal(t, 0, mv.Len())
	assert.NotContains(t, eng.Entities(), e)
	assert.Equal(t, Mask(0), e.Mask(), "components are discarded")
}

func TestResetKeepsSystems(t *testing.T) {
	eng := NewEngine[*world]()
	mv := newMover()
	eng.RegisterSystem(mv)

	for range 5 {
		eng.Admit(eng.CreateEntity().Set(&Position{}).Set(&Velocity{}))
	}
	eng.Reset()

	assert.Equal(t, 0, eng.Len())
	assert.Equal(t, 0, mv.Len())

	eng.Admit(eng.CreateEntity().Set(&Position{}).Set(&Velocity{}))
	assert.Equal(t, 1, mv.Len(), "systems keep working after reset")
}

func TestTickRunsSystemsInRegistrationOrder(t *testing.T) {
	eng := NewEngine[*world]()
	for _, name := range []string{"control", "seek", "velocity", "render"} {
		eng.RegisterSystem(&recordingSystem{name: name})
	}

	w := &world{}
	eng.Tick(w)
	eng.Tick(w)

	assert.Equal(t, []string{
		"control", "seek", "velocity", "render",
		"control", "seek", "velocity", "render",
	}, w.order)
}

func TestTickIntegratesVelocity(t *testing.T) {
	eng := NewEngine[*world]()
	eng.RegisterSystem(newMover())

	pos := &Position{X: 10, Y: 10}
	eng.Admit(eng.CreateEntity().Set(pos).Set(&Velocity{DX: 2, DY: -1}))
	for range 3 {
		eng.Tick(&world{})
	}

	assert.InDelta(t, 16, pos.X, 1e-9)
	assert.InDelta(t, 7, pos.Y, 1e-9)
}

func TestAdmissionDuringTickIsDeferred(t *testing.T) {
	eng := NewEngine[*world]()
	victim := eng.CreateEntity().Set(&Position{})
	eng.Admit(victim)

	sp := &spawner{engine: eng, victim: victim}
	eng.RegisterSystem(sp)

	eng.Tick(&world{})
	assert.Equal(t, 1, sp.seenAt, "changes must not be visible inside the tick")
	assert.Equal(t, 1, eng.Len(), "one admitted, one evicted after the tick")
	assert.NotContains(t, eng.Entities(), victim)
}

func TestQueryAndCount(t *testing.T) {
	eng := NewEngine[*world]()
	for i := range 4 {
		e := eng.CreateEntity().Set(&Position{X: float64(i)})
		if i%2 == 0 {
			e.Set(&Pickup{Reward: 10})
		}
		eng.Admit(e)
	}

	items := eng.Query(MaskOf(KindPosition, KindPickup))
	require.Len(t, items, 2)
	assert.Equal(t, 2, eng.Count(KindPickup))

	// evicting while iterating a query result is safe
	for _, e := range items {
		eng.Evict(e)
	}
	assert.Equal(t, 0, eng.Count(KindPickup))
	assert.Equal(t, 2, eng.Len())
}

func TestMaskString(t *testing.T) {
	assert.Equal(t, "{Position,Velocity}", MaskOf(KindVelocity, KindPosition).String())
}

func TestHeadingAngles(t *testing.T) {
	d := &Direction{}
	d.Face(HeadingLeft)
	assert.Equal(t, "LEFT", d.Name())
	assert.InDelta(t, 3.14159265, d.Angle, 1e-6)

	dx, dy := HeadingUp.Unit()
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, -1.0, dy)
}
