package ecs

import "slices"

// Roster is the admitted-entity list and requirement set of one system.
// Systems embed it; the Engine maintains its contents.
type Roster struct {
	required Mask
	entities []*Entity
}

// NewRoster creates a roster requiring the given kinds.
func NewRoster(kinds ...Kind) Roster {
	return Roster{required: MaskOf(kinds...)}
}

// Members returns the roster itself; embedding a Roster satisfies System.Members.
func (r *Roster) Members() *Roster {
	return r
}

// Requires returns the required component set.
func (r *Roster) Requires() Mask {
	return r.required
}

// Entities returns the admitted entities in admission order.
// The slice is owned by the roster and must not be retained across ticks.
func (r *Roster) Entities() []*Entity {
	return r.entities
}

// Len returns the number of admitted entities.
func (r *Roster) Len() int {
	return len(r.entities)
}

func (r *Roster) add(e *Entity) {
	r.entities = append(r.entities, e)
}

func (r *Roster) remove(e *Entity) {
	if i := slices.Index(r.entities, e); i >= 0 {
		r.entities = slices.Delete(r.entities, i, i+1)
	}
}

func (r *Roster) clear() {
	clear(r.entities)
	r.entities = r.entities[:0]
}

// System processes its admitted entities once per tick.
// W is the world state handed to every Update call.
type System[W any] interface {
	Members() *Roster
	Update(world W)
}

type opKind uint8

const (
	opAdmit opKind = iota
	opEvict
)

type pendingOp struct {
	kind   opKind
	entity *Entity
}

// Engine owns the registered systems and the master entity list.
// It is not safe for concurrent use; ticks are driven by a single goroutine.
type Engine[W any] struct {
	systems  []System[W]
	entities []*Entity
	live     map[ID]struct{}
	nextID   ID

	ticking bool
	pending []pendingOp
}

// NewEngine creates an engine with no systems.
func NewEngine[W any]() *Engine[W] {
	return &Engine[W]{
		live:   make(map[ID]struct{}),
		nextID: 1,
	}
}

// CreateEntity returns a new entity with no components. It is not admitted.
func (e *Engine[W]) CreateEntity() *Entity {
	ent := &Entity{id: e.nextID}
	e.nextID++
	return ent
}

// RegisterSystem appends s to the execution order. Entities admitted before
// registration are not offered to s.
func (e *Engine[W]) RegisterSystem(s System[W]) {
	e.systems = append(e.systems, s)
}

// Admit adds ent to the master list and to every system whose requirements its
// current components satisfy. The check happens once; later component changes
// do not move the entity between systems. Admission requested while a tick is
// running is applied after the last system finishes.
func (e *Engine[W]) Admit(ent *Entity) {
	if e.ticking {
		e.pending = append(e.pending, pendingOp{kind: opAdmit, entity: ent})
		return
	}
	e.admit(ent)
}

func (e *Engine[W]) admit(ent *Entity) {
	if _, ok := e.live[ent.id]; ok {
		return
	}
	e.live[ent.id] = struct{}{}
	e.entities = append(e.entities, ent)

	for _, s := range e.systems {
		r := s.Members()
		if ent.mask.Contains(r.required) {
			r.add(ent)
		}
	}
}

// Evict removes ent from every system and the master list and discards its
// components. Deferred to the end of the tick like Admit.
func (e *Engine[W]) Evict(ent *Entity) {
	if e.ticking {
		e.pending = append(e.pending, pendingOp{kind: opEvict, entity: ent})
		return
	}
	e.evict(ent)
}

func (e *Engine[W]) evict(ent *Entity) {
	if _, ok := e.live[ent.id]; !ok {
		return
	}
	delete(e.live, ent.id)

	for _, s := range e.systems {
		s.Members().remove(ent)
	}
	if i := slices.Index(e.entities, ent); i >= 0 {
		e.entities = slices.Delete(e.entities, i, i+1)
	}

	ent.components = [kindCount]Component{}
	ent.mask = 0
}

// Reset empties the master list and every system's roster. Systems stay registered.
func (e *Engine[W]) Reset() {
	for _, s := range e.systems {
		s.Members().clear()
	}
	clear(e.entities)
	e.entities = e.entities[:0]
	clear(e.live)
	e.pending = e.pending[:0]
}

// Tick runs every system once, in registration order, then applies admissions
// and evictions requested during the tick.
func (e *Engine[W]) Tick(world W) {
	e.ticking = true
	for _, s := range e.systems {
		s.Update(world)
	}
	e.ticking = false

	ops := e.pending
	e.pending = nil
	for _, op := range ops {
		switch op.kind {
		case opAdmit:
			e.admit(op.entity)
		case opEvict:
			e.evict(op.entity)
		}
	}
}

// Entities returns a copy of the master entity list.
func (e *Engine[W]) Entities() []*Entity {
	return slices.Clone(e.entities)
}

// Len returns the number of live entities.
func (e *Engine[W]) Len() int {
	return len(e.entities)
}

// Query returns the live entities whose components cover m, in admission order.
// The result is a fresh slice, so callers may evict while iterating it.
func (e *Engine[W]) Query(m Mask) []*Entity {
	var out []*Entity
	for _, ent := range e.entities {
		if ent.mask.Contains(m) {
			out = append(out, ent)
		}
	}
	return out
}

// Count returns the number of live entities carrying kind k.
func (e *Engine[W]) Count(k Kind) int {
	n := 0
	for _, ent := range e.entities {
		if ent.mask.Has(k) {
			n++
		}
	}
	return n
}
