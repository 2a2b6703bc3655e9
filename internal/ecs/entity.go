package ecs

// ID is an entity's identity. IDs are never reused within one Engine.
type ID uint64

// Entity owns at most one component of each kind.
type Entity struct {
	id         ID
	components [kindCount]Component
	mask       Mask
}

// ID returns the entity identity.
func (e *Entity) ID() ID {
	return e.id
}

// Set installs c, replacing any component of the same kind.
// Returns the entity so installations can be chained.
func (e *Entity) Set(c Component) *Entity {
	k := c.Kind()
	e.components[k] = c
	e.mask |= 1 << k
	return e
}

// Get returns the component of kind k, if present.
func (e *Entity) Get(k Kind) (Component, bool) {
	if k >= kindCount || !e.mask.Has(k) {
		return nil, false
	}
	return e.components[k], true
}

// Has reports whether the entity carries a component of kind k.
func (e *Entity) Has(k Kind) bool {
	return k < kindCount && e.mask.Has(k)
}

// Remove drops the component of kind k. Systems that already admitted the
// entity keep it; admission is never re-evaluated.
func (e *Entity) Remove(k Kind) *Entity {
	if k < kindCount {
		e.components[k] = nil
		e.mask &^= 1 << k
	}
	return e
}

// Mask returns the set of kinds currently installed.
func (e *Entity) Mask() Mask {
	return e.mask
}
