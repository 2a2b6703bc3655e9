// Package ecs provides a small entity-component framework for tick-stepped simulations.
// Components are plain data identified by a closed set of kinds, so a system's
// requirements can be expressed as a bit mask and checked without reflection.
package ecs

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-pursuit/internal/core"
)

// Kind identifies a component type.
type Kind uint8

// Component kinds. The order is stable and doubles as the bit index in Mask.
const (
	KindPosition Kind = iota
	KindVelocity
	KindShape
	KindColour
	KindSeekGoal
	KindControl
	KindDirection
	KindPickup
	KindSolid
	kindCount
)

// String returns the component kind name.
func (k Kind) String() string {
	switch k {
	case KindPosition:
		return "Position"
	case KindVelocity:
		return "Velocity"
	case KindShape:
		return "Shape"
	case KindColour:
		return "Colour"
	case KindSeekGoal:
		return "SeekGoal"
	case KindControl:
		return "Control"
	case KindDirection:
		return "Direction"
	case KindPickup:
		return "Pickup"
	case KindSolid:
		return "Solid"
	default:
		return "Unknown"
	}
}

// Mask is a set of component kinds.
type Mask uint32

// MaskOf builds a mask from the given kinds.
func MaskOf(kinds ...Kind) Mask {
	var m Mask
	for _, k := range kinds {
		m |= 1 << k
	}
	return m
}

// Has reports whether k is in the mask.
func (m Mask) Has(k Kind) bool {
	return m&(1<<k) != 0
}

// Contains reports whether m is a superset of other.
func (m Mask) Contains(other Mask) bool {
	return m&other == other
}

func (m Mask) String() string {
	var names []string
	for k := Kind(0); k < kindCount; k++ {
		if m.Has(k) {
			names = append(names, k.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Component is implemented by every component type.
// Kind must not dereference its receiver; it is called on nil pointers by Must.
type Component interface {
	Kind() Kind
}

// Position is a point in surface units. Circles are positioned by their center,
// rectangles by their top-left corner.
type Position struct {
	X, Y float64
}

func (*Position) Kind() Kind { return KindPosition }

// Velocity is the per-tick displacement.
type Velocity struct {
	DX, DY float64
}

func (*Velocity) Kind() Kind { return KindVelocity }

// Stop zeroes both axes.
func (v *Velocity) Stop() {
	v.DX, v.DY = 0, 0
}

// Form selects which variant of a Shape is populated.
type Form uint8

const (
	FormCircle Form = iota
	FormRect
)

// Circle describes an arc; a full circle spans 0 to 2π.
type Circle struct {
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Rect describes an axis-aligned rectangle.
type Rect struct {
	Width, Height float64
}

// Shape is a tagged union of Circle and Rect.
type Shape struct {
	Form   Form
	Circle Circle
	Rect   Rect
}

func (*Shape) Kind() Kind { return KindShape }

// CircleShape returns a full-circle shape.
func CircleShape(radius float64) *Shape {
	return &Shape{Form: FormCircle, Circle: Circle{Radius: radius, EndAngle: 2 * math.Pi}}
}

// RectShape returns a rectangle shape.
func RectShape(width, height float64) *Shape {
	return &Shape{Form: FormRect, Rect: Rect{Width: width, Height: height}}
}

// Colour holds the fill and stroke colors used by renderers.
type Colour struct {
	Fill   core.Color
	Stroke core.Color
}

func (*Colour) Kind() Kind { return KindColour }

// Mode is the behaviour mode of a seeking entity.
type Mode uint8

const (
	ModePatrol Mode = iota
	ModeChase
)

func (m Mode) String() string {
	if m == ModeChase {
		return "chase"
	}
	return "patrol"
}

// Tile is an integer grid coordinate.
type Tile struct {
	X, Y int
}

// SeekGoal is the navigation state of an autonomous entity.
type SeekGoal struct {
	TargetX, TargetY int // destination tile
	Mode             Mode
	Waypoint         Tile   // patrol destination, kept while chasing
	Path             []Tile // most recent plan, current tile first
}

func (*SeekGoal) Kind() Kind { return KindSeekGoal }

// Control marks an entity steered by directional input.
type Control struct{}

func (*Control) Kind() Kind { return KindControl }

// Heading is one of the four axis-aligned directions.
type Heading uint8

const (
	HeadingNone Heading = iota
	HeadingUp
	HeadingLeft
	HeadingDown
	HeadingRight
)

// String returns the facing name.
func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "UP"
	case HeadingLeft:
		return "LEFT"
	case HeadingDown:
		return "DOWN"
	case HeadingRight:
		return "RIGHT"
	default:
		return "NONE"
	}
}

// Angle returns the facing angle in radians, clockwise from the positive x axis
// (screen coordinates grow downwards).
func (h Heading) Angle() float64 {
	switch h {
	case HeadingDown:
		return math.Pi / 2
	case HeadingLeft:
		return math.Pi
	case HeadingUp:
		return math.Pi * 3 / 2
	default:
		return 0
	}
}

// Unit returns the unit displacement for the heading.
func (h Heading) Unit() (dx, dy float64) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingLeft:
		return -1, 0
	case HeadingDown:
		return 0, 1
	case HeadingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Direction is the facing of an entity.
type Direction struct {
	Angle  float64
	Facing Heading
}

func (*Direction) Kind() Kind { return KindDirection }

// Name returns the facing name.
func (d *Direction) Name() string {
	return d.Facing.String()
}

// Face points the direction at h.
func (d *Direction) Face(h Heading) {
	d.Facing = h
	d.Angle = h.Angle()
}

// Effect is the side effect of collecting a pickup.
type Effect uint8

const (
	EffectNone  Effect = iota // plain dot
	EffectScare               // adversaries become vulnerable
	EffectReveal              // adversary paths are displayed
)

func (e Effect) String() string {
	switch e {
	case EffectScare:
		return "scare"
	case EffectReveal:
		return "reveal"
	default:
		return "none"
	}
}

// Pickup marks a collectible item.
type Pickup struct {
	Reward int
	Effect Effect
}

func (*Pickup) Kind() Kind { return KindPickup }

// Solid marks an impassable wall.
type Solid struct{}

func (*Solid) Kind() Kind { return KindSolid }

// Must returns the component of type T on e and panics if it is absent.
// Systems use it for components in their required set: absence there means the
// requirement declaration is wrong, not that the world is in an odd state.
func Must[T Component](e *Entity) T {
	var zero T
	c, ok := e.Get(zero.Kind())
	if !ok {
		panic(fmt.Sprintf("ecs: entity %d has no %s component", e.ID(), zero.Kind()))
	}
	return c.(T)
}

// Lookup returns the component of type T on e, if present.
func Lookup[T Component](e *Entity) (T, bool) {
	var zero T
	c, ok := e.Get(zero.Kind())
	if !ok {
		return zero, false
	}
	t, ok := c.(T)
	return t, ok
}
