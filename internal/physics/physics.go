// Package physics holds the overlap tests and wall correction used by the
// collision pass. All coordinates are surface units with y growing downwards.
package physics

import "math"

// Circle is a disc given by its center.
type Circle struct {
	X, Y   float64
	Radius float64
}

// Box is an axis-aligned rectangle given by its top-left corner.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Bounds returns the square that encloses c.
func (c Circle) Bounds() Box {
	return Box{X: c.X - c.Radius, Y: c.Y - c.Radius, Width: 2 * c.Radius, Height: 2 * c.Radius}
}

// Center returns the center of b.
func (b Box) Center() (x, y float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// CirclesOverlap reports whether the centers are closer than the sum of the
// radii. Circles that merely touch do not overlap.
func CirclesOverlap(a, b Circle) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) < a.Radius+b.Radius
}

// BoxesOverlap reports whether a and b overlap or touch on both axes.
func BoxesOverlap(a, b Box) bool {
	dx, dy, hw, hh := extents(a, b)
	return math.Abs(dx) <= hw && math.Abs(dy) <= hh
}

func extents(a, b Box) (dx, dy, hw, hh float64) {
	ax, ay := a.Center()
	bx, by := b.Center()
	return ax - bx, ay - by, (a.Width + b.Width) / 2, (a.Height + b.Height) / 2
}

// Side names the face of a wall that a mover is pushed out through.
type Side uint8

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Penetrated returns the side of wall that mover has entered through, or
// SideNone when they do not overlap. The side is picked by comparing the
// center offset scaled by the opposite half-extent sum, which selects the axis
// of least penetration. Exact diagonals resolve to the horizontal side for the
// lower corners and to SideTop for the upper corners and the dead center.
func Penetrated(mover, wall Box) Side {
	dx, dy, hw, hh := extents(mover, wall)
	if math.Abs(dx) > hw || math.Abs(dy) > hh {
		return SideNone
	}

	crossW := hw * dy
	crossH := hh * dx
	if crossW > crossH {
		if crossW > -crossH {
			return SideBottom
		}
		return SideLeft
	}
	if crossW > -crossH {
		return SideRight
	}
	return SideTop
}

// Margin is the gap left between a corrected mover and the wall face.
const Margin = 1.0

// ResolveWall pushes c out of wall through the penetrated side, leaving it
// Margin units clear of the face. Only the axis of that side changes.
func ResolveWall(c Circle, wall Box) (Circle, Side) {
	side := Penetrated(c.Bounds(), wall)
	switch side {
	case SideBottom:
		c.Y = wall.Y + wall.Height + c.Radius + Margin
	case SideLeft:
		c.X = wall.X - c.Radius - Margin
	case SideRight:
		c.X = wall.X + wall.Width + c.Radius + Margin
	case SideTop:
		c.Y = wall.Y - c.Radius - Margin
	}
	return c, side
}
