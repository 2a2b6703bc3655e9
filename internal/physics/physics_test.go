package physics

import (
	"math"
	"testing"
)

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want bool
	}{
		{"same center", Circle{10, 10, 4}, Circle{10, 10, 1}, true},
		{"inside sum", Circle{0, 0, 3}, Circle{4.9, 0, 2}, true},
		{"exactly touching", Circle{0, 0, 3}, Circle{5, 0, 2}, false},
		{"touching diagonally", Circle{0, 0, 2.5}, Circle{3, 4, 2.5}, false},
		{"apart", Circle{0, 0, 1}, Circle{10, 10, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("CirclesOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxesOverlap(t *testing.T) {
	wall := Box{X: 10, Y: 10, Width: 10, Height: 10}
	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"inside", Box{12, 12, 2, 2}, true},
		{"edge contact counts", Box{20, 10, 5, 5}, true},
		{"corner contact counts", Box{0, 0, 10, 10}, true},
		{"gap on x", Box{20.5, 10, 5, 5}, false},
		{"gap on y", Box{10, 0, 5, 9.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoxesOverlap(tt.box, wall); got != tt.want {
				t.Errorf("BoxesOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPenetratedSide(t *testing.T) {
	wall := Box{X: 100, Y: 100, Width: 20, Height: 20}
	tests := []struct {
		name  string
		mover Circle
		want  Side
	}{
		{"from above", Circle{110, 95, 8}, SideTop},
		{"from below", Circle{110, 125, 8}, SideBottom},
		{"from left", Circle{95, 110, 8}, SideLeft},
		{"from right", Circle{125, 110, 8}, SideRight},
		{"no contact", Circle{150, 150, 8}, SideNone},
		{"lower right diagonal", Circle{125, 125, 8}, SideRight},
		{"lower left diagonal", Circle{95, 125, 8}, SideLeft},
		{"upper right diagonal", Circle{125, 95, 8}, SideTop},
		{"upper left diagonal", Circle{95, 95, 8}, SideTop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Penetrated(tt.mover.Bounds(), wall); got != tt.want {
				t.Errorf("Penetrated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveWallSnapsFlush(t *testing.T) {
	wall := Box{X: 100, Y: 100, Width: 20, Height: 20}
	tests := []struct {
		name         string
		mover        Circle
		wantX, wantY float64
	}{
		{"top", Circle{110, 95, 8}, 110, 100 - 8 - Margin},
		{"bottom", Circle{110, 125, 8}, 110, 120 + 8 + Margin},
		{"left", Circle{95, 110, 8}, 100 - 8 - Margin, 110},
		{"right", Circle{125, 110, 8}, 120 + 8 + Margin, 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ResolveWall(tt.mover, wall)
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("ResolveWall() = (%v,%v), want (%v,%v)", got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestResolveWallLeavesNoPenetration(t *testing.T) {
	wall := Box{X: 0, Y: 0, Width: 32, Height: 32}
	const r = 12.8

	for y := -20.0; y <= 52; y += 2.5 {
		for x := -20.0; x <= 52; x += 2.5 {
			c, side := ResolveWall(Circle{x, y, r}, wall)
			if side == SideNone {
				continue
			}
			b := c.Bounds()
			dx, dy, hw, hh := extents(b, wall)
			penX := hw - math.Abs(dx)
			penY := hh - math.Abs(dy)
			if penX > 0 && penY > 0 {
				t.Fatalf("start (%v,%v): residual penetration x=%v y=%v after %v", x, y, penX, penY, side)
			}
			if BoxesOverlap(b, wall) {
				t.Fatalf("start (%v,%v): still touching after %v", x, y, side)
			}
		}
	}
}

func TestResolveWallMissLeavesCircle(t *testing.T) {
	c := Circle{200, 200, 5}
	got, side := ResolveWall(c, Box{0, 0, 10, 10})
	if side != SideNone || got != c {
		t.Errorf("ResolveWall() moved a non-overlapping circle: %v %v", got, side)
	}
}
