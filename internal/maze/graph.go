// Package maze turns level text into a navigable tile graph and searches it.
package maze

import (
	"math/rand"
	"strings"
)

// Map characters with structural meaning. Everything that is not a wall is passable.
const (
	Wall  = '#'
	Dot   = '.'
	Start = 'S'
	Ghost = 'G'
)

// Coord addresses a tile by column and row.
type Coord struct {
	X, Y int
}

// Node is a tile of the graph.
type Node struct {
	Passable bool
	X, Y     int

	neighbours []*Node
}

// Coord returns the node position.
func (n *Node) Coord() Coord {
	return Coord{n.X, n.Y}
}

// Neighbours returns the in-bounds axis-aligned neighbours in the order
// above, left, right, below. The slice is shared and must not be modified.
func (n *Node) Neighbours() []*Node {
	return n.neighbours
}

// Graph is the tile graph of one level. It is immutable after Build.
type Graph struct {
	nodes  map[Coord]*Node
	rows   [][]rune
	width  int
	height int
	start  *Node
}

// Build parses level text into a graph. Rows are separated by '\n'; carriage
// returns are ignored and a single trailing line break does not add a row.
// Row width is taken from the first row. The text is not validated here.
func Build(text string) *Graph {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimSuffix(text, "\n")

	g := &Graph{nodes: make(map[Coord]*Node)}
	if text == "" {
		return g
	}

	for line := range strings.SplitSeq(text, "\n") {
		g.rows = append(g.rows, []rune(line))
	}
	g.height = len(g.rows)
	g.width = len(g.rows[0])

	// pass 1: nodes and passability
	for y, row := range g.rows {
		for x, ch := range row {
			n := &Node{Passable: ch != Wall, X: x, Y: y}
			g.nodes[Coord{x, y}] = n
			if ch == Start && g.start == nil {
				g.start = n
			}
		}
	}

	// pass 2: adjacency
	for y, row := range g.rows {
		for x := range row {
			n := g.nodes[Coord{x, y}]
			for _, c := range [4]Coord{{x, y - 1}, {x - 1, y}, {x + 1, y}, {x, y + 1}} {
				if adj, ok := g.nodes[c]; ok {
					n.neighbours = append(n.neighbours, adj)
				}
			}
		}
	}

	return g
}

// Get returns the node at (x, y), or nil when out of bounds.
func (g *Graph) Get(x, y int) *Node {
	return g.nodes[Coord{x, y}]
}

// Start returns the first 'S' node in row-major order, or nil.
func (g *Graph) Start() *Node {
	return g.start
}

// Width returns the column count of the first row.
func (g *Graph) Width() int {
	return g.width
}

// Height returns the row count.
func (g *Graph) Height() int {
	return g.height
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Tile returns the map character at (x, y), or 0 when out of bounds.
func (g *Graph) Tile(x, y int) rune {
	if y < 0 || y >= len(g.rows) || x < 0 || x >= len(g.rows[y]) {
		return 0
	}
	return g.rows[y][x]
}

// Each calls fn for every tile in row-major order.
func (g *Graph) Each(fn func(x, y int, ch rune)) {
	for y, row := range g.rows {
		for x, ch := range row {
			fn(x, y, ch)
		}
	}
}

// TileSize returns the side of one tile in surface units for a surface of the
// given width. The divisor is the row width minus one; single-column maps use
// the full surface width.
func (g *Graph) TileSize(surfaceWidth float64) float64 {
	if g.width <= 1 {
		return surfaceWidth
	}
	return surfaceWidth / float64(g.width-1)
}

// HasPassable reports whether at least one tile is passable.
func (g *Graph) HasPassable() bool {
	for _, n := range g.nodes {
		if n.Passable {
			return true
		}
	}
	return false
}

// RandomPassable samples tiles uniformly until it finds a passable one.
// It never returns on a graph without passable tiles; check HasPassable first.
func (g *Graph) RandomPassable(rng *rand.Rand) *Node {
	if g.height == 0 {
		return nil
	}
	for {
		y := rng.Intn(g.height)
		if len(g.rows[y]) == 0 {
			continue
		}
		x := rng.Intn(len(g.rows[y]))
		if n := g.nodes[Coord{x, y}]; n.Passable {
			return n
		}
	}
}
