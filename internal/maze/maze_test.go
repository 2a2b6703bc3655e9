package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coords(path []*Node) []Coord {
	out := make([]Coord, len(path))
	for i, n := range path {
		out[i] = n.Coord()
	}
	return out
}

func TestBuildPassabilityAndSize(t *testing.T) {
	g := Build("S.#\n..#\n###\n")

	require.Equal(t, 3, g.Width())
	require.Equal(t, 3, g.Height())
	require.Equal(t, 9, g.Len(), "trailing newline must not add a row")

	tests := []struct {
		x, y     int
		passable bool
	}{
		{0, 0, true},
		{1, 0, true},
		{2, 0, false},
		{0, 1, true},
		{1, 1, true},
		{0, 2, false},
		{2, 2, false},
	}
	for _, tt := range tests {
		n := g.Get(tt.x, tt.y)
		require.NotNil(t, n)
		assert.Equal(t, tt.passable, n.Passable, "tile (%d,%d)", tt.x, tt.y)
	}

	assert.Nil(t, g.Get(3, 0))
	assert.Nil(t, g.Get(-1, 0))
	assert.Equal(t, Coord{0, 0}, g.Start().Coord())
}

func TestBuildStripsCarriageReturns(t *testing.T) {
	g := Build("S.\r\n..\r\n")
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, '.', g.Tile(1, 1))
}

func TestBuildEmpty(t *testing.T) {
	g := Build("")
	assert.Equal(t, 0, g.Len())
	assert.Nil(t, g.Start())
	assert.False(t, g.HasPassable())
}

func TestFirstStartWins(t *testing.T) {
	g := Build("..S\nS..")
	assert.Equal(t, Coord{2, 0}, g.Start().Coord())
}

func TestNeighbourOrder(t *testing.T) {
	g := Build("...\n...\n...")

	center := g.Get(1, 1)
	assert.Equal(t, []Coord{{1, 0}, {0, 1}, {2, 1}, {1, 2}}, coords(center.Neighbours()))

	corner := g.Get(0, 0)
	assert.Equal(t, []Coord{{1, 0}, {0, 1}}, coords(corner.Neighbours()))

	edge := g.Get(2, 1)
	assert.Equal(t, []Coord{{2, 0}, {1, 1}, {2, 2}}, coords(edge.Neighbours()))
}

func TestNeighboursIncludeWalls(t *testing.T) {
	g := Build(".#\n..")
	n := g.Get(0, 0)
	require.Len(t, n.Neighbours(), 2)
	assert.False(t, n.Neighbours()[0].Passable)
}

func TestTileSize(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  float64
	}{
		{"three columns", "S.#\n..#", 640, 320},
		{"five columns", ".....", 400, 100},
		{"single column", "S\n.", 640, 640},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Build(tt.text).TileSize(tt.width), 1e-9)
		})
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	text := "#####\n#S.G#\n#.#.#\n#...#\n#####"
	a, b := Build(text), Build(text)

	require.Equal(t, a.Len(), b.Len())
	a.Each(func(x, y int, ch rune) {
		na, nb := a.Get(x, y), b.Get(x, y)
		assert.Equal(t, na.Passable, nb.Passable)
		assert.Equal(t, coords(na.Neighbours()), coords(nb.Neighbours()))
		assert.Equal(t, ch, b.Tile(x, y))
	})
}

func TestFindPathEndpoints(t *testing.T) {
	g := Build("#####\n#S..#\n#.#.#\n#..G#\n#####")
	from, to := g.Get(3, 3), g.Start()

	path := FindPath(from, to)
	require.NotEmpty(t, path)
	assert.Same(t, from, path[0])
	assert.Same(t, to, path[len(path)-1])
	assert.Len(t, path, 5)

	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		assert.Equal(t, 1, abs(dx)+abs(dy), "steps must be axis-aligned and adjacent")
		assert.True(t, path[i].Passable)
	}
}

func TestFindPathTieBreak(t *testing.T) {
	g := Build("S..\n.#.\n...")

	// right (priority 3) beats below (priority 4) on the first step
	got := coords(FindPath(g.Get(0, 0), g.Get(2, 2)))
	assert.Equal(t, []Coord{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, got)

	// from the opposite corner: above beats left
	got = coords(FindPath(g.Get(2, 2), g.Get(0, 0)))
	assert.Equal(t, []Coord{{2, 2}, {2, 1}, {2, 0}, {1, 0}, {0, 0}}, got)
}

func TestFindPathSameNode(t *testing.T) {
	g := Build("S.")
	n := g.Start()
	assert.Equal(t, []*Node{n}, FindPath(n, n))
}

func TestFindPathUnreachable(t *testing.T) {
	g := Build("S#.\n.#.")
	assert.Empty(t, FindPath(g.Start(), g.Get(2, 1)))
	assert.Empty(t, FindPath(g.Start(), g.Get(1, 0)), "walls are never entered")
	assert.Empty(t, FindPath(nil, g.Start()))
}

func TestFindPathIsReentrant(t *testing.T) {
	g := Build(".....\n.###.\n.....")
	a := coords(FindPath(g.Get(0, 0), g.Get(4, 2)))
	_ = FindPath(g.Get(4, 2), g.Get(0, 0))
	b := coords(FindPath(g.Get(0, 0), g.Get(4, 2)))
	assert.Equal(t, a, b)
}

func TestRandomPassable(t *testing.T) {
	g := Build("###\n#.#\n###")
	rng := rand.New(rand.NewSource(1))
	for range 20 {
		n := g.RandomPassable(rng)
		require.NotNil(t, n)
		assert.Equal(t, Coord{1, 1}, n.Coord())
	}
	assert.True(t, g.HasPassable())
	assert.False(t, Build("##\n##").HasPassable())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
