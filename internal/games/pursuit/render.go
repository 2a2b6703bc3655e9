package pursuit

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/ecs"
	"github.com/vovakirdan/tui-pursuit/internal/maze"
)

// Each tile is drawn as two terminal columns by one row, which keeps the
// maze roughly square in most fonts.
const (
	cellsPerTile = 2
	hudHeight    = 2
)

func requiredWidth(g *maze.Graph) int {
	return g.Width() * cellsPerTile
}

func requiredHeight(g *maze.Graph) int {
	return g.Height() + hudHeight + 1
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", requiredWidth(g.world.Graph), requiredHeight(g.world.Graph)))
		return
	}

	v := g.viewport(dst)
	v.draw(dst, g.world)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.world.Score))
	case g.world.GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.levelCleared:
		g.renderOverlay(dst, "Level cleared!", g.level.Name)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// viewport maps surface coordinates onto screen cells.
type viewport struct {
	offsetX, offsetY int
	tile             float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	return viewport{
		offsetX: (dst.Width() - requiredWidth(g.world.Graph)) / 2,
		offsetY: hudHeight,
		tile:    g.world.TileSize,
	}
}

// cell returns the screen cell of surface point (x, y) at half-tile
// horizontal resolution.
func (v viewport) cell(x, y float64) (int, int) {
	cx := int(math.Floor(x / v.tile * cellsPerTile))
	cy := int(math.Floor(y / v.tile))
	return v.offsetX + cx, v.offsetY + cy
}

// tileCell returns the left screen cell of tile t.
func (v viewport) tileCell(t ecs.Tile) (int, int) {
	return v.offsetX + t.X*cellsPerTile, v.offsetY + t.Y
}

// draw paints the frame in layers: walls, path trails, pickups, adversaries,
// then the player on top.
func (v viewport) draw(dst *core.Screen, w *World) {
	for _, sp := range w.Frame {
		if sp.Kind != SpriteWall {
			continue
		}
		x, y := v.tileCell(w.TileAt(sp.X+sp.Shape.Rect.Width/2, sp.Y+sp.Shape.Rect.Height/2))
		dst.SetColored(x, y, '█', sp.Fill)
		dst.SetColored(x+1, y, '█', sp.Fill)
	}

	for _, sp := range w.Frame {
		for i, t := range sp.Path {
			if i == 0 {
				continue
			}
			x, y := v.tileCell(t)
			dst.SetColored(x, y, '+', core.ColorMagenta)
		}
	}

	for _, sp := range w.Frame {
		var r rune
		switch sp.Kind {
		case SpriteDot:
			r = '·'
		case SpritePowerPellet:
			r = '●'
		case SpritePathPellet:
			r = '◆'
		default:
			continue
		}
		x, y := v.cell(sp.X, sp.Y)
		dst.SetColored(x, y, r, sp.Fill)
	}

	for _, sp := range w.Frame {
		if sp.Kind != SpriteAdversary {
			continue
		}
		color := sp.Fill
		if sp.Stroke != core.ColorDefault && !w.IsScared() {
			color = sp.Stroke
		}
		x, y := v.cell(sp.X, sp.Y)
		dst.SetColored(x, y, 'Ω', color)
	}

	for _, sp := range w.Frame {
		if sp.Kind != SpritePlayer {
			continue
		}
		x, y := v.cell(sp.X, sp.Y)
		dst.SetColored(x, y, playerGlyph(sp.Facing), sp.Fill)
	}
}

// playerGlyph shows the mouth opening in the direction of travel.
func playerGlyph(h ecs.Heading) rune {
	switch h {
	case ecs.HeadingLeft:
		return '>'
	case ecs.HeadingUp:
		return 'v'
	case ecs.HeadingDown:
		return '^'
	default:
		return '<'
	}
}

// renderHUD draws the status bar and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	var b strings.Builder
	fmt.Fprintf(&b, " %s | Score: %d  Lives: %d", g.Title(), w.Score, w.Lives)
	if g.mode == ModeEndless {
		fmt.Fprintf(&b, "  Round: %d", g.levelIndex+1)
	} else {
		fmt.Fprintf(&b, "  Level: %d/%d", min(g.levelIndex+1, len(g.pack)), len(g.pack))
	}
	dst.DrawText(0, 0, b.String())

	x := len([]rune(b.String())) + 2
	if left := w.Scared.Remaining(w.Now); left > 0 {
		label := fmt.Sprintf("Scared %ds", secondsLeft(left))
		dst.DrawTextColored(x, 0, label, core.ColorBlue)
		x += len(label) + 2
	}
	if left := w.PathView.Remaining(w.Now); left > 0 {
		dst.DrawTextColored(x, 0, fmt.Sprintf("Paths %ds", secondsLeft(left)), core.ColorMagenta)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func secondsLeft(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
