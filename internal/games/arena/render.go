package arena

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ball-arena/internal/core"
	"github.com/vovakirdan/ball-arena/internal/games/arena/sim"
)

// Visual characters and colors for rendering
const (
	BallChar    = '█'
	PlayerColor = core.ColorBrightBlue
	EnemyColor  = core.ColorRed
)

// viewport projects world coordinates (origin at center, +y up) onto
// screen cells (origin top-left, +y down).
type viewport struct {
	cols, rows   int
	cellW, cellH float64
	halfW, halfH float64
}

func newViewport(pf sim.Playfield, cols, rows int, cellW, cellH float64) viewport {
	return viewport{
		cols:  cols,
		rows:  rows,
		cellW: cellW,
		cellH: cellH,
		halfW: pf.Width / 2,
		halfH: pf.Height / 2,
	}
}

// cellAt returns the cell containing a world point.
func (v viewport) cellAt(p sim.Vec2) (col, row int) {
	col = int(math.Floor((p.X + v.halfW) / v.cellW))
	row = int(math.Floor((v.halfH - p.Y) / v.cellH))
	return col, row
}

// cellCenter returns the world point at the middle of a cell.
func (v viewport) cellCenter(col, row int) sim.Vec2 {
	return sim.Vec2{
		X: (float64(col)+0.5)*v.cellW - v.halfW,
		Y: v.halfH - (float64(row)+0.5)*v.cellH,
	}
}

// fillCircle paints every cell whose center lies inside the circle.
// Cells are taller than wide, so circles come out as upright ellipses in
// cell space and round on screen. A circle smaller than one cell still
// paints the cell holding its center.
func (v viewport) fillCircle(dst *core.Screen, center sim.Vec2, radius float64, color core.Color) {
	minCol, minRow := v.cellAt(sim.Vec2{X: center.X - radius, Y: center.Y + radius})
	maxCol, maxRow := v.cellAt(sim.Vec2{X: center.X + radius, Y: center.Y - radius})
	minCol, maxCol = max(minCol, 0), min(maxCol, v.cols-1)
	minRow, maxRow = max(minRow, 0), min(maxRow, v.rows-1)

	painted := false
	r2 := radius * radius
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if v.cellCenter(col, row).DistSq(center) <= r2 {
				dst.SetColor(col, row, BallChar, color)
				painted = true
			}
		}
	}

	if !painted {
		col, row := v.cellAt(center)
		if core.NewRect(0, 0, v.cols, v.rows).Contains(col, row) {
			dst.SetColor(col, row, BallChar, color)
		}
	}
}

// Render draws the session into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		dst.DrawTextCentered(dst.Height()/2, "No playfield")
		return
	}

	// Enemies first so the player stays visible on overlap
	sprites := g.session.Store().Sprites()
	for _, sp := range sprites {
		if sp.Kind == sim.SpriteEnemy {
			g.view.fillCircle(dst, sp.Pos, sp.Radius, EnemyColor)
		}
	}
	for _, sp := range sprites {
		if sp.Kind == sim.SpritePlayer {
			g.view.fillCircle(dst, sp.Pos, sp.Radius, PlayerColor)
		}
	}

	g.renderStatus(dst)

	state := g.State()
	mid := g.view.rows / 2
	switch {
	case state.GameOver:
		g.renderOverlay(dst, mid, "GAME OVER", "Press R to restart or Q to quit")
	case state.Paused:
		g.renderOverlay(dst, mid, "PAUSED", "Press P to resume")
	}
}

// renderStatus draws the HUD line below the playfield.
func (g *Game) renderStatus(dst *core.Screen) {
	state := g.State()
	status := "running"
	switch {
	case state.GameOver:
		status = "eliminated"
	case state.Paused:
		status = "paused"
	}
	line := fmt.Sprintf(" %s | enemies: %d | tick: %d | %s", g.title, state.Enemies, state.Tick, status)
	dst.DrawTextColor(0, g.view.rows, line, core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen, y int, title, hint string) {
	w := max(len([]rune(hint)), len([]rune(title))) + 4
	x := (dst.Width() - w) / 2
	box := core.NewRect(x, y-2, w, 5)
	for by := box.Y; by < box.Bottom(); by++ {
		for bx := box.X; bx < box.Right(); bx++ {
			dst.Set(bx, by, ' ')
		}
	}
	dst.DrawBox(box)
	titleX := (dst.Width() - len([]rune(title))) / 2
	dst.DrawTextColor(titleX, y-1, title, core.ColorYellow)
	hintX := (dst.Width() - len([]rune(hint))) / 2
	dst.DrawTextColor(hintX, y+1, hint, core.ColorBrightWhite)
}
