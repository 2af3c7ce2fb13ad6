package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gunsnake/internal/config"
	"github.com/vovakirdan/gunsnake/internal/core"
	"github.com/vovakirdan/gunsnake/internal/engine"
)

const hudHeight = 2

// Every grid cell is drawn two characters wide so the field keeps its shape.
const cellChars = 2

// requiredSize returns the screen needed for a w×h field with its border and HUD.
func requiredSize(w, h int) (int, int) {
	return w*cellChars + 2, h + 2 + hudHeight
}

var segmentGlyphs = map[engine.Orientation]rune{
	engine.HeadUp:             '▲',
	engine.HeadDown:           '▼',
	engine.HeadLeft:           '◀',
	engine.HeadRight:          '▶',
	engine.TailUp:             '╻',
	engine.TailDown:           '╹',
	engine.TailLeft:           '╺',
	engine.TailRight:          '╸',
	engine.VerticalStraight:   '┃',
	engine.HorizontalStraight: '━',
	engine.CornerNorthEast:    '┗',
	engine.CornerEastNorth:    '┗',
	engine.CornerNorthWest:    '┛',
	engine.CornerWestNorth:    '┛',
	engine.CornerSouthEast:    '┏',
	engine.CornerEastSouth:    '┏',
	engine.CornerSouthWest:    '┓',
	engine.CornerWestSouth:    '┓',
}

// connectsRight reports whether a segment joins the cell to its right, in
// which case the gap between the two cells is filled.
func connectsRight(o engine.Orientation) bool {
	switch o {
	case engine.HorizontalStraight, engine.HeadLeft, engine.TailLeft,
		engine.CornerNorthEast, engine.CornerEastNorth,
		engine.CornerSouthEast, engine.CornerEastSouth:
		return true
	}
	return false
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.board == nil {
		return
	}
	g.renderHUD(dst)

	if g.tooSmall {
		rw, rh := requiredSize(g.level.Width, g.level.Height)
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", rw, rh))
		return
	}

	snap := g.board.Snapshot()
	ox, oy := g.fieldOrigin(dst)
	dst.DrawBox(core.NewRect(ox-1, oy-1, snap.Width*cellChars+2, snap.Height+2), core.ColorGray)

	for y := range snap.Height {
		for x := range snap.Width {
			sx, sy := ox+x*cellChars, oy+y
			switch snap.CellAt(x, y) {
			case engine.CellWall:
				dst.SetColored(sx, sy, '█', core.ColorGray)
				dst.SetColored(sx+1, sy, '█', core.ColorGray)
			case engine.CellFood:
				dst.SetColored(sx, sy, '●', core.ColorBrightRed)
			case engine.CellSnake:
				if err := g.renderSegment(dst, snap, x, y, sx, sy); err != nil {
					g.fault = err
					g.gameOver = true
					g.env.Logger.Error("aborting game", "err", err)
					return
				}
			}
		}
	}

	for _, p := range g.shots {
		c := p.Position()
		if c.X >= 0 && c.X < snap.Width && c.Y >= 0 && c.Y < snap.Height {
			dst.SetColored(ox+c.X*cellChars, oy+c.Y, '•', core.ColorBrightYellow)
		}
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d  -  R to restart", snap.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "P to continue, R to restart")
	}
}

func (g *Game) renderSegment(dst *core.Screen, snap engine.Snapshot, x, y, sx, sy int) error {
	color := core.ColorGreen
	if snap.State == engine.Dead {
		color = core.ColorRed
		if len(snap.Body) < 2 {
			dst.SetColored(sx, sy, '■', color)
			return nil
		}
	}
	o, err := snap.Orientation(x, y)
	if err != nil {
		return err
	}
	if len(snap.Body) > 0 && snap.Body[0] == (engine.Point{X: x, Y: y}) && snap.State == engine.Alive {
		color = core.ColorBrightGreen
	}
	glyph, ok := segmentGlyphs[o]
	if !ok {
		glyph = '■'
	}
	dst.SetColored(sx, sy, glyph, color)
	if connectsRight(o) && x < snap.Width-1 {
		dst.SetColored(sx+1, sy, '━', color)
	}
	return nil
}

// fieldOrigin returns the screen position of cell (0,0).
func (g *Game) fieldOrigin(dst *core.Screen) (int, int) {
	w := g.level.Width*cellChars + 2
	return (dst.Width()-w)/2 + 1, hudHeight + 1
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Level: %s  Speed: %d",
		g.Title(), g.board.Score(), g.level.Name, g.env.Settings.SpeedLevel())
	if g.mode == config.ModeGun {
		hud += fmt.Sprintf("  Shots: %d", len(g.shots))
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawTextColored(0, 1, strings.Repeat("─", dst.Width()), core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	r := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)
	dst.FillRect(r, ' ')
	dst.DrawBox(r, core.ColorWhite)
	dst.DrawTextCentered(r.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(r.Y+3, line2, core.ColorDefault)
}
