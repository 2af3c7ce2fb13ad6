package levels

import "github.com/vovakirdan/gunsnake/internal/engine"

// Built-in level names.
const (
	Empty    = "Empty"
	Walled   = "Walled"
	Stripped = "Stripped"
)

// BuiltinNames lists the levels that exist for every field size.
var BuiltinNames = []string{Empty, Walled, Stripped}

// Builtin generates a built-in level for the given size.
// The snake starts in the middle, tail above head, moving down.
func Builtin(name string, w, h int) (engine.Level, bool) {
	l := engine.NewEmptyLevel(name, w, h)
	switch name {
	case Empty:
	case Walled:
		for x := range w {
			l.Cells[0][x] = engine.CellWall
			l.Cells[h-1][x] = engine.CellWall
		}
		for y := range h {
			l.Cells[y][0] = engine.CellWall
			l.Cells[y][w-1] = engine.CellWall
		}
	case Stripped:
		tw, th := w/3, h/3
		for i := range th {
			l.Cells[th+i][tw] = engine.CellWall
			l.Cells[th+i][2*tw] = engine.CellWall
		}
	default:
		return engine.Level{}, false
	}
	return l, true
}
