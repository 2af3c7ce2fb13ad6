package engine

// Snapshot is an immutable copy of a board for renderers and tests.
type Snapshot struct {
	Width   int
	Height  int
	Cells   []CellTag
	Body    []Point
	Heading Direction
	State   SnakeState
	Score   int
	Steps   int
}

// Snapshot copies the current board state.
func (b *Board) Snapshot() Snapshot {
	cells := make([]CellTag, len(b.grid.cells))
	copy(cells, b.grid.cells)
	return Snapshot{
		Width:   b.grid.w,
		Height:  b.grid.h,
		Cells:   cells,
		Body:    b.snake.Body(),
		Heading: b.snake.heading,
		State:   b.snake.state,
		Score:   b.score,
		Steps:   b.steps,
	}
}

// CellAt returns the tag at (x, y), or CellEmpty outside the grid.
func (s Snapshot) CellAt(x, y int) CellTag {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return CellEmpty
	}
	return s.Cells[y*s.Width+x]
}

// Orientation classifies the body segment at (x, y).
func (s Snapshot) Orientation(x, y int) (Orientation, error) {
	return orientationOf(s.Body, Point{X: x, Y: y}, s.Width, s.Height)
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Width != o.Width || s.Height != o.Height || s.Heading != o.Heading ||
		s.State != o.State || s.Score != o.Score || s.Steps != o.Steps ||
		len(s.Body) != len(o.Body) || len(s.Cells) != len(o.Cells) {
		return false
	}
	for i := range s.Body {
		if s.Body[i] != o.Body[i] {
			return false
		}
	}
	for i := range s.Cells {
		if s.Cells[i] != o.Cells[i] {
			return false
		}
	}
	return true
}
