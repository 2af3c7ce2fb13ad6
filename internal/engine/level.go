package engine

import "fmt"

// MinLevelSize is the smallest width or height a level may have.
const MinLevelSize = 3

// Level is an immutable description of a starting board. Cells is indexed
// [y][x]; Snake tags inside Cells are ignored, the body always starts as
// Head followed by Tail.
type Level struct {
	Name       string
	Width      int
	Height     int
	Cells      [][]CellTag
	Head       Point
	Tail       Point
	Direction  Direction
	Modifiable bool
}

// NewEmptyLevel returns a level with no walls or food and the default
// two-segment snake in the middle, tail above head, travelling down.
func NewEmptyLevel(name string, w, h int) Level {
	cells := make([][]CellTag, h)
	for y := range cells {
		cells[y] = make([]CellTag, w)
	}
	return Level{
		Name:      name,
		Width:     w,
		Height:    h,
		Cells:     cells,
		Head:      Point{X: w / 2, Y: h / 2},
		Tail:      Point{X: w / 2, Y: h/2 - 1},
		Direction: DirDown,
	}
}

// Validate checks that the level can seed a simulation.
func (l Level) Validate() error {
	if l.Width < MinLevelSize || l.Height < MinLevelSize {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("level %q is %dx%d, minimum is %dx%d", l.Name, l.Width, l.Height, MinLevelSize, MinLevelSize),
		}
	}
	if len(l.Cells) != l.Height {
		return ValidationError{
			Code:    "INVALID_SHAPE",
			Message: fmt.Sprintf("level %q has %d rows, expected %d", l.Name, len(l.Cells), l.Height),
		}
	}
	for y, row := range l.Cells {
		if len(row) != l.Width {
			return ValidationError{
				Code:    "INVALID_SHAPE",
				Message: fmt.Sprintf("level %q row %d has %d cells, expected %d", l.Name, y, len(row), l.Width),
			}
		}
	}
	for _, p := range []Point{l.Head, l.Tail} {
		if p.X < 0 || p.X >= l.Width || p.Y < 0 || p.Y >= l.Height {
			return ValidationError{
				Code:    "SNAKE_OUT_OF_BOUNDS",
				Message: fmt.Sprintf("level %q snake cell %s outside %dx%d", l.Name, p, l.Width, l.Height),
			}
		}
		if l.Cells[p.Y][p.X] == CellWall {
			return ValidationError{
				Code:    "SNAKE_ON_WALL",
				Message: fmt.Sprintf("level %q snake cell %s is a wall", l.Name, p),
			}
		}
	}
	if !wrapAdjacent(l.Head, l.Tail, l.Width, l.Height) {
		return ValidationError{
			Code:    "SNAKE_NOT_CONTIGUOUS",
			Message: fmt.Sprintf("level %q head %s and tail %s are not adjacent", l.Name, l.Head, l.Tail),
		}
	}
	ddx, ddy := l.Direction.Delta()
	next := Point{X: mod(l.Head.X+ddx, l.Width), Y: mod(l.Head.Y+ddy, l.Height)}
	if next == l.Tail {
		return ValidationError{
			Code:    "INVALID_DIRECTION",
			Message: fmt.Sprintf("level %q starts moving %s into its own tail", l.Name, l.Direction),
		}
	}
	return nil
}

// Clone returns a deep copy of the level.
func (l Level) Clone() Level {
	c := l
	c.Cells = make([][]CellTag, len(l.Cells))
	for y, row := range l.Cells {
		c.Cells[y] = append([]CellTag(nil), row...)
	}
	return c
}

// grid builds the starting grid with the snake and normalised food.
func (l Level) grid() *Grid {
	g := NewGrid(l.Width, l.Height)
	for y, row := range l.Cells {
		for x, t := range row {
			if t == CellSnake {
				t = CellEmpty
			}
			g.Set(x, y, t)
		}
	}
	g.Set(l.Head.X, l.Head.Y, CellSnake)
	g.Set(l.Tail.X, l.Tail.Y, CellSnake)
	return g
}

// wrapAdjacent reports whether a and b share an edge on the torus.
func wrapAdjacent(a, b Point, w, h int) bool {
	dx := mod(b.X-a.X, w)
	dy := mod(b.Y-a.Y, h)
	switch {
	case dy == 0:
		return dx == 1 || dx == w-1
	case dx == 0:
		return dy == 1 || dy == h-1
	}
	return false
}
