package engine

import (
	"fmt"
	"strings"
)

// CellTag is the content of a single grid cell.
type CellTag uint8

const (
	CellEmpty CellTag = iota
	CellSnake
	CellWall
	CellFood
)

// String returns a human-readable name for the tag.
func (t CellTag) String() string {
	switch t {
	case CellEmpty:
		return "empty"
	case CellSnake:
		return "snake"
	case CellWall:
		return "wall"
	case CellFood:
		return "food"
	default:
		return fmt.Sprintf("CellTag(%d)", uint8(t))
	}
}

// Direction is one of the four cardinal travel directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Horizontal reports whether the direction travels along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection converts a name such as "up" or "Right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "north":
		return DirUp, nil
	case "down", "d", "south":
		return DirDown, nil
	case "left", "l", "west":
		return DirLeft, nil
	case "right", "r", "east":
		return DirRight, nil
	}
	return DirUp, fmt.Errorf("engine: unknown direction %q", s)
}

// Point is a cell position on the grid.
type Point struct {
	X, Y int
}

// Add returns p shifted by one step in direction d, without wrapping.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// MoveResult is the outcome of a single snake advance.
type MoveResult uint8

const (
	Moved MoveResult = iota
	MovedAndGrew
	Collided
)

func (r MoveResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case MovedAndGrew:
		return "moved_and_grew"
	case Collided:
		return "collided"
	default:
		return fmt.Sprintf("MoveResult(%d)", uint8(r))
	}
}

// SnakeState is the lifecycle state of the snake.
type SnakeState uint8

const (
	Alive SnakeState = iota
	Dead
)

func (s SnakeState) String() string {
	if s == Dead {
		return "dead"
	}
	return "alive"
}
