package engine

import (
	"errors"
	"math/rand"
	"time"
)

// Board is one simulation instance: a grid with the snake and food layered
// on it. It is not safe for concurrent use; a single scheduler owns it and
// hands read-only snapshots to renderers.
type Board struct {
	level     Level
	grid      *Grid
	snake     *Snake
	food      *FoodSpawner
	rng       *rand.Rand
	threshold int

	score      int
	stagnation int
	steps      int
	events     []Event
}

// Option configures a Board.
type Option func(*Board)

// WithRand injects the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(b *Board) { b.rng = rng }
}

// WithStagnationThreshold sets how many moves without eating are allowed
// before a lone food item is relocated. Zero or less means width+height.
func WithStagnationThreshold(n int) Option {
	return func(b *Board) { b.threshold = n }
}

// NewBoard validates the level and builds a board from it.
func NewBoard(level Level, opts ...Option) (*Board, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	b := &Board{level: level.Clone()}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if b.threshold <= 0 {
		b.threshold = level.Width + level.Height
	}
	b.Reset()
	return b, nil
}

// Reset restores the board to the level it was built from. Food is placed
// if the level has none.
func (b *Board) Reset() {
	b.grid = b.level.grid()
	b.snake = newSnake(b.level.Head, b.level.Tail, b.level.Direction)
	b.food = newFoodSpawner(b.grid, b.rng)
	b.score = 0
	b.stagnation = 0
	b.steps = 0
	b.events = b.events[:0]
	b.spawnFood()
}

// Advance moves the snake one cell in dir, wrapping at the edges.
// Callers must not pass the reverse of the current heading. Advancing a
// dead snake is a no-op that reports Collided.
func (b *Board) Advance(dir Direction) MoveResult {
	if b.snake.state == Dead {
		return Collided
	}
	next := b.grid.Wrap(b.snake.head.Add(dir))

	b.steps++
	b.stagnation++
	if b.stagnation > b.threshold && b.food.Count() == 1 {
		old, _ := b.food.Position()
		b.stagnation = 0
		if err := b.food.Relocate(); err != nil {
			b.emit(Event{Kind: EventFoodSpawnSkipped, Cell: old})
		} else {
			p, _ := b.food.Position()
			b.emit(Event{Kind: EventFoodRelocated, Cell: p})
		}
	}

	switch t := b.grid.CellAt(next.X, next.Y); t {
	case CellEmpty:
		tail := b.snake.popTail()
		b.grid.Set(tail.X, tail.Y, CellEmpty)
		b.snake.pushHead(next, dir)
		b.grid.Set(next.X, next.Y, CellSnake)
		b.spawnFood()
		return Moved
	case CellFood:
		b.snake.pushHead(next, dir)
		b.grid.Set(next.X, next.Y, CellSnake)
		b.food.consumed()
		b.stagnation = 0
		b.score++
		b.emit(Event{Kind: EventGrew, Cell: next})
		b.spawnFood()
		return MovedAndGrew
	default:
		b.snake.state = Dead
		b.emit(Event{Kind: EventCollided, Cell: next, Tag: t})
		b.emit(Event{Kind: EventDied, Cell: b.snake.head})
		return Collided
	}
}

// Slice cuts the snake at p: the segment there and every segment behind it
// are removed and the score becomes the remaining length minus one. A cut
// that leaves fewer than two segments kills the snake.
func (b *Board) Slice(p Point) bool {
	i := b.snake.IndexOf(p)
	if i < 0 {
		return false
	}
	for _, c := range b.snake.truncate(i) {
		b.grid.Set(c.X, c.Y, CellEmpty)
	}
	b.score = max(0, b.snake.Len()-1)
	b.emit(Event{Kind: EventSliced, Cell: p})
	if b.snake.Len() < 2 && b.snake.state == Alive {
		b.snake.state = Dead
		b.emit(Event{Kind: EventDied, Cell: p})
	}
	return true
}

// ClearWall turns a wall cell at p into an empty cell.
func (b *Board) ClearWall(p Point) bool {
	if t, err := b.grid.Lookup(p); err != nil || t != CellWall {
		return false
	}
	b.grid.Set(p.X, p.Y, CellEmpty)
	return true
}

// GrowRemote consumes the food at p as if the snake had eaten it: the head
// extends one cell along its heading and the score increases. If that cell
// is blocked the food is still consumed but the body keeps its length.
func (b *Board) GrowRemote(p Point) bool {
	if t, err := b.grid.Lookup(p); err != nil || t != CellFood {
		return false
	}
	b.grid.Set(p.X, p.Y, CellEmpty)
	b.food.consumed()

	if b.snake.state == Alive {
		next := b.grid.Wrap(b.snake.head.Add(b.snake.heading))
		if t := b.grid.CellAt(next.X, next.Y); t == CellEmpty || t == CellFood {
			b.snake.pushHead(next, b.snake.heading)
			b.grid.Set(next.X, next.Y, CellSnake)
		}
	}
	b.stagnation = 0
	b.score++
	b.emit(Event{Kind: EventAteFoodRemotely, Cell: p})
	b.spawnFood()
	return true
}

// SpawnIfNeeded places food when none is present.
func (b *Board) SpawnIfNeeded() error {
	had := b.food.Count()
	if err := b.food.SpawnIfNeeded(); err != nil {
		return err
	}
	if had == 0 {
		p, _ := b.food.Position()
		b.emit(Event{Kind: EventFoodSpawned, Cell: p})
	}
	return nil
}

func (b *Board) spawnFood() {
	if err := b.SpawnIfNeeded(); errors.Is(err, ErrNoSpaceAvailable) {
		b.emit(Event{Kind: EventFoodSpawnSkipped})
	}
}

func (b *Board) emit(e Event) {
	b.events = append(b.events, e)
}

// Events returns and clears the events recorded since the last call.
func (b *Board) Events() []Event {
	if len(b.events) == 0 {
		return nil
	}
	out := make([]Event, len(b.events))
	copy(out, b.events)
	b.events = b.events[:0]
	return out
}

// Grid exposes the live grid for read-only queries.
func (b *Board) Grid() *Grid { return b.grid }

// CellAt returns the tag at (x, y).
func (b *Board) CellAt(x, y int) CellTag { return b.grid.CellAt(x, y) }

// Width returns the grid width.
func (b *Board) Width() int { return b.grid.Width() }

// Height returns the grid height.
func (b *Board) Height() int { return b.grid.Height() }

// Score returns the current score.
func (b *Board) Score() int { return b.score }

// Steps returns the number of moves since the last reset.
func (b *Board) Steps() int { return b.steps }

// Stagnation returns the moves since food was last eaten or relocated.
func (b *Board) Stagnation() int { return b.stagnation }

// State returns the snake's lifecycle state.
func (b *Board) State() SnakeState { return b.snake.state }

// Snake returns the live snake for read-only queries.
func (b *Board) Snake() *Snake { return b.snake }

// Head returns the snake's head cell, or the last one after a cut at the head.
func (b *Board) Head() Point { return b.snake.Head() }

// Heading returns the direction of the last move.
func (b *Board) Heading() Direction { return b.snake.Heading() }

// FoodCount returns 0 or 1.
func (b *Board) FoodCount() int { return b.food.Count() }

// Food returns the active food cell, if any.
func (b *Board) Food() (Point, bool) { return b.food.Position() }

// Level returns the level the board was built from.
func (b *Board) Level() Level { return b.level }
