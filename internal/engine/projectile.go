package engine

import "math/rand"

// ProjectileStep is how far a projectile travels per fast tick, in sub-cell units.
const ProjectileStep = 20

// Field describes the continuous space projectiles travel in. Every grid
// cell spans CellSize units on both axes.
type Field struct {
	Width    int
	Height   int
	CellSize int
}

// PixelWidth returns the field extent along x.
func (f Field) PixelWidth() int { return f.Width * f.CellSize }

// PixelHeight returns the field extent along y.
func (f Field) PixelHeight() int { return f.Height * f.CellSize }

// Projectile travels along one axis in sub-cell coordinates. Projectiles
// do not wrap; they expire at the field edge.
type Projectile struct {
	Origin Point
	X, Y   int
	Dir    Direction
	step   int
	field  Field
}

// NewProjectile fires from the head cell. The start position is the head
// cell's edge facing dir, jittered along the perpendicular axis.
func NewProjectile(dir Direction, head Point, field Field, rng *rand.Rand) *Projectile {
	cs := field.CellSize
	p := &Projectile{
		Origin: head,
		X:      head.X * cs,
		Y:      head.Y * cs,
		Dir:    dir,
		field:  field,
	}
	jitter := 0
	if cs > 1 && rng != nil {
		jitter = rng.Intn(cs)
	}
	switch dir {
	case DirRight:
		p.X += cs
		p.Y += jitter
		p.step = ProjectileStep
	case DirLeft:
		p.Y += jitter
		p.step = -ProjectileStep
	case DirDown:
		p.Y += cs
		p.X += jitter
		p.step = ProjectileStep
	case DirUp:
		p.X += jitter
		p.step = -ProjectileStep
	}
	return p
}

// Advance moves the projectile one step and reports whether it left the field.
func (p *Projectile) Advance() (expired bool) {
	if p.Dir.Horizontal() {
		p.X += p.step
	} else {
		p.Y += p.step
	}
	return p.OutOfBounds()
}

// OutOfBounds reports whether the position lies outside the field.
func (p *Projectile) OutOfBounds() bool {
	return p.X < 0 || p.Y < 0 || p.X >= p.field.PixelWidth() || p.Y >= p.field.PixelHeight()
}

// GridCell returns the cell the projectile is crossing. Left and Up
// projectiles sit on the far edge of the cell they are entering, so one
// cell is subtracted on their travel axis.
func (p *Projectile) GridCell() Point {
	c := Point{X: floorDiv(p.X, p.field.CellSize), Y: floorDiv(p.Y, p.field.CellSize)}
	switch p.Dir {
	case DirLeft:
		c.X--
	case DirUp:
		c.Y--
	}
	return c
}

// Position returns the cell the projectile should be drawn in.
func (p *Projectile) Position() Point {
	return Point{X: floorDiv(p.X, p.field.CellSize), Y: floorDiv(p.Y, p.field.CellSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Fire launches a projectile from the snake head along its heading.
func (b *Board) Fire(field Field) *Projectile {
	p := NewProjectile(b.snake.heading, b.snake.head, field, b.rng)
	b.emit(Event{Kind: EventProjectileFired, Cell: b.snake.head})
	return p
}
