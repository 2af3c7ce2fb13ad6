// Package engine implements the snake simulation: a toroidal grid of cell
// tags, the snake that moves on it, food placement, segment orientation
// for renderers, and the projectiles fired in gun mode.
//
// The package has no external dependencies and performs no I/O. All
// randomness comes from an injected *rand.Rand so runs are reproducible.
package engine

// Grid is a width×height matrix of cell tags stored in row-major order.
// It does not wrap coordinates; callers normalise with Wrap first.
type Grid struct {
	w, h  int
	cells []CellTag
}

// NewGrid creates an empty grid.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(invalidCoordinate(w, h, w, h))
	}
	return &Grid{w: w, h: h, cells: make([]CellTag, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds returns true if the coordinate lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// CellAt returns the tag at (x, y). Out-of-range input panics with an
// error wrapping ErrInvalidCoordinate.
func (g *Grid) CellAt(x, y int) CellTag {
	if !g.InBounds(x, y) {
		panic(invalidCoordinate(x, y, g.w, g.h))
	}
	return g.cells[y*g.w+x]
}

// Set stores a tag at (x, y). Out-of-range input panics like CellAt.
func (g *Grid) Set(x, y int, t CellTag) {
	if !g.InBounds(x, y) {
		panic(invalidCoordinate(x, y, g.w, g.h))
	}
	g.cells[y*g.w+x] = t
}

// Lookup is the non-panicking form of CellAt for collaborators that
// receive coordinates from outside the engine.
func (g *Grid) Lookup(p Point) (CellTag, error) {
	if !g.InBounds(p.X, p.Y) {
		return CellEmpty, invalidCoordinate(p.X, p.Y, g.w, g.h)
	}
	return g.cells[p.Y*g.w+p.X], nil
}

// Wrap maps any coordinate onto the torus.
func (g *Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.w), Y: mod(p.Y, g.h)}
}

// Count returns how many cells carry the given tag.
func (g *Grid) Count(t CellTag) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Find returns every cell carrying the given tag in row-major order.
func (g *Grid) Find(t CellTag) []Point {
	var out []Point
	for i, c := range g.cells {
		if c == t {
			out = append(out, Point{X: i % g.w, Y: i / g.w})
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellTag, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
