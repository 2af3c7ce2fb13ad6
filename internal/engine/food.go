package engine

import "math/rand"

// FoodSpawner keeps at most one food cell on the grid.
type FoodSpawner struct {
	grid *Grid
	rng  *rand.Rand
	food Point
	has  bool
}

func newFoodSpawner(g *Grid, rng *rand.Rand) *FoodSpawner {
	f := &FoodSpawner{grid: g, rng: rng}
	f.sync()
	return f
}

// sync reads the food position back from the grid. Extra food cells
// beyond the first in row-major order are cleared.
func (f *FoodSpawner) sync() {
	f.has = false
	for _, p := range f.grid.Find(CellFood) {
		if !f.has {
			f.food, f.has = p, true
			continue
		}
		f.grid.Set(p.X, p.Y, CellEmpty)
	}
}

// Count returns 0 or 1.
func (f *FoodSpawner) Count() int {
	if f.has {
		return 1
	}
	return 0
}

// Position returns the active food cell, if any.
func (f *FoodSpawner) Position() (Point, bool) {
	return f.food, f.has
}

// consumed marks the food as eaten; the caller has already retagged the cell.
func (f *FoodSpawner) consumed() {
	f.has = false
}

// SpawnIfNeeded places food on a uniformly random empty cell when none
// exists. It returns ErrNoSpaceAvailable when the grid is saturated.
func (f *FoodSpawner) SpawnIfNeeded() error {
	if f.has {
		return nil
	}
	p, err := f.pickEmpty()
	if err != nil {
		return err
	}
	f.grid.Set(p.X, p.Y, CellFood)
	f.food, f.has = p, true
	return nil
}

// Relocate removes the current food and spawns a new one.
func (f *FoodSpawner) Relocate() error {
	if f.has {
		f.grid.Set(f.food.X, f.food.Y, CellEmpty)
		f.has = false
	}
	return f.SpawnIfNeeded()
}

// pickEmpty samples random cells until it finds an empty one. After a bounded
// number of misses it falls back to choosing among the enumerated empty cells,
// which keeps the distribution uniform and always terminates.
func (f *FoodSpawner) pickEmpty() (Point, error) {
	w, h := f.grid.Width(), f.grid.Height()
	for range 4 * w * h {
		p := Point{X: f.rng.Intn(w), Y: f.rng.Intn(h)}
		if f.grid.CellAt(p.X, p.Y) == CellEmpty {
			return p, nil
		}
	}
	empty := f.grid.Find(CellEmpty)
	if len(empty) == 0 {
		return Point{}, ErrNoSpaceAvailable
	}
	return empty[f.rng.Intn(len(empty))], nil
}
