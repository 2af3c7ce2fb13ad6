package engine

// Impact records a projectile hitting a non-empty cell.
type Impact struct {
	Cell Point
	Tag  CellTag
}

// Resolver applies projectile hits to a board.
type Resolver struct{}

// Resolve checks every projectile against the cell it is crossing. A hit on
// the snake slices it, a hit on a wall clears the wall and a hit on food grows
// the snake remotely. Each projectile that hits is removed and produces
// exactly one impact; the rest are returned for the next tick.
func (Resolver) Resolve(b *Board, projectiles []*Projectile) ([]*Projectile, []Impact) {
	live := projectiles[:0]
	var impacts []Impact
	for _, p := range projectiles {
		c := p.GridCell()
		if !b.grid.InBounds(c.X, c.Y) {
			live = append(live, p)
			continue
		}
		t := b.grid.CellAt(c.X, c.Y)
		switch t {
		case CellSnake:
			b.Slice(c)
		case CellWall:
			b.ClearWall(c)
		case CellFood:
			b.GrowRemote(c)
		default:
			live = append(live, p)
			continue
		}
		impacts = append(impacts, Impact{Cell: c, Tag: t})
		b.emit(Event{Kind: EventProjectileImpact, Cell: c, Tag: t})
	}
	clear(projectiles[len(live):])
	return live, impacts
}

// Advance moves every projectile one step and drops those that left the field.
func Advance(projectiles []*Projectile) []*Projectile {
	live := projectiles[:0]
	for _, p := range projectiles {
		if !p.Advance() {
			live = append(live, p)
		}
	}
	clear(projectiles[len(live):])
	return live
}
