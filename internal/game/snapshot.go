package game

import "github.com/vovakirdan/gunsnake/internal/engine"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Mode           string
	Board          engine.Snapshot
	Direction      engine.Direction
	Projectiles    []engine.Point
	MoveEveryTicks int
	GameOver       bool
	Paused         bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	shots := make([]engine.Point, len(g.shots))
	for i, p := range g.shots {
		shots[i] = engine.Point{X: p.X, Y: p.Y}
	}
	return Snapshot{
		Tick:           g.tick,
		Mode:           string(g.mode),
		Board:          g.board.Snapshot(),
		Direction:      g.direction,
		Projectiles:    shots,
		MoveEveryTicks: g.moveEveryTicks,
		GameOver:       g.gameOver,
		Paused:         g.paused,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Mode != o.Mode || s.Direction != o.Direction ||
		s.MoveEveryTicks != o.MoveEveryTicks || s.GameOver != o.GameOver ||
		s.Paused != o.Paused || len(s.Projectiles) != len(o.Projectiles) {
		return false
	}
	for i := range s.Projectiles {
		if s.Projectiles[i] != o.Projectiles[i] {
			return false
		}
	}
	return s.Board.Equal(o.Board)
}
