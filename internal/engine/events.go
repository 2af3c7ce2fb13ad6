package engine

// EventKind identifies a discrete simulation event.
type EventKind uint8

const (
	EventGrew EventKind = iota
	EventAteFoodRemotely
	EventCollided
	EventProjectileFired
	EventProjectileImpact
	EventSliced
	EventFoodSpawned
	EventFoodRelocated
	EventFoodSpawnSkipped
	EventDied
)

func (k EventKind) String() string {
	switch k {
	case EventGrew:
		return "grew"
	case EventAteFoodRemotely:
		return "ate_food_remotely"
	case EventCollided:
		return "collided"
	case EventProjectileFired:
		return "projectile_fired"
	case EventProjectileImpact:
		return "projectile_impact"
	case EventSliced:
		return "sliced"
	case EventFoodSpawned:
		return "food_spawned"
	case EventFoodRelocated:
		return "food_relocated"
	case EventFoodSpawnSkipped:
		return "food_spawn_skipped"
	case EventDied:
		return "died"
	default:
		return "unknown"
	}
}

// Event is emitted by the board for collaborators such as audio and logging.
// Tag carries the kind of cell involved for Collided and ProjectileImpact.
type Event struct {
	Kind EventKind
	Cell Point
	Tag  CellTag
}
