package sim

// EventKind names a gameplay event raised by the simulation for external
// collaborators (audio, HUD). The core never plays sound or draws.
type EventKind int

const (
	EventCoinCollected EventKind = iota
	EventBlockHit
	EventPowerupSpawned
	EventPowerupCollected
	EventEnemyStomped
	EventShellKicked
	EventEnemyKilled
	EventFireballThrown
	EventPlayerDamaged
	EventPlayerDied
	EventPlayerRespawned
	EventLevelCompleted
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventCoinCollected:
		return "coin collected"
	case EventBlockHit:
		return "block hit"
	case EventPowerupSpawned:
		return "powerup spawned"
	case EventPowerupCollected:
		return "powerup collected"
	case EventEnemyStomped:
		return "enemy stomped"
	case EventShellKicked:
		return "shell kicked"
	case EventEnemyKilled:
		return "enemy killed"
	case EventFireballThrown:
		return "fireball thrown"
	case EventPlayerDamaged:
		return "player damaged"
	case EventPlayerDied:
		return "player died"
	case EventPlayerRespawned:
		return "player respawned"
	case EventLevelCompleted:
		return "level completed"
	case EventGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event is one gameplay occurrence with its world position.
type Event struct {
	Kind     EventKind
	Position Vec2
	Powerup  PowerupKind
}

// EventQueue collects the frame's events. The front end drains it once per
// rendered frame; the simulation only appends.
type EventQueue struct {
	Events []Event
}

func (q *EventQueue) Emit(kind EventKind, pos Vec2) {
	q.Events = append(q.Events, Event{Kind: kind, Position: pos})
}

func (q *EventQueue) EmitPowerup(kind EventKind, pos Vec2, powerup PowerupKind) {
	q.Events = append(q.Events, Event{Kind: kind, Position: pos, Powerup: powerup})
}

// Drain returns the queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	events := q.Events
	q.Events = nil
	return events
}
