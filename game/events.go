package game

import "snake-walls/game/manager"

// EventKind enumerates what can happen during one tick.
type EventKind int

const (
	EventGrew EventKind = iota
	EventAtePill
	EventAteFastPill
	EventSpeedBoostEnded
	EventDied
	EventSpawnedApple
	EventSpawnedPill
	EventSpawnedFastPill
)

func (k EventKind) String() string {
	switch k {
	case EventGrew:
		return "grew"
	case EventAtePill:
		return "ate-pill"
	case EventAteFastPill:
		return "ate-fast-pill"
	case EventSpeedBoostEnded:
		return "speed-boost-ended"
	case EventDied:
		return "died"
	case EventSpawnedApple:
		return "spawned-apple"
	case EventSpawnedPill:
		return "spawned-pill"
	case EventSpawnedFastPill:
		return "spawned-fast-pill"
	default:
		return "unknown"
	}
}

// Event is one occurrence inside a tick. Cause is set on EventDied.
type Event struct {
	Kind  EventKind
	Cause manager.CollisionType
}

// TickResult is what a single Tick reports back to the driver.
type TickResult struct {
	Events   []Event
	Snapshot Snapshot
}

// Has reports whether an event of kind k occurred.
func (r TickResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
