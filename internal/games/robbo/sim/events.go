package sim

import "github.com/vovakirdan/tui-robbo/internal/core"

// DamageCause tells how a damage event was raised.
type DamageCause uint8

const (
	// CauseBlockedShot is a shot fired straight into an occupied cell.
	CauseBlockedShot DamageCause = iota
	// CauseProjectile is a moving projectile hitting something.
	CauseProjectile
	// CauseContact is a creature and the player running into each other.
	CauseContact
)

// String returns a short name for logs.
func (c DamageCause) String() string {
	switch c {
	case CauseBlockedShot:
		return "blocked_shot"
	case CauseProjectile:
		return "projectile"
	case CauseContact:
		return "contact"
	}
	return "unknown"
}

// DamageEvent names a cell whose destroyable occupant must be removed.
type DamageEvent struct {
	Cell  core.Coord
	Cause DamageCause
}

// IsImpact reports whether the event came from a moving projectile rather
// than a shot blocked at the muzzle.
func (e DamageEvent) IsImpact() bool {
	return e.Cause == CauseProjectile
}

// EventQueue is a FIFO of damage events. Phases push during a tick and the
// damage phase drains it once; nothing is applied while it is being filled.
type EventQueue struct {
	events []DamageEvent
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]DamageEvent, 0, 16)}
}

// Push appends an event.
func (q *EventQueue) Push(ev DamageEvent) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in FIFO order and empties the queue.
func (q *EventQueue) Drain() []DamageEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]DamageEvent, 0, cap(out))
	return out
}
