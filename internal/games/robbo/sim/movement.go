package sim

import "github.com/vovakirdan/tui-robbo/internal/core"

// Move resolves every non-zero MovingDir in creation order.
//
// A destination is taken when it is outside the grid, was occupied in the
// snapshot, or was claimed earlier this tick; the first mover in creation
// order wins a contested cell. Only Robbo pushes: a Moveable occupant that
// still stands in the cell moves first if its own destination is free, then
// Robbo steps into the cell it left. Blocked movers apply their kind's policy.
func (w *World) Move(f *Frame) {
	creatureTick := w.Clock.IsCreatureMoveTick()

	for _, e := range w.Components.MovingDir.Entities() {
		if f.moved[e] || !w.Alive(e) {
			continue
		}
		dir, _ := w.Components.MovingDir.Get(e)
		if dir.IsZero() {
			continue
		}
		kind := w.KindOf(e)
		if !creatureTick && !movesEveryTick(kind) {
			continue
		}

		pos, _ := w.Components.Position.Get(e)
		dest := pos.Add(dir)

		switch {
		case !w.InBounds(dest):
			w.onBlocked(f, e, kind, pos, dir, dest)
		case !f.Blocked(dest):
			w.commitMove(f, e, dest)
		case kind == KindRobbo && w.tryPush(f, dest, dir):
			w.commitMove(f, e, dest)
		default:
			w.onBlocked(f, e, kind, pos, dir, dest)
		}
	}
}

// movesEveryTick reports whether a kind ignores the creature cadence.
func movesEveryTick(k Kind) bool {
	return k == KindRobbo || k.IsProjectile()
}

func (w *World) commitMove(f *Frame, e Entity, dest core.Coord) {
	w.Components.Position.Set(e, dest)
	f.claim(dest, e)
	f.moved[e] = true
}

// tryPush moves the Moveable occupant of cell one step along dir.
// It reports whether the cell is now free for the pusher.
func (w *World) tryPush(f *Frame, cell, dir core.Coord) bool {
	if _, claimed := f.claimed[cell]; claimed {
		return false
	}
	occ, ok := f.Occupancy.At(cell)
	if !ok || f.moved[occ] || !w.Components.Moveable.Has(occ) {
		return false
	}
	if pos, _ := w.Components.Position.Get(occ); pos != cell {
		return false
	}
	beyond := cell.Add(dir)
	if !w.InBounds(beyond) || f.Blocked(beyond) {
		return false
	}

	w.commitMove(f, occ, beyond)
	if w.KindOf(occ) == KindMovingBox {
		w.Components.MovingDir.Set(occ, dir)
	}
	return true
}

// onBlocked applies the per-kind policy for a move that could not be committed.
func (w *World) onBlocked(f *Frame, e Entity, kind Kind, pos, dir, dest core.Coord) {
	inBounds := w.InBounds(dest)

	switch kind {
	case KindRobbo:
		if other, ok := f.occupant(dest); inBounds && ok && w.KindOf(other).IsCreature() {
			w.Events.Push(DamageEvent{Cell: pos, Cause: CauseContact})
		}

	case KindBird:
		w.Components.MovingDir.Set(e, dir.Neg())
		w.contactPlayer(f, dest, inBounds)

	case KindLBear:
		w.Components.MovingDir.Set(e, dir.TurnLeft())
		w.contactPlayer(f, dest, inBounds)

	case KindMovingBox:
		w.Components.MovingDir.Set(e, core.DirNone)

	case KindBullet:
		if inBounds {
			w.Events.Push(DamageEvent{Cell: dest, Cause: CauseProjectile})
		}
		w.Events.Push(DamageEvent{Cell: pos, Cause: CauseProjectile})

	case KindLaserHead:
		other, ok := f.occupant(dest)
		if inBounds && ok {
			w.Events.Push(DamageEvent{Cell: dest, Cause: CauseProjectile})
		}
		if !inBounds || !ok || !w.pierceable(other) {
			w.Events.Push(DamageEvent{Cell: pos, Cause: CauseProjectile})
		}

	default:
		w.Components.MovingDir.Set(e, core.DirNone)
	}
}

// pierceable reports whether a laser head keeps going after hitting e.
// Robbo stops it: a hit Robbo stays on its cell.
func (w *World) pierceable(e Entity) bool {
	return w.Components.Destroyable.Has(e) && !w.Components.Robbo.Has(e)
}

// contactPlayer raises a contact event when a creature runs into Robbo.
func (w *World) contactPlayer(f *Frame, dest core.Coord, inBounds bool) {
	if !inBounds {
		return
	}
	if other, ok := f.occupant(dest); ok && w.Components.Robbo.Has(other) {
		w.Events.Push(DamageEvent{Cell: dest, Cause: CauseContact})
	}
}
