package sim

import "github.com/vovakirdan/tui-robbo/internal/core"

// TranslateInput turns the frame's directional and fire signals into intents
// for the single Robbo entity. Nothing else is touched. A hit Robbo ignores
// input.
func (w *World) TranslateInput(in core.InputFrame) {
	robbo, ok := w.Player()
	if !ok {
		return
	}
	if w.Components.Hit.Has(robbo) {
		w.Components.MovingDir.Set(robbo, core.DirNone)
		return
	}

	dir := in.Direction()
	w.Components.MovingDir.Set(robbo, dir)
	if !dir.IsZero() {
		w.Components.Facing.Set(robbo, dir)
	}

	if !in.Has(core.ActionFire) {
		return
	}
	facing, ok := w.Components.Facing.Get(robbo)
	if !ok || facing.IsZero() {
		facing = core.DirRight
	}
	gun, _ := w.Components.Gun.Get(robbo)
	w.Components.ShootingDir.Set(robbo, ShootingDir{
		Dir:         facing,
		Probability: 1,
		Gun:         gun.Type,
	})
}

// ArmShooters attaches a fresh firing intent to every non-player entity that
// carries a gun. Like the player's, the intent lives for one tick only.
func (w *World) ArmShooters() {
	for _, e := range w.Components.Gun.Entities() {
		if w.Components.Robbo.Has(e) {
			continue
		}
		gun, _ := w.Components.Gun.Get(e)
		if gun.Dir.IsZero() {
			continue
		}
		w.Components.ShootingDir.Set(e, ShootingDir{
			Dir:         gun.Dir,
			Probability: core.ClampF(gun.Probability*w.fireScale, 0, 1),
			Gun:         gun.Type,
		})
	}
}

// Steer runs the creature behavior policies that pick a heading before
// movement. LBears follow the wall on their left: they try left, straight,
// right and back, in that order, against the snapshot.
func (w *World) Steer(f *Frame) {
	if !w.Clock.IsCreatureMoveTick() {
		return
	}
	for _, e := range w.Components.MovingDir.Entities() {
		if w.KindOf(e) != KindLBear {
			continue
		}
		pos, _ := w.Components.Position.Get(e)
		dir, _ := w.Components.MovingDir.Get(e)
		if dir.IsZero() {
			dir = core.DirUp
		}
		for _, cand := range []core.Coord{dir.TurnLeft(), dir, dir.TurnRight(), dir.Neg()} {
			dest := pos.Add(cand)
			if w.InBounds(dest) && !f.Occupancy.IsOccupied(dest) {
				dir = cand
				break
			}
		}
		w.Components.MovingDir.Set(e, dir)
	}
}
