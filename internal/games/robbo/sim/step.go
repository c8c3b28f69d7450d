package sim

import "github.com/vovakirdan/tui-robbo/internal/core"

// StepResult reports what happened during one tick.
type StepResult struct {
	Tick        uint64
	Spawned     int
	Destroyed   []Destroyed
	PlayerAlive bool
}

// Step advances the world by one tick. Phases run to completion in order:
// occupancy snapshot, player intent, shooter arming, creature steering,
// movement, cadence-gated firing and the damage flush. Events raised during
// the tick are applied before Step returns, so the next tick starts clean.
func (w *World) Step(in core.InputFrame) StepResult {
	tick := w.Clock.Advance()

	f := w.BeginFrame()
	w.TranslateInput(in)
	w.ArmShooters()
	w.Steer(f)
	w.Move(f)
	spawned := w.Fire(f)
	destroyed := w.ApplyDamage()

	w.checkInvariants()

	_, ok := w.Player()
	return StepResult{
		Tick:        tick,
		Spawned:     spawned,
		Destroyed:   destroyed,
		PlayerAlive: ok && !w.PlayerHit(),
	}
}
