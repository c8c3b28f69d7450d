package sim

// Fire evaluates firing intents on shooting ticks and then clears every
// ShootingDir, shooting tick or not, so an intent never outlives its tick.
//
// Each shooter draws once from the random source and fires when the draw is
// below its probability. A free target cell receives a new projectile moving
// in the same direction; an occupied one receives a blocked-shot damage
// event instead. Targets outside the grid are skipped. Returns the number of
// projectiles spawned.
func (w *World) Fire(f *Frame) int {
	spawned := 0
	if w.Clock.IsShootingTick() {
		for _, e := range w.Components.ShootingDir.Entities() {
			sd, _ := w.Components.ShootingDir.Get(e)
			if w.rng.Float64() >= sd.Probability {
				continue
			}
			pos, ok := w.Components.Position.Get(e)
			if !ok || sd.Dir.IsZero() {
				continue
			}
			target := pos.Add(sd.Dir)
			if !w.InBounds(target) {
				continue
			}
			if f.Blocked(target) {
				w.Events.Push(DamageEvent{Cell: target, Cause: CauseBlockedShot})
				continue
			}
			p := w.spawnProjectile(sd.Gun, target, sd.Dir)
			f.claim(target, p)
			f.moved[p] = true
			spawned++
		}
	}
	w.Components.ShootingDir.Clear()
	return spawned
}
