package sim

import "github.com/vovakirdan/tui-robbo/internal/core"

// checkInvariants verifies the end-of-tick guarantees: exactly one Robbo
// once one has been spawned, every position inside the grid, no two entities
// on one cell and no firing intent left over. Robbo-less worlds only arise
// in headless fixtures.
func (w *World) checkInvariants() {
	if n := w.Components.Robbo.Len(); n > 1 || (w.hasPlayer && n != 1) {
		w.reportViolation("robbo count", "count", n)
	}

	seen := make(map[core.Coord]Entity, w.Components.Position.Len())
	for _, e := range w.Components.Position.Entities() {
		pos, _ := w.Components.Position.Get(e)
		if !w.InBounds(pos) {
			w.reportViolation("entity outside grid", "entity", e, "pos", pos)
		}
		if other, dup := seen[pos]; dup {
			w.reportViolation("cell shared by two entities", "cell", pos, "first", other, "second", e)
			continue
		}
		seen[pos] = e
	}

	if n := w.Components.ShootingDir.Len(); n > 0 {
		w.reportViolation("firing intent survived its tick", "count", n)
	}
}

func (w *World) reportViolation(msg string, keyvals ...any) {
	w.violations++
	contractViolation(w.logger, msg, keyvals...)
}
