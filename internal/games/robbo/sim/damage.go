package sim

import "github.com/vovakirdan/tui-robbo/internal/core"

// ApplyDamage drains the event queue in FIFO order and destroys every
// Destroyable entity standing on an event's cell. Non-destroyable occupants
// are immune, and events on cells that are already empty do nothing.
// Robbo is never removed: the first hit marks it and is reported once.
func (w *World) ApplyDamage() []Destroyed {
	events := w.Events.Drain()
	if len(events) == 0 {
		return nil
	}

	targets := make(map[core.Coord][]Entity)
	for _, e := range w.Components.Destroyable.Entities() {
		if pos, ok := w.Components.Position.Get(e); ok {
			targets[pos] = append(targets[pos], e)
		}
	}

	var destroyed []Destroyed
	for _, ev := range events {
		victims := targets[ev.Cell]
		if len(victims) == 0 {
			continue
		}
		for _, e := range victims {
			if w.Components.Robbo.Has(e) {
				if w.Components.Hit.Has(e) {
					continue
				}
				w.Components.Hit.Set(e, Marker{})
			} else {
				w.Destroy(e)
			}
			destroyed = append(destroyed, Destroyed{
				Entity: e,
				Kind:   w.KindOf(e),
				Pos:    ev.Cell,
				Cause:  ev.Cause,
			})
		}
		delete(targets, ev.Cell)
		w.logger.Debug("destroyed", "cell", ev.Cell, "cause", ev.Cause, "count", len(victims))
	}
	return destroyed
}
