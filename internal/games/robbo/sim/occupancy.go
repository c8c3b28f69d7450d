package sim

import "github.com/vovakirdan/tui-robbo/internal/core"

// Occupancy is the per-tick snapshot of occupied cells.
// Cells are stored row-major: index = y*W + x. Zero means empty.
type Occupancy struct {
	w, h  int
	cells []Entity
}

// BuildOccupancy derives the snapshot from every positioned entity.
// If two entities share a cell the earlier-created one is indexed and the
// conflict is reported as a contract violation.
func BuildOccupancy(w *World) *Occupancy {
	o := &Occupancy{
		w:     w.width,
		h:     w.height,
		cells: make([]Entity, w.width*w.height),
	}
	for _, e := range w.Components.Position.Entities() {
		pos, _ := w.Components.Position.Get(e)
		if !o.inBounds(pos) {
			w.reportViolation("entity outside grid", "entity", e, "pos", pos)
			continue
		}
		i := o.index(pos)
		if o.cells[i] != 0 {
			w.reportViolation("cell shared by two entities", "cell", pos, "first", o.cells[i], "second", e)
			continue
		}
		o.cells[i] = e
	}
	return o
}

func (o *Occupancy) index(c core.Coord) int {
	return c.Y*o.w + c.X
}

func (o *Occupancy) inBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < o.w && c.Y >= 0 && c.Y < o.h
}

// IsOccupied reports whether anything stood at c when the snapshot was taken.
// Out-of-bounds cells are reported as unoccupied; bounds are checked by callers.
func (o *Occupancy) IsOccupied(c core.Coord) bool {
	if !o.inBounds(c) {
		return false
	}
	return o.cells[o.index(c)] != 0
}

// At returns the entity recorded at c in the snapshot.
func (o *Occupancy) At(c core.Coord) (Entity, bool) {
	if !o.inBounds(c) {
		return 0, false
	}
	e := o.cells[o.index(c)]
	return e, e != 0
}

// Frame is the working state of one tick: the occupancy snapshot plus the
// cells claimed by moves and spawns committed during the tick. A cell is free
// only if it was empty in the snapshot and nobody has claimed it yet, so
// vacated cells stay blocked until the next snapshot.
type Frame struct {
	Occupancy *Occupancy
	claimed   map[core.Coord]Entity
	moved     map[Entity]bool
}

// BeginFrame rebuilds the occupancy snapshot for the current tick.
func (w *World) BeginFrame() *Frame {
	return &Frame{
		Occupancy: BuildOccupancy(w),
		claimed:   make(map[core.Coord]Entity),
		moved:     make(map[Entity]bool),
	}
}

// Blocked reports whether c is unavailable to movers and spawns this tick.
func (f *Frame) Blocked(c core.Coord) bool {
	if f.Occupancy.IsOccupied(c) {
		return true
	}
	_, taken := f.claimed[c]
	return taken
}

// claim records that e ends the tick at c.
func (f *Frame) claim(c core.Coord, e Entity) {
	f.claimed[c] = e
}

// occupant returns who blocks c: a claimant from this tick first, then the snapshot.
func (f *Frame) occupant(c core.Coord) (Entity, bool) {
	if e, ok := f.claimed[c]; ok {
		return e, true
	}
	return f.Occupancy.At(c)
}
