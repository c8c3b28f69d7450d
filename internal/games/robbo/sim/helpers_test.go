package sim

import (
	"testing"

	"github.com/vovakirdan/tui-robbo/internal/core"
)

// seqRand replays a fixed sequence of draws.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// always returns a source that yields v forever.
func always(v float64) *seqRand {
	return &seqRand{vals: []float64{v}}
}

func newTestWorld(t *testing.T, opts Options, spawns ...Spawn) *World {
	t.Helper()
	if opts.Width == 0 {
		opts.Width = 10
	}
	if opts.Height == 0 {
		opts.Height = 10
	}
	if opts.Rand == nil {
		opts.Rand = always(0)
	}
	w := NewWorld(opts)
	if err := w.Populate(spawns); err != nil {
		t.Fatalf("Populate() failed: %v", err)
	}
	return w
}

func at(k Kind, x, y int) Spawn {
	return Spawn{Kind: k, Pos: core.C(x, y)}
}

func heading(k Kind, x, y int, dir core.Coord) Spawn {
	return Spawn{Kind: k, Pos: core.C(x, y), Dir: &dir}
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func mustEntityAt(t *testing.T, w *World, x, y int) Entity {
	t.Helper()
	e, ok := w.EntityAt(core.C(x, y))
	if !ok {
		t.Fatalf("expected an entity at (%d,%d)", x, y)
	}
	return e
}

func kindAt(w *World, x, y int) Kind {
	e, ok := w.EntityAt(core.C(x, y))
	if !ok {
		return KindUnknown
	}
	return w.KindOf(e)
}
