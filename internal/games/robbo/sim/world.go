package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-robbo/internal/core"
)

// Default grid dimensions.
const (
	DefaultWidth  = 32
	DefaultHeight = 16
)

// Rand is the random source used for firing decisions.
// *rand.Rand satisfies it; tests inject fixed sequences.
type Rand interface {
	Float64() float64
}

// Components groups the typed component stores of a world.
type Components struct {
	Kind        *Store[Kind]
	Position    *Store[core.Coord]
	MovingDir   *Store[core.Coord]
	ShootingDir *Store[ShootingDir]
	Gun         *Store[Gun]
	Facing      *Store[core.Coord]
	Tile        *Store[Tile]
	Moveable    *Store[Marker]
	Destroyable *Store[Marker]
	Robbo       *Store[Marker]
	Hit         *Store[Marker] // Robbo after it took damage
}

func newComponents() Components {
	return Components{
		Kind:        NewStore[Kind](),
		Position:    NewStore[core.Coord](),
		MovingDir:   NewStore[core.Coord](),
		ShootingDir: NewStore[ShootingDir](),
		Gun:         NewStore[Gun](),
		Facing:      NewStore[core.Coord](),
		Tile:        NewStore[Tile](),
		Moveable:    NewStore[Marker](),
		Destroyable: NewStore[Marker](),
		Robbo:       NewStore[Marker](),
		Hit:         NewStore[Marker](),
	}
}

// removeAll detaches every component from e.
func (c Components) removeAll(e Entity) {
	c.Kind.Remove(e)
	c.Position.Remove(e)
	c.MovingDir.Remove(e)
	c.ShootingDir.Remove(e)
	c.Gun.Remove(e)
	c.Facing.Remove(e)
	c.Tile.Remove(e)
	c.Moveable.Remove(e)
	c.Destroyable.Remove(e)
	c.Robbo.Remove(e)
	c.Hit.Remove(e)
}

// Options configures a new World.
type Options struct {
	Width             int
	Height            int
	ShootEvery        int // firing cadence in ticks
	CreatureMoveEvery int // creature movement cadence in ticks
	Seed              int64
	Rand              Rand        // overrides Seed when set
	Logger            *log.Logger // receives contract violations; discarded when nil
}

// World owns the entity set, the component stores, the tick clock and the
// damage queue. It must be driven by a single goroutine.
type World struct {
	width  int
	height int
	nextID Entity

	Components Components
	Clock      *Clock
	Events     *EventQueue

	rng        Rand
	logger     *log.Logger
	fireScale  float64
	violations int
	hasPlayer  bool // a Robbo was spawned, so exactly one must remain
}

// NewWorld creates an empty world.
func NewWorld(opts Options) *World {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &World{
		width:      opts.Width,
		height:     opts.Height,
		nextID:     1,
		Components: newComponents(),
		Clock:      NewClock(opts.ShootEvery, opts.CreatureMoveEvery),
		Events:     NewEventQueue(),
		rng:        rng,
		logger:     logger.WithPrefix("sim"),
		fireScale:  1,
	}
}

// Width returns the grid width.
func (w *World) Width() int {
	return w.width
}

// Height returns the grid height.
func (w *World) Height() int {
	return w.height
}

// InBounds reports whether c lies on the grid.
func (w *World) InBounds(c core.Coord) bool {
	return core.NewRect(0, 0, w.width, w.height).ContainsCoord(c)
}

// SetFireScale multiplies the probability of non-player shooters.
// Results are clamped to [0,1] when shooters are armed.
func (w *World) SetFireScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	w.fireScale = scale
}

// Violations returns how many contract violations have been reported.
func (w *World) Violations() int {
	return w.violations
}

// Spawn describes one initial entity.
// Nil optional fields fall back to the kind's defaults.
type Spawn struct {
	Kind Kind
	Pos  core.Coord
	Dir  *core.Coord
	Gun  *Gun
	Tile *Tile
}

// Population errors.
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrCellTaken   = errors.New("cell already occupied")
	ErrSecondRobbo = errors.New("a robbo already exists")
	ErrUnknownKind = errors.New("unknown kind")
	ErrInvalidDir  = errors.New("direction must be cardinal or zero")
	ErrProbability = errors.New("probability must be within [0,1]")
)

// Populate spawns every entry in order, stopping at the first invalid one.
func (w *World) Populate(spawns []Spawn) error {
	for i, s := range spawns {
		if _, err := w.Spawn(s); err != nil {
			return fmt.Errorf("spawn %d (%s at %v): %w", i, s.Kind, s.Pos, err)
		}
	}
	return nil
}

// Spawn validates and creates one entity from the population interface.
func (w *World) Spawn(s Spawn) (Entity, error) {
	if _, ok := kindNames[s.Kind]; !ok {
		return 0, ErrUnknownKind
	}
	if !w.InBounds(s.Pos) {
		return 0, ErrOutOfBounds
	}
	if _, taken := w.EntityAt(s.Pos); taken {
		return 0, ErrCellTaken
	}
	if s.Kind == KindRobbo && w.Components.Robbo.Len() > 0 {
		return 0, ErrSecondRobbo
	}
	if s.Dir != nil && !s.Dir.IsZero() && !s.Dir.IsCardinal() {
		return 0, ErrInvalidDir
	}
	if s.Gun != nil {
		if s.Gun.Probability < 0 || s.Gun.Probability > 1 {
			return 0, ErrProbability
		}
		if !s.Gun.Dir.IsZero() && !s.Gun.Dir.IsCardinal() {
			return 0, ErrInvalidDir
		}
	}
	return w.build(s), nil
}

// newEntity reserves the next handle.
func (w *World) newEntity() Entity {
	e := w.nextID
	w.nextID++
	return e
}

// Destroy removes e and all its components.
func (w *World) Destroy(e Entity) {
	w.Components.removeAll(e)
}

// Alive reports whether e still exists.
func (w *World) Alive(e Entity) bool {
	return w.Components.Kind.Has(e)
}

// KindOf returns the kind of e.
func (w *World) KindOf(e Entity) Kind {
	k, _ := w.Components.Kind.Get(e)
	return k
}

// PositionOf returns the position of e.
func (w *World) PositionOf(e Entity) (core.Coord, bool) {
	return w.Components.Position.Get(e)
}

// Player returns the Robbo entity. A hit Robbo stays in the world, so
// callers that care about the run check PlayerHit as well.
func (w *World) Player() (Entity, bool) {
	players := w.Components.Robbo.Entities()
	if len(players) == 0 {
		return 0, false
	}
	return players[0], true
}

// PlayerHit reports whether Robbo has taken damage.
func (w *World) PlayerHit() bool {
	robbo, ok := w.Player()
	return ok && w.Components.Hit.Has(robbo)
}

// EntityAt scans for the entity at c. It is used at setup and in tests;
// the tick phases go through the occupancy snapshot instead.
func (w *World) EntityAt(c core.Coord) (Entity, bool) {
	for _, e := range w.Components.Position.Entities() {
		if p, _ := w.Components.Position.Get(e); p == c {
			return e, true
		}
	}
	return 0, false
}

// Count returns the number of live entities of a kind.
func (w *World) Count(k Kind) int {
	n := 0
	for _, e := range w.Components.Kind.Entities() {
		if kind, _ := w.Components.Kind.Get(e); kind == k {
			n++
		}
	}
	return n
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.Components.Kind.Len()
}

// Sprites returns the render view of every positioned entity in creation order.
func (w *World) Sprites() []Sprite {
	entities := w.Components.Position.Entities()
	out := make([]Sprite, 0, len(entities))
	for _, e := range entities {
		pos, _ := w.Components.Position.Get(e)
		tile, _ := w.Components.Tile.Get(e)
		out = append(out, Sprite{
			Entity: e,
			Kind:   w.KindOf(e),
			Pos:    pos,
			Tile:   tile,
		})
	}
	return out
}
