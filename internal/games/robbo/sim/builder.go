package sim

import "github.com/vovakirdan/tui-robbo/internal/core"

// Default presentation tiles per kind (indices into the icon atlas).
const (
	TileRobbo     Tile = 60
	TileBird      Tile = 15
	TileBirdAlt   Tile = 16
	TileLBear     Tile = 13
	TileMovingBox Tile = 6
	TileBox       Tile = 20
	TileWall      Tile = 3
	TileBullet    Tile = 36
	TileLaser     Tile = 38
	TileGun       Tile = 53
)

// archetype holds the per-kind component defaults.
type archetype struct {
	tile        Tile
	dir         *core.Coord // default MovingDir; nil means no MovingDir component
	moveable    bool
	destroyable bool
	gun         *Gun
}

func dirPtr(d core.Coord) *core.Coord {
	return &d
}

var archetypes = map[Kind]archetype{
	KindRobbo:     {tile: TileRobbo, dir: dirPtr(core.DirNone), destroyable: true, gun: &Gun{Probability: 1, Type: GunBurst}},
	KindBird:      {tile: TileBird, dir: dirPtr(core.DirRight), destroyable: true},
	KindLBear:     {tile: TileLBear, dir: dirPtr(core.DirUp), destroyable: true},
	KindMovingBox: {tile: TileMovingBox, dir: dirPtr(core.DirNone), moveable: true},
	KindBox:       {tile: TileBox, moveable: true},
	KindWall:      {tile: TileWall},
	KindBullet:    {tile: TileBullet, dir: dirPtr(core.DirNone), destroyable: true},
	KindLaserHead: {tile: TileLaser, dir: dirPtr(core.DirNone), destroyable: true},
	KindGun:       {tile: TileGun, gun: &Gun{Dir: core.DirLeft, Probability: 0.1, Type: GunBurst}},
}

// builder attaches components to a freshly reserved entity.
type builder struct {
	w *World
	e Entity
}

func (w *World) newBuilder(k Kind, pos core.Coord) builder {
	b := builder{w: w, e: w.newEntity()}
	w.Components.Kind.Set(b.e, k)
	w.Components.Position.Set(b.e, pos)
	return b
}

func with[T any](b builder, store *Store[T], val T) builder {
	store.Set(b.e, val)
	return b
}

// build creates an entity from a validated spawn, applying kind defaults.
func (w *World) build(s Spawn) Entity {
	arch := archetypes[s.Kind]
	b := w.newBuilder(s.Kind, s.Pos)

	tile := arch.tile
	if s.Tile != nil {
		tile = *s.Tile
	}
	with(b, w.Components.Tile, tile)

	switch {
	case s.Dir != nil:
		with(b, w.Components.MovingDir, *s.Dir)
	case arch.dir != nil:
		with(b, w.Components.MovingDir, *arch.dir)
	}
	if arch.moveable {
		with(b, w.Components.Moveable, Marker{})
	}
	if arch.destroyable {
		with(b, w.Components.Destroyable, Marker{})
	}

	switch {
	case s.Gun != nil:
		with(b, w.Components.Gun, *s.Gun)
	case arch.gun != nil:
		with(b, w.Components.Gun, *arch.gun)
	}

	if s.Kind == KindRobbo {
		with(b, w.Components.Robbo, Marker{})
		with(b, w.Components.Facing, core.DirRight)
		w.hasPlayer = true
	}
	return b.e
}

// spawnProjectile creates a bullet or laser head travelling in dir.
func (w *World) spawnProjectile(gun GunType, pos, dir core.Coord) Entity {
	kind := KindBullet
	if gun == GunSolid {
		kind = KindLaserHead
	}
	arch := archetypes[kind]
	b := w.newBuilder(kind, pos)
	with(b, w.Components.Tile, arch.tile)
	with(b, w.Components.MovingDir, dir)
	with(b, w.Components.Destroyable, Marker{})
	return b.e
}
