// Package sim is the Robbo rule engine: a deterministic, single-threaded,
// tick-driven simulation of entities on a bounded grid.
//
// Entities are opaque handles with independently attached components kept in
// typed stores. Each Step runs, in order: occupancy snapshot, player intent,
// creature steering, movement, cadence-gated firing and the damage flush.
// The package has no UI or I/O dependencies.
package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-robbo/internal/core"
)

// Entity is an opaque entity handle. Handles are allocated in increasing
// order, so comparing handles compares creation order. Zero is never used.
type Entity uint32

// Kind identifies an entity archetype.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRobbo
	KindBird
	KindLBear
	KindMovingBox
	KindBox
	KindWall
	KindBullet
	KindLaserHead
	KindGun
)

var kindNames = map[Kind]string{
	KindRobbo:     "robbo",
	KindBird:      "bird",
	KindLBear:     "lbear",
	KindMovingBox: "moving_box",
	KindBox:       "box",
	KindWall:      "wall",
	KindBullet:    "bullet",
	KindLaserHead: "laser_head",
	KindGun:       "gun",
}

// String returns the level-file name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind parses a level-file kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown kind %q", s)
}

// IsCreature reports whether the kind is an autonomous creature.
func (k Kind) IsCreature() bool {
	return k == KindBird || k == KindLBear
}

// IsProjectile reports whether the kind is an in-flight projectile.
func (k Kind) IsProjectile() bool {
	return k == KindBullet || k == KindLaserHead
}

// GunType selects the projectile a shooter spawns.
type GunType uint8

const (
	// GunBurst fires ordinary bullets. It is the zero value.
	GunBurst GunType = iota
	// GunSolid fires laser heads that pierce destroyable obstacles.
	GunSolid
)

// String returns the level-file name of the gun type.
func (g GunType) String() string {
	if g == GunSolid {
		return "solid"
	}
	return "burst"
}

// ParseGunType parses "burst" or "solid". Empty input means burst.
func ParseGunType(s string) (GunType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "burst":
		return GunBurst, nil
	case "solid":
		return GunSolid, nil
	}
	return GunBurst, fmt.Errorf("unknown gun type %q", s)
}

// Tile is a presentation index. The simulation never reads it.
type Tile int

// ShootingDir is a one-tick firing intent.
type ShootingDir struct {
	Dir         core.Coord
	Probability float64 // chance in [0,1] that the shot is fired
	Gun         GunType
}

// Gun holds the persistent weapon of an entity. Non-player shooters are
// re-armed from it every tick; for the player only Type is used.
type Gun struct {
	Dir         core.Coord
	Probability float64
	Type        GunType
}

// Marker is the payload of tag components.
type Marker struct{}

// Destroyed describes an entity removed by the damage pipeline.
type Destroyed struct {
	Entity Entity
	Kind   Kind
	Pos    core.Coord
	Cause  DamageCause
}

// Sprite is the render-facing view of one entity.
type Sprite struct {
	Entity Entity
	Kind   Kind
	Pos    core.Coord
	Tile   Tile
}
