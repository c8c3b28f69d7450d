// Package formats provides level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-robbo/internal/core"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo/sim"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	WallRing bool              `yaml:"wall_ring,omitempty"`
	Layout   string            `yaml:"layout,omitempty"`
	Entities []YAMLEntity      `yaml:"entities,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLEntity is one explicitly placed entity.
type YAMLEntity struct {
	Kind string   `yaml:"kind"`
	X    int      `yaml:"x"`
	Y    int      `yaml:"y"`
	Dir  []int    `yaml:"dir,omitempty"` // [dx, dy]
	Gun  *YAMLGun `yaml:"gun,omitempty"`
	Tile *int     `yaml:"tile,omitempty"`
}

// YAMLGun configures a shooter.
type YAMLGun struct {
	Dir         []int   `yaml:"dir"`
	Probability float64 `yaml:"probability"`
	Type        string  `yaml:"type,omitempty"` // burst (default) or solid
}

// Level represents a parsed level ready for validation.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Spawns   []sim.Spawn
	Metadata map[string]string
}

// Layout glyphs. Anything not listed here is rejected.
var glyphs = map[rune]struct {
	kind sim.Kind
	dir  core.Coord
}{
	'#': {kind: sim.KindWall},
	'R': {kind: sim.KindRobbo},
	'o': {kind: sim.KindBox},
	'm': {kind: sim.KindMovingBox},
	'b': {kind: sim.KindBird, dir: core.DirRight},
	'v': {kind: sim.KindBird, dir: core.DirDown},
	'l': {kind: sim.KindLBear, dir: core.DirUp},
}

// ParseYAML parses a YAML level file. Spawns are emitted in this order:
// the wall ring, the layout row by row, then the explicit entity list.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    yl.Size.W,
		Height:   yl.Size.H,
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	if yl.WallRing {
		level.Spawns = append(level.Spawns, wallRing(level.Width, level.Height)...)
	}

	layout, err := parseLayout(yl.Layout)
	if err != nil {
		return Level{}, err
	}
	level.Spawns = append(level.Spawns, layout...)

	for i, ye := range yl.Entities {
		s, err := ye.spawn()
		if err != nil {
			return Level{}, fmt.Errorf("entity %d: %w", i, err)
		}
		level.Spawns = append(level.Spawns, s)
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func wallRing(w, h int) []sim.Spawn {
	if w <= 0 || h <= 0 {
		return nil
	}
	var out []sim.Spawn
	wall := func(x, y int) {
		out = append(out, sim.Spawn{Kind: sim.KindWall, Pos: core.C(x, y)})
	}
	for x := 0; x < w; x++ {
		wall(x, 0)
	}
	for y := 1; y < h-1; y++ {
		wall(0, y)
		if w > 1 {
			wall(w-1, y)
		}
	}
	if h > 1 {
		for x := 0; x < w; x++ {
			wall(x, h-1)
		}
	}
	return out
}

func parseLayout(layout string) ([]sim.Spawn, error) {
	var out []sim.Spawn
	rows := strings.Split(strings.TrimRight(layout, "\n"), "\n")
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r == '.' || r == ' ' {
				continue
			}
			g, ok := glyphs[r]
			if !ok {
				return nil, fmt.Errorf("layout row %d col %d: unknown glyph %q", y, x, r)
			}
			s := sim.Spawn{Kind: g.kind, Pos: core.C(x, y)}
			if !g.dir.IsZero() {
				dir := g.dir
				s.Dir = &dir
			}
			out = append(out, s)
		}
	}
	return out, nil
}

func (ye YAMLEntity) spawn() (sim.Spawn, error) {
	kind, err := sim.ParseKind(ye.Kind)
	if err != nil {
		return sim.Spawn{}, err
	}
	s := sim.Spawn{Kind: kind, Pos: core.C(ye.X, ye.Y)}

	if ye.Dir != nil {
		dir, err := parseDir(ye.Dir)
		if err != nil {
			return sim.Spawn{}, err
		}
		s.Dir = &dir
	}

	if ye.Gun != nil {
		dir, err := parseDir(ye.Gun.Dir)
		if err != nil {
			return sim.Spawn{}, fmt.Errorf("gun: %w", err)
		}
		gt, err := sim.ParseGunType(ye.Gun.Type)
		if err != nil {
			return sim.Spawn{}, fmt.Errorf("gun: %w", err)
		}
		s.Gun = &sim.Gun{Dir: dir, Probability: ye.Gun.Probability, Type: gt}
	}

	if ye.Tile != nil {
		t := sim.Tile(*ye.Tile)
		s.Tile = &t
	}
	return s, nil
}

func parseDir(v []int) (core.Coord, error) {
	if len(v) == 0 {
		return core.DirNone, nil
	}
	if len(v) != 2 {
		return core.Coord{}, fmt.Errorf("dir must be [dx, dy], got %v", v)
	}
	return core.C(v[0], v[1]), nil
}
