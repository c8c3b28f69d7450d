// Package levels provides world population for Robbo: level files are
// parsed into ordered spawn lists that the simulation consumes.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-robbo/internal/games/robbo/levels/formats"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo/sim"
)

// DefaultID is the level played when none is selected.
const DefaultID = "classic"

//go:embed data/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned when no level has the requested ID.
var ErrNotFound = errors.New("level not found")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Spawns   []sim.Spawn
	Metadata map[string]string
	FilePath string // empty for built-in levels
}

// Population returns a copy of the level's spawn list in creation order.
func (l *Level) Population() []sim.Spawn {
	out := make([]sim.Spawn, len(l.Spawns))
	copy(out, l.Spawns)
	return out
}

// Author returns the level's author from its metadata, or "-".
func (l *Level) Author() string {
	if a := l.Metadata["author"]; a != "" {
		return a
	}
	return "-"
}

// Validate checks that the level describes a legal opening: every spawn on
// the grid, no shared cells, known kinds and exactly one Robbo.
func (l *Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("level has no id")
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level %s: invalid size %dx%d", l.ID, l.Width, l.Height)
	}
	robbos := 0
	for _, s := range l.Spawns {
		if s.Kind == sim.KindRobbo {
			robbos++
		}
	}
	if robbos != 1 {
		return fmt.Errorf("level %s: expected exactly one robbo, found %d", l.ID, robbos)
	}
	w := sim.NewWorld(sim.Options{Width: l.Width, Height: l.Height})
	if err := w.Populate(l.Spawns); err != nil {
		return fmt.Errorf("level %s: %w", l.ID, err)
	}
	return nil
}

// NewWorld builds a populated world sized for the level. Width and Height in
// opts are overridden by the level's own.
func (l *Level) NewWorld(opts sim.Options) (*sim.World, error) {
	opts.Width = l.Width
	opts.Height = l.Height
	w := sim.NewWorld(opts)
	if err := w.Populate(l.Population()); err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return w, nil
}

// Parse parses and validates level data.
func Parse(data []byte, ext string) (Level, error) {
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, err
	}
	lvl := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Spawns:   parsed.Spawns,
		Metadata: parsed.Metadata,
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// Builtin returns the embedded levels sorted by ID.
func Builtin() ([]Level, error) {
	var out []Level
	err := fs.WalkDir(builtinFS, "data", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return err
		}
		lvl, err := Parse(data, filepath.Ext(path))
		if err != nil {
			return fmt.Errorf("builtin %s: %w", path, err)
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	sortByID(out)
	return out, nil
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped; the result is sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	lvl, err := Parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// All returns the built-in levels merged with those found under dir.
// A directory level replaces a built-in one with the same ID. An empty dir
// yields the built-ins only.
func All(dir string) ([]Level, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return builtin, nil
	}

	custom, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]Level, len(builtin)+len(custom))
	for _, lvl := range builtin {
		byID[lvl.ID] = lvl
	}
	for _, lvl := range custom {
		byID[lvl.ID] = lvl
	}

	out := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		out = append(out, lvl)
	}
	sortByID(out)
	return out, nil
}

// Find returns the level with the given ID from All(dir).
func Find(id, dir string) (Level, error) {
	if id == "" {
		id = DefaultID
	}
	all, err := All(dir)
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
