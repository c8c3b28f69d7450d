package robbo

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-robbo/internal/core"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo/sim"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
	StateNoLevel  GameStateType = "no_level"
)

// Snapshot captures the game state for determinism testing and the headless runner.
type Snapshot struct {
	Level       string
	Tick        uint64
	Score       int
	RobboX      int
	RobboY      int
	Creatures   int
	Projectiles int
	Entities    int
	Violations  int
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{State: StateNoLevel}
	}

	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	rx, ry := -1, -1
	if robbo, ok := g.world.Player(); ok {
		pos, _ := g.world.PositionOf(robbo)
		rx, ry = pos.X, pos.Y
	}

	return Snapshot{
		Level:       g.level.ID,
		Tick:        g.world.Clock.Tick(),
		Score:       g.score,
		RobboX:      rx,
		RobboY:      ry,
		Creatures:   g.countCreatures(),
		Projectiles: g.world.Count(sim.KindBullet) + g.world.Count(sim.KindLaserHead),
		Entities:    g.world.Len(),
		Violations:  g.world.Violations(),
		State:       state,
	}
}

// String formats the snapshot on one line.
func (s Snapshot) String() string {
	return fmt.Sprintf("level=%s tick=%d score=%d robbo=(%d,%d) creatures=%d projectiles=%d entities=%d violations=%d state=%s",
		s.Level, s.Tick, s.Score, s.RobboX, s.RobboY, s.Creatures, s.Projectiles, s.Entities, s.Violations, s.State)
}

// Board returns the bare grid as text, one row per line.
func (g *Game) Board() string {
	if g.world == nil {
		return ""
	}
	scr := core.NewScreen(g.world.Width(), g.world.Height())
	for _, s := range g.world.Sprites() {
		dir, _ := g.world.Components.MovingDir.Get(s.Entity)
		scr.Set(s.Pos.X, s.Pos.Y, Glyph(s, dir))
	}
	var b strings.Builder
	for y := 0; y < scr.Height(); y++ {
		b.WriteString(strings.TrimRight(scr.Row(y), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
