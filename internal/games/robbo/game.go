// Package robbo adapts the rule engine to the platform's registry.Game
// contract: level loading, scoring, difficulty and presentation.
package robbo

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-robbo/internal/config"
	"github.com/vovakirdan/tui-robbo/internal/core"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo/levels"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo/sim"
	"github.com/vovakirdan/tui-robbo/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "robbo"

// Settings selects what a new game plays and how.
type Settings struct {
	Config    config.RobboConfig
	Preset    config.DifficultyPreset
	LevelID   string // empty means Config.Level
	LevelsDir string // extra level directory; empty means built-ins only
	Logger    *log.Logger
}

var (
	defaultsMu sync.RWMutex
	defaults   = Settings{Config: config.DefaultRobboConfig()}
)

// SetDefaults sets the settings used by games created through the registry.
func SetDefaults(s Settings) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = s
}

func currentDefaults() Settings {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(currentDefaults())
	})
}

// Game implements registry.Game for Robbo.
type Game struct {
	settings   Settings
	cfg        config.RobboConfig
	logger     *log.Logger
	palette    map[sim.Kind]core.Color
	difficulty *config.DifficultyManager

	level levels.Level
	world *sim.World
	runID uuid.UUID
	seed  int64

	score         int
	creatures     int // alive at the start of the run
	killed        map[sim.Kind]int
	lastDestroyed []sim.Destroyed

	screenW int
	screenH int

	gameOver bool
	won      bool
	paused   bool
	loadErr  error
}

// New creates a game with the given settings. Reset must be called before Step.
func New(s Settings) *Game {
	cfg := s.Config
	if cfg.Timing.TickRate == 0 {
		cfg = config.DefaultRobboConfig()
	}
	if s.Preset != "" {
		config.ApplyPreset(&cfg, s.Preset)
	}

	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		settings:   s,
		cfg:        cfg,
		logger:     logger.WithPrefix(GameID),
		palette:    buildPalette(cfg.Theme),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Robbo"
}

// Reset loads the level and starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.seed = cfg.Seed
	g.score = 0
	g.killed = make(map[sim.Kind]int)
	g.lastDestroyed = nil
	g.gameOver = false
	g.won = false
	g.paused = false
	g.runID = uuid.New()

	levelID := g.settings.LevelID
	if levelID == "" {
		levelID = g.cfg.Level
	}

	lvl, err := levels.Find(levelID, g.settings.LevelsDir)
	if err == nil {
		g.level = lvl
		g.world, err = lvl.NewWorld(sim.Options{
			ShootEvery:        g.cfg.Timing.ShootEvery,
			CreatureMoveEvery: g.cfg.Timing.CreatureMoveEvery,
			Seed:              cfg.Seed,
			Logger:            g.logger,
		})
	}
	g.loadErr = err
	if err != nil {
		g.world = nil
		g.gameOver = true
		g.logger.Error("level load failed", "level", levelID, "err", err)
		return
	}

	g.creatures = g.countCreatures()
	g.applyDifficulty()
	g.logger.Info("run started", "run", g.runID, "level", g.level.ID, "seed", cfg.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.lastDestroyed = nil

	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			ScreenW: g.screenW,
			ScreenH: g.screenH,
			Seed:    g.seed + 1,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.world == nil || g.gameOver || g.won || g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.world.Step(in)
	g.lastDestroyed = res.Destroyed
	for _, d := range res.Destroyed {
		g.killed[d.Kind]++
		g.score += g.points(d.Kind)
	}
	g.applyDifficulty()

	switch {
	case !res.PlayerAlive:
		g.gameOver = true
		g.logger.Info("robbo hit", "run", g.runID, "tick", res.Tick, "score", g.score)
	case g.creatures > 0 && g.countCreatures() == 0:
		g.won = true
		g.score += g.cfg.Scoring.ClearBonus
		g.logger.Info("level cleared", "run", g.runID, "tick", res.Tick, "score", g.score)
	}

	return core.StepResult{State: g.State()}
}

// points returns the score for destroying one entity of kind k.
func (g *Game) points(k sim.Kind) int {
	switch k {
	case sim.KindBird:
		return g.cfg.Scoring.Bird
	case sim.KindLBear:
		return g.cfg.Scoring.LBear
	}
	return 0
}

func (g *Game) countCreatures() int {
	return g.world.Count(sim.KindBird) + g.world.Count(sim.KindLBear)
}

// applyDifficulty updates turret fire rate and cadence from the current progress.
func (g *Game) applyDifficulty() {
	ticks := int(g.world.Clock.Tick())
	g.world.SetFireScale(g.difficulty.FireScale(g.score, ticks))
	g.world.Clock.SetShootEvery(g.difficulty.ShootEvery(g.cfg.Timing.ShootEvery, g.score, ticks))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Err returns the level loading error of the last Reset, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// RunID identifies the current run for the run history.
func (g *Game) RunID() uuid.UUID {
	return g.runID
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// LastDestroyed returns what the last Step destroyed.
func (g *Game) LastDestroyed() []sim.Destroyed {
	return g.lastDestroyed
}

// World exposes the underlying simulation, nil if the level failed to load.
func (g *Game) World() *sim.World {
	return g.world
}

// Summary returns the record of a finished run.
func (g *Game) Summary() (registry.RunSummary, error) {
	if (!g.gameOver && !g.won) || g.world == nil {
		return registry.RunSummary{}, registry.ErrRunNotFinished
	}
	outcome := "lost"
	if g.won {
		outcome = "won"
	}
	return registry.RunSummary{
		RunID:     g.runID,
		LevelID:   g.level.ID,
		Score:     g.score,
		Ticks:     g.world.Clock.Tick(),
		Destroyed: g.killed[sim.KindBird] + g.killed[sim.KindLBear],
		Outcome:   outcome,
	}, nil
}
