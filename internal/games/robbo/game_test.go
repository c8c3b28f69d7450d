package robbo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-robbo/internal/config"
	"github.com/vovakirdan/tui-robbo/internal/core"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo/sim"
	"github.com/vovakirdan/tui-robbo/internal/registry"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 12345}

// writeLevel stores a level file in a fresh directory and returns the directory.
func writeLevel(t *testing.T, name, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

// fastConfig moves everything every tick and disables progression.
func fastConfig() config.RobboConfig {
	cfg := config.DefaultRobboConfig()
	cfg.Timing.ShootEvery = 1
	cfg.Timing.CreatureMoveEvery = 1
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
	return cfg
}

func fire() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	return in
}

func TestDeterminism(t *testing.T) {
	g1 := New(Settings{Config: config.DefaultRobboConfig()})
	g1.Reset(testRuntime)
	g2 := New(Settings{Config: config.DefaultRobboConfig()})
	g2.Reset(testRuntime)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch {
		case i%7 == 0:
			input.Set(core.ActionFire)
		case i%11 == 0:
			input.Set(core.ActionUp)
		case i%13 == 0:
			input.Set(core.ActionLeft)
		}
		g1.Step(input)
		g2.Step(input)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("snapshots differ:\n%s\n%s", s1, s2)
	}
	if g1.Board() != g2.Board() {
		t.Error("boards differ")
	}
	if s1.Violations != 0 {
		t.Errorf("Violations = %d", s1.Violations)
	}
}

func TestRegistryCreatesRobbo(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != GameID || g.Title() != "Robbo" {
		t.Errorf("unexpected game %q %q", g.ID(), g.Title())
	}
	g.Reset(testRuntime)
	if g.State().GameOver {
		t.Error("a fresh run must not be over")
	}
	rs, ok := g.(registry.Summarizer)
	if !ok {
		t.Fatal("robbo should keep a run history")
	}
	if _, err := rs.Summary(); !errors.Is(err, registry.ErrRunNotFinished) {
		t.Errorf("Summary() on a fresh run = %v", err)
	}
}

func TestShootingTheLastCreatureWins(t *testing.T) {
	dir := writeLevel(t, "duel", "id: duel\nsize: {w: 5, h: 1}\nlayout: |\n  R\nentities:\n  - {kind: bird, x: 3, y: 0, dir: [0, 0]}\n")
	cfg := fastConfig()
	g := New(Settings{Config: cfg, LevelID: "duel", LevelsDir: dir})
	g.Reset(testRuntime)

	g.Step(fire())               // bullet spawns at (1,0)
	g.Step(core.NewInputFrame()) // bullet moves to (2,0)
	g.Step(core.NewInputFrame()) // bullet hits the bird

	state := g.State()
	if !state.GameOver || !state.Won {
		t.Fatalf("expected a win, got %+v", state)
	}
	want := cfg.Scoring.Bird + cfg.Scoring.ClearBonus
	if state.Score != want {
		t.Errorf("Score = %d, expected %d", state.Score, want)
	}

	sum, err := g.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Outcome != "won" || sum.Destroyed != 1 || sum.LevelID != "duel" || sum.Ticks != 3 {
		t.Errorf("Summary() = %+v", sum)
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("snapshot state = %s", g.Snapshot().State)
	}
}

func TestContactEndsRunAndRestartStartsNewOne(t *testing.T) {
	dir := writeLevel(t, "doom", "id: doom\nsize: {w: 3, h: 1}\nlayout: |\n  R\nentities:\n  - {kind: bird, x: 1, y: 0, dir: [-1, 0]}\n")
	g := New(Settings{Config: fastConfig(), LevelID: "doom", LevelsDir: dir})
	g.Reset(testRuntime)
	firstRun := g.RunID()

	if _, err := g.Summary(); !errors.Is(err, registry.ErrRunNotFinished) {
		t.Errorf("Summary() before the end = %v", err)
	}

	g.Step(core.NewInputFrame())

	if !g.State().GameOver || g.State().Won {
		t.Fatalf("expected game over, got %+v", g.State())
	}
	destroyed := g.LastDestroyed()
	if len(destroyed) != 1 || destroyed[0].Kind != sim.KindRobbo || destroyed[0].Cause != sim.CauseContact {
		t.Errorf("LastDestroyed() = %+v", destroyed)
	}
	if g.World().Components.Robbo.Len() != 1 || !g.World().PlayerHit() {
		t.Error("a hit robbo should stay on the board")
	}
	sum, err := g.Summary()
	if err != nil || sum.Outcome != "lost" {
		t.Errorf("Summary() = %+v, %v", sum, err)
	}

	tick := g.World().Clock.Tick()
	g.Step(core.NewInputFrame())
	if g.World().Clock.Tick() != tick {
		t.Error("a finished run must not advance")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.State().GameOver {
		t.Error("restart should begin a new run")
	}
	if g.RunID() == firstRun {
		t.Error("restart should allocate a new run id")
	}
}

func TestPauseFreezesTheWorld(t *testing.T) {
	g := New(Settings{Config: config.DefaultRobboConfig()})
	g.Reset(testRuntime)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.World().Clock.Tick() != 0 {
		t.Errorf("tick advanced to %d while paused", g.World().Clock.Tick())
	}

	g.Step(pause) // unpausing steps the world in the same tick
	if g.State().Paused || g.World().Clock.Tick() != 1 {
		t.Errorf("expected to resume, paused=%v tick=%d", g.State().Paused, g.World().Clock.Tick())
	}
}

func TestUnknownLevel(t *testing.T) {
	g := New(Settings{Config: config.DefaultRobboConfig(), LevelID: "nope"})
	g.Reset(testRuntime)

	if g.Err() == nil {
		t.Fatal("expected a load error")
	}
	if !g.State().GameOver {
		t.Error("a run without a level is over")
	}
	if g.Snapshot().State != StateNoLevel {
		t.Errorf("snapshot state = %s", g.Snapshot().State)
	}

	g.Step(fire())
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Level failed to load") {
		t.Error("expected the load error overlay")
	}
}

func TestRenderDrawsBoard(t *testing.T) {
	g := New(Settings{Config: config.DefaultRobboConfig()})
	g.Reset(testRuntime)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	offX := (80 - sim.DefaultWidth) / 2
	if r := scr.Get(offX+10, hudHeight+10); r != '@' {
		t.Errorf("robbo glyph = %q, expected '@'", r)
	}
	cell := scr.GetCell(offX, hudHeight)
	if cell.Rune != '█' || cell.Color != core.ColorGray {
		t.Errorf("corner wall cell = %+v", cell)
	}
	if r := scr.Get(offX+10, hudHeight+7); r != 'b' {
		t.Errorf("alternate bird glyph = %q, expected 'b'", r)
	}
	if !strings.Contains(scr.Row(0), "Classic") {
		t.Errorf("HUD = %q", scr.Row(0))
	}

	small := core.NewScreen(20, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("expected the too-small overlay")
	}
}

func TestPresetAdjustsPacing(t *testing.T) {
	g := New(Settings{Config: config.DefaultRobboConfig(), Preset: config.DifficultyHard})
	if g.cfg.Timing.CreatureMoveEvery != 2 {
		t.Errorf("CreatureMoveEvery = %d, expected 2 on hard", g.cfg.Timing.CreatureMoveEvery)
	}
	if !g.difficulty.IsEnabled() {
		t.Error("hard preset keeps progression on")
	}
}

func TestBuildPalette(t *testing.T) {
	p := buildPalette(map[string]string{
		"bird":   "green",
		"dragon": "red",
		"wall":   "chartreuse",
	})
	if p[sim.KindBird] != core.ColorGreen {
		t.Errorf("bird color = %v", p[sim.KindBird])
	}
	if p[sim.KindWall] != core.ColorGray {
		t.Errorf("invalid color names must keep the default, got %v", p[sim.KindWall])
	}
	if defaultPalette[sim.KindBird] != core.ColorBrightRed {
		t.Error("buildPalette must not mutate the defaults")
	}
}
