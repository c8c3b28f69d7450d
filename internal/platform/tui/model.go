package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-robbo/internal/core"
	"github.com/vovakirdan/tui-robbo/internal/registry"
	"github.com/vovakirdan/tui-robbo/internal/storage"
)

// helpHeight is the number of rows reserved under the board for key help.
const helpHeight = 1

// GameModel is the Bubble Tea model for one game. It is used on its own by
// `robbo play` and embedded in SessionModel for the menu flow.
type GameModel struct {
	game          registry.Game
	screen        *core.Screen
	renderer      *ScreenRenderer
	store         *storage.Store
	logger        *log.Logger
	config        core.RuntimeConfig
	keys          GameKeyMap
	help          help.Model
	inputFrame    core.InputFrame
	gameState     core.GameState
	screenshotDir string
	notice        string
	quitting      bool
	backToMenu    bool
	scoreSaved    bool
	standalone    bool // back quits the program
}

// NewGameModel creates a model for game. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		renderer:      defaultScreenRenderer,
		store:         store,
		logger:        logger,
		config:        cfg,
		keys:          DefaultGameKeyMap(),
		help:          h,
		inputFrame:    core.NewInputFrame(),
		screenshotDir: defaultScreenshotDir(),
	}
}

func boardHeight(h int) int {
	return max(h-helpHeight, 1)
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".robbo", "screenshots")
	}
	return filepath.Join(home, ".robbo", "screenshots")
}

// WithRenderer returns a copy of m that draws with r.
func (m GameModel) WithRenderer(r *ScreenRenderer) GameModel {
	if r != nil {
		m.renderer = r
	}
	return m
}

// WithScreenshotDir returns a copy of m that saves screenshots under dir.
func (m GameModel) WithScreenshotDir(dir string) GameModel {
	m.screenshotDir = dir
	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick. Quit, back and
// screenshot take effect immediately.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick steps the simulation once with the keys pressed since the
// previous tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		// restarted
		m.scoreSaved = false
		m.notice = ""
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult records the finished run. Storage failures are logged and
// never interrupt play.
func (m *GameModel) saveResult() {
	rs, ok := m.game.(registry.Summarizer)
	if !ok {
		if m.store != nil && m.gameState.Score > 0 {
			if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				m.logger.Warn("save score failed", "err", err)
			}
		}
		return
	}

	sum, err := rs.Summary()
	if errors.Is(err, registry.ErrRunNotFinished) {
		return
	}
	if err != nil {
		m.logger.Warn("run summary failed", "err", err)
		return
	}
	m.logger.Info("run finished",
		"run", sum.RunID,
		"level", sum.LevelID,
		"outcome", sum.Outcome,
		"score", sum.Score,
		"ticks", sum.Ticks,
	)
	if m.store == nil {
		return
	}

	if sum.Score > 0 {
		if _, err := m.store.SaveScore(sum.LevelID, sum.Score); err != nil {
			m.logger.Warn("save score failed", "level", sum.LevelID, "err", err)
		}
	}
	_, err = m.store.SaveRun(storage.Run{
		RunID:     sum.RunID,
		LevelID:   sum.LevelID,
		Score:     sum.Score,
		Ticks:     sum.Ticks,
		Destroyed: sum.Destroyed,
		Outcome:   sum.Outcome,
	})
	if err != nil {
		m.logger.Warn("save run failed", "run", sum.RunID, "err", err)
	}
}

// saveScreenshot writes the current board as plain text.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot dir", "dir", m.screenshotDir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.notice = "saved " + filepath.Base(path)
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the board and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.notice != "" {
		footer = m.notice + "  " + footer
	}
	return m.renderer.Render(m.screen) + "\n" + footer
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the user quits or goes back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	m := NewGameModel(game, store, cfg, logger)
	m.standalone = true

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
