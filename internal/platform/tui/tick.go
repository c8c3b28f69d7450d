// Package tui runs Robbo in the terminal with Bubble Tea: the tick loop,
// key bindings, the level picker, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-robbo/internal/core"
)

// Tick rate bounds in ticks per second.
const (
	defaultTickRate = 15
	maxTickRate     = 120
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at tickRate ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval converts a rate to the delay between ticks. Unset rates use
// the default and oversized ones are capped.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(core.Clamp(tickRate, 1, maxTickRate))
}
