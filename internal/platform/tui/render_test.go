package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-robbo/internal/core"
)

func TestRenderScreenPlainCells(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	got := NewScreenRenderer(nil).Render(s)
	want := "ab  \n cd "
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderScreenKeepsColoredText(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawTextColored(0, 0, "@", core.ColorYellow)
	s.DrawText(1, 0, "#")

	got := RenderScreen(s)
	if !strings.Contains(got, "@") || !strings.Contains(got, "#   ") {
		t.Errorf("Render lost cell content: %q", got)
	}
	if strings.Count(got, "\n") != 0 {
		t.Errorf("single row rendered with newlines: %q", got)
	}
}
