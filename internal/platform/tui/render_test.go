package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '●', core.ColorRed)
	s.SetColored(3, 0, '■', core.ColorRed)
	s.DrawTextColored(0, 1, "xyz", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "●■") {
		t.Errorf("same-colored cells should render as one run, got %q", lines[0])
	}
	if w := lipgloss.Width(lines[1]); w != 6 {
		t.Errorf("line width = %d, expected 6", w)
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
