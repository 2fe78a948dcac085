package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/destroyer/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawText(0, 0, "abc")
	s.DrawTextColored(3, 0, "XY", core.ColorRed)
	s.DrawTextColored(0, 2, "zz", core.Color(99))

	out := RenderScreen(s)

	if lines := strings.Count(out, "\n") + 1; lines != 3 {
		t.Errorf("RenderScreen() has %d lines, expected 3", lines)
	}
	for _, want := range []string{"abc", "XY", "zz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen(empty) = %q, expected empty", out)
	}
}
