package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/starcatch/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "hi", core.ColorRed)
	s.DrawTextColor(3, 1, "★", core.ColorBrightYellow)

	out := RenderScreen(s, NewPalette(nil))

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "hi") || !strings.Contains(lines[1], "★") {
		t.Errorf("Rendered output lost text: %q", out)
	}
}

func TestPaletteCoversColors(t *testing.T) {
	p := NewPalette(nil)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := p[c]; !ok {
			t.Errorf("Palette missing color %d", c)
		}
	}
}
