package tui

import (
	"testing"

	"github.com/vovakirdan/astrotap/internal/config"
)

func TestCellToArea(t *testing.T) {
	area := config.AreaConfig{Width: 360, Height: 640}
	width, height := 82, 44 // 80x40 inner field

	// Outside the field: border and chrome rows.
	if _, _, ok := cellToArea(area, width, height, 0, 0); ok {
		t.Error("HUD row mapped into the play area")
	}
	if _, _, ok := cellToArea(area, width, height, 0, 5); ok {
		t.Error("left border column mapped into the play area")
	}
	if _, _, ok := cellToArea(area, width, height, 5, height-1); ok {
		t.Error("help row mapped into the play area")
	}

	// Top-left field cell maps near the area origin.
	x, y, ok := cellToArea(area, width, height, 1, 2)
	if !ok {
		t.Fatal("top-left field cell rejected")
	}
	if x <= 0 || x > 360.0/80 || y <= 0 || y > 640.0/40 {
		t.Errorf("top-left cell maps to (%v, %v), want within the first cell span", x, y)
	}

	// Center cell maps near the area center.
	x, y, ok = cellToArea(area, width, height, 1+40, 2+20)
	if !ok {
		t.Fatal("center field cell rejected")
	}
	if x < 170 || x > 190 || y < 310 || y > 330 {
		t.Errorf("center cell maps to (%v, %v), want near (180, 320)", x, y)
	}
}

func TestCellToAreaTinyTerminal(t *testing.T) {
	area := config.AreaConfig{Width: 360, Height: 640}
	if _, _, ok := cellToArea(area, 2, 3, 0, 0); ok {
		t.Error("degenerate terminal produced a mapping")
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := map[float64]string{
		0:    "0:00",
		59.9: "0:59",
		60:   "1:00",
		125:  "2:05",
		3600: "60:00",
	}
	for in, want := range cases {
		if got := formatElapsed(in); got != want {
			t.Errorf("formatElapsed(%v) = %q, want %q", in, got, want)
		}
	}
}
