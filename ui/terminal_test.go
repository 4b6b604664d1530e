package ui

import (
	"testing"

	"snake-walls/game"
	"snake-walls/game/types"

	"github.com/gdamore/tcell/v2"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.SetSize(60, 45)
	term := NewTerminal(s, 1)
	t.Cleanup(term.Close)
	return term, s
}

func TestKeyInput(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Input
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), InputUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), InputLeft},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), InputSelect},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), InputBack},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), InputClose},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), InputRight},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), InputDown},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), InputNone},
	}
	for _, tt := range tests {
		if got := KeyInput(tt.ev); got != tt.want {
			t.Errorf("KeyInput(%v) = %d, want %d", tt.ev.Name(), got, tt.want)
		}
	}
}

func backgroundAt(s tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestDrawGame(t *testing.T) {
	term, s := newTestTerminal(t)

	pill := types.Point{X: 7, Y: 7}
	snap := game.Snapshot{
		Grid:      types.Grid{Width: 50, Height: 40},
		Body:      []types.Point{{X: 25, Y: 20}, {X: 24, Y: 20}},
		Obstacles: []types.Point{{X: 0, Y: 0}, {X: 60, Y: 3}},
		Apple:     types.Point{X: 3, Y: 4},
		Pill:      &pill,
		Score:     1,
	}
	term.DrawGame(snap)

	if bg := backgroundAt(s, 25, 21); bg != tcell.ColorLime {
		t.Errorf("Expected snake head at (25,21), got %v", bg)
	}
	if bg := backgroundAt(s, 3, 5); bg != tcell.ColorRed {
		t.Errorf("Expected apple at (3,5), got %v", bg)
	}
	if bg := backgroundAt(s, 7, 8); bg != tcell.ColorFuchsia {
		t.Errorf("Expected pill at (7,8), got %v", bg)
	}
	if bg := backgroundAt(s, 0, 1); bg != tcell.ColorGray {
		t.Errorf("Expected obstacle at (0,1), got %v", bg)
	}
	if r, _, _, _ := s.GetContent(0, 0); r != 'S' {
		t.Errorf("Expected the status bar to start with the score, got %q", r)
	}
}

func TestDrawGameRainbow(t *testing.T) {
	term, s := newTestTerminal(t)

	snap := game.Snapshot{
		Grid:    types.Grid{Width: 50, Height: 40},
		Body:    []types.Point{{X: 10, Y: 10}},
		Apple:   types.Point{X: 1, Y: 1},
		Rainbow: true,
	}
	term.DrawGame(snap)

	r, g, b := backgroundAt(s, 10, 11).RGB()
	if r < 100 || g < 100 || b < 100 {
		t.Errorf("Expected a light colour, got (%d,%d,%d)", r, g, b)
	}
}
