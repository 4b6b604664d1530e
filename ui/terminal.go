package ui

import (
	"snake-walls/game"
	"snake-walls/game/types"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
)

var (
	defStyle      = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	snakeStyle    = tcell.StyleDefault.Background(tcell.ColorLime)
	obstacleStyle = tcell.StyleDefault.Background(tcell.ColorGray)
	appleStyle    = tcell.StyleDefault.Background(tcell.ColorRed)
	pillStyle     = tcell.StyleDefault.Background(tcell.ColorFuchsia)
	fastPillStyle = tcell.StyleDefault.Background(tcell.ColorGold)
	boostStyle    = tcell.StyleDefault.Foreground(tcell.ColorDeepSkyBlue)
	selectedStyle = defStyle.Foreground(tcell.ColorLime).Bold(true)
)

// Terminal is the tcell frontend. One grid cell is one character; the
// board is drawn below a one-line status bar.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	closed bool
	rng    *rand.Rand
}

// NewTerminal takes ownership of an initialised screen.
func NewTerminal(s tcell.Screen, seed uint64) *Terminal {
	s.SetStyle(defStyle)
	s.HideCursor()
	s.Clear()

	t := &Terminal{
		screen: s,
		events: make(chan tcell.Event, 100),
		rng:    rand.New(rand.NewSource(seed)),
	}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			t.events <- ev
		}
	}()
	return t
}

// KeyInput maps a key event to an Input.
func KeyInput(ev *tcell.EventKey) Input {
	switch ev.Key() {
	case tcell.KeyUp:
		return InputUp
	case tcell.KeyDown:
		return InputDown
	case tcell.KeyLeft:
		return InputLeft
	case tcell.KeyRight:
		return InputRight
	case tcell.KeyEnter:
		return InputSelect
	case tcell.KeyEscape:
		return InputBack
	case tcell.KeyCtrlC:
		return InputClose
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return InputUp
		case 's', 'j':
			return InputDown
		case 'a', 'h':
			return InputLeft
		case 'd', 'l':
			return InputRight
		}
	}
	return InputNone
}

func (t *Terminal) Poll() []Input {
	var inputs []Input
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				in := KeyInput(ev)
				if in == InputClose {
					t.closed = true
				}
				if in != InputNone {
					inputs = append(inputs, in)
				}
			}
		default:
			return inputs
		}
	}
}

func (t *Terminal) Closed() bool {
	return t.closed
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) DrawMenu(m *Menu) {
	t.screen.Clear()
	_, h := t.screen.Size()

	t.drawCentered(h/4, m.Title, defStyle.Bold(true))
	y := h/2 - len(m.Items)
	for i, item := range m.Items {
		if i == m.Cursor {
			t.drawCentered(y, "> "+item.Label+" <", selectedStyle)
		} else {
			t.drawCentered(y, item.Label, defStyle)
		}
		y += 2
	}
	t.screen.Show()
}

func (t *Terminal) DrawRecords(lines []string) {
	t.screen.Clear()
	_, h := t.screen.Size()

	t.drawText(1, 0, recordsTitle, defStyle.Bold(true))
	for i, line := range lines {
		if i+2 >= h {
			break
		}
		t.drawText(1, i+2, line, defStyle)
	}
	t.screen.Show()
}

func (t *Terminal) DrawGame(snap game.Snapshot) {
	t.screen.Clear()

	status := scoreLine(snap.Score)
	if snap.SpeedBoost {
		t.drawText(0, 0, status+"  BOOST", boostStyle.Bold(true))
	} else {
		t.drawText(0, 0, status, defStyle)
	}

	for _, p := range snap.Obstacles {
		t.drawCell(snap.Grid, p, obstacleStyle)
	}
	t.drawCell(snap.Grid, snap.Apple, appleStyle)
	if snap.Pill != nil {
		t.drawCell(snap.Grid, *snap.Pill, pillStyle)
	}
	if snap.FastPill != nil {
		t.drawCell(snap.Grid, *snap.FastPill, fastPillStyle)
	}
	for _, p := range snap.Body {
		style := snakeStyle
		if snap.Rainbow {
			style = tcell.StyleDefault.Background(tcell.NewRGBColor(
				int32(RainbowChannel(t.rng)), int32(RainbowChannel(t.rng)), int32(RainbowChannel(t.rng))))
		}
		t.drawCell(snap.Grid, p, style)
	}

	t.screen.Show()
}

func (t *Terminal) DrawPause(snap game.Snapshot) {
	t.screen.Clear()
	_, h := t.screen.Size()
	t.drawCentered(h/2-1, pauseQuestion, defStyle)
	t.drawCentered(h/2+1, pauseHint, defStyle)
	t.screen.Show()
}

func (t *Terminal) DrawGameOver(score int) {
	t.screen.Clear()
	_, h := t.screen.Size()
	t.drawCentered(h/2, gameOverLine(score), defStyle.Bold(true))
	t.screen.Show()
}

// drawCell puts one board cell on screen; row 0 is the status bar.
func (t *Terminal) drawCell(grid types.Grid, p types.Point, style tcell.Style) {
	if !grid.Contains(p) {
		return
	}
	t.screen.SetContent(p.X, p.Y+1, ' ', nil, style)
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, c := range []rune(text) {
		t.screen.SetContent(x+i, y, c, nil, style)
	}
}

func (t *Terminal) drawCentered(y int, text string, style tcell.Style) {
	w, _ := t.screen.Size()
	t.drawText((w-len([]rune(text)))/2, y, text, style)
}
