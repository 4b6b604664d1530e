package ui

import (
	"fmt"

	"snake-walls/game"
	"snake-walls/game/manager"
	"snake-walls/game/types"

	"golang.org/x/exp/rand"
)

// Input is a frontend-neutral key press.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputSelect // Enter
	InputBack   // Escape
	InputClose  // Window closed or Ctrl-C
)

// Direction maps arrow inputs to a movement intent.
func (in Input) Direction() types.Direction {
	switch in {
	case InputUp:
		return types.Up
	case InputDown:
		return types.Down
	case InputLeft:
		return types.Left
	case InputRight:
		return types.Right
	default:
		return types.None
	}
}

// Frontend is a screen plus keyboard. Draw calls render one whole frame.
type Frontend interface {
	Poll() []Input
	Closed() bool
	DrawMenu(m *Menu)
	DrawRecords(lines []string)
	DrawGame(snap game.Snapshot)
	DrawPause(snap game.Snapshot)
	DrawGameOver(score int)
	Close()
}

type MenuAction int

const (
	ActionNone MenuAction = iota
	ActionPlay
	ActionRecords
	ActionExit
	ActionStart
	ActionBack
)

type MenuItem struct {
	Label      string
	Action     MenuAction
	Difficulty types.Difficulty // Set on ActionStart
}

// Menu is a vertical list with a cursor.
type Menu struct {
	Title  string
	Items  []MenuItem
	Cursor int
}

func MainMenu() *Menu {
	return &Menu{
		Title: "Snake",
		Items: []MenuItem{
			{Label: "Play", Action: ActionPlay},
			{Label: "Records", Action: ActionRecords},
			{Label: "Quit", Action: ActionExit},
		},
	}
}

func DifficultyMenu() *Menu {
	m := &Menu{Title: "Choose difficulty"}
	for _, d := range types.Difficulties {
		m.Items = append(m.Items, MenuItem{Label: d.Title(), Action: ActionStart, Difficulty: d})
	}
	m.Items = append(m.Items, MenuItem{Label: "Back", Action: ActionBack})
	return m
}

// Handle applies one input. It returns the chosen item on Select, and a
// Back item on Escape.
func (m *Menu) Handle(in Input) (MenuItem, bool) {
	if len(m.Items) == 0 {
		return MenuItem{}, false
	}

	switch in {
	case InputUp:
		m.Cursor = (m.Cursor - 1 + len(m.Items)) % len(m.Items)
	case InputDown:
		m.Cursor = (m.Cursor + 1) % len(m.Items)
	case InputSelect:
		return m.Items[m.Cursor], true
	case InputBack:
		return MenuItem{Label: "Back", Action: ActionBack}, true
	}
	return MenuItem{}, false
}

// RecordLines formats the sorted score table for display.
func RecordLines(records []manager.RunRecord) []string {
	lines := make([]string, 0, len(records))
	for i, r := range records {
		lines = append(lines, fmt.Sprintf("%d. Score: %d | Difficulty: %s | Time: %s",
			i+1, r.Score, r.Difficulty.Title(), r.Time.Format(manager.RecordTimeLayout)))
	}
	return lines
}

// RainbowChannel returns one light colour channel, 100..255.
func RainbowChannel(rng *rand.Rand) uint8 {
	return uint8(100 + rng.Intn(156))
}

const (
	pauseQuestion = "Do you really want to quit?"
	pauseHint     = "Esc - back to the game   Enter - quit"
	recordsTitle  = "Records - Esc to go back"
)

func scoreLine(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func gameOverLine(score int) string {
	return fmt.Sprintf("Game over! Score: %d", score)
}
