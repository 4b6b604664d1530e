package game

import (
	"snake-walls/game/types"

	"github.com/google/uuid"
)

// State is the run's position in the simulation state machine.
type State int

const (
	Running State = iota
	Paused
	GameOver
	Aborted // Quit by the player; never persisted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Finished reports whether the run can no longer tick.
func (s State) Finished() bool {
	return s == GameOver || s == Aborted
}

// Snapshot is the view a frontend renders after each tick. Its slices
// are copies; changing them does not affect the engine.
type Snapshot struct {
	RunID      uuid.UUID
	Tick       uint64
	State      State
	Difficulty types.Difficulty
	Grid       types.Grid
	Body       []types.Point // Head first
	Direction  types.Direction
	Rainbow    bool
	Obstacles  []types.Point
	Apple      types.Point
	Pill       *types.Point
	FastPill   *types.Point
	Score      int
	SpeedBoost bool
	TickRate   int
}

// Head returns the first body cell.
func (s Snapshot) Head() types.Point {
	if len(s.Body) == 0 {
		return types.Point{}
	}
	return s.Body[0]
}
