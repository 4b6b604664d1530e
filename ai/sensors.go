package ai

import (
	"fmt"

	"snake-walls/game"
	"snake-walls/game/manager"
	"snake-walls/game/types"
)

// Relative actions, as seen from the snake's head.
const (
	TurnLeft = iota
	Straight
	TurnRight
	NumActions
)

// State is the agent's compressed view of one snapshot.
type State struct {
	FoodDir      [2]int  // Sign of the shortest toroidal offset to the apple
	FoodDistance int     // Toroidal Manhattan distance to the apple
	Dangers      [3]bool // Left, straight, right
}

// Key is the Q-table key of the state. Distance is left out so the table
// stays small.
func (s State) Key() string {
	return fmt.Sprintf("%d,%d|%d%d%d", s.FoodDir[0], s.FoodDir[1],
		boolToInt(s.Dangers[0]), boolToInt(s.Dangers[1]), boolToInt(s.Dangers[2]))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Sensors reads States out of snapshots of one run.
type Sensors struct {
	grid       types.Grid
	collisions *manager.CollisionManager
}

func NewSensors(snap game.Snapshot) *Sensors {
	obstacles := manager.NewObstacles(snap.Obstacles...)
	return &Sensors{grid: snap.Grid, collisions: manager.NewCollisionManager(snap.Grid, obstacles)}
}

// Sense builds the agent state for a snapshot.
func (s *Sensors) Sense(snap game.Snapshot) State {
	head := snap.Head()
	dir := snap.Direction

	return State{
		FoodDir:      [2]int{s.axisSign(snap.Apple.X-head.X, s.grid.Width), s.axisSign(snap.Apple.Y-head.Y, s.grid.Height)},
		FoodDistance: s.grid.Distance(head, snap.Apple),
		Dangers: [3]bool{
			s.collisions.IsDanger(head.Add(dir.TurnLeft()), snap.Body),
			s.collisions.IsDanger(head.Add(dir), snap.Body),
			s.collisions.IsDanger(head.Add(dir.TurnRight()), snap.Body),
		},
	}
}

// Absolute converts a relative action into a direction intent.
func Absolute(current types.Direction, action int) types.Direction {
	switch action {
	case TurnLeft:
		return current.TurnLeft()
	case TurnRight:
		return current.TurnRight()
	default:
		return current
	}
}

// axisSign returns the sign of the shortest way around one axis.
func (s *Sensors) axisSign(delta, size int) int {
	if delta > size/2 {
		delta -= size
	} else if delta < -size/2 {
		delta += size
	}
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	default:
		return 0
	}
}
