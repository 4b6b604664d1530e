package ai

import (
	"testing"

	"snake-walls/game"
	"snake-walls/game/types"
)

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		Grid:      types.Grid{Width: 20, Height: 10},
		Body:      []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		Direction: types.Right,
		Apple:     types.Point{X: 8, Y: 2},
		Obstacles: []types.Point{{X: 6, Y: 5}},
	}
}

func TestSenseDangers(t *testing.T) {
	snap := testSnapshot()
	s := NewSensors(snap).Sense(snap)

	if !s.Dangers[1] {
		t.Error("Expected danger straight ahead (obstacle)")
	}
	if s.Dangers[0] || s.Dangers[2] {
		t.Errorf("Expected free turns, got %v", s.Dangers)
	}
}

func TestSenseIgnoresVacatingTail(t *testing.T) {
	snap := game.Snapshot{
		Grid:      types.Grid{Width: 20, Height: 10},
		Body:      []types.Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 5}},
		Direction: types.Down,
		Apple:     types.Point{X: 1, Y: 1},
	}
	// Turning right from Down heads Left into (4,5), the tail.
	s := NewSensors(snap).Sense(snap)
	if s.Dangers[2] {
		t.Error("The tail cell moves away and is not a danger")
	}
}

func TestSenseFoodDirectionWraps(t *testing.T) {
	snap := testSnapshot()
	snap.Apple = types.Point{X: 18, Y: 5}

	s := NewSensors(snap).Sense(snap)
	if s.FoodDir != [2]int{-1, 0} {
		t.Errorf("Expected the short way round (-1,0), got %v", s.FoodDir)
	}
	if s.FoodDistance != 7 {
		t.Errorf("Expected toroidal distance 7, got %d", s.FoodDistance)
	}
}

func TestSenseDangerWrapsAcrossEdge(t *testing.T) {
	snap := game.Snapshot{
		Grid:      types.Grid{Width: 10, Height: 10},
		Body:      []types.Point{{X: 9, Y: 3}},
		Direction: types.Right,
		Obstacles: []types.Point{{X: 0, Y: 3}},
	}
	s := NewSensors(snap).Sense(snap)
	if !s.Dangers[1] {
		t.Error("Expected the obstacle across the edge to be ahead")
	}
}

func TestAbsolute(t *testing.T) {
	tests := []struct {
		dir    types.Direction
		action int
		want   types.Direction
	}{
		{types.Right, TurnLeft, types.Up},
		{types.Right, Straight, types.Right},
		{types.Right, TurnRight, types.Down},
		{types.Up, TurnLeft, types.Left},
		{types.Left, TurnRight, types.Up},
	}
	for _, tt := range tests {
		if got := Absolute(tt.dir, tt.action); got != tt.want {
			t.Errorf("Absolute(%v, %d) = %v, want %v", tt.dir, tt.action, got, tt.want)
		}
	}
}

func TestStateKey(t *testing.T) {
	s := State{FoodDir: [2]int{1, -1}, FoodDistance: 12, Dangers: [3]bool{true, false, true}}
	if got := s.Key(); got != "1,-1|101" {
		t.Errorf("Unexpected key %q", got)
	}
}
