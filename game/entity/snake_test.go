package entity

import (
	"testing"

	"snake-walls/game/types"
)

func TestMoveKeepsLength(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	s.Move()

	if s.Len() != 1 {
		t.Fatalf("Expected length 1, got %d", s.Len())
	}
	if s.GetHead() != (types.Point{X: 6, Y: 5}) {
		t.Errorf("Expected head at (6,5), got %v", s.GetHead())
	}
}

func TestMoveDoesNotWrap(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: 3}, types.Left)
	s.Move()

	if s.GetHead() != (types.Point{X: -1, Y: 3}) {
		t.Errorf("Expected unwrapped head at (-1,3), got %v", s.GetHead())
	}
}

func TestGrowIsVisibleImmediately(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	s.Grow(1)

	if s.Len() != 2 {
		t.Fatalf("Expected length 2 right after Grow, got %d", s.Len())
	}
	if s.Score != 1 {
		t.Errorf("Expected score 1, got %d", s.Score)
	}
	if s.GrowthPending != 1 {
		t.Errorf("Expected one pending growth, got %d", s.GrowthPending)
	}

	s.Move()
	if s.Len() != 2 {
		t.Errorf("Expected length 2 after the next move, got %d", s.Len())
	}
	if s.GrowthPending != 0 {
		t.Errorf("Expected pending growth realised, got %d", s.GrowthPending)
	}
	want := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}}
	for i, p := range want {
		if s.Body[i] != p {
			t.Errorf("Body[%d]: expected %v, got %v", i, p, s.Body[i])
		}
	}
}

func TestLengthTracksGrowth(t *testing.T) {
	s := NewSnake(types.Point{X: 10, Y: 10}, types.Down)
	total := 0
	for i := 0; i < 30; i++ {
		if i%3 == 0 {
			s.Grow(1)
			total++
		}
		if i%7 == 0 {
			s.EatPill()
			total++
		}
		s.Move()
		if s.Len() != 1+total {
			t.Fatalf("Step %d: expected length %d, got %d", i, 1+total, s.Len())
		}
	}
	if s.Score != total {
		t.Errorf("Expected score %d, got %d", total, s.Score)
	}
}

func TestSetDirectionReversal(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	s.SetDirection(types.Left)
	if s.Direction != types.Left {
		t.Fatalf("Expected reversal to be accepted at score 0, got %v", s.Direction)
	}

	s.Grow(1)
	s.SetDirection(types.Right)
	if s.Direction != types.Left {
		t.Errorf("Expected reversal to be refused once score > 0, got %v", s.Direction)
	}

	s.SetDirection(types.Up)
	if s.Direction != types.Up {
		t.Errorf("Expected perpendicular turn to be accepted, got %v", s.Direction)
	}

	s.SetDirection(types.None)
	if s.Direction != types.Up {
		t.Errorf("Expected None to keep the direction, got %v", s.Direction)
	}
}

func TestPillTimer(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	s.EatPill()

	if s.PillTimer != types.PillDuration {
		t.Fatalf("Expected pill timer %d, got %d", types.PillDuration, s.PillTimer)
	}
	if s.Score != 1 || s.Len() != 2 {
		t.Errorf("Expected EatPill to grow by one, got score %d length %d", s.Score, s.Len())
	}

	if !s.IsPill(false) || s.PillTimer != types.PillDuration {
		t.Fatal("Expected non-consuming query to leave the timer untouched")
	}

	for i := 0; i < types.PillDuration; i++ {
		if !s.IsPill(true) {
			t.Fatalf("Expected rainbow active on consuming call %d", i)
		}
	}
	if s.PillTimer != 0 {
		t.Errorf("Expected timer 0, got %d", s.PillTimer)
	}
	if s.IsPill(true) || s.IsPill(false) {
		t.Error("Expected rainbow inactive after the timer ran out")
	}
}

func TestHitsBody(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	for i := 0; i < 4; i++ {
		s.Grow(1)
		s.Move()
	}
	// Body is a straight line; turn back on itself in a tight square.
	s.SetDirection(types.Down)
	s.Move()
	s.SetDirection(types.Left)
	s.Move()
	if s.HitsBody() {
		t.Fatal("Unexpected collision before closing the loop")
	}
	s.SetDirection(types.Up)
	s.Move()
	if !s.HitsBody() {
		t.Error("Expected the head to hit the body")
	}
}
