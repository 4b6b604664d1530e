package entity

import (
	"snake-walls/game/types"
)

type Snake struct {
	Body          []types.Point // Head first
	Direction     types.Direction
	Score         int
	GrowthPending int // Placeholder cells at the tail still owed to growth
	PillTimer     int
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// SetHead replaces the head cell; the engine uses it to apply wrapping.
func (s *Snake) SetHead(p types.Point) {
	s.Body[0] = p
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Move advances the head one cell and drops the last cell. While growth
// is pending the dropped cell is the placeholder appended by Grow, so the
// real tail stays in place.
func (s *Snake) Move() {
	newHead := s.GetHead().Add(s.Direction)

	s.Body = append([]types.Point{newHead}, s.Body[:len(s.Body)-1]...)

	if s.GrowthPending > 0 {
		s.GrowthPending--
	}
}

// SetDirection applies a direction intent. Reversals are refused once the
// snake has scored, since a longer body would run into itself.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.None {
		return
	}
	if dir == s.Direction.Opposite() && s.Score > 0 {
		return
	}
	s.Direction = dir
}

// Grow lengthens the body immediately by appending a copy of the head at
// the tail and adds points to the score.
func (s *Snake) Grow(points int) {
	s.GrowthPending++
	s.Body = append(s.Body, s.GetHead())
	s.Score += points
}

func (s *Snake) EatPill() {
	s.PillTimer = types.PillDuration
	s.Grow(1)
}

// IsPill reports whether rainbow mode is active. With consume set it also
// spends one tick of the effect, so it is not idempotent.
func (s *Snake) IsPill(consume bool) bool {
	if s.PillTimer <= 0 {
		return false
	}
	if consume {
		s.PillTimer--
	}
	return true
}

// HitsBody reports whether the head overlaps any other body cell.
func (s *Snake) HitsBody() bool {
	head := s.GetHead()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
