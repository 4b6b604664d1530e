package manager

import (
	"snake-walls/game/types"

	"github.com/pkg/errors"
)

// CollectibleKind enumerates what the snake can eat.
type CollectibleKind int

const (
	Apple CollectibleKind = iota
	Pill
	FastPill
)

func (k CollectibleKind) String() string {
	switch k {
	case Apple:
		return "apple"
	case Pill:
		return "pill"
	case FastPill:
		return "fast pill"
	default:
		return "unknown"
	}
}

// AcceptFunc decides whether a sampled cell is a valid placement.
type AcceptFunc func(candidate types.Point, obstacles *Obstacles) bool

// LegacyAccept accepts a candidate as soon as one obstacle differs from
// it in both coordinates, or when there are no obstacles at all. It does
// not prove the candidate avoids every obstacle.
func LegacyAccept(candidate types.Point, obstacles *Obstacles) bool {
	if obstacles.Empty() {
		return true
	}
	accepted := false
	obstacles.Each(func(o types.Point) bool {
		if o.X != candidate.X && o.Y != candidate.Y {
			accepted = true
			return false
		}
		return true
	})
	return accepted
}

// StrictAccept rejects any candidate that coincides with an obstacle.
func StrictAccept(candidate types.Point, obstacles *Obstacles) bool {
	return !obstacles.Contains(candidate)
}

type CollectibleManager struct {
	grid        types.Grid
	accept      AcceptFunc
	maxAttempts int
}

func NewCollectibleManager(grid types.Grid, accept AcceptFunc) *CollectibleManager {
	if accept == nil {
		accept = LegacyAccept
	}
	return &CollectibleManager{
		grid:        grid,
		accept:      accept,
		maxAttempts: types.MaxPlacementAttempts,
	}
}

// Place samples cells uniformly inside the border ring until one is
// accepted. It gives up with ErrPlacementExhausted after a bounded
// number of samples.
func (cm *CollectibleManager) Place(kind CollectibleKind, obstacles *Obstacles, rng types.RNG) (types.Point, error) {
	if cm.grid.Width < 3 || cm.grid.Height < 3 {
		return types.Point{}, errors.Wrapf(ErrPlacementExhausted, "%v: board %dx%d has no interior", kind, cm.grid.Width, cm.grid.Height)
	}

	for attempt := 0; attempt < cm.maxAttempts; attempt++ {
		candidate := types.Point{
			X: types.IntRange(rng, 1, cm.grid.Width-2),
			Y: types.IntRange(rng, 1, cm.grid.Height-2),
		}
		if cm.accept(candidate, obstacles) {
			return candidate, nil
		}
	}

	return types.Point{}, errors.Wrapf(ErrPlacementExhausted, "%v: no cell accepted after %d samples", kind, cm.maxAttempts)
}
