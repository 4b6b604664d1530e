package manager

import (
	"snake-walls/game/types"

	"golang.org/x/exp/slices"
)

// WallParams controls the random-walk wall generator for one tier.
type WallParams struct {
	Walls      int // Number of random walks
	MinLength  int
	MaxLength  int
	TurnOdds   int  // A walk re-picks its direction with probability 1/TurnOdds per step
	Scatter    int  // Independent single cells instead of walks
	Dedupe     bool // Collapse duplicate cells after the border pass
	Surrounded bool // Tier gets a border and safe-zone clearing
}

// ParamsFor returns the generator parameters of a difficulty tier.
func ParamsFor(d types.Difficulty) WallParams {
	switch d {
	case types.Medium:
		return WallParams{Scatter: 20, Surrounded: true}
	case types.Hard:
		return WallParams{Walls: 15, MinLength: 3, MaxLength: 10, TurnOdds: 5, Surrounded: true}
	case types.SuperHard:
		return WallParams{Walls: 50, MinLength: 1, MaxLength: 5, TurnOdds: 5, Dedupe: true, Surrounded: true}
	default:
		return WallParams{}
	}
}

// Obstacles is the immutable obstacle layout of a run. Cells keeps the
// generation order; walk cells that left the board are kept and are
// simply never reached by the snake.
type Obstacles struct {
	cells []types.Point
	index map[types.Point]struct{}
}

func newObstacles(cells []types.Point) *Obstacles {
	index := make(map[types.Point]struct{}, len(cells))
	for _, c := range cells {
		index[c] = struct{}{}
	}
	return &Obstacles{cells: cells, index: index}
}

// NewObstacles builds a layout from explicit cells.
func NewObstacles(cells ...types.Point) *Obstacles {
	return newObstacles(slices.Clone(cells))
}

func (o *Obstacles) Contains(p types.Point) bool {
	if o == nil {
		return false
	}
	_, ok := o.index[p]
	return ok
}

// Len counts cells including duplicates left by tiers that do not dedupe.
func (o *Obstacles) Len() int {
	if o == nil {
		return 0
	}
	return len(o.cells)
}

func (o *Obstacles) Empty() bool {
	return o.Len() == 0
}

// Cells returns a copy of the cells in generation order.
func (o *Obstacles) Cells() []types.Point {
	if o == nil {
		return nil
	}
	return slices.Clone(o.cells)
}

// Each calls fn for every cell in generation order until fn returns false.
func (o *Obstacles) Each(fn func(types.Point) bool) {
	if o == nil {
		return
	}
	for _, c := range o.cells {
		if !fn(c) {
			return
		}
	}
}

type ObstacleManager struct {
	grid types.Grid
}

func NewObstacleManager(grid types.Grid) *ObstacleManager {
	return &ObstacleManager{
		grid: grid,
	}
}

// Generate builds the obstacle layout for a tier. It consumes random
// numbers from rng and is otherwise a pure function of its inputs.
func (om *ObstacleManager) Generate(difficulty types.Difficulty, rng types.RNG) *Obstacles {
	params := ParamsFor(difficulty)
	if !params.Surrounded {
		return newObstacles(nil)
	}

	cells := make([]types.Point, 0, params.Walls*params.MaxLength+params.Scatter)
	for i := 0; i < params.Scatter; i++ {
		cells = append(cells, om.randomCell(rng))
	}
	for i := 0; i < params.Walls; i++ {
		cells = om.walk(cells, params, rng)
	}

	cells = om.clearSafeZone(cells)
	cells = om.appendBorder(cells)
	if params.Dedupe {
		cells = dedupe(cells)
	}

	return newObstacles(cells)
}

func (om *ObstacleManager) randomCell(rng types.RNG) types.Point {
	return types.Point{
		X: rng.Intn(om.grid.Width),
		Y: rng.Intn(om.grid.Height),
	}
}

// walk appends one random wall. The start cell itself is not part of the
// wall; every step advances first and then records the new cell.
func (om *ObstacleManager) walk(cells []types.Point, params WallParams, rng types.RNG) []types.Point {
	dir := types.Directions[rng.Intn(len(types.Directions))]
	pos := om.randomCell(rng)
	length := types.IntRange(rng, params.MinLength, params.MaxLength)

	for step := 0; step < length; step++ {
		if rng.Intn(params.TurnOdds) == 0 {
			dir = types.Directions[rng.Intn(len(types.Directions))]
		}
		pos = pos.Add(dir)
		cells = append(cells, pos)
	}
	return cells
}

func (om *ObstacleManager) clearSafeZone(cells []types.Point) []types.Point {
	kept := make([]types.Point, 0, len(cells))
	for _, c := range cells {
		if !om.grid.InSafeZone(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

func (om *ObstacleManager) appendBorder(cells []types.Point) []types.Point {
	for x := 0; x < om.grid.Width; x++ {
		cells = append(cells, types.Point{X: x, Y: 0}, types.Point{X: x, Y: om.grid.Height - 1})
	}
	for y := 0; y < om.grid.Height; y++ {
		cells = append(cells, types.Point{X: 0, Y: y}, types.Point{X: om.grid.Width - 1, Y: y})
	}
	return cells
}

// dedupe keeps the first occurrence of every cell, building a fresh slice
// rather than removing from the one being walked.
func dedupe(cells []types.Point) []types.Point {
	seen := make(map[types.Point]struct{}, len(cells))
	unique := make([]types.Point, 0, len(cells))
	for _, c := range cells {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}
