package types

import "time"

// Point is a single grid cell.
type Point struct {
	X, Y int
}

// Add returns p moved by one step in direction d.
func (p Point) Add(d Direction) Point {
	v := d.ToPoint()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Center returns the cell the snake spawns on.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether p lies inside the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsBorder reports whether p is on the outer one-cell ring.
func (g Grid) IsBorder(p Point) bool {
	return p.X == 0 || p.X == g.Width-1 || p.Y == 0 || p.Y == g.Height-1
}

// Wrap applies the toroidal boundary policy. Each axis is handled
// independently; a single-cell move only ever leaves the board by one.
func (g Grid) Wrap(p Point) Point {
	if p.X > g.Width-1 {
		p.X = 0
	} else if p.X < 0 {
		p.X = g.Width - 1
	}
	if p.Y > g.Height-1 {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = g.Height - 1
	}
	return p
}

// InSafeZone reports whether p is inside the square kept free of
// generated obstacles around the spawn cell.
func (g Grid) InSafeZone(p Point) bool {
	return abs(g.Width/2-p.X) < SafeZoneRadius && abs(g.Height/2-p.Y) < SafeZoneRadius
}

// Distance is the Manhattan distance between two cells on the torus.
func (g Grid) Distance(a, b Point) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)

	if dx > g.Width/2 {
		dx = g.Width - dx
	}
	if dy > g.Height/2 {
		dy = g.Height - dy
	}

	return dx + dy
}

// Direction rappresenta una direzione cardinale
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Directions lists the four movement directions in random-pick order.
var Directions = [4]Direction{Right, Left, Down, Up}

// ToPoint converts a Direction into a unit displacement.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// TurnLeft returns the direction after a 90° counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the direction after a 90° clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Difficulty selects the board layout and base tick rate of a run.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
	SuperHard
)

// Difficulties lists every tier in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard, SuperHard}

// BaseTickRate returns the number of ticks per second for the tier.
func (d Difficulty) BaseTickRate() int {
	switch d {
	case Medium:
		return 7
	case Hard:
		return 9
	case SuperHard:
		return 10
	default:
		return 6
	}
}

// Code is the stable numeric encoding used in persisted records.
func (d Difficulty) Code() int {
	return int(d)
}

// Valid reports whether d is one of the four known tiers.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= SuperHard
}

// DifficultyFromCode decodes the persisted numeric form.
func DifficultyFromCode(code int) (Difficulty, bool) {
	d := Difficulty(code)
	return d, d.Valid()
}

// ParseDifficulty accepts the lowercase names used on the command line.
func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case SuperHard:
		return "superhard"
	default:
		return "unknown"
	}
}

// Title is the human-readable label shown in menus and the records table.
func (d Difficulty) Title() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case SuperHard:
		return "Super hard"
	default:
		return "Unknown"
	}
}

// TickInterval converts a tick rate into the driver's sleep interval.
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(rate)
}

// RNG is the random source threaded through generation and spawning.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// IntRange returns a uniform integer in [lo, hi], both inclusive.
func IntRange(rng RNG, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Game constants
const (
	SafeZoneRadius       = 6    // Half-width of the obstacle-free square around the spawn cell
	PillDuration         = 120  // Ticks of rainbow mode after eating a pill
	FastPillDuration     = 200  // Ticks of doubled tick rate after eating a fast pill
	PillSpawnOdds        = 101  // A pill appears with probability 1/PillSpawnOdds per tick
	FastPillSpawnOdds    = 201  // A fast pill appears with probability 1/FastPillSpawnOdds per tick
	MaxPlacementAttempts = 4096 // Samples before a collectible placement gives up
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
