package game

import (
	"time"

	"snake-walls/game/entity"
	"snake-walls/game/manager"
	"snake-walls/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Config describes one run.
type Config struct {
	Grid       types.Grid
	Difficulty types.Difficulty
	// Accept overrides the collectible acceptance rule; nil keeps
	// manager.LegacyAccept.
	Accept manager.AcceptFunc
}

// DefaultConfig is the standard 50x40 board.
func DefaultConfig(d types.Difficulty) Config {
	return Config{
		Grid:       types.Grid{Width: 50, Height: 40},
		Difficulty: d,
	}
}

// Engine owns every piece of state of a single run. A new run needs a
// new Engine.
type Engine struct {
	UUID       uuid.UUID
	StartTime  time.Time
	grid       types.Grid
	difficulty types.Difficulty
	rng        types.RNG

	snake     *entity.Snake
	obstacles *manager.Obstacles
	cells     []types.Point // Obstacle cells in generation order
	apple     types.Point
	pill      *types.Point
	fastPill  *types.Point

	fastPillTimer int
	rainbow       bool
	state         State
	ticks         uint64

	collisions   *manager.CollisionManager
	collectibles *manager.CollectibleManager
}

// NewEngine generates the board, places the first apple and spawns the
// snake at the centre with a random direction. It fails only when the
// apple cannot be placed.
func NewEngine(cfg Config, rng types.RNG) (*Engine, error) {
	if !cfg.Difficulty.Valid() {
		return nil, errors.Errorf("unknown difficulty %d", cfg.Difficulty)
	}

	obstacles := manager.NewObstacleManager(cfg.Grid).Generate(cfg.Difficulty, rng)
	dir := types.Directions[rng.Intn(len(types.Directions))]

	e := &Engine{
		UUID:         uuid.New(),
		StartTime:    time.Now(),
		grid:         cfg.Grid,
		difficulty:   cfg.Difficulty,
		rng:          rng,
		snake:        entity.NewSnake(cfg.Grid.Center(), dir),
		obstacles:    obstacles,
		cells:        obstacles.Cells(),
		state:        Running,
		collisions:   manager.NewCollisionManager(cfg.Grid, obstacles),
		collectibles: manager.NewCollectibleManager(cfg.Grid, cfg.Accept),
	}

	apple, err := e.collectibles.Place(manager.Apple, obstacles, rng)
	if err != nil {
		return nil, errors.Wrapf(err, "%v board", cfg.Difficulty)
	}
	e.apple = apple

	return e, nil
}

// Tick advances the run by one step. A paused or finished engine does not
// move and returns an empty result. The only error is
// manager.ErrPlacementExhausted while placing a collectible.
func (e *Engine) Tick(intent types.Direction) (TickResult, error) {
	if e.state != Running {
		return TickResult{Snapshot: e.Snapshot()}, nil
	}

	e.ticks++
	var events []Event
	s := e.snake

	s.SetDirection(intent)
	s.Move()
	s.SetHead(e.grid.Wrap(s.GetHead()))
	head := s.GetHead()

	if e.collisions.IsSelfCollision(s) {
		events = e.die(events, manager.SelfCollision)
	}

	if e.collisions.IsFoodCollision(head, &e.apple) {
		if s.IsPill(false) {
			s.Grow(1)
		}
		apple, err := e.collectibles.Place(manager.Apple, e.obstacles, e.rng)
		if err != nil {
			return TickResult{Events: events, Snapshot: e.Snapshot()}, err
		}
		e.apple = apple
		s.Grow(1)
		events = append(events, Event{Kind: EventGrew}, Event{Kind: EventSpawnedApple})
	}

	if e.collisions.IsObstacleCollision(head) {
		events = e.die(events, manager.ObstacleCollision)
	}

	if e.collisions.IsFoodCollision(head, e.pill) {
		s.EatPill()
		e.pill = nil
		events = append(events, Event{Kind: EventAtePill})
	}

	if e.collisions.IsFoodCollision(head, e.fastPill) {
		e.fastPill = nil
		e.fastPillTimer = types.FastPillDuration
		events = append(events, Event{Kind: EventAteFastPill})
	}

	if e.fastPillTimer > 0 {
		e.fastPillTimer--
		if e.fastPillTimer == 0 {
			events = append(events, Event{Kind: EventSpeedBoostEnded})
		}
	}

	e.rainbow = s.IsPill(true)

	if e.pill == nil && e.rng.Intn(types.PillSpawnOdds) == 0 {
		p, err := e.collectibles.Place(manager.Pill, e.obstacles, e.rng)
		if err != nil {
			return TickResult{Events: events, Snapshot: e.Snapshot()}, err
		}
		e.pill = &p
		events = append(events, Event{Kind: EventSpawnedPill})
	}

	if e.fastPill == nil && e.rng.Intn(types.FastPillSpawnOdds) == 0 && e.fastPillTimer == 0 {
		p, err := e.collectibles.Place(manager.FastPill, e.obstacles, e.rng)
		if err != nil {
			return TickResult{Events: events, Snapshot: e.Snapshot()}, err
		}
		e.fastPill = &p
		events = append(events, Event{Kind: EventSpawnedFastPill})
	}

	return TickResult{Events: events, Snapshot: e.Snapshot()}, nil
}

// die records a collision. The rest of the tick still runs; the state is
// already terminal.
func (e *Engine) die(events []Event, cause manager.CollisionType) []Event {
	if e.state == GameOver {
		return events
	}
	e.state = GameOver
	return append(events, Event{Kind: EventDied, Cause: cause})
}

// Pause freezes the run. Only a running engine can pause.
func (e *Engine) Pause() bool {
	if e.state != Running {
		return false
	}
	e.state = Paused
	return true
}

// Resume continues a paused run.
func (e *Engine) Resume() bool {
	if e.state != Paused {
		return false
	}
	e.state = Running
	return true
}

// Quit abandons the run. An aborted run never produces a record.
func (e *Engine) Quit() {
	if !e.state.Finished() {
		e.state = Aborted
	}
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Score() int {
	return e.snake.Score
}

func (e *Engine) Difficulty() types.Difficulty {
	return e.difficulty
}

func (e *Engine) Grid() types.Grid {
	return e.grid
}

// TickRate is the current number of ticks per second.
func (e *Engine) TickRate() int {
	rate := e.difficulty.BaseTickRate()
	if e.fastPillTimer > 0 {
		rate *= 2
	}
	return rate
}

func (e *Engine) TickInterval() time.Duration {
	return types.TickInterval(e.TickRate())
}

// Record returns the record to persist for this run. Only a natural game
// over with a positive score produces one.
func (e *Engine) Record(now time.Time) (manager.RunRecord, bool) {
	if e.state != GameOver || e.snake.Score <= 0 {
		return manager.RunRecord{}, false
	}
	return manager.RunRecord{
		Score:      e.snake.Score,
		Difficulty: e.difficulty,
		Time:       now,
	}, true
}

// Snapshot copies the state a frontend needs to draw the current frame.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		RunID:      e.UUID,
		Tick:       e.ticks,
		State:      e.state,
		Difficulty: e.difficulty,
		Grid:       e.grid,
		Body:       e.snake.Cells(),
		Direction:  e.snake.Direction,
		Rainbow:    e.rainbow,
		Obstacles:  slices.Clone(e.cells),
		Apple:      e.apple,
		Score:      e.snake.Score,
		SpeedBoost: e.fastPillTimer > 0,
		TickRate:   e.TickRate(),
	}
	if e.pill != nil {
		p := *e.pill
		snap.Pill = &p
	}
	if e.fastPill != nil {
		p := *e.fastPill
		snap.FastPill = &p
	}
	return snap
}
