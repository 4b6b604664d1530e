package main

import (
	"log"
	"time"

	"snake-walls/ai"
	"snake-walls/audio"
	"snake-walls/game"
	"snake-walls/game/manager"
	"snake-walls/game/types"
	"snake-walls/ui"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const (
	gameOverDelay = 2 * time.Second
	frameDelay    = time.Second / 60
)

var errClosed = errors.New("frontend closed")

// App runs menus and games on one frontend.
type App struct {
	front   ui.Frontend
	records *manager.RecordManager
	cues    *audio.Cues
	pilot   *ai.SnakeAgent // nil unless the autopilot plays
	rng     *rand.Rand
	grid    types.Grid
	accept  manager.AcceptFunc

	// Pacing. Tests zero these to run frames back to back.
	frameDelay    time.Duration
	gameOverDelay time.Duration
	paced         bool
	now           func() time.Time
}

func NewApp(front ui.Frontend, records *manager.RecordManager, cues *audio.Cues, rng *rand.Rand, grid types.Grid) *App {
	return &App{
		front:         front,
		records:       records,
		cues:          cues,
		rng:           rng,
		grid:          grid,
		frameDelay:    frameDelay,
		gameOverDelay: gameOverDelay,
		paced:         true,
		now:           time.Now,
	}
}

// Run shows the main menu until the player quits. A valid start
// difficulty plays one game before the menu.
func (a *App) Run(start types.Difficulty) error {
	if start.Valid() {
		if err := a.play(start); err != nil {
			return ignoreClosed(err)
		}
	}

	menu := ui.MainMenu()
	for {
		item, err := a.choose(menu)
		if err != nil {
			return ignoreClosed(err)
		}

		switch item.Action {
		case ui.ActionPlay:
			d, ok, err := a.chooseDifficulty()
			if err != nil {
				return ignoreClosed(err)
			}
			if !ok {
				continue
			}
			if err := a.play(d); err != nil {
				return ignoreClosed(err)
			}
		case ui.ActionRecords:
			if err := a.showRecords(); err != nil {
				return ignoreClosed(err)
			}
		case ui.ActionExit, ui.ActionBack:
			return nil
		}
	}
}

func ignoreClosed(err error) error {
	if errors.Is(err, errClosed) {
		return nil
	}
	return err
}

// choose draws the menu until an item is picked.
func (a *App) choose(menu *ui.Menu) (ui.MenuItem, error) {
	for {
		for _, in := range a.front.Poll() {
			if in == ui.InputClose {
				return ui.MenuItem{}, errClosed
			}
			if item, ok := menu.Handle(in); ok {
				return item, nil
			}
		}
		if a.front.Closed() {
			return ui.MenuItem{}, errClosed
		}
		a.front.DrawMenu(menu)
		a.sleep(a.frameDelay)
	}
}

func (a *App) chooseDifficulty() (types.Difficulty, bool, error) {
	item, err := a.choose(ui.DifficultyMenu())
	if err != nil {
		return 0, false, err
	}
	if item.Action != ui.ActionStart {
		return 0, false, nil
	}
	return item.Difficulty, true, nil
}

func (a *App) showRecords() error {
	records, err := a.records.LoadSorted()
	if err != nil {
		if !errors.Is(err, manager.ErrMalformedRecord) {
			log.Printf("Records: load failed: %v", err)
			return nil
		}
		log.Printf("Records: %v", err)
	}

	lines := ui.RecordLines(records)
	for {
		for _, in := range a.front.Poll() {
			switch in {
			case ui.InputClose:
				return errClosed
			case ui.InputBack:
				return nil
			}
		}
		if a.front.Closed() {
			return errClosed
		}
		a.front.DrawRecords(lines)
		a.sleep(a.frameDelay)
	}
}

// play runs one game to completion.
func (a *App) play(d types.Difficulty) error {
	cfg := game.DefaultConfig(d)
	cfg.Grid = a.grid
	cfg.Accept = a.accept

	engine, err := game.NewEngine(cfg, a.rng)
	if err != nil {
		log.Printf("Game: cannot start %s run: %v", d, err)
		return nil
	}
	log.Printf("Game: run %s started, difficulty %s", engine.UUID, d)

	intent := types.None
	next := a.now().Add(engine.TickInterval())
	for {
		closed := a.front.Closed()
		for _, in := range a.front.Poll() {
			switch {
			case in == ui.InputClose:
				closed = true
			case engine.State() == game.Running && in == ui.InputBack:
				engine.Pause()
			case engine.State() == game.Paused && in == ui.InputBack:
				engine.Resume()
				next = a.now().Add(engine.TickInterval())
			case engine.State() == game.Paused && in == ui.InputSelect:
				engine.Quit()
			case engine.State() == game.Running:
				if dir := in.Direction(); dir != types.None {
					intent = dir
				}
			}
		}

		if closed {
			engine.Quit()
			return errClosed
		}

		switch engine.State() {
		case game.Aborted:
			log.Printf("Game: run %s quit with score %d", engine.UUID, engine.Score())
			return nil
		case game.Paused:
			a.front.DrawPause(engine.Snapshot())
			a.sleep(a.frameDelay)
			continue
		}

		if !a.paced || !a.now().Before(next) {
			if a.pilot != nil && intent == types.None {
				intent = a.pilot.Decide(engine.Snapshot(), false)
			}

			res, err := engine.Tick(intent)
			if err != nil {
				log.Printf("Game: run %s stopped: %v", engine.UUID, err)
				engine.Quit()
				return nil
			}
			intent = types.None
			next = a.now().Add(engine.TickInterval())

			if a.cues != nil {
				a.cues.Play(res.Events)
			}
			if engine.State() == game.GameOver {
				return a.gameOver(engine)
			}
		}

		a.front.DrawGame(engine.Snapshot())
		a.sleep(a.frameDelay)
	}
}

// recorder is the part of the engine needed to persist a finished run.
type recorder interface {
	Record(now time.Time) (manager.RunRecord, bool)
}

// persist appends the run's record, if it earned one.
func (a *App) persist(r recorder) {
	rec, ok := r.Record(a.now())
	if !ok {
		return
	}
	if err := a.records.Append(rec); err != nil {
		log.Printf("Records: %v", err)
	}
}

func (a *App) gameOver(engine *game.Engine) error {
	log.Printf("Game: run %s over with score %d", engine.UUID, engine.Score())
	a.persist(engine)

	deadline := a.now().Add(a.gameOverDelay)
	for {
		for _, in := range a.front.Poll() {
			if in == ui.InputClose {
				return errClosed
			}
		}
		if a.front.Closed() {
			return errClosed
		}
		a.front.DrawGameOver(engine.Score())
		if !a.now().Before(deadline) {
			return nil
		}
		a.sleep(a.frameDelay)
	}
}

func (a *App) sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
