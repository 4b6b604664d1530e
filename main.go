package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"snake-walls/ai"
	"snake-walls/audio"
	"snake-walls/game/manager"
	"snake-walls/game/types"
	"snake-walls/ui"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
)

func main() {
	width := flag.Int("width", 50, "Board width in cells")
	height := flag.Int("height", 40, "Board height in cells")
	difficulty := flag.String("difficulty", "", "Start directly at easy|medium|hard|superhard")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	records := flag.String("records", manager.RecordsFile, "Records file")
	frontend := flag.String("frontend", "raylib", "Frontend: raylib or tui")
	cell := flag.Int("cell", 20, "Cell size in pixels (raylib)")
	mute := flag.Bool("mute", false, "Disable sound")
	strictSpawn := flag.Bool("strict-spawn", false, "Reject collectibles only on the exact obstacle cell")
	autopilot := flag.Bool("autopilot", false, "Let the Q-learning agent play")
	train := flag.Int("train", 0, "Run N headless training episodes and exit")
	qtable := flag.String("qtable", "data/qtable.json", "Q-table file for the agent")
	logFile := flag.String("log", "", "Write the log to this file")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))
	grid := types.Grid{Width: *width, Height: *height}
	if grid.Width < 3 || grid.Height < 3 {
		log.Fatalf("Board %dx%d too small, need at least 3x3", grid.Width, grid.Height)
	}

	var start types.Difficulty
	if *difficulty != "" {
		d, ok := types.ParseDifficulty(*difficulty)
		if !ok {
			log.Fatalf("Unknown difficulty %q", *difficulty)
		}
		start = d
	}

	switch {
	case *logFile != "":
		f, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("Cannot open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	case *frontend == "tui" && *train == 0:
		log.SetOutput(io.Discard)
	}
	log.Printf("Seed %d", *seed)

	var pilot *ai.SnakeAgent
	if *autopilot || *train > 0 {
		agent := ai.NewQLearning(rand.New(rand.NewSource(*seed + 1)))
		if err := agent.LoadQTable(*qtable); err != nil {
			log.Fatalf("Cannot load Q-table: %v", err)
		}
		pilot = ai.NewSnakeAgent(agent)
	}

	if *train > 0 {
		if !start.Valid() {
			start = types.Hard
		}
		stats, err := Train(pilot, *train, trainingConfig(grid, start), rng, *qtable)
		if err != nil {
			log.Fatalf("Training failed: %v", err)
		}
		log.Printf("Training: %d episodes in %s, avg %.2f, median %.1f, best %d",
			len(stats.Scores), stats.EndTime.Sub(stats.StartTime).Round(time.Second),
			stats.Average(0), stats.Median(), stats.Best())
		return
	}

	var front ui.Frontend
	delay := time.Duration(0)
	switch *frontend {
	case "raylib":
		front = ui.NewRenderer(grid, *cell, *seed)
	case "tui":
		s, err := tcell.NewScreen()
		if err != nil {
			log.Fatalf("Cannot create terminal screen: %v", err)
		}
		if err := s.Init(); err != nil {
			log.Fatalf("Cannot init terminal screen: %v", err)
		}
		front = ui.NewTerminal(s, *seed)
		delay = frameDelay
	default:
		log.Fatalf("Unknown frontend %q", *frontend)
	}
	defer front.Close()

	var cues *audio.Cues
	if !*mute {
		cues = audio.NewCues()
		if err := cues.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer cues.Close()
	}

	app := NewApp(front, manager.NewRecordManager(*records), cues, rng, grid)
	app.pilot = pilot
	app.frameDelay = delay
	if *strictSpawn {
		app.accept = manager.StrictAccept
	}

	if err := app.Run(start); err != nil {
		log.Printf("Exiting: %v", err)
	}
}
