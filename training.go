package main

import (
	"log"
	"time"

	"snake-walls/ai"
	"snake-walls/game"
	"snake-walls/game/types"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

const (
	saveEvery   = 500
	reportEvery = 50
	// maxEpisodeTicks ends episodes where the agent circles forever.
	maxEpisodeTicks = 20000
)

// TrainingStats summarises finished training episodes.
type TrainingStats struct {
	Scores    []int
	StartTime time.Time
	EndTime   time.Time
}

func (s *TrainingStats) Add(score int) {
	s.Scores = append(s.Scores, score)
}

func (s *TrainingStats) Best() int {
	best := 0
	for _, score := range s.Scores {
		if score > best {
			best = score
		}
	}
	return best
}

// Average of the last n scores; n <= 0 means all of them.
func (s *TrainingStats) Average(n int) float64 {
	scores := s.Scores
	if n > 0 && len(scores) > n {
		scores = scores[len(scores)-n:]
	}
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, score := range scores {
		total += score
	}
	return float64(total) / float64(len(scores))
}

func (s *TrainingStats) Median() float64 {
	if len(s.Scores) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Scores)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return float64(sorted[mid])
}

// Train plays episodes headlessly, learning from every tick. The Q-table
// is saved every saveEvery episodes and at the end when path is set.
func Train(agent *ai.SnakeAgent, episodes int, cfg game.Config, rng *rand.Rand, path string) (*TrainingStats, error) {
	stats := &TrainingStats{StartTime: time.Now()}

	for episode := 0; episode < episodes; episode++ {
		engine, err := game.NewEngine(cfg, rng)
		if err != nil {
			return stats, err
		}

		for ticks := 0; !engine.State().Finished(); ticks++ {
			if ticks == maxEpisodeTicks {
				engine.Quit()
				break
			}
			intent := agent.Decide(engine.Snapshot(), true)
			res, err := engine.Tick(intent)
			if err != nil {
				return stats, err
			}
			agent.Learn(res)
		}
		stats.Add(engine.Score())

		if (episode+1)%reportEvery == 0 {
			log.Printf("Training: episode %d, avg %.2f (last %d), best %d, states %d",
				episode+1, stats.Average(reportEvery), reportEvery, stats.Best(), len(agent.Agent().QTable))
		}
		if path != "" && (episode+1)%saveEvery == 0 {
			if err := agent.Agent().SaveQTable(path); err != nil {
				log.Printf("Training: %v", err)
			}
		}
	}

	stats.EndTime = time.Now()
	if path != "" {
		if err := agent.Agent().SaveQTable(path); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// trainingConfig is the board used for headless episodes.
func trainingConfig(grid types.Grid, d types.Difficulty) game.Config {
	cfg := game.DefaultConfig(d)
	cfg.Grid = grid
	return cfg
}
