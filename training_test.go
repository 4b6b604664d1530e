package main

import (
	"os"
	"path/filepath"
	"testing"

	"snake-walls/ai"
	"snake-walls/game/types"

	"golang.org/x/exp/rand"
)

func TestTrainingStats(t *testing.T) {
	s := &TrainingStats{}
	if s.Average(0) != 0 || s.Median() != 0 || s.Best() != 0 {
		t.Error("Expected zero stats without episodes")
	}

	for _, score := range []int{4, 1, 7, 2} {
		s.Add(score)
	}
	if s.Best() != 7 {
		t.Errorf("Expected best 7, got %d", s.Best())
	}
	if s.Average(0) != 3.5 {
		t.Errorf("Expected average 3.5, got %v", s.Average(0))
	}
	if s.Average(2) != 4.5 {
		t.Errorf("Expected average of the last two 4.5, got %v", s.Average(2))
	}
	if s.Median() != 3 {
		t.Errorf("Expected median 3, got %v", s.Median())
	}
	if s.Scores[0] != 4 {
		t.Error("Median must not reorder the scores")
	}
}

func TestTrain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qtable.json")
	agent := ai.NewSnakeAgent(ai.NewQLearning(rand.New(rand.NewSource(2))))
	cfg := trainingConfig(types.Grid{Width: 20, Height: 15}, types.SuperHard)

	stats, err := Train(agent, 5, cfg, rand.New(rand.NewSource(3)), path)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	if len(stats.Scores) != 5 {
		t.Errorf("Expected 5 episodes, got %d", len(stats.Scores))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected the Q-table to be saved: %v", err)
	}

	loaded := ai.NewQLearning(rand.New(rand.NewSource(4)))
	if err := loaded.LoadQTable(path); err != nil {
		t.Fatalf("LoadQTable failed: %v", err)
	}
	if len(loaded.QTable) != len(agent.Agent().QTable) {
		t.Errorf("Expected %d states, got %d", len(agent.Agent().QTable), len(loaded.QTable))
	}
}
