package ai

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// QTable maps a state key to one value per relative action.
type QTable map[string][]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int
	rng          *rand.Rand
}

func NewQLearning(rng *rand.Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rng,
	}
}

func (q *QLearning) values(key string) []float64 {
	v, ok := q.QTable[key]
	if !ok {
		v = make([]float64, NumActions)
		q.QTable[key] = v
	}
	return v
}

// GetAction picks an action epsilon-greedily.
func (q *QLearning) GetAction(s State) int {
	if q.rng.Float64() < q.Epsilon {
		return q.rng.Intn(NumActions)
	}
	return q.BestAction(s)
}

// BestAction returns the highest-valued action; ties go to Straight.
func (q *QLearning) BestAction(s State) int {
	values := q.values(s.Key())

	best := Straight
	bestValue := values[Straight]
	for action, value := range values {
		if value > bestValue {
			bestValue = value
			best = action
		}
	}
	return best
}

// Update applies Q(s,a) += α [r + γ max Q(s',·) - Q(s,a)].
func (q *QLearning) Update(s State, action int, reward float64, next State, terminal bool) {
	values := q.values(s.Key())

	maxNext := 0.0
	if !terminal {
		maxNext = math.Inf(-1)
		for _, v := range q.values(next.Key()) {
			if v > maxNext {
				maxNext = v
			}
		}
	}

	values[action] += q.LearningRate * (reward + q.Discount*maxNext - values[action])
	q.TotalReward += reward
}

// agentState is the on-disk form of the agent.
type agentState struct {
	QTable      QTable  `json:"qtable"`
	Epsilon     float64 `json:"epsilon"`
	GamesPlayed int     `json:"games_played"`
}

// SaveQTable writes the agent to a JSON file.
func (q *QLearning) SaveQTable(filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create qtable directory")
		}
	}

	data, err := json.MarshalIndent(agentState{QTable: q.QTable, Epsilon: q.Epsilon, GamesPlayed: q.GamesPlayed}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal qtable")
	}

	return errors.Wrap(os.WriteFile(filename, data, 0644), "write qtable")
}

// LoadQTable reads an agent saved by SaveQTable. A missing file leaves
// the agent untouched.
func (q *QLearning) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "read qtable")
	}

	var state agentState
	if err := json.Unmarshal(data, &state); err != nil {
		return errors.Wrap(err, "unmarshal qtable")
	}

	if state.QTable != nil {
		for key, values := range state.QTable {
			if len(values) != NumActions {
				return errors.Errorf("qtable entry %q has %d actions", key, len(values))
			}
		}
		q.QTable = state.QTable
		q.Epsilon = state.Epsilon
		q.GamesPlayed = state.GamesPlayed
	}
	return nil
}
