package ai

import (
	"snake-walls/game"
	"snake-walls/game/types"
)

// SnakeAgent drives an engine with the Q-learning agent in place of a
// player.
type SnakeAgent struct {
	agent   *QLearning
	sensors *Sensors
	runID   string

	// Pending transition, completed by Learn.
	state     State
	action    int
	hasAction bool
}

func NewSnakeAgent(agent *QLearning) *SnakeAgent {
	return &SnakeAgent{agent: agent}
}

// Agent returns the underlying learner.
func (sa *SnakeAgent) Agent() *QLearning {
	return sa.agent
}

// Decide returns the direction intent for the next tick.
func (sa *SnakeAgent) Decide(snap game.Snapshot, explore bool) types.Direction {
	if id := snap.RunID.String(); sa.sensors == nil || id != sa.runID {
		sa.sensors = NewSensors(snap)
		sa.runID = id
		sa.hasAction = false
	}

	state := sa.sensors.Sense(snap)
	action := sa.agent.BestAction(state)
	if explore {
		action = sa.agent.GetAction(state)
	}

	sa.state = state
	sa.action = action
	sa.hasAction = true
	return Absolute(snap.Direction, action)
}

// Learn feeds the outcome of the last decided tick back to the agent.
func (sa *SnakeAgent) Learn(res game.TickResult) float64 {
	if !sa.hasAction {
		return 0
	}
	sa.hasAction = false

	next := sa.sensors.Sense(res.Snapshot)
	reward := CalculateReward(sa.state, next, res)
	terminal := res.Snapshot.State.Finished()
	sa.agent.Update(sa.state, sa.action, reward, next, terminal)
	if terminal {
		sa.agent.GamesPlayed++
	}
	return reward
}

// CalculateReward scores one transition.
func CalculateReward(before, after State, res game.TickResult) float64 {
	if res.Has(game.EventDied) {
		return -2.0
	}

	reward := -0.005 // Step penalty
	if res.Has(game.EventGrew) {
		reward += 5.0 + float64(res.Snapshot.Score)*0.2
	}
	if res.Has(game.EventAtePill) || res.Has(game.EventAteFastPill) {
		reward += 1.0
	}

	switch {
	case after.FoodDistance < before.FoodDistance:
		reward += 0.5
	case after.FoodDistance > before.FoodDistance && !res.Has(game.EventGrew):
		reward -= 0.3
	}
	return reward
}
