package manager

import (
	"snake-walls/game/entity"
	"snake-walls/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	ObstacleCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case ObstacleCollision:
		return "obstacle"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid      types.Grid
	obstacles *Obstacles
}

func NewCollisionManager(grid types.Grid, obstacles *Obstacles) *CollisionManager {
	return &CollisionManager{
		grid:      grid,
		obstacles: obstacles,
	}
}

// IsSelfCollision checks whether the snake's head lies on its own body
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.HitsBody()
}

// IsObstacleCollision checks whether a position lies on an obstacle
func (cm *CollisionManager) IsObstacleCollision(pos types.Point) bool {
	return cm.obstacles.Contains(pos)
}

// IsFoodCollision checks if a position collides with a collectible
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *types.Point) bool {
	return food != nil && pos == *food
}

// IsDanger reports whether moving onto pos would end the run. Positions
// are wrapped first, so it can be asked about cells beyond the edge.
// body is head first, as in Snapshot.Body.
func (cm *CollisionManager) IsDanger(pos types.Point, body []types.Point) bool {
	pos = cm.grid.Wrap(pos)
	if cm.obstacles.Contains(pos) {
		return true
	}
	// The last cell is dropped on the next move; with growth pending it is
	// the placeholder, otherwise the real tail.
	if len(body) > 1 {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		if part == pos {
			return true
		}
	}
	return false
}
