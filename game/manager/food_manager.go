package manager

import (
	"snake-groove/game/entity"
	"snake-groove/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the single food cell.
type FoodManager struct {
	grid         types.Grid
	food         types.Point
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		food:         types.Point{X: grid.Width * 3 / 4, Y: grid.Height * 3 / 4},
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood draws cells uniformly over the whole grid until one is off
// the snake. Every draw is written to the food slot; only the last survives.
// It returns false without drawing when the snake fills the grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) bool {
	if snake != nil && snake.Len() >= fm.grid.Cells() {
		return false
	}
	for {
		fm.food = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(fm.food, snake) {
			return true
		}
	}
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// SetFood places food without any occupancy check.
func (fm *FoodManager) SetFood(food types.Point) {
	fm.food = food
}
