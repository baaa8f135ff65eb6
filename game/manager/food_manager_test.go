package manager

import (
	"testing"

	"snake-groove/game/entity"
	"snake-groove/game/types"

	"golang.org/x/exp/rand"
)

func newFoodManager(tiles int, seed uint64) *FoodManager {
	grid := types.Square(tiles)
	return NewFoodManager(grid, NewCollisionManager(grid), rand.New(rand.NewSource(seed)))
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	fm := newFoodManager(5, 7)

	// Leave two free cells on a 5x5 board.
	var body []types.Point
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if (x == 4 && y == 4) || (x == 0 && y == 4) {
				continue
			}
			body = append(body, types.Point{X: x, Y: y})
		}
	}
	snake := entity.NewSnake(body, types.Up)

	for i := 0; i < 200; i++ {
		if !fm.GenerateFood(snake) {
			t.Fatal("placement failed with free cells left")
		}
		food := fm.GetFood()
		if snake.Occupies(food) {
			t.Fatalf("food %v placed on the snake", food)
		}
		if food != (types.Point{X: 4, Y: 4}) && food != (types.Point{X: 0, Y: 4}) {
			t.Fatalf("food %v not on a free cell", food)
		}
	}
}

func TestGenerateFoodCoversGrid(t *testing.T) {
	fm := newFoodManager(3, 11)
	snake := entity.NewSnake([]types.Point{{X: 1, Y: 1}}, types.Up)

	seen := map[types.Point]bool{}
	for i := 0; i < 500; i++ {
		fm.GenerateFood(snake)
		seen[fm.GetFood()] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected all 8 free cells to be drawn, saw %d", len(seen))
	}
}

func TestGenerateFoodFullBoard(t *testing.T) {
	fm := newFoodManager(2, 1)
	fm.SetFood(types.Point{X: 1, Y: 1})
	snake := entity.NewSnake([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, types.Up)

	if fm.GenerateFood(snake) {
		t.Fatal("placement reported success on a full board")
	}
	if fm.GetFood() != (types.Point{X: 1, Y: 1}) {
		t.Errorf("food moved although no draw was made")
	}
}
