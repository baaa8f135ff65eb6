package manager

import (
	"testing"

	"snake-groove/game/entity"
	"snake-groove/game/types"
)

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.Square(20))
	snake := entity.NewSnake([]types.Point{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 10, Y: 12}}, types.Up)

	tests := []struct {
		pos  types.Point
		want CollisionType
	}{
		{types.Point{X: 10, Y: 9}, NoCollision},
		{types.Point{X: 0, Y: 0}, NoCollision},
		{types.Point{X: 19, Y: 19}, NoCollision},
		{types.Point{X: 20, Y: 5}, WallCollision},
		{types.Point{X: -1, Y: 5}, WallCollision},
		{types.Point{X: 5, Y: 20}, WallCollision},
		{types.Point{X: 5, Y: -1}, WallCollision},
		{types.Point{X: 10, Y: 11}, SelfCollision},
		{types.Point{X: 10, Y: 12}, SelfCollision},
	}
	for _, tt := range tests {
		if got := cm.CheckCollision(tt.pos, snake); got != tt.want {
			t.Errorf("CheckCollision(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(types.Square(4))
	snake := entity.NewSnake([]types.Point{{X: 1, Y: 1}}, types.Up)
	if cm.ValidateSpawnPosition(types.Point{X: 1, Y: 1}, snake) {
		t.Error("spawn allowed on the snake")
	}
	if cm.ValidateSpawnPosition(types.Point{X: 4, Y: 0}, snake) {
		t.Error("spawn allowed off the grid")
	}
	if !cm.ValidateSpawnPosition(types.Point{X: 2, Y: 2}, snake) {
		t.Error("free cell rejected")
	}
}
