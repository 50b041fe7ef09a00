package game_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tetra/game"
	"github.com/stretchr/testify/assert"
)

func allPieceTypes() []game.PieceType {
	types := make([]game.PieceType, game.NumPieceTypes)
	for i := range types {
		types[i] = game.PieceType(i)
	}
	return types
}

func countCells(s game.Shape) int {
	count := 0
	for _, row := range s {
		for _, filled := range row {
			if filled {
				count++
			}
		}
	}
	return count
}

func TestEveryShapeHasFourCells(t *testing.T) {
	for _, pt := range allPieceTypes() {
		for rot := range game.RotationStates {
			t.Run(fmt.Sprintf("%s/rot=%d", pt, rot), func(t *testing.T) {
				assert.Equal(t, 4, countCells(game.ShapeOf(pt, rot)))
			})
		}
	}
}

// Every orientation must keep a filled cell within the top two rows of
// its bounding box. Spawning places the box at row 0, so this is what
// guarantees a stack reaching the top two board rows blocks the spawn at
// any rotation state.
func TestEveryRotationOccupiesTopTwoRows(t *testing.T) {
	for _, pt := range allPieceTypes() {
		for rot := range game.RotationStates {
			t.Run(fmt.Sprintf("%s/rot=%d", pt, rot), func(t *testing.T) {
				shape := game.ShapeOf(pt, rot)
				filled := false
				for row := 0; row < 2; row++ {
					for _, cell := range shape[row] {
						filled = filled || cell
					}
				}
				assert.True(t, filled)
			})
		}
	}
}

func TestORotatesIntoItself(t *testing.T) {
	base := game.ShapeOf(game.PieceO, 0)
	for rot := 1; rot < game.RotationStates; rot++ {
		assert.Equal(t, base, game.ShapeOf(game.PieceO, rot))
	}
}

func TestFourRotationsReturnToStart(t *testing.T) {
	for _, pt := range allPieceTypes() {
		assert.Equal(t, game.ShapeOf(pt, 0), game.ShapeOf(pt, 4), pt.String())
	}
}

// ShapeOf must be total over any integer rotation.
func TestShapeOfRotationModulo(t *testing.T) {
	tests := []struct {
		rotation int
		want     int
	}{
		{5, 1},
		{-1, 3},
		{-4, 0},
		{7, 3},
		{100, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("rotation=%d", tt.rotation), func(t *testing.T) {
			assert.Equal(t, game.ShapeOf(game.PieceT, tt.want), game.ShapeOf(game.PieceT, tt.rotation))
		})
	}
}

func TestPieceTypeString(t *testing.T) {
	assert.Equal(t, "I", game.PieceI.String())
	assert.Equal(t, "L", game.PieceL.String())
	assert.Equal(t, "?", game.PieceType(42).String())
}
