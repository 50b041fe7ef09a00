package game_test

import (
	"testing"

	"github.com/plus3/tetra/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow paints a full row by locking overlapping horizontal I pieces.
// The I shape occupies row 1 of its bounding box, hence the y-1.
func fillRow(b *game.Board, y int) {
	for _, x := range []int{0, 3, 6} {
		b.Lock(game.PieceI, x, y-1, 0, game.CellOf(game.PieceI))
	}
}

// fillRowExcept paints a row leaving a single gap at column 9.
func fillRowExceptLast(b *game.Board, y int) {
	for _, x := range []int{0, 4, 5} {
		b.Lock(game.PieceI, x, y-1, 0, game.CellOf(game.PieceI))
	}
}

func rowCells(b *game.Board, y int) []game.Cell {
	cells := make([]game.Cell, game.BoardWidth)
	for x := range game.BoardWidth {
		cells[x] = b.Cell(x, y)
	}
	return cells
}

func TestPlacementOnEmptyBoard(t *testing.T) {
	b := game.NewBoard()
	for _, pt := range allPieceTypes() {
		for rot := range game.RotationStates {
			assert.True(t, b.IsValidPlacement(pt, 3, 5, rot), "%s rot %d", pt, rot)
		}
	}
}

func TestPlacementHorizontalBounds(t *testing.T) {
	b := game.NewBoard()

	// Vertical I occupies column x+2 of its bounding box.
	assert.True(t, b.IsValidPlacement(game.PieceI, -2, 5, 1))
	assert.False(t, b.IsValidPlacement(game.PieceI, -3, 5, 1))
	assert.True(t, b.IsValidPlacement(game.PieceI, 7, 5, 1))
	assert.False(t, b.IsValidPlacement(game.PieceI, 8, 5, 1))
}

func TestPlacementBelowFloor(t *testing.T) {
	b := game.NewBoard()

	// Horizontal I occupies row y+1 of its bounding box.
	assert.True(t, b.IsValidPlacement(game.PieceI, 3, game.BoardHeight-2, 0))
	assert.False(t, b.IsValidPlacement(game.PieceI, 3, game.BoardHeight-1, 0))
}

func TestPlacementCollision(t *testing.T) {
	b := game.NewBoard()
	fillRow(b, 10)

	assert.False(t, b.IsValidPlacement(game.PieceI, 3, 9, 0))
	assert.True(t, b.IsValidPlacement(game.PieceI, 3, 8, 0))
}

// Rows above the visible field are always clear, even when row 0 is
// occupied at the same columns.
func TestPlacementAboveFieldIsClear(t *testing.T) {
	b := game.NewBoard()
	fillRow(b, 0)

	assert.True(t, b.IsValidPlacement(game.PieceI, 3, -2, 0))
	assert.False(t, b.IsValidPlacement(game.PieceI, 3, -1, 0))
}

func TestLockWritesTag(t *testing.T) {
	b := game.NewBoard()
	b.Lock(game.PieceO, 4, 10, 0, game.CellOf(game.PieceO))

	for _, pos := range [][2]int{{5, 11}, {6, 11}, {5, 12}, {6, 12}} {
		cell := b.Cell(pos[0], pos[1])
		pt, ok := cell.Piece()
		require.True(t, ok)
		assert.Equal(t, game.PieceO, pt)
	}
	assert.Equal(t, game.EmptyCell, b.Cell(4, 11))
}

func TestLockDropsCellsAboveField(t *testing.T) {
	b := game.NewBoard()

	// Horizontal I at y=-1 puts its filled row at y=0.
	b.Lock(game.PieceI, 3, -1, 0, game.CellOf(game.PieceI))
	assert.NotEqual(t, game.EmptyCell, b.Cell(3, 0))

	b.Reset()

	// At y=-2 the filled row is off-grid entirely. Nothing is written.
	b.Lock(game.PieceI, 3, -2, 0, game.CellOf(game.PieceI))
	for y := range game.BoardHeight {
		assert.Equal(t, make([]game.Cell, game.BoardWidth), rowCells(b, y))
	}
}

func TestClearFullLinesNoneFull(t *testing.T) {
	b := game.NewBoard()
	fillRowExceptLast(b, 19)
	assert.Equal(t, 0, b.ClearFullLines())
	assert.NotEqual(t, game.EmptyCell, b.Cell(0, 19))
}

// Bottom three rows full except one gap in the middle row; a vertical I
// fills the gap, all three rows clear at once, and the I's leftover cells
// shift down by three.
func TestClearThreeLines(t *testing.T) {
	b := game.NewBoard()
	fillRow(b, 17)
	fillRowExceptLast(b, 18)
	fillRow(b, 19)

	// Vertical I at x=7 occupies column 9, rows 15-18.
	b.Lock(game.PieceI, 7, 15, 1, game.CellOf(game.PieceI))

	assert.Equal(t, 3, b.ClearFullLines())

	for y := range 3 {
		assert.Equal(t, make([]game.Cell, game.BoardWidth), rowCells(b, y), "top rows are empty")
	}
	for y := 3; y < 18; y++ {
		for x := range 9 {
			assert.Equal(t, game.EmptyCell, b.Cell(x, y))
		}
	}
	assert.NotEqual(t, game.EmptyCell, b.Cell(9, 18), "leftover I cell shifted down")
	assert.NotEqual(t, game.EmptyCell, b.Cell(9, 19), "leftover I cell shifted down")
	assert.Equal(t, game.EmptyCell, b.Cell(9, 17))
}

func TestClearPreservesRowOrder(t *testing.T) {
	b := game.NewBoard()
	b.Lock(game.PieceO, 0, 15, 0, game.CellOf(game.PieceO)) // rows 16-17, cols 1-2
	fillRow(b, 18)
	fillRow(b, 19)

	assert.Equal(t, 2, b.ClearFullLines())

	pt, ok := b.Cell(1, 18).Piece()
	require.True(t, ok)
	assert.Equal(t, game.PieceO, pt)
	pt, ok = b.Cell(2, 19).Piece()
	require.True(t, ok)
	assert.Equal(t, game.PieceO, pt)
}

func TestCellRoundTrip(t *testing.T) {
	for _, pt := range allPieceTypes() {
		got, ok := game.CellOf(pt).Piece()
		require.True(t, ok)
		assert.Equal(t, pt, got)
	}
	_, ok := game.EmptyCell.Piece()
	assert.False(t, ok)
}
