package game

// Board dimensions in cells. Row 0 is the top (spawn) row.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is the content of one board position: EmptyCell, or an opaque tag
// identifying the piece type that locked there.
type Cell uint8

// EmptyCell is the zero value, so a zeroed grid is an empty board.
const EmptyCell Cell = 0

// CellOf returns the lock tag for a piece type.
func CellOf(t PieceType) Cell {
	return Cell(t) + 1
}

// Piece recovers the piece type a cell was locked from.
// The second return is false for an empty cell.
func (c Cell) Piece() (PieceType, bool) {
	if c == EmptyCell {
		return 0, false
	}
	return PieceType(c - 1), true
}

// Board is the fixed-size playfield grid. It is mutated only through
// Lock, ClearFullLines, and Reset, and is not safe for concurrent use.
type Board struct {
	cells [BoardHeight][BoardWidth]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [BoardHeight][BoardWidth]Cell{}
}

// Cell returns the content at (x, y). Out-of-range coordinates report
// EmptyCell rather than panicking, matching how placement validation
// treats the area above the visible field.
func (b *Board) Cell(x, y int) Cell {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return EmptyCell
	}
	return b.cells[y][x]
}

// Cells returns a copy of the full grid for presentation layers.
func (b *Board) Cells() [BoardHeight][BoardWidth]Cell {
	return b.cells
}

// IsValidPlacement reports whether a piece with the given type, origin,
// and rotation fits on the board: every filled shape cell must be within
// the horizontal bounds, above the floor, and over an empty cell. Cells
// above row 0 are always considered clear; pieces may extend past the top
// of the visible field.
func (b *Board) IsValidPlacement(t PieceType, x, y, rotation int) bool {
	shape := ShapeOf(t, rotation)
	for row := range shape {
		for col, filled := range shape[row] {
			if !filled {
				continue
			}
			cx := x + col
			cy := y + row
			if cx < 0 || cx >= BoardWidth || cy >= BoardHeight {
				return false
			}
			if cy >= 0 && b.cells[cy][cx] != EmptyCell {
				return false
			}
		}
	}
	return true
}

// Lock writes tag into every filled cell of the piece that falls within
// the grid. Cells above row 0 are silently dropped.
func (b *Board) Lock(t PieceType, x, y, rotation int, tag Cell) {
	shape := ShapeOf(t, rotation)
	for row := range shape {
		for col, filled := range shape[row] {
			if !filled {
				continue
			}
			cx := x + col
			cy := y + row
			if cy >= 0 && cy < BoardHeight && cx >= 0 && cx < BoardWidth {
				b.cells[cy][cx] = tag
			}
		}
	}
}

// ClearFullLines removes every fully occupied row, shifts the rows above
// it down, inserts empty rows at the top, and returns the number of rows
// removed. Relative order of surviving rows is preserved. No cap is
// enforced here; the scoring layer decides what multi-clears are worth.
func (b *Board) ClearFullLines() int {
	cleared := 0
	dst := BoardHeight - 1
	for src := BoardHeight - 1; src >= 0; src-- {
		if b.rowFull(src) {
			cleared++
			continue
		}
		if dst != src {
			b.cells[dst] = b.cells[src]
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		b.cells[dst] = [BoardWidth]Cell{}
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for x := range BoardWidth {
		if b.cells[y][x] == EmptyCell {
			return false
		}
	}
	return true
}
