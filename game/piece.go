// Package game implements the rules of a falling-block puzzle game:
// a fixed-size board, a seven-piece bag randomizer, piece movement and
// rotation with wall kicks, line clearing, and a tick-driven session
// state machine with scoring and level progression. The package performs
// no I/O; presentation layers pull snapshots and drain semantic events,
// and persistence is consumed through narrow interfaces.
package game

// PieceType identifies one of the seven tetrominoes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// NumPieceTypes is the number of distinct tetromino types.
const NumPieceTypes = 7

// RotationStates is the number of discrete orientations per piece.
const RotationStates = 4

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	}
	return "?"
}

// Shape is a 4x4 occupancy grid for one piece orientation, indexed [row][col].
type Shape [4][4]bool

// baseShapes holds each piece in its spawn orientation.
var baseShapes = [NumPieceTypes]Shape{
	PieceI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	PieceO: {
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	PieceT: {
		{false, false, false, false},
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	PieceS: {
		{false, false, false, false},
		{false, true, true, false},
		{true, true, false, false},
		{false, false, false, false},
	},
	PieceZ: {
		{false, false, false, false},
		{true, true, false, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	PieceJ: {
		{false, false, false, false},
		{true, false, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	PieceL: {
		{false, false, false, false},
		{false, false, true, false},
		{true, true, true, false},
		{false, false, false, false},
	},
}

// iShapes is authored per orientation instead of derived: quarter-turn
// derivation would leave the half-turn orientation entirely in bounding-box
// row 2, and a piece whose box has an empty top half could still spawn over
// a stack that fills the top two board rows. Every orientation here keeps a
// filled cell within bounding-box rows 0-1, so a buried spawn region rejects
// the I at every rotation state, like the other six pieces.
var iShapes = [RotationStates]Shape{
	0: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	1: {
		{false, false, true, false},
		{false, false, true, false},
		{false, false, true, false},
		{false, false, true, false},
	},
	2: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	3: {
		{false, true, false, false},
		{false, true, false, false},
		{false, true, false, false},
		{false, true, false, false},
	},
}

// shapes holds every orientation of every piece, precomputed at init.
// The O piece rotates into itself because its base shape is symmetric
// under quarter turns within the 4x4 box; the I piece uses its authored
// table above.
var shapes = buildShapeTable()

func buildShapeTable() [NumPieceTypes][RotationStates]Shape {
	var table [NumPieceTypes][RotationStates]Shape
	for t := range NumPieceTypes {
		s := baseShapes[t]
		for r := range RotationStates {
			table[t][r] = s
			s = rotateClockwise(s)
		}
	}
	table[PieceI] = iShapes
	return table
}

func rotateClockwise(s Shape) Shape {
	var rotated Shape
	size := len(s)
	for i := range size {
		for j := range size {
			rotated[j][size-1-i] = s[i][j]
		}
	}
	return rotated
}

// ShapeOf returns the shape of a piece at the given rotation state.
// Rotation is taken mod 4, so any integer is a valid argument.
func ShapeOf(t PieceType, rotation int) Shape {
	return shapes[t][normalizeRotation(rotation)]
}

func normalizeRotation(rotation int) int {
	r := rotation % RotationStates
	if r < 0 {
		r += RotationStates
	}
	return r
}
