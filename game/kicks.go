package game

import "github.com/kamstrup/intmap"

// Offset is a single wall-kick candidate. Offsets are authored in the
// conventional Cartesian orientation (positive DY is up); callers applying
// them to board coordinates must negate DY, since board rows grow downward.
type Offset struct {
	DX, DY int
}

// Kick tables follow the Super Rotation System: the I piece has its own
// wider table, the O piece never needs kicks, and the remaining five
// pieces share one table. Only clockwise transitions are modeled.
const (
	kickClassJLSTZ = iota
	kickClassI
)

var kickZero = []Offset{{0, 0}}

// jlstzKicks lists clockwise kick candidates per source rotation state.
var jlstzKicks = [RotationStates][]Offset{
	0: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	1: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	2: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	3: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
}

var iKicks = [RotationStates][]Offset{
	0: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	1: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	2: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	3: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
}

// kickTable maps packed (class, from, to) transition keys to their ordered
// candidate lists. Lookups happen on every rotation attempt, so the table
// is keyed by a packed integer rather than a struct.
var kickTable = buildKickTable()

func kickKey(class, from, to int) uint32 {
	return uint32(class<<4 | from<<2 | to)
}

func buildKickTable() *intmap.Map[uint32, []Offset] {
	table := intmap.New[uint32, []Offset](16)
	for from := range RotationStates {
		to := (from + 1) % RotationStates
		table.Put(kickKey(kickClassJLSTZ, from, to), jlstzKicks[from])
		table.Put(kickKey(kickClassI, from, to), iKicks[from])
	}
	return table
}

// KicksFor returns the ordered kick candidates for rotating a piece from
// one rotation state to another. It is total: the O piece and any
// transition absent from the table yield the identity offset.
func KicksFor(t PieceType, from, to int) []Offset {
	if t == PieceO {
		return kickZero
	}
	class := kickClassJLSTZ
	if t == PieceI {
		class = kickClassI
	}
	key := kickKey(class, normalizeRotation(from), normalizeRotation(to))
	if kicks, ok := kickTable.Get(key); ok {
		return kicks
	}
	return kickZero
}
