package game

// ActivePiece is the currently falling piece. X and Y locate the top-left
// of its 4x4 bounding box in board coordinates; cells above row 0 are
// legal before the piece drops into the visible field. The piece does not
// own the board — operations take the board they validate against.
type ActivePiece struct {
	Type     PieceType
	X, Y     int
	Rotation int
}

// SpawnPosition returns the canonical spawn origin: row 0, with the
// 4-wide bounding box horizontally centered.
func SpawnPosition() (x, y int) {
	return (BoardWidth - 4) / 2, 0
}

// Move translates the piece by (dx, dy) if the destination is a valid
// placement. It reports whether the piece moved; on failure the piece is
// unchanged.
func (p *ActivePiece) Move(b *Board, dx, dy int) bool {
	if !b.IsValidPlacement(p.Type, p.X+dx, p.Y+dy, p.Rotation) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// Rotate attempts a clockwise rotation, trying each kick offset for the
// transition in order and committing the first that fits. The kick's
// vertical component is negated on application: kick tables are authored
// y-up while board rows grow downward. A rotation with no fitting
// candidate is rejected and the piece is unchanged.
func (p *ActivePiece) Rotate(b *Board) bool {
	target := (p.Rotation + 1) % RotationStates
	for _, kick := range KicksFor(p.Type, p.Rotation, target) {
		if b.IsValidPlacement(p.Type, p.X+kick.DX, p.Y-kick.DY, target) {
			p.X += kick.DX
			p.Y -= kick.DY
			p.Rotation = target
			return true
		}
	}
	return false
}

// SoftDrop moves the piece down one row, reporting whether it moved.
func (p *ActivePiece) SoftDrop(b *Board) bool {
	return p.Move(b, 0, 1)
}

// HardDrop moves the piece down until it rests and returns the number of
// rows traveled.
func (p *ActivePiece) HardDrop(b *Board) int {
	steps := 0
	for p.Move(b, 0, 1) {
		steps++
	}
	return steps
}

// DropDistance returns how many rows the piece would fall from its
// current position without moving it. Presentation layers use this for
// the ghost piece.
func (p *ActivePiece) DropDistance(b *Board) int {
	dist := 0
	for b.IsValidPlacement(p.Type, p.X, p.Y+dist+1, p.Rotation) {
		dist++
	}
	return dist
}

// Shape returns the piece's occupancy grid at its current rotation.
func (p *ActivePiece) Shape() Shape {
	return ShapeOf(p.Type, p.Rotation)
}
