package game

import "time"

// PieceView describes the active piece for presentation: its position,
// shape, and where it would land. GhostY is the Y origin of the ghost
// piece, equal to Y plus the current drop distance.
type PieceView struct {
	Type     PieceType
	X, Y     int
	Rotation int
	Shape    Shape
	GhostY   int
}

// Snapshot is a read-only view of the full session, pulled by the
// presentation layer once per frame. The core never pushes frames.
type Snapshot struct {
	State SessionState
	Cells [BoardHeight][BoardWidth]Cell

	// Active is nil when no piece is falling (Start and GameOver).
	Active *PieceView

	// Next is the preview piece; meaningful only while Active is set.
	Next PieceType

	Score        int
	Level        int
	Lines        int
	DropInterval time.Duration
}

// Snapshot captures the current state of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:        s.state,
		Cells:        s.board.Cells(),
		Next:         s.next,
		Score:        s.score,
		Level:        s.level,
		Lines:        s.lines,
		DropInterval: s.dropInterval,
	}
	if s.active != nil {
		p := *s.active
		snap.Active = &PieceView{
			Type:     p.Type,
			X:        p.X,
			Y:        p.Y,
			Rotation: p.Rotation,
			Shape:    p.Shape(),
			GhostY:   p.Y + p.DropDistance(s.board),
		}
	}
	return snap
}
