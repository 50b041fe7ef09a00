package game

// Event is a semantic notification appended to the session's outbound
// queue as play progresses. The core never calls into audio or rendering;
// the host drains events with Session.PollEvents and reacts as it likes.
// A four-line clear is recognizable as LinesCleared with Count == 4.
type Event interface {
	event()
}

// PieceMoved reports a successful player-directed translation.
// Horizontal distinguishes sideways moves from soft drops for sound cues.
type PieceMoved struct {
	Horizontal bool
}

// PieceRotated reports a successful rotation, after kick resolution.
type PieceRotated struct{}

// HardDropped reports a hard drop and how many rows the piece traveled.
type HardDropped struct {
	Cells int
}

// PieceLocked reports that the active piece was committed to the board.
type PieceLocked struct {
	Type PieceType
}

// LinesCleared reports rows removed by a single lock and the points they
// were worth after the level multiplier.
type LinesCleared struct {
	Count  int
	Points int
}

// LevelUp reports a level increase.
type LevelUp struct {
	Level int
}

// PieceSpawned reports a new active piece and the upcoming preview piece.
type PieceSpawned struct {
	Type PieceType
	Next PieceType
}

// GameOver reports the terminal transition, fired once per game.
type GameOver struct {
	Score        int
	NewHighScore bool
}

func (PieceMoved) event()   {}
func (PieceRotated) event() {}
func (HardDropped) event()  {}
func (PieceLocked) event()  {}
func (LinesCleared) event() {}
func (LevelUp) event()      {}
func (PieceSpawned) event() {}
func (GameOver) event()     {}
