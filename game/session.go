package game

import (
	"math/rand/v2"
	"time"
)

// SessionState enumerates the session state machine.
type SessionState int

const (
	StateStart SessionState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s SessionState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	}
	return "?"
}

// Drop-speed curve. The interval shrinks linearly with level and is
// clamped to a floor.
const (
	BaseDropInterval = 800 * time.Millisecond
	DropIntervalStep = 70 * time.Millisecond
	MinDropInterval  = 100 * time.Millisecond
)

const linesPerLevel = 10

// lineClearPoints maps a simultaneous-clear count to base points, before
// the level multiplier. Counts beyond 4 have no entry and score 0; the
// piece geometry cannot produce them in normal play.
var lineClearPoints = map[int]int{1: 100, 2: 300, 3: 500, 4: 800}

// DropIntervalForLevel computes the clamped drop interval for a level.
func DropIntervalForLevel(level int) time.Duration {
	interval := BaseDropInterval - time.Duration(level-1)*DropIntervalStep
	if interval < MinDropInterval {
		return MinDropInterval
	}
	return interval
}

// Session owns the board, the bag, and the active piece, and drives the
// game through Start/Playing/Paused/GameOver. It is single-threaded: the
// host calls exactly one input handler or Tick at a time, and pulls state
// through Snapshot between ticks.
type Session struct {
	state SessionState

	board  *Board
	bag    *Bag
	active *ActivePiece
	next   PieceType

	score        int
	level        int
	lines        int
	dropInterval time.Duration

	lastNow       time.Time
	lastDrop      time.Time
	pausedElapsed time.Duration
	resumePending bool

	events []Event
	stats  SessionStats

	scores   ScoreStore
	settings SettingsStore
	current  Settings
}

// NewSession creates a session in the Start state. Both stores may be
// nil; the session then keeps scores and settings in memory only.
func NewSession(scores ScoreStore, settings SettingsStore) *Session {
	return newSession(NewBag(), scores, settings)
}

// NewSeededSession creates a session whose piece sequence is fully
// determined by seed, for replays and tests.
func NewSeededSession(seed uint64, scores ScoreStore, settings SettingsStore) *Session {
	rng := rand.New(rand.NewPCG(seed, seed))
	return newSession(NewSeededBag(rng.Uint64(), rng.Uint64()), scores, settings)
}

func newSession(bag *Bag, scores ScoreStore, settings SettingsStore) *Session {
	s := &Session{
		state:    StateStart,
		board:    NewBoard(),
		bag:      bag,
		scores:   scores,
		settings: settings,
		current:  DefaultSettings(),
	}
	if settings != nil {
		if loaded, err := settings.LoadSettings(); err == nil {
			s.current = loaded
		}
	}
	return s
}

// State returns the current session state.
func (s *Session) State() SessionState { return s.state }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Lines returns the total number of cleared lines.
func (s *Session) Lines() int { return s.lines }

// DropInterval returns the current auto-drop interval.
func (s *Session) DropInterval() time.Duration { return s.dropInterval }

// Settings returns the active settings.
func (s *Session) Settings() Settings { return s.current }

// UpdateSettings replaces the active settings and saves them best-effort.
func (s *Session) UpdateSettings(settings Settings) {
	s.current = settings
	if s.settings != nil {
		_ = s.settings.SaveSettings(settings)
	}
}

// Stats returns counters accumulated since the last Start.
func (s *Session) Stats() SessionStats { return s.stats }

// PollEvents returns the events emitted since the previous call and
// clears the queue.
func (s *Session) PollEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	drained := s.events
	s.events = nil
	return drained
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Start begins a fresh game from any state: the board and bag reset,
// counters zero, the speed resets, and the first piece spawns.
func (s *Session) Start() {
	s.board.Reset()
	s.bag.Reset()
	s.score = 0
	s.level = 1
	s.lines = 0
	s.dropInterval = BaseDropInterval
	s.lastDrop = time.Time{}
	s.lastNow = time.Time{}
	s.pausedElapsed = 0
	s.resumePending = false
	s.active = nil
	s.stats = SessionStats{}
	s.state = StatePlaying
	s.spawnNext()
}

// TogglePause suspends or resumes play. Pausing captures how much of the
// current drop interval has elapsed; resuming re-anchors the drop timer
// on the next tick so paused time never counts against the interval.
// There is no transition between GameOver and Paused.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.pausedElapsed = 0
		if !s.lastDrop.IsZero() {
			if elapsed := s.lastNow.Sub(s.lastDrop); elapsed > 0 {
				s.pausedElapsed = elapsed
			}
		}
		s.state = StatePaused
	case StatePaused:
		s.resumePending = true
		s.state = StatePlaying
	}
}

// MoveLeft shifts the active piece one column left, reporting success.
func (s *Session) MoveLeft() bool { return s.moveActive(-1) }

// MoveRight shifts the active piece one column right, reporting success.
func (s *Session) MoveRight() bool { return s.moveActive(1) }

func (s *Session) moveActive(dx int) bool {
	if s.state != StatePlaying || s.active == nil {
		return false
	}
	if !s.active.Move(s.board, dx, 0) {
		return false
	}
	s.emit(PieceMoved{Horizontal: true})
	return true
}

// RotateClockwise rotates the active piece with kick resolution,
// reporting success. A blocked rotation is silently rejected.
func (s *Session) RotateClockwise() bool {
	if s.state != StatePlaying || s.active == nil {
		return false
	}
	if !s.active.Rotate(s.board) {
		return false
	}
	s.emit(PieceRotated{})
	return true
}

// SoftDrop moves the active piece down one row and awards one point on
// success. A blocked soft drop is a no-op; locking is left to gravity.
func (s *Session) SoftDrop() bool {
	if s.state != StatePlaying || s.active == nil {
		return false
	}
	if !s.active.SoftDrop(s.board) {
		return false
	}
	s.score++
	s.emit(PieceMoved{Horizontal: false})
	return true
}

// HardDrop sends the active piece to the bottom, awards two points per
// row traveled, and locks it immediately.
func (s *Session) HardDrop() bool {
	if s.state != StatePlaying || s.active == nil {
		return false
	}
	steps := s.active.HardDrop(s.board)
	s.score += 2 * steps
	s.emit(HardDropped{Cells: steps})
	s.lockActive()
	s.lastDrop = s.lastNow
	return true
}

// Tick advances the simulation against a caller-supplied monotonic
// timestamp. When the drop interval has elapsed the piece falls one row;
// a piece that cannot fall locks, lines clear, scoring applies, and the
// next piece spawns (or the game ends) within the same tick. Tick does
// nothing outside the Playing state, so pausing is checked here.
func (s *Session) Tick(now time.Time) {
	if s.state != StatePlaying {
		return
	}
	s.lastNow = now
	if s.resumePending {
		s.lastDrop = now.Add(-s.pausedElapsed)
		s.pausedElapsed = 0
		s.resumePending = false
		return
	}
	if s.lastDrop.IsZero() {
		s.lastDrop = now
		return
	}
	if now.Sub(s.lastDrop) < s.dropInterval {
		return
	}
	s.lastDrop = now
	if s.active == nil {
		return
	}
	if !s.active.Move(s.board, 0, 1) {
		s.lockActive()
	}
}

// lockActive commits the active piece, settles line clears and scoring,
// and spawns the next piece. The spawn validity check runs strictly after
// the board mutation and clears settle.
func (s *Session) lockActive() {
	p := s.active
	s.board.Lock(p.Type, p.X, p.Y, p.Rotation, CellOf(p.Type))
	s.active = nil
	s.stats.PiecesLocked++
	s.emit(PieceLocked{Type: p.Type})

	if cleared := s.board.ClearFullLines(); cleared > 0 {
		points := lineClearPoints[cleared] * s.level
		s.score += points
		s.lines += cleared
		s.stats.LinesCleared += cleared
		if cleared == 4 {
			s.stats.Tetrises++
		}
		s.emit(LinesCleared{Count: cleared, Points: points})
		if level := s.lines/linesPerLevel + 1; level > s.level {
			s.level = level
			s.dropInterval = DropIntervalForLevel(level)
			s.emit(LevelUp{Level: level})
		}
	}

	s.spawnNext()
}

func (s *Session) spawnNext() {
	t := s.bag.Next()
	x, y := SpawnPosition()
	if !s.board.IsValidPlacement(t, x, y, 0) {
		s.finish()
		return
	}
	s.active = &ActivePiece{Type: t, X: x, Y: y}
	s.next = s.bag.Peek()
	s.stats.PiecesSpawned[t]++
	s.emit(PieceSpawned{Type: t, Next: s.next})
}

// finish records the final score best-effort and enters GameOver. Further
// ticks are inert, so the transition fires exactly once per game.
func (s *Session) finish() {
	s.state = StateGameOver
	high := false
	if s.scores != nil {
		when := s.lastNow
		if when.IsZero() {
			when = time.Now()
		}
		if ok, err := s.scores.IsNewHighScore(s.score); err == nil && ok {
			high = true
			_ = s.scores.RecordScore(s.score, s.level, s.lines, when)
		}
	}
	s.emit(GameOver{Score: s.score, NewHighScore: high})
}
