package game

// SessionStats accumulates counters over one game, from Start until
// GameOver. The stress harness and the debug UI read these; gameplay
// never does.
type SessionStats struct {
	PiecesSpawned [NumPieceTypes]int
	PiecesLocked  int
	LinesCleared  int
	Tetrises      int
}

// TotalSpawned returns the number of pieces spawned across all types.
func (s SessionStats) TotalSpawned() int {
	total := 0
	for _, n := range s.PiecesSpawned {
		total += n
	}
	return total
}
