package game

import "math/rand/v2"

// Bag produces piece types using the 7-bag system: it keeps a current
// queue and a lookahead queue, each an independent uniform shuffle of all
// seven types, so any run of seven draws starting at a bag boundary
// contains each type exactly once and the next piece is always peekable.
type Bag struct {
	rng       *rand.Rand
	current   []PieceType
	lookahead []PieceType
}

// NewBag returns a bag with a randomly seeded generator.
func NewBag() *Bag {
	return NewSeededBag(rand.Uint64(), rand.Uint64())
}

// NewSeededBag returns a bag with a deterministic piece sequence,
// for replays and tests.
func NewSeededBag(seed1, seed2 uint64) *Bag {
	b := &Bag{rng: rand.New(rand.NewPCG(seed1, seed2))}
	b.Reset()
	return b
}

// Reset discards both queues and refills them with fresh shuffles.
func (b *Bag) Reset() {
	b.current = b.shuffled()
	b.lookahead = b.shuffled()
}

// Next consumes and returns the next piece type, promoting the lookahead
// queue and generating a new one when the current queue runs out.
func (b *Bag) Next() PieceType {
	if len(b.current) == 0 {
		b.current = b.lookahead
		b.lookahead = b.shuffled()
	}
	t := b.current[0]
	b.current = b.current[1:]
	return t
}

// Peek returns what Next would return without consuming it.
func (b *Bag) Peek() PieceType {
	if len(b.current) > 0 {
		return b.current[0]
	}
	return b.lookahead[0]
}

func (b *Bag) shuffled() []PieceType {
	pieces := make([]PieceType, NumPieceTypes)
	for i := range pieces {
		pieces[i] = PieceType(i)
	}
	b.rng.Shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})
	return pieces
}
