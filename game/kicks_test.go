package game_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tetra/game"
	"github.com/stretchr/testify/assert"
)

func TestClockwiseTransitionsCovered(t *testing.T) {
	for _, pt := range allPieceTypes() {
		if pt == game.PieceO {
			continue
		}
		for from := range game.RotationStates {
			to := (from + 1) % game.RotationStates
			t.Run(fmt.Sprintf("%s/%d->%d", pt, from, to), func(t *testing.T) {
				kicks := game.KicksFor(pt, from, to)
				assert.Greater(t, len(kicks), 1, "every rotating piece has fallback kicks")
				assert.Equal(t, game.Offset{}, kicks[0], "identity offset is tried first")
			})
		}
	}
}

func TestOPieceNeedsNoKicks(t *testing.T) {
	for from := range game.RotationStates {
		kicks := game.KicksFor(game.PieceO, from, (from+1)%game.RotationStates)
		assert.Equal(t, []game.Offset{{DX: 0, DY: 0}}, kicks)
	}
}

func TestIPieceUsesItsOwnTable(t *testing.T) {
	iKicks := game.KicksFor(game.PieceI, 0, 1)
	tKicks := game.KicksFor(game.PieceT, 0, 1)
	assert.NotEqual(t, iKicks, tKicks)
}

// Transitions not present in the table fall back to the identity offset
// instead of failing.
func TestUnknownTransitionFallsBack(t *testing.T) {
	assert.Equal(t, []game.Offset{{DX: 0, DY: 0}}, game.KicksFor(game.PieceT, 0, 2))
	assert.Equal(t, []game.Offset{{DX: 0, DY: 0}}, game.KicksFor(game.PieceJ, 1, 0))
}

func TestKicksForNormalizesRotation(t *testing.T) {
	assert.Equal(t, game.KicksFor(game.PieceT, 0, 1), game.KicksFor(game.PieceT, 4, 5))
}
