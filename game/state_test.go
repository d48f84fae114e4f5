package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// cellAt is the reference coordinate mapping used by the brute-force checks.
func cellAt(row, col int) BitBoard {
	return TopBit >> (row*BoardLen + col)
}

// slowFlips walks the grid with explicit coordinates.
func slowFlips(s State, row, col int) BitBoard {
	if (s.Player|s.Opponent).Has(cellAt(row, col)) {
		return 0
	}
	var flips BitBoard
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			var run BitBoard
			r, c := row+dr, col+dc
			for r >= 0 && r < BoardLen && c >= 0 && c < BoardLen && s.Opponent.Has(cellAt(r, c)) {
				run |= cellAt(r, c)
				r, c = r+dr, c+dc
			}
			if r >= 0 && r < BoardLen && c >= 0 && c < BoardLen && s.Player.Has(cellAt(r, c)) {
				flips |= run
			}
		}
	}
	return flips
}

func slowLegal(s State) BitBoard {
	var legal BitBoard
	for row := 0; row < BoardLen; row++ {
		for col := 0; col < BoardLen; col++ {
			if slowFlips(s, row, col) != 0 {
				legal |= cellAt(row, col)
			}
		}
	}
	return legal
}

func randomState(r *rand.Rand) State {
	var s State
	for i := 0; i < BoardSize; i++ {
		switch r.Intn(3) {
		case 0:
			s.Player |= TopBit >> i
		case 1:
			s.Opponent |= TopBit >> i
		}
	}
	return s
}

func TestLegalBitBoard(t *testing.T) {
	t.Run("opening position has the four canonical moves", func(t *testing.T) {
		actions := NewState().LegalActions()

		require.Len(t, actions, 4)
		got := make([]string, len(actions))
		for i, a := range actions {
			got[i] = a.String()
		}
		require.Equal(t, []string{"d3", "c4", "f5", "e6"}, got, "Actions should be listed in scan order")
	})

	t.Run("no captures wrap around the board edges", func(t *testing.T) {
		// h1 mover, a2 opponent: shifting right past h1 must not land on a2.
		s := State{Player: MustParseAction("h1").BitBoard(), Opponent: MustParseAction("a2").BitBoard()}
		require.Zero(t, s.LegalBitBoard())

		// a-file opponent run ending on the h-file of the previous row.
		s = State{
			Player:   MustParseAction("b3").BitBoard(),
			Opponent: MustParseAction("a3").BitBoard(),
		}
		require.False(t, s.LegalBitBoard().Has(MustParseAction("h2").BitBoard()), "Should not wrap from a3 to h2")
	})

	t.Run("matching a coordinate walk on random positions", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			s := randomState(r)
			require.Equal(t, slowLegal(s), s.LegalBitBoard(), "position %d: %#v", i, s)
		}
	})
}

func TestFlips(t *testing.T) {
	t.Run("matching a coordinate walk on random positions", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		for i := 0; i < 300; i++ {
			s := randomState(r)
			for _, a := range s.LegalActions() {
				idx := a.BitBoard().Index()
				require.Equal(t, slowFlips(s, idx/BoardLen, idx%BoardLen), s.Flips(a.BitBoard()))
			}
		}
	})

	t.Run("discarding runs that end on an empty cell", func(t *testing.T) {
		// d3 captures d4 towards d5 but the e4 run towards f5 is open.
		s := State{
			Player:   MustParseAction("d5").BitBoard(),
			Opponent: MustParseAction("d4").BitBoard() | MustParseAction("e4").BitBoard(),
		}
		require.Equal(t, MustParseAction("d4").BitBoard(), s.Flips(MustParseAction("d3").BitBoard()))
	})
}

func TestPlace(t *testing.T) {
	t.Run("opening move flips one disk and swaps perspective", func(t *testing.T) {
		s := NewState()
		d3 := MustParseAction("d3").BitBoard()
		d4 := MustParseAction("d4").BitBoard()

		next := s.Place(d3)

		require.Equal(t, s.Player|d3|d4, next.Opponent, "Mover's disks should become the next opponent")
		require.Equal(t, s.Opponent&^d4, next.Player, "Opponent should lose the flipped disk")
		require.Zero(t, next.Player&next.Opponent)
	})
}
