package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestBoardPlay(t *testing.T) {
	t.Run("playing a legal opening move", func(t *testing.T) {
		b := NewGame()

		next, err := b.Play(MustParseAction("d3"))

		require.NoError(t, err)
		require.Equal(t, White, next.Turn(), "Turn should pass to White")
		require.Equal(t, 2, next.Ply(), "Ply should increment")
		black, white, leader := next.Result()
		require.Equal(t, 4, black)
		require.Equal(t, 1, white)
		require.Equal(t, Black, leader)
		require.Equal(t, 1, b.Ply(), "Original board should be unchanged")

		var got []string
		for _, a := range next.LegalActions() {
			got = append(got, a.String())
		}
		require.Equal(t, []string{"c3", "e3", "c5"}, got)
	})

	t.Run("rejecting an illegal action", func(t *testing.T) {
		_, err := NewGame().Play(MustParseAction("a1"))
		require.ErrorIs(t, err, ErrIllegalAction)

		_, err = NewGame().Play(Action{})
		require.ErrorIs(t, err, ErrIllegalAction, "Zero action should be illegal")

		require.Panics(t, func() { NewGame().MustPlay(MustParseAction("d4")) }, "Occupied cell should be illegal")
	})
}

func TestBoardStatus(t *testing.T) {
	t.Run("opening is usual", func(t *testing.T) {
		require.Equal(t, Usual, NewGame().Status())
		require.Equal(t, NotFinished, NewGame().WinningStatus())
	})

	t.Run("passing when only the opponent can move", func(t *testing.T) {
		// Black on b1 is boxed in by white a1, White can capture with c1.
		b, err := ParseBoard([]string{
			"10......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		}, Black)
		require.NoError(t, err)

		require.Equal(t, Pass, b.Status())
		require.Zero(t, b.State().LegalBitBoard(), "Mover should have no placement")
		require.NotZero(t, b.State().Swap().LegalBitBoard(), "Opponent should have a placement")
		_, err = b.Play(MustParseAction("c1"))
		require.ErrorIs(t, err, ErrIllegalAction)

		passed, err := b.Pass()
		require.NoError(t, err)
		require.Equal(t, White, passed.Turn())
		require.Equal(t, 2, passed.Ply(), "Passing should consume a ply")

		end := passed.MustPlay(MustParseAction("c1"))
		require.Equal(t, Finished, end.Status())
		require.Equal(t, Lose, end.WinningStatus(), "Black to move with no disks should lose")
		_, _, winner := end.Result()
		require.Equal(t, White, winner)
	})

	t.Run("refusing to pass with moves available", func(t *testing.T) {
		_, err := NewGame().Pass()
		require.ErrorIs(t, err, ErrCannotPass)
		require.Panics(t, func() { NewGame().MustPass() })
	})

	t.Run("finished draw", func(t *testing.T) {
		b, err := NewBoard(White, 10, State{Player: TopBit, Opponent: 1})
		require.NoError(t, err)
		require.Equal(t, Finished, b.Status())
		require.Equal(t, Draw, b.WinningStatus())
		_, _, winner := b.Result()
		require.Equal(t, None, winner)
	})
}

func TestNewBoard(t *testing.T) {
	t.Run("rejecting overlapping disks", func(t *testing.T) {
		_, err := NewBoard(Black, 1, State{Player: TopBit, Opponent: TopBit})
		require.ErrorIs(t, err, ErrBoardFormat)
	})

	t.Run("rejecting a missing turn", func(t *testing.T) {
		_, err := NewBoard(None, 1, NewState())
		require.ErrorIs(t, err, ErrBoardFormat)
	})

	t.Run("rejecting malformed diagrams", func(t *testing.T) {
		_, err := ParseBoard([]string{"........"}, Black)
		require.ErrorIs(t, err, ErrBoardFormat)
	})

	t.Run("reading a diagram from White's side", func(t *testing.T) {
		rows := []string{
			"........",
			"........",
			"........",
			"...10...",
			"...01...",
			"........",
			"........",
			"........",
		}
		b, err := ParseBoard(rows, White)
		require.NoError(t, err)
		require.Equal(t, NewState().Swap(), b.State(), "White should see the opening from its side")
	})
}

func TestBoardInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for game := 0; game < 50; game++ {
		b := NewGame()
		for b.Status() != Finished {
			before := b
			if b.Status() == Pass {
				b = b.MustPass()
				require.Equal(t, before.State().Swap(), b.State(), "Pass should only swap sides")
				require.Equal(t, before.Ply()+1, b.Ply())
				continue
			}

			actions := b.LegalActions()
			require.LessOrEqual(t, len(actions), MaxActions)
			a := actions[r.Intn(len(actions))]
			flips := before.State().Flips(a.BitBoard())
			b = b.MustPlay(a)

			total := func(s State) int { return (s.Player | s.Opponent).Count() }
			require.Equal(t, total(before.State())+1, total(b.State()), "Placement should add exactly one disk")
			require.Zero(t, b.State().Player&b.State().Opponent, "Sides should never overlap")
			require.NotZero(t, flips, "Legal placement should flip at least one disk")
			require.Equal(t, flips, flips&before.State().Opponent, "Only opponent disks should flip")
			require.Equal(t, before.State().Player|a.BitBoard()|flips, b.State().Opponent)
			require.Equal(t, before.Ply()+1, b.Ply())
			require.Equal(t, before.Turn().Opponent(), b.Turn())
		}
		require.Zero(t, b.State().LegalBitBoard())
		require.Zero(t, b.State().Swap().LegalBitBoard())
		require.NotEqual(t, NotFinished, b.WinningStatus())
	}
}

func TestBoardString(t *testing.T) {
	got := NewGame().String()
	require.True(t, strings.HasPrefix(got, "ply 1, Black to move\n abcdefgh\n"))
	require.Contains(t, got, "4...xo...\n")
	require.Contains(t, got, "Black: 2 White: 2")
}
