package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateCells(t *testing.T) {
	t.Run("opening is balanced", func(t *testing.T) {
		require.Equal(t, 0, CellEvaluator.Evaluate(NewGame()))
	})

	t.Run("corners dominate", func(t *testing.T) {
		b, err := NewBoard(Black, 1, State{Player: MustParseAction("a1").BitBoard(), Opponent: MustParseAction("b2").BitBoard()})
		require.NoError(t, err)
		require.Equal(t, 30-(-15), EvaluateCells(b))
	})

	t.Run("score is antisymmetric under a side swap", func(t *testing.T) {
		b := NewGame().MustPlay(MustParseAction("d3"))
		swapped, err := NewBoard(b.Turn().Opponent(), b.Ply(), b.State().Swap())
		require.NoError(t, err)
		require.Equal(t, -EvaluateCells(b), EvaluateCells(swapped))
	})

	t.Run("weight table is symmetric", func(t *testing.T) {
		for i := 0; i < BoardSize; i++ {
			row, col := i/BoardLen, i%BoardLen
			require.Equal(t, CellWeight(i), CellWeight(col*BoardLen+row), "transpose of cell %d", i)
			require.Equal(t, CellWeight(i), CellWeight(row*BoardLen+BoardLen-1-col), "mirror of cell %d", i)
		}
	})
}

func TestAlternativeEvaluators(t *testing.T) {
	b := NewGame().MustPlay(MustParseAction("d3"))

	t.Run("disk difference from the mover's side", func(t *testing.T) {
		require.Equal(t, 1-4, DiskEvaluator.Evaluate(b))
	})

	t.Run("mobility difference from the mover's side", func(t *testing.T) {
		mine := b.State().LegalBitBoard().Count()
		theirs := b.State().Swap().LegalBitBoard().Count()
		require.Equal(t, 3, mine)
		require.Equal(t, mine-theirs, MobilityEvaluator.Evaluate(b))
	})

	t.Run("resolving evaluators by name", func(t *testing.T) {
		require.Equal(t, 1-4, EvaluatorByName("disks").Evaluate(b))
		require.Equal(t, EvaluateMobility(b), EvaluatorByName("mobility").Evaluate(b))
		require.Equal(t, EvaluateCells(b), EvaluatorByName("").Evaluate(b))
	})

	t.Run("adapting a plain function", func(t *testing.T) {
		constant := EvaluatorFunc(func(Board) Score { return 7 })
		require.Equal(t, 7, constant.Evaluate(b))
	})
}
