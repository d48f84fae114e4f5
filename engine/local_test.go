package engine

import (
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// scriptedAgent always answers with the same action.
type scriptedAgent struct {
	action game.Action
	found  bool
	calls  int
}

func (a *scriptedAgent) Decide(game.Board) (game.Action, bool) {
	a.calls++
	return a.action, a.found
}

func TestLocalEngine(t *testing.T) {
	t.Run("random agents play to the end", func(t *testing.T) {
		e := LocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Finished, e.Board.Status())
		_, _, expected := e.Board.Result()
		require.Equal(t, expected, winner)
		require.Equal(t, expected.String(), gameMetric.Winner)
		require.Equal(t, "Black", gameMetric.StartingPlayer)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, e.Board.Ply()-1, gameMetric.TotalMoves, "Every turn should consume one ply")
		require.LessOrEqual(t, gameMetric.BlackDisks+gameMetric.WhiteDisks, game.BoardSize)
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
	})

	t.Run("search agents report their metrics", func(t *testing.T) {
		black := agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithDepth(1), searcher.WithMetrics()))
		white := agent.NewRandomAgent(3)
		e := LocalEngine(black, white)

		_, _, moveMetrics, err := e.Run()

		require.NoError(t, err)
		for _, mm := range moveMetrics {
			if mm.Player == "Black" && mm.Action != "pass" {
				require.Equal(t, "alphabeta", mm.Algorithm)
				require.Positive(t, mm.Nodes)
			}
			if mm.Player == "White" {
				require.Empty(t, mm.Algorithm, "Random agent should not report metrics")
			}
		}
	})

	t.Run("falling back when an agent finds nothing", func(t *testing.T) {
		black := &scriptedAgent{}
		e := LocalEngine(black, agent.NewRandomAgent(4), WithMaxTurns(1))

		_, _, moveMetrics, err := e.Run()

		require.ErrorIs(t, err, ErrTurnLimit)
		require.Equal(t, 1, black.calls)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, "d3", moveMetrics[0].Action, "First legal action should be played")
		require.Equal(t, game.White, e.Board.Turn())
	})

	t.Run("falling back on an illegal action", func(t *testing.T) {
		black := &scriptedAgent{action: game.MustParseAction("a1"), found: true}
		e := LocalEngine(black, agent.NewRandomAgent(5), WithMaxTurns(1))

		_, _, moveMetrics, err := e.Run()

		require.ErrorIs(t, err, ErrTurnLimit)
		require.Equal(t, "d3", moveMetrics[0].Action)
	})

	t.Run("playing the agent's legal action", func(t *testing.T) {
		black := &scriptedAgent{action: game.MustParseAction("f5"), found: true}
		e := LocalEngine(black, agent.NewRandomAgent(6), WithMaxTurns(1))

		_, _, moveMetrics, _ := e.Run()

		require.Equal(t, "f5", moveMetrics[0].Action)
	})

	t.Run("forcing a pass without asking the agent", func(t *testing.T) {
		board, err := game.ParseBoard([]string{
			"10......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		}, game.Black)
		require.NoError(t, err)
		black := &scriptedAgent{}
		white := &scriptedAgent{action: game.MustParseAction("c1"), found: true}
		e := LocalEngine(black, white, WithBoard(board))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Zero(t, black.calls)
		require.Equal(t, 1, white.calls)
		require.Equal(t, game.White, winner)
		require.Equal(t, 1, gameMetric.Passes)
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Equal(t, "pass", moveMetrics[0].Action)
		require.Equal(t, "c1", moveMetrics[1].Action)
		require.Equal(t, 0, gameMetric.BlackDisks)
		require.Equal(t, 3, gameMetric.WhiteDisks)
	})

	t.Run("finished board ends immediately", func(t *testing.T) {
		board, err := game.NewBoard(game.White, 10, game.State{Player: game.TopBit, Opponent: 1})
		require.NoError(t, err)
		e := LocalEngine(&scriptedAgent{}, &scriptedAgent{}, WithBoard(board))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.None, winner)
		require.Equal(t, "Draw", gameMetric.Winner)
		require.Empty(t, moveMetrics)
	})

	t.Run("rejecting a missing agent", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine(nil, agent.NewRandomAgent(7)) })
	})

	t.Run("mcts against random finishes", func(t *testing.T) {
		mcts := searcher.NewMCTS(searcher.WithTimeLimit(2*time.Millisecond), searcher.WithSeed(1))
		e := LocalEngine(agent.NewSearchAgent(mcts), agent.NewRandomAgent(8))

		_, _, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Finished, e.Board.Status())
	})
}
