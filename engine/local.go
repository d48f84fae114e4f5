package engine

import (
	"errors"
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher/agent"
	"othello/utils"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrTurnLimit = errors.New("turn limit reached")

type Option func(e *Local)

// Local drives a game between two in-process agents. It owns both agents and
// hands the board to whichever side is to move.
type Local struct {
	Board    game.Board
	Agents   map[game.Color]agent.Agent
	maxTurns int
}

func WithBoard(board game.Board) Option {
	return func(e *Local) {
		e.Board = board
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func LocalEngine(black, white agent.Agent, options ...Option) *Local {
	if black == nil || white == nil {
		panic("need an agent for each side")
	}
	e := &Local{
		Board: game.NewGame(),
		Agents: map[game.Color]agent.Agent{
			game.Black: black,
			game.White: white,
		},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until neither side can move.
func (e *Local) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Board.Turn().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting at ply %d", e.Board.Turn(), e.Board.Ply())

	for turn := 1; e.Board.Status() != game.Finished; turn++ {
		if turn > e.maxTurns {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("%w: %d turns at ply %d", ErrTurnLimit, e.maxTurns, e.Board.Ply())
		}

		moveMetric := metrics.MoveMetric{Ply: e.Board.Ply(), Player: e.Board.Turn().String()}
		if e.Board.Status() == game.Pass {
			log.Debug().Msgf("ply %d: %v passes", e.Board.Ply(), e.Board.Turn())
			e.Board = e.Board.MustPass()
			moveMetric.Action = "pass"
			gameMetric.Passes++
		} else {
			current := e.Agents[e.Board.Turn()]
			action, ok := current.Decide(e.Board)
			if m, isMeasured := current.(agent.Measured); isMeasured {
				moveMetric.SearchMetric = m.LastMetric()
			}
			action = e.validate(action, ok)
			moveMetric.Action = action.String()
			e.Board = e.Board.MustPlay(action)
		}
		moveMetrics = append(moveMetrics, moveMetric)
		gameMetric.TotalMoves++
		log.Debug().Msgf("\n%s", e.Board)
	}

	black, white, winner := e.Board.Result()
	gameMetric.Winner = winner.String()
	gameMetric.BlackDisks = black
	gameMetric.WhiteDisks = white
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Info().Msgf("game over at ply %d: Black %d, White %d, winner %v", e.Board.Ply(), black, white, winner)
	return winner, gameMetric, moveMetrics, nil
}

// validate falls back to the first legal action when the agent found none or
// picked an illegal one on a board where a placement is possible.
func (e *Local) validate(action game.Action, ok bool) game.Action {
	actions := e.Board.LegalActions()
	index := -1
	if ok {
		index = utils.FindIndex(actions, action)
	}
	if index < 0 {
		log.Warn().Msgf("%v returned no valid action (%s, found=%t) at ply %d => playing %s", e.Board.Turn(), action, ok, e.Board.Ply(), actions[0])
		return actions[0]
	}
	log.Debug().Msgf("ply %d: %v plays %s (%d of %d)", e.Board.Ply(), e.Board.Turn(), action, index+1, len(actions))
	return action
}
