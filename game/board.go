package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIllegalAction = errors.New("illegal action")
	ErrCannotPass    = errors.New("cannot pass")
	ErrBoardFormat   = errors.New("invalid board diagram")
)

// Board is a State plus the identity of the side to move and the ply index.
// Boards are values: Play and Pass return new boards and never modify the
// receiver.
type Board struct {
	turn  Color
	ply   int
	state State
}

// NewGame returns the opening board. Ply numbering starts at 1.
func NewGame() Board {
	return Board{turn: FirstTurn, ply: 1, state: NewState()}
}

// NewBoard builds a board for an arbitrary position. The state must be seen
// from turn's perspective.
func NewBoard(turn Color, ply int, state State) (Board, error) {
	if turn != Black && turn != White {
		return Board{}, fmt.Errorf("%w: turn must be Black or White, got %v", ErrBoardFormat, turn)
	}
	if state.Player&state.Opponent != 0 {
		return Board{}, fmt.Errorf("%w: overlapping disks %#016x", ErrBoardFormat, uint64(state.Player&state.Opponent))
	}
	return Board{turn: turn, ply: ply, state: state}, nil
}

// ParseBoard reads eight rows of eight characters: '0' marks a black disk,
// '1' a white disk and anything else an empty cell.
func ParseBoard(rows []string, turn Color) (Board, error) {
	if len(rows) != BoardLen {
		return Board{}, fmt.Errorf("%w: want %d rows, got %d", ErrBoardFormat, BoardLen, len(rows))
	}
	var black, white BitBoard
	for i, row := range rows {
		if len(row) != BoardLen {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", ErrBoardFormat, i+1, len(row))
		}
		for j := 0; j < BoardLen; j++ {
			switch row[j] {
			case '0':
				black |= TopBit >> (i*BoardLen + j)
			case '1':
				white |= TopBit >> (i*BoardLen + j)
			}
		}
	}
	state := State{Player: black, Opponent: white}
	if turn == White {
		state = state.Swap()
	}
	return NewBoard(turn, 1, state)
}

func (b Board) Turn() Color  { return b.turn }
func (b Board) Ply() int     { return b.ply }
func (b Board) State() State { return b.state }

func (b Board) LegalActions() []Action {
	return b.state.LegalActions()
}

func (b Board) IsLegal(a Action) bool {
	return a.bits.Count() == 1 && b.state.LegalBitBoard().Has(a.bits)
}

// Play places a disk for the side to move and hands the turn over.
func (b Board) Play(a Action) (Board, error) {
	if !b.IsLegal(a) {
		return Board{}, fmt.Errorf("%w: %s for %v at ply %d", ErrIllegalAction, a, b.turn, b.ply)
	}
	return b.play(a), nil
}

// MustPlay is Play for callers that only feed actions taken from
// LegalActions. It panics on an illegal action.
func (b Board) MustPlay(a Action) Board {
	next, err := b.Play(a)
	if err != nil {
		panic(err)
	}
	return next
}

func (b Board) play(a Action) Board {
	return Board{
		turn:  b.turn.Opponent(),
		ply:   b.ply + 1,
		state: b.state.Place(a.bits),
	}
}

// Pass hands the turn over without placing. It is only allowed when the
// board's status is Pass.
func (b Board) Pass() (Board, error) {
	if s := b.Status(); s != Pass {
		return Board{}, fmt.Errorf("%w: status is %v for %v at ply %d", ErrCannotPass, s, b.turn, b.ply)
	}
	return b.pass(), nil
}

// MustPass is Pass that panics when passing is not allowed.
func (b Board) MustPass() Board {
	next, err := b.Pass()
	if err != nil {
		panic(err)
	}
	return next
}

func (b Board) pass() Board {
	return Board{
		turn:  b.turn.Opponent(),
		ply:   b.ply + 1,
		state: b.state.Swap(),
	}
}

func (b Board) Status() Status {
	if b.state.LegalBitBoard() != 0 {
		return Usual
	}
	if b.state.Swap().LegalBitBoard() != 0 {
		return Pass
	}
	return Finished
}

// WinningStatus reports the outcome from the mover's perspective, or
// NotFinished while either side can still place.
func (b Board) WinningStatus() WinningStatus {
	if b.Status() != Finished {
		return NotFinished
	}
	mine, theirs := b.state.Player.Count(), b.state.Opponent.Count()
	switch {
	case mine > theirs:
		return Win
	case mine < theirs:
		return Lose
	default:
		return Draw
	}
}

// Disks returns the black and white disk boards.
func (b Board) Disks() (black, white BitBoard) {
	if b.turn == Black {
		return b.state.Player, b.state.Opponent
	}
	return b.state.Opponent, b.state.Player
}

// Result counts disks and names the leader; None means a draw. It does not
// require the game to be finished.
func (b Board) Result() (black, white int, winner Color) {
	blackBits, whiteBits := b.Disks()
	black, white = blackBits.Count(), whiteBits.Count()
	switch {
	case black > white:
		winner = Black
	case black < white:
		winner = White
	default:
		winner = None
	}
	return black, white, winner
}

// String draws the board with 'o' for black, 'x' for white and '.' for empty.
func (b Board) String() string {
	black, white := b.Disks()
	var sb strings.Builder
	fmt.Fprintf(&sb, "ply %d, %v to move\n", b.ply, b.turn)
	sb.WriteString(" abcdefgh\n")
	for row := 0; row < BoardLen; row++ {
		sb.WriteByte(byte('1' + row))
		for col := 0; col < BoardLen; col++ {
			cell := TopBit >> (row*BoardLen + col)
			switch {
			case black.Has(cell):
				sb.WriteByte('o')
			case white.Has(cell):
				sb.WriteByte('x')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Black: %d White: %d", black.Count(), white.Count())
	return sb.String()
}
