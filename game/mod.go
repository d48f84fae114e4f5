package game

import "fmt"

const (
	BoardLen  = 8
	BoardSize = BoardLen * BoardLen

	// TopBit is cell a1; cells are numbered row-major from the most significant bit.
	TopBit BitBoard = 0x8000000000000000

	FirstBlackBit BitBoard = 0x0000000810000000 // e4, d5
	FirstWhiteBit BitBoard = 0x0000001008000000 // d4, e5

	// MaxActions is the largest number of legal moves reachable in Othello.
	MaxActions = 33
)

// Color identifies a side. Black moves first.
type Color int

const (
	None Color = iota
	Black
	White
)

const FirstTurn = Black

func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return None
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Draw"
	}
}

// Status classifies a board from the perspective of the side to move.
type Status int

const (
	Usual    Status = iota // mover has at least one legal placement
	Pass                   // mover has none, opponent has at least one
	Finished               // neither side can place
)

func (s Status) String() string {
	switch s {
	case Usual:
		return "Usual"
	case Pass:
		return "Pass"
	case Finished:
		return "Finished"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// WinningStatus is the outcome of a board as seen by its mover.
type WinningStatus int

const (
	NotFinished WinningStatus = iota
	Win
	Lose
	Draw
)

func (w WinningStatus) String() string {
	switch w {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	default:
		return "NotFinished"
	}
}
