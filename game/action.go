package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidAction     = errors.New("action must mark exactly one cell")
)

// Action is a placement on a single cell.
type Action struct {
	bits BitBoard
}

// NewAction wraps a single-bit board.
func NewAction(b BitBoard) (Action, error) {
	if b.Count() != 1 {
		return Action{}, fmt.Errorf("%w: %#016x", ErrInvalidAction, uint64(b))
	}
	return Action{bits: b}, nil
}

// ParseAction decodes a two-character coordinate such as "d3": column 'a'..'h'
// then row '1'..'8'.
func ParseAction(s string) (Action, error) {
	if len(s) != 2 {
		return Action{}, fmt.Errorf("%w: %q must be two characters", ErrInvalidCoordinate, s)
	}
	col := int(s[0]) - 'a'
	row := int(s[1]) - '1'
	if col < 0 || col >= BoardLen {
		return Action{}, fmt.Errorf("%w: %q has column outside a-h", ErrInvalidCoordinate, s)
	}
	if row < 0 || row >= BoardLen {
		return Action{}, fmt.Errorf("%w: %q has row outside 1-8", ErrInvalidCoordinate, s)
	}
	return Action{bits: TopBit >> (row*BoardLen + col)}, nil
}

// MustParseAction is like ParseAction but panics on malformed input.
func MustParseAction(s string) Action {
	a, err := ParseAction(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Action) BitBoard() BitBoard {
	return a.bits
}

// IsZero reports whether a is the zero Action, which marks no cell.
func (a Action) IsZero() bool {
	return a.bits == 0
}

func (a Action) String() string {
	idx := a.bits.Index()
	if idx < 0 || a.bits.Count() != 1 {
		return "--"
	}
	return string([]byte{byte('a' + idx%BoardLen), byte('1' + idx/BoardLen)})
}
