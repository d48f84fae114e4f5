package game

// State is a position seen from the side about to move. Values are immutable;
// every transition returns a new State.
type State struct {
	Player   BitBoard // disks of the side to move
	Opponent BitBoard // disks of the other side
}

// NewState returns the standard opening position with Black to move.
func NewState() State {
	return State{Player: FirstBlackBit, Opponent: FirstWhiteBit}
}

// Swap returns the same position seen from the other side.
func (s State) Swap() State {
	return State{Player: s.Opponent, Opponent: s.Player}
}

func (s State) Blank() BitBoard {
	return ^(s.Player | s.Opponent)
}

// watch pairs an opponent mask, restricted to cells a shift cannot wrap out
// of, with the shift magnitude it guards.
type watch struct {
	board BitBoard
	step  uint
}

// LegalBitBoard flags every empty cell where the mover would flip at least
// one opposing run.
func (s State) LegalBitBoard() BitBoard {
	horizontal := s.Opponent & 0x7e7e7e7e7e7e7e7e
	vertical := s.Opponent & 0x00ffffffffffff00
	diagonal := s.Opponent & 0x007e7e7e7e7e7e00
	blank := s.Blank()

	watches := [4]watch{
		{board: horizontal, step: 1},
		{board: vertical, step: 8},
		{board: diagonal, step: 7},
		{board: diagonal, step: 9},
	}

	var legal BitBoard
	for _, w := range watches {
		// Runs can be at most 6 disks long, so 5 extensions past the first suffice.
		run := w.board & (s.Player << w.step)
		for i := 0; i < 5; i++ {
			run |= w.board & (run << w.step)
		}
		legal |= blank & (run << w.step)

		run = w.board & (s.Player >> w.step)
		for i := 0; i < 5; i++ {
			run |= w.board & (run >> w.step)
		}
		legal |= blank & (run >> w.step)
	}
	return legal
}

// LegalActions lists the legal placements in scan order.
func (s State) LegalActions() []Action {
	cells := s.LegalBitBoard().Cells()
	actions := make([]Action, len(cells))
	for i, cell := range cells {
		actions[i] = Action{bits: cell}
	}
	return actions
}

// Flips returns the opponent disks that placing at cell would reverse.
func (s State) Flips(cell BitBoard) BitBoard {
	var flips BitBoard
	for _, shift := range directions {
		var run BitBoard
		mask := shift(cell)
		for mask != 0 && mask&s.Opponent != 0 {
			run |= mask
			mask = shift(mask)
		}
		// Only a run closed by one of the mover's disks is captured.
		if mask&s.Player != 0 {
			flips |= run
		}
	}
	return flips
}

// Place applies a placement without checking legality and returns the
// resulting position, already swapped to the next mover's perspective.
func (s State) Place(cell BitBoard) State {
	flips := s.Flips(cell)
	return State{
		Player:   s.Opponent ^ flips,
		Opponent: s.Player ^ (cell | flips),
	}
}
