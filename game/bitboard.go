package game

import "math/bits"

// BitBoard holds one flag per cell. Bit 63 is a1, bit 0 is h8.
type BitBoard uint64

func (b BitBoard) Count() int {
	return bits.OnesCount64(uint64(b))
}

func (b BitBoard) Has(other BitBoard) bool {
	return b&other != 0
}

// Cells splits b into single-bit boards in scan order (a1, b1, ..., h8).
func (b BitBoard) Cells() []BitBoard {
	cells := make([]BitBoard, 0, b.Count())
	for b != 0 {
		lead := bits.LeadingZeros64(uint64(b))
		cell := TopBit >> lead
		cells = append(cells, cell)
		b &^= cell
	}
	return cells
}

// Index returns the row-major cell index of the most significant set bit,
// or -1 for an empty board.
func (b BitBoard) Index() int {
	if b == 0 {
		return -1
	}
	return bits.LeadingZeros64(uint64(b))
}

// Shifts used while walking a flip run from a placed disk. Each mask clears
// the cells a shift would have wrapped into from the opposite edge.
var directions = [8]func(BitBoard) BitBoard{
	func(b BitBoard) BitBoard { return (b << 8) & 0xffffffffffffff00 }, // up
	func(b BitBoard) BitBoard { return (b << 7) & 0x7f7f7f7f7f7f7f00 }, // up-right
	func(b BitBoard) BitBoard { return (b >> 1) & 0x7f7f7f7f7f7f7f7f }, // right
	func(b BitBoard) BitBoard { return (b >> 9) & 0x007f7f7f7f7f7f7f }, // down-right
	func(b BitBoard) BitBoard { return (b >> 8) & 0x00ffffffffffffff }, // down
	func(b BitBoard) BitBoard { return (b >> 7) & 0x00fefefefefefefe }, // down-left
	func(b BitBoard) BitBoard { return (b << 1) & 0xfefefefefefefefe }, // left
	func(b BitBoard) BitBoard { return (b << 9) & 0xfefefefefefefe00 }, // up-left
}
