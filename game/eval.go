package game

// Score is a static evaluation from the mover's perspective; higher is better
// for the side to move.
type Score = int

// Evaluator scores a board from the perspective of the side to move.
type Evaluator interface {
	Evaluate(b Board) Score
}

// EvaluatorFunc adapts an ordinary function to the Evaluator interface.
type EvaluatorFunc func(b Board) Score

func (f EvaluatorFunc) Evaluate(b Board) Score {
	return f(b)
}

// cellWeights favours corners and penalises the cells next to them.
var cellWeights = [BoardSize]Score{
	30, -12, 0, -1, -1, 0, -12, 30,
	-12, -15, -3, -3, -3, -3, -15, -12,
	0, -3, 0, -1, -1, 0, -3, 0,
	-1, -3, -1, -1, -1, -1, -3, -1,
	-1, -3, -1, -1, -1, -1, -3, -1,
	0, -3, 0, -1, -1, 0, -3, 0,
	-12, -15, -3, -3, -3, -3, -15, -12,
	30, -12, 0, -1, -1, 0, -12, 30,
}

// CellWeight returns the positional weight of the cell at a row-major index.
func CellWeight(index int) Score {
	return cellWeights[index]
}

// EvaluateCells sums the positional weights of the mover's disks minus those
// of the opponent's disks.
func EvaluateCells(b Board) Score {
	score := 0
	for _, cell := range b.state.Player.Cells() {
		score += cellWeights[cell.Index()]
	}
	for _, cell := range b.state.Opponent.Cells() {
		score -= cellWeights[cell.Index()]
	}
	return score
}

// EvaluateDisks is the plain disk difference.
func EvaluateDisks(b Board) Score {
	return b.state.Player.Count() - b.state.Opponent.Count()
}

// EvaluateMobility compares the number of legal placements available to each
// side.
func EvaluateMobility(b Board) Score {
	return b.state.LegalBitBoard().Count() - b.state.Swap().LegalBitBoard().Count()
}

var (
	CellEvaluator     Evaluator = EvaluatorFunc(EvaluateCells)
	DiskEvaluator     Evaluator = EvaluatorFunc(EvaluateDisks)
	MobilityEvaluator Evaluator = EvaluatorFunc(EvaluateMobility)
)

// EvaluatorByName resolves the names used in experiment configs. Unknown
// names fall back to the cell table.
func EvaluatorByName(name string) Evaluator {
	switch name {
	case "disks":
		return DiskEvaluator
	case "mobility":
		return MobilityEvaluator
	default:
		return CellEvaluator
	}
}
