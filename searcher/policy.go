package searcher

import "math"

// Rewards from the perspective of a node's own mover.
const (
	WIN  = 1.0
	LOSS = 0.0
	DRAW = 0.5
)

// ucb1 scores children for their parent. A child's rewards are from the
// child's mover's perspective, so the parent exploits 1 - mean.
type ucb1 struct {
	c         float64
	numerator float64
}

func newUCB1(c float64, N float64) *ucb1 {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &ucb1{c: c, numerator: 2 * math.Log(N)}
}

func (u ucb1) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCB1 = (1 - q/n) + c*sqrt(2*ln(N)/n)
	return 1 - q/n + u.c*math.Sqrt(u.numerator/n)
}
