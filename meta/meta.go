// meta/meta.go
package meta

import "time"

// TIME_LIMIT is the soft wall-clock ceiling for a single decision.
const TIME_LIMIT = 150 * time.Millisecond

// DEPTH is the default search depth for minimax and alpha-beta.
const DEPTH = 4

// EXPAND_THRESHOLD is the visit count at which an MCTS leaf grows children.
const EXPAND_THRESHOLD = 10

// EXPLORATION is the UCB1 exploration constant.
const EXPLORATION = 1.0

// INF bounds every static evaluation.
const INF = 10000

// MAX_TURNS guards the driver against a game that never finishes.
const MAX_TURNS = 200
