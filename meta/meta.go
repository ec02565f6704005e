// meta/meta.go
package meta

import "time"

// ROLLOUTS is the number of random simulations per candidate action.
const ROLLOUTS = 30

// ROLLOUT_DEPTH is the number of moves each simulation plays out.
const ROLLOUT_DEPTH = 10

// DEAD_END_DEPTH bounds the dead-end lookahead.
const DEAD_END_DEPTH = 5

// GO_ROUTINES defines the number of goroutines running rollouts.
const GO_ROUTINES = 4

// IDLE_THRESHOLD is how many moves without eating before offense takes more risk.
const IDLE_THRESHOLD = 80

// GREEDY_RADIUS is the food distance within which offense steps greedily when no ghost is seen.
const GREEDY_RADIUS = 2

// ENDGAME_FOOD is the remaining food at which reflex agents rush home.
const ENDGAME_FOOD = 2

// GUARD_FOOD is the defended food count at which the sentinel guards the remaining assets.
const GUARD_FOOD = 4

// MAX_MOVES caps the length of a local match.
const MAX_MOVES = 1200

// TURN_BUDGET is the wall clock an agent may spend on one move before it is warned.
const TURN_BUDGET = time.Second

// MAX_WARNINGS is how many overrun moves a team may accumulate before it forfeits.
const MAX_WARNINGS = 3
