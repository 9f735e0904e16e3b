// meta/meta.go
package meta

// DEFAULT_CUTOFF is the search horizon in plies when none is configured.
const DEFAULT_CUTOFF = 15

// SLOWDOWN_FACTOR is k in the traversal cost w*(1+k*p).
const SLOWDOWN_FACTOR = 0.5

// MAX_TURNS bounds the number of moves in one game.
const MAX_TURNS = 300

// SEED seeds the random baseline agent.
const SEED = 42
