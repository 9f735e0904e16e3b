package agent

import (
	"hurricane/experiments/metrics"
	"hurricane/game"
	"hurricane/searcher"
)

// Move is an agent's answer for one turn.
type Move struct {
	Action game.Action
	Class  searcher.Classification // Class of the node the action leads to, Inner when unknown
	Value  float64                 // Mover's coordinate of the expected value, if searched
	AtLeaf bool                    // Nothing left to search; the game should stop without playing Action
	Metric metrics.SearchMetric
}

type Agent interface {
	// FindMove returns the action to play and performance metrics (if collected) from the search
	FindMove(req searcher.Request) (Move, error)
	// Observe is told every action played in the real game, by either agent
	Observe(action game.Action)
}
