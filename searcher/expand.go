package searcher

import (
	"fmt"

	"hurricane/game"
	"hurricane/world"
)

// Successor is one outcome of the mover acting in a state.
type Successor struct {
	Action  game.Action
	State   game.State
	Visited game.Visited
}

// Successors lists every outcome of mover acting in s: the no-op first, then
// one traversal per unblocked neighbour in ascending tag order. The inputs are
// not modified, so repeated calls yield equal results.
func Successors(w world.World, s game.State, mover game.AgentID, visited game.Visited) ([]Successor, error) {
	actions := game.LegalActions(w, s, mover)
	successors := make([]Successor, 0, len(actions))
	for _, action := range actions {
		if action.IsNoOp() {
			successors = append(successors, Successor{Action: action, State: s.ApplyNoOp(), Visited: visited})
			continue
		}
		from := s.Agent(mover)
		cost, err := world.Cost(w, from.Position, action.To, from.Carried)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s for %s: %w", action, mover, err)
		}
		next, nextVisited := s.ApplyTraverse(w, mover, action.To, cost, visited)
		successors = append(successors, Successor{Action: action, State: next, Visited: nextVisited})
	}
	return successors, nil
}
