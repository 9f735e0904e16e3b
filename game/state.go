package game

import (
	"fmt"

	"hurricane/world"
)

// AgentID names one of the two agents. Primary is the maximizer in the
// adversarial game, Secondary the minimizer.
type AgentID int

const (
	Primary AgentID = iota
	Secondary
)

const NumAgents = 2

func (a AgentID) Other() AgentID {
	return 1 - a
}

func (a AgentID) Valid() bool {
	return a == Primary || a == Secondary
}

func (a AgentID) String() string {
	switch a {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return fmt.Sprintf("agent(%d)", int(a))
	}
}

type AgentState struct {
	Position world.Tag
	Carried  int // People in the vehicle
	Saved    int // People dropped off at a shelter before the deadline
}

// State is an immutable snapshot of the game. Transitions return a new value,
// and nothing is shared with the receiver.
type State struct {
	Agents  [NumAgents]AgentState
	Elapsed float64
}

func (s State) Agent(id AgentID) AgentState {
	mustBeAgent(id)
	return s.Agents[id]
}

func (s State) TotalSaved() int {
	return s.Agents[Primary].Saved + s.Agents[Secondary].Saved
}

func (s State) String() string {
	p, q := s.Agents[Primary], s.Agents[Secondary]
	return fmt.Sprintf("t=%g primary{at=%d carry=%d saved=%d} secondary{at=%d carry=%d saved=%d}",
		s.Elapsed, p.Position, p.Carried, p.Saved, q.Position, q.Carried, q.Saved)
}

// NewState places both agents. Starting positions count as visited, and an
// agent starting on a House picks its people up unless the Primary agent
// already stands there.
func NewState(w world.World, positions [NumAgents]world.Tag) (State, Visited) {
	var s State
	visited := NewVisited()
	for i, pos := range positions {
		s.Agents[i].Position = pos
		if w.IsHouse(pos) && !visited.Contains(pos) {
			s.Agents[i].Carried = w.PayloadAt(pos)
		}
		visited = visited.With(pos)
	}
	return s, visited
}

// ApplyNoOp waits one time unit.
func (s State) ApplyNoOp() State {
	s.Elapsed++
	return s
}

// ApplyTraverse moves agent to dest, spending cost. An unvisited House is
// emptied into the vehicle; a Shelter reached by the deadline takes every
// person carried. The returned set includes dest.
func (s State) ApplyTraverse(w world.World, agent AgentID, dest world.Tag, cost float64, visited Visited) (State, Visited) {
	mustBeAgent(agent)
	a := s.Agents[agent]
	a.Position = dest
	s.Elapsed += cost

	if w.IsHouse(dest) && !visited.Contains(dest) {
		a.Carried += w.PayloadAt(dest)
	} else if w.IsShelter(dest) && s.Elapsed <= w.Deadline() {
		a.Saved += a.Carried
		a.Carried = 0
	}

	s.Agents[agent] = a
	return s, visited.With(dest)
}

// LegalActions lists the agent's options: NoOp first, then one traversal per
// unblocked neighbour in ascending tag order.
func LegalActions(w world.World, s State, agent AgentID) []Action {
	neighbours := w.Adjacent(s.Agent(agent).Position)
	actions := make([]Action, 0, len(neighbours)+1)
	actions = append(actions, NoOp())
	for _, v := range neighbours {
		actions = append(actions, TraverseTo(v))
	}
	return actions
}

// Play validates action for agent and applies it.
func Play(w world.World, s State, agent AgentID, action Action, visited Visited) (State, Visited, error) {
	switch action.Type {
	case NoOpAction:
		return s.ApplyNoOp(), visited, nil
	case TraverseAction:
		from := s.Agent(agent)
		if !isAdjacent(w, from.Position, action.To) {
			return s, visited, &InvalidActionError{
				Token:  action.String(),
				Reason: fmt.Sprintf("no unblocked edge from %d to %d", from.Position, action.To),
			}
		}
		cost, err := world.Cost(w, from.Position, action.To, from.Carried)
		if err != nil {
			return s, visited, fmt.Errorf("failed to price %s: %w", action, err)
		}
		next, nextVisited := s.ApplyTraverse(w, agent, action.To, cost, visited)
		return next, nextVisited, nil
	default:
		return s, visited, &InvalidActionError{Token: action.String(), Reason: "unknown action type"}
	}
}

func isAdjacent(w world.World, from, to world.Tag) bool {
	for _, v := range w.Adjacent(from) {
		if v == to {
			return true
		}
	}
	return false
}

func mustBeAgent(id AgentID) {
	if !id.Valid() {
		panic(fmt.Sprintf("unknown agent id %d", int(id)))
	}
}
