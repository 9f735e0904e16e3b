package engine

import (
	"fmt"

	"hurricane/experiments/metrics"
	"hurricane/game"
	"hurricane/meta"
)

// StopReason tells why a game ended.
type StopReason int

const (
	// Horizon means the mover's search chose a cutoff or terminal node.
	Horizon StopReason = iota
	Deadline
	TurnLimit
)

func (r StopReason) String() string {
	switch r {
	case Horizon:
		return "horizon"
	case Deadline:
		return "deadline"
	case TurnLimit:
		return "turn-limit"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Turn is one move as it was played in the real game.
type Turn struct {
	Step   int
	Mover  game.AgentID
	Action game.Action
	State  game.State // State after the action
}

type Result struct {
	State       game.State
	Visited     game.Visited
	Trace       []Turn
	Reason      StopReason
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

type Engine interface {
	// Run plays a game until a leaf is chosen, the deadline passes or the turn limit is reached
	Run() (Result, error)
}

const MaxTurns = meta.MAX_TURNS
