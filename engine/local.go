package engine

import (
	"fmt"
	"time"

	"hurricane/experiments/metrics"
	"hurricane/game"
	"hurricane/searcher"
	"hurricane/searcher/agent"
	"hurricane/world"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithStartingPlayer(id game.AgentID) Option {
	return func(e *Local) {
		if id.Valid() {
			e.starting = id
		}
	}
}

// Local runs both agents in-process, alternating turns.
type Local struct {
	world    world.World
	agents   [game.NumAgents]agent.Agent
	state    game.State
	visited  game.Visited
	starting game.AgentID
	maxTurns int
}

func LocalEngine(w world.World, positions [game.NumAgents]world.Tag, agents [game.NumAgents]agent.Agent, options ...Option) *Local {
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("no agent for %s", game.AgentID(i)))
		}
	}

	state, visited := game.NewState(w, positions)
	e := &Local{
		world:    w,
		agents:   agents,
		state:    state,
		visited:  visited,
		starting: game.Primary,
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) State() game.State { return e.state }

// Run executes the game loop. An agent error, including an unplayable
// action, ends the game and is returned.
func (e *Local) Run() (Result, error) {
	var (
		trace       []Turn
		moveMetrics []metrics.MoveMetric
		reason      StopReason
	)
	startTime := time.Now()
	mover := e.starting
	log.Info().Msgf("%s is starting", mover)

	for step := 1; ; step++ {
		if step > e.maxTurns {
			reason = TurnLimit
			break
		}
		if e.state.Elapsed >= e.world.Deadline() {
			reason = Deadline
			break
		}

		req := searcher.Request{State: e.state, Visited: e.visited, Mover: mover, Opponent: mover.Other()}
		move, err := e.agents[mover].FindMove(req)
		if err != nil {
			return Result{}, fmt.Errorf("%s failed to move at step %d: %w", mover, step, err)
		}
		if move.AtLeaf {
			reason = Horizon
			break
		}

		next, visited, err := game.Play(e.world, e.state, mover, move.Action, e.visited)
		if err != nil {
			return Result{}, fmt.Errorf("%s played an illegal move at step %d: %w", mover, step, err)
		}
		e.state, e.visited = next, visited
		for _, a := range e.agents {
			a.Observe(move.Action)
		}

		trace = append(trace, Turn{Step: step, Mover: mover, Action: move.Action, State: next})
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(mover),
			Action:       move.Action.String(),
			Value:        move.Value,
			SearchMetric: move.Metric,
		})
		log.Debug().Int("step", step).Stringer("mover", mover).Stringer("action", move.Action).Msg(next.String())

		if move.Class.IsLeaf() {
			reason = Horizon
			break
		}
		mover = mover.Other()
	}

	endTime := time.Now()
	log.Info().Msgf("Game over (%s) after %d moves: saved %d", reason, len(trace), e.state.TotalSaved())
	return Result{
		State:   e.state,
		Visited: e.visited,
		Trace:   trace,
		Reason:  reason,
		GameMetric: metrics.GameMetric{
			StartingPlayer: int(e.starting),
			Saved:          [2]int{e.state.Agent(game.Primary).Saved, e.state.Agent(game.Secondary).Saved},
			TotalSaved:     e.state.TotalSaved(),
			Elapsed:        e.state.Elapsed,
			StartTime:      startTime,
			EndTime:        endTime,
			Duration:       endTime.Sub(startTime),
			TotalMoves:     len(trace),
		},
		MoveMetrics: moveMetrics,
	}, nil
}
