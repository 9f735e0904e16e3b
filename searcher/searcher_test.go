package searcher

import (
	"testing"

	"hurricane/game"
	"hurricane/world"

	"github.com/stretchr/testify/require"
)

// House 1 (3 people) -W2- Shelter 2
func twoVertexGraph(t *testing.T, deadline float64) *world.Graph {
	g := world.NewGraph(deadline, 0)
	g.AddHouse(1, 3)
	g.AddShelter(2)
	require.NoError(t, g.AddEdge(1, 2, 2))
	return g
}

// 1(H2) -1- 2(S) -2- 3(H1), 1 -2- 4(H3) -3- 3, 2 -4- 4
func diamondGraph(t *testing.T) *world.Graph {
	g := world.NewGraph(12, 0.5)
	g.AddHouse(1, 2)
	g.AddShelter(2)
	g.AddHouse(3, 1)
	g.AddHouse(4, 3)
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))
	require.NoError(t, g.AddEdge(1, 4, 2))
	require.NoError(t, g.AddEdge(4, 3, 3))
	require.NoError(t, g.AddEdge(2, 4, 4))
	return g
}

func newRequest(w world.World, positions [game.NumAgents]world.Tag, mover game.AgentID) Request {
	s, visited := game.NewState(w, positions)
	return Request{State: s, Visited: visited, Mover: mover, Opponent: mover.Other()}
}

var allModes = []Mode{Adversarial, SemiCooperative, FullyCooperative}

func TestCooperativePickup(t *testing.T) {
	g := twoVertexGraph(t, 10)

	for _, mover := range []game.AgentID{game.Primary, game.Secondary} {
		positions := [game.NumAgents]world.Tag{2, 2}
		positions[mover] = 1
		req := newRequest(g, positions, mover)

		d, err := ChooseMove(g, req, WithMode(FullyCooperative), WithCutoff(1))

		require.NoError(t, err)
		require.Equal(t, game.TraverseTo(2), d.Action, "%s should drive to the shelter", mover)
		require.Equal(t, 3, d.State.TotalSaved())
		require.Equal(t, 2.0, d.State.Elapsed)
		require.Equal(t, Value{3, 3}, d.Value)
	}
}

func TestDeadlineMiss(t *testing.T) {
	g := twoVertexGraph(t, 1)
	req := newRequest(g, [game.NumAgents]world.Tag{1, 2}, game.Primary)

	d, err := ChooseMove(g, req, WithMode(FullyCooperative), WithCutoff(3))

	require.NoError(t, err)
	require.Zero(t, d.State.TotalSaved(), "Arriving late saves nobody")
	require.Equal(t, Terminal, d.Class)
	require.GreaterOrEqual(t, d.State.Elapsed, g.Deadline())
}

func TestCutoffAtRoot(t *testing.T) {
	g := diamondGraph(t)
	s := game.State{Agents: [game.NumAgents]game.AgentState{
		{Position: 1, Saved: 2},
		{Position: 2, Saved: 1},
	}}
	req := Request{State: s, Visited: game.NewVisited(1, 2), Mover: game.Primary, Opponent: game.Secondary}

	t.Run("root is a cutoff leaf", func(t *testing.T) {
		root, err := Search(g, req, WithCutoff(0))

		require.NoError(t, err)
		require.Equal(t, Cutoff, root.Class())
		require.Empty(t, root.Children(), "Cutoff root should not be expanded")
		v, ok := root.Value()
		require.True(t, ok)
		require.Equal(t, Value{1, -1}, v)
	})

	t.Run("decision keeps the root state", func(t *testing.T) {
		for _, strategy := range []Strategy{Incremental, FullTree} {
			d, err := ChooseMove(g, req, WithCutoff(0), WithStrategy(strategy))

			require.NoError(t, err)
			require.Equal(t, game.NoOp(), d.Action)
			require.Equal(t, s, d.State)
			require.Equal(t, Cutoff, d.Class)
			require.True(t, d.AtLeaf)
		}
	})

	t.Run("cutoff wins over terminal", func(t *testing.T) {
		late := req
		late.State.Elapsed = 100

		root, err := Search(g, late, WithCutoff(0))

		require.NoError(t, err)
		require.Equal(t, Cutoff, root.Class())
	})
}

func TestAdversarialZeroSum(t *testing.T) {
	g := twoVertexGraph(t, 10)
	req := newRequest(g, [game.NumAgents]world.Tag{1, 2}, game.Primary)

	d, err := ChooseMove(g, req, WithCutoff(2))

	require.NoError(t, err)
	require.Equal(t, game.TraverseTo(2), d.Action)
	require.Equal(t, 3.0, d.Value.For(game.Primary))
	require.Equal(t, -3.0, d.Value.For(game.Secondary))
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	g := diamondGraph(t)

	for cutoff := 1; cutoff <= 6; cutoff++ {
		for _, mover := range []game.AgentID{game.Primary, game.Secondary} {
			req := newRequest(g, [game.NumAgents]world.Tag{2, 3}, mover)

			pruned, err := ChooseMove(g, req, WithCutoff(cutoff), WithMetrics())
			require.NoError(t, err)
			full, err := ChooseMove(g, req, WithCutoff(cutoff), WithMetrics(), WithoutPruning())
			require.NoError(t, err)

			require.Equal(t, full.Action, pruned.Action, "cutoff %d, mover %s", cutoff, mover)
			require.Equal(t, full.Value, pruned.Value, "cutoff %d, mover %s", cutoff, mover)
			require.LessOrEqual(t, pruned.Metric.Evaluated, full.Metric.Evaluated)
			require.Zero(t, full.Metric.Pruned)
		}
	}
}

func TestStrategyEquivalence(t *testing.T) {
	g := diamondGraph(t)

	for _, mode := range allModes {
		for cutoff := 0; cutoff <= 5; cutoff++ {
			for _, mover := range []game.AgentID{game.Primary, game.Secondary} {
				req := newRequest(g, [game.NumAgents]world.Tag{1, 3}, mover)

				incremental, err := ChooseMove(g, req, WithMode(mode), WithCutoff(cutoff), WithStrategy(Incremental))
				require.NoError(t, err)
				fullTree, err := ChooseMove(g, req, WithMode(mode), WithCutoff(cutoff), WithStrategy(FullTree))
				require.NoError(t, err)

				require.Equal(t, incremental.Action, fullTree.Action, "mode %s, cutoff %d, mover %s", mode, cutoff, mover)
				require.Equal(t, incremental.Value, fullTree.Value)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	g := diamondGraph(t)
	req := newRequest(g, [game.NumAgents]world.Tag{2, 4}, game.Secondary)

	for _, mode := range allModes {
		first, err := ChooseMove(g, req, WithMode(mode), WithCutoff(4))
		require.NoError(t, err)
		second, err := ChooseMove(g, req, WithMode(mode), WithCutoff(4))
		require.NoError(t, err)

		require.Equal(t, first, second, "mode %s", mode)
	}
}

func TestTieBreak(t *testing.T) {
	// Primary starts empty-handed at the shelter, so one ply saves nobody
	g := diamondGraph(t)
	req := newRequest(g, [game.NumAgents]world.Tag{2, 4}, game.Primary)

	for _, mode := range allModes {
		for _, pruning := range []bool{true, false} {
			options := []Option{WithMode(mode), WithCutoff(1)}
			if !pruning {
				options = append(options, WithoutPruning())
			}

			d, err := ChooseMove(g, req, options...)

			require.NoError(t, err)
			require.Equal(t, game.NoOp(), d.Action, "First child in expansion order should win ties (mode %s)", mode)
		}
	}
}

func TestInvalidRequest(t *testing.T) {
	g := diamondGraph(t)
	req := newRequest(g, [game.NumAgents]world.Tag{1, 2}, game.Primary)

	req.Opponent = game.Primary
	_, err := ChooseMove(g, req)
	require.ErrorIs(t, err, ErrInvalidRequest)

	req.Mover, req.Opponent = game.AgentID(4), game.Primary
	_, err = ChooseMove(g, req)
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestParseModeAndStrategy(t *testing.T) {
	for input, want := range map[string]Mode{
		"adversarial":       Adversarial,
		"Semi-Coop":         SemiCooperative,
		"fully-cooperative": FullyCooperative,
	} {
		got, err := ParseMode(input)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseMode("chaotic")
	require.Error(t, err)

	for input, want := range map[string]Strategy{
		"ping-pong": Incremental,
		"full-tree": FullTree,
	} {
		got, err := ParseStrategy(input)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err = ParseStrategy("beam")
	require.Error(t, err)
}
