package game

import (
	"testing"

	"hurricane/world"

	"github.com/stretchr/testify/require"
)

// House 1 (3 people) -W2- Shelter 2 -W1- House 3 (1 person)
func testGraph(t *testing.T, deadline, k float64) *world.Graph {
	g := world.NewGraph(deadline, k)
	g.AddHouse(1, 3)
	g.AddShelter(2)
	g.AddHouse(3, 1)
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 1))
	return g
}

func TestNewState(t *testing.T) {
	t.Run("agent on a house picks up its people", func(t *testing.T) {
		g := testGraph(t, 10, 0)

		s, visited := NewState(g, [NumAgents]world.Tag{1, 2})

		require.Equal(t, 3, s.Agent(Primary).Carried)
		require.Equal(t, 0, s.Agent(Secondary).Carried, "Shelter start carries nobody")
		require.Equal(t, []world.Tag{1, 2}, visited.Tags())
		require.Zero(t, s.Elapsed)
	})

	t.Run("shared starting house is claimed once", func(t *testing.T) {
		g := testGraph(t, 10, 0)

		s, visited := NewState(g, [NumAgents]world.Tag{1, 1})

		require.Equal(t, 3, s.Agent(Primary).Carried, "Primary claims first")
		require.Equal(t, 0, s.Agent(Secondary).Carried, "People cannot be claimed twice")
		require.Equal(t, 1, visited.Len())
	})
}

func TestApplyTraverse(t *testing.T) {
	t.Run("dropping off at a shelter before the deadline", func(t *testing.T) {
		g := testGraph(t, 10, 0)
		s, visited := NewState(g, [NumAgents]world.Tag{1, 3})

		next, nextVisited := s.ApplyTraverse(g, Primary, 2, 2, visited)

		require.Equal(t, world.Tag(2), next.Agent(Primary).Position)
		require.Equal(t, 0, next.Agent(Primary).Carried, "Carried people should be dropped off")
		require.Equal(t, 3, next.Agent(Primary).Saved)
		require.Equal(t, 2.0, next.Elapsed)
		require.True(t, nextVisited.Contains(2))
		require.Equal(t, 3, s.Agent(Primary).Carried, "Original state should not change")
		require.False(t, visited.Contains(2), "Original visited set should not change")
	})

	t.Run("arriving after the deadline saves nobody", func(t *testing.T) {
		g := testGraph(t, 1, 0)
		s, visited := NewState(g, [NumAgents]world.Tag{1, 3})

		next, _ := s.ApplyTraverse(g, Primary, 2, 2, visited)

		require.Equal(t, 3, next.Agent(Primary).Carried)
		require.Equal(t, 0, next.Agent(Primary).Saved)
	})

	t.Run("arriving exactly at the deadline still saves", func(t *testing.T) {
		g := testGraph(t, 2, 0)
		s, visited := NewState(g, [NumAgents]world.Tag{1, 3})

		next, _ := s.ApplyTraverse(g, Primary, 2, 2, visited)

		require.Equal(t, 3, next.Agent(Primary).Saved)
	})

	t.Run("visited house yields nothing", func(t *testing.T) {
		g := testGraph(t, 10, 0)
		s, visited := NewState(g, [NumAgents]world.Tag{2, 2})

		next, nextVisited := s.ApplyTraverse(g, Primary, 3, 1, visited)
		require.Equal(t, 1, next.Agent(Primary).Carried)

		after, _ := next.ApplyTraverse(g, Secondary, 3, 1, nextVisited)
		require.Equal(t, 0, after.Agent(Secondary).Carried, "House was already emptied")
	})
}

func TestApplyNoOp(t *testing.T) {
	g := testGraph(t, 10, 0)
	s, _ := NewState(g, [NumAgents]world.Tag{1, 3})

	next := s.ApplyNoOp()

	require.Equal(t, s.Elapsed+1, next.Elapsed)
	require.Equal(t, s.Agents, next.Agents, "Only time should change")
}

func TestPlay(t *testing.T) {
	t.Run("traversal pays the slowdown for carried people", func(t *testing.T) {
		g := testGraph(t, 100, 0.5)
		s, visited := NewState(g, [NumAgents]world.Tag{1, 3})

		next, _, err := Play(g, s, Primary, TraverseTo(2), visited)

		require.NoError(t, err)
		require.InDelta(t, 2*(1+0.5*3), next.Elapsed, 1e-9)
	})

	t.Run("rejecting a traversal without an edge", func(t *testing.T) {
		g := testGraph(t, 10, 0)
		s, visited := NewState(g, [NumAgents]world.Tag{1, 3})

		_, _, err := Play(g, s, Primary, TraverseTo(3), visited)

		var invalid *InvalidActionError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("rejecting a blocked edge", func(t *testing.T) {
		g := testGraph(t, 10, 0)
		require.NoError(t, g.Block(1, 2))
		s, visited := NewState(g, [NumAgents]world.Tag{1, 3})

		_, _, err := Play(g, s, Primary, TraverseTo(2), visited)

		var invalid *InvalidActionError
		require.ErrorAs(t, err, &invalid)
	})
}

func TestLegalActions(t *testing.T) {
	g := testGraph(t, 10, 0)
	s, _ := NewState(g, [NumAgents]world.Tag{2, 1})

	require.Equal(t, []Action{NoOp(), TraverseTo(1), TraverseTo(3)}, LegalActions(g, s, Primary),
		"NoOp should come first, then ascending traversals")

	require.NoError(t, g.Block(1, 2))
	require.Equal(t, []Action{NoOp()}, LegalActions(g, s, Secondary),
		"Isolated agent can only wait")
}

func TestAgentID(t *testing.T) {
	require.Equal(t, Secondary, Primary.Other())
	require.Equal(t, Primary, Secondary.Other())
	require.Panics(t, func() { State{}.Agent(AgentID(5)) })
}
