package searcher

import (
	"math"

	"hurricane/experiments/metrics"
	"hurricane/game"
	"hurricane/world"
)

// session owns one game tree: its id counter, horizon and scoring.
type session struct {
	world   world.World
	policy  Policy
	cutoff  int
	pruning bool
	metrics metrics.Collector
	nextID  int
}

func (s *session) id() int {
	id := s.nextID
	s.nextID++
	return id
}

// classify checks the horizon before the deadline, so a node that is both
// at the cutoff depth and out of time is Cutoff.
func (s *session) classify(depth int, state game.State) Classification {
	switch {
	case depth >= s.cutoff:
		return Cutoff
	case state.Elapsed >= s.world.Deadline():
		return Terminal
	default:
		return Inner
	}
}

func (s *session) newRoot(req Request) *Node {
	n := &Node{
		id:      s.id(),
		state:   req.State,
		visited: req.Visited,
		mover:   req.Mover,
	}
	n.class = s.classify(0, n.state)
	return n
}

// expand generates the children of n once; later calls are no-ops.
func (s *session) expand(n *Node) error {
	if n.children != nil || n.class.IsLeaf() {
		return nil
	}
	successors, err := Successors(s.world, n.state, n.mover, n.visited)
	if err != nil {
		return err
	}
	s.metrics.AddExpansion()

	n.children = make([]*Node, len(successors))
	for i, succ := range successors {
		child := &Node{
			id:      s.id(),
			parent:  n,
			state:   succ.State,
			visited: succ.Visited,
			action:  succ.Action,
			depth:   n.depth + 1,
			mover:   n.mover.Other(),
		}
		child.class = s.classify(child.depth, child.state)
		n.children[i] = child
	}
	return nil
}

// search evaluates the subtree below n with the algorithm the policy allows.
func (s *session) search(n *Node) error {
	if s.pruning && s.policy.ZeroSum() {
		_, err := s.alphaBeta(n, math.Inf(-1), math.Inf(1))
		return err
	}
	_, err := s.maximax(n)
	return err
}

func (s *session) evaluateLeaf(n *Node) Value {
	v := s.policy.Utility(n.state)
	s.metrics.AddEvaluation()
	n.best = nil
	n.setValue(v, true)
	return v
}

// alphaBeta returns the primary agent's value of n. The primary agent
// maximizes, the secondary minimizes. A result outside (alpha, beta) is only
// a bound, and the node is marked inexact.
func (s *session) alphaBeta(n *Node, alpha, beta float64) (float64, error) {
	if n.class.IsLeaf() {
		return s.evaluateLeaf(n).For(game.Primary), nil
	}
	if err := s.expand(n); err != nil {
		return 0, err
	}

	lo, hi := alpha, beta
	maximizing := n.mover == game.Primary
	value := math.Inf(1)
	if maximizing {
		value = math.Inf(-1)
	}
	n.best = nil

	for i, child := range n.children {
		v, err := s.alphaBeta(child, alpha, beta)
		if err != nil {
			return 0, err
		}

		if maximizing {
			if n.best == nil || v > value {
				value, n.best = v, child
			}
			if value >= beta {
				s.prune(n, i)
				break
			}
			alpha = max(alpha, value)
		} else {
			if n.best == nil || v < value {
				value, n.best = v, child
			}
			if value <= alpha {
				s.prune(n, i)
				break
			}
			beta = min(beta, value)
		}
	}

	n.setValue(zeroSum(value), lo < value && value < hi)
	return value, nil
}

func (s *session) prune(n *Node, at int) {
	if at < len(n.children)-1 {
		s.metrics.AddPrune()
	}
}

// maximax lets every mover maximize its own coordinate of the value. For a
// zero-sum policy this is plain minimax without pruning.
func (s *session) maximax(n *Node) (Value, error) {
	if n.class.IsLeaf() {
		return s.evaluateLeaf(n), nil
	}
	if err := s.expand(n); err != nil {
		return Value{}, err
	}

	var best Value
	n.best = nil
	for _, child := range n.children {
		v, err := s.maximax(child)
		if err != nil {
			return Value{}, err
		}
		if n.best == nil || v.For(n.mover) > best.For(n.mover) {
			best, n.best = v, child
		}
	}

	n.setValue(best, true)
	return best, nil
}

// decide reads the move at n off an evaluated tree. A leaf has nothing to
// choose from and yields a no-op that leaves the state unchanged.
func (s *session) decide(n *Node) Decision {
	v, _ := n.Value()
	if n.best == nil {
		return Decision{
			Action:  game.NoOp(),
			State:   n.state,
			Visited: n.visited,
			Class:   n.class,
			Value:   v,
			AtLeaf:  true,
		}
	}
	return Decision{
		Action:    n.best.action,
		State:     n.best.state,
		Visited:   n.best.visited,
		Class:     n.best.class,
		Value:     v,
		Variation: n.PrincipalVariation(),
	}
}
