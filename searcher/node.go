package searcher

import (
	"fmt"

	"hurricane/game"
)

type Classification int

const (
	Inner Classification = iota
	Terminal
	Cutoff
)

func (c Classification) String() string {
	switch c {
	case Inner:
		return "inner"
	case Terminal:
		return "terminal"
	case Cutoff:
		return "cutoff"
	default:
		return fmt.Sprintf("classification(%d)", int(c))
	}
}

// IsLeaf reports whether a node of this class is scored instead of expanded.
func (c Classification) IsLeaf() bool {
	return c != Inner
}

// Node is a position in the game tree. Children are owned by their parent;
// the parent pointer is only used to reconstruct paths.
type Node struct {
	id       int
	parent   *Node
	children []*Node
	best     *Node

	state   game.State
	visited game.Visited
	action  game.Action // Action that led here from the parent
	depth   int
	mover   game.AgentID // Agent to move at this node
	class   Classification

	value     Value
	evaluated bool
	exact     bool // False when the value is only an alpha-beta bound
}

func (n *Node) ID() int               { return n.id }
func (n *Node) Parent() *Node         { return n.parent }
func (n *Node) Children() []*Node     { return n.children }
func (n *Node) Best() *Node           { return n.best }
func (n *Node) State() game.State     { return n.state }
func (n *Node) Visited() game.Visited { return n.visited }
func (n *Node) Action() game.Action   { return n.action }
func (n *Node) Depth() int            { return n.depth }
func (n *Node) Mover() game.AgentID   { return n.mover }
func (n *Node) Class() Classification { return n.class }
func (n *Node) Exact() bool           { return n.evaluated && n.exact }

// Value returns the backed-up value, if the node has been evaluated.
func (n *Node) Value() (Value, bool) {
	return n.value, n.evaluated
}

// Path lists the actions from the tree root down to n.
func (n *Node) Path() []game.Action {
	var path []game.Action
	for cur := n; cur.parent != nil; cur = cur.parent {
		path = append(path, cur.action)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PrincipalVariation follows best children from n to a leaf.
func (n *Node) PrincipalVariation() []game.Action {
	var line []game.Action
	for cur := n.best; cur != nil; cur = cur.best {
		line = append(line, cur.action)
	}
	return line
}

func (n *Node) child(action game.Action) *Node {
	for _, c := range n.children {
		if c.action == action {
			return c
		}
	}
	return nil
}

func (n *Node) setValue(v Value, exact bool) {
	n.value = v
	n.evaluated = true
	n.exact = exact
}

func (n *Node) String() string {
	return fmt.Sprintf("node#%d depth=%d mover=%s class=%s action=%s", n.id, n.depth, n.mover, n.class, n.action)
}
