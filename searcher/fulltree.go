package searcher

import (
	"fmt"

	"hurricane/game"
	"hurricane/world"

	"github.com/rs/zerolog/log"
)

// FullTreeSearcher searches once to the horizon and reuses the tree for the
// rest of the game. A cursor tracks the real position inside the tree.
type FullTreeSearcher struct {
	world world.World
	config
	session *session
	root    *Node
	cursor  *Node
}

func NewFullTree(w world.World, options ...Option) *FullTreeSearcher {
	return &FullTreeSearcher{world: w, config: newConfig(options)}
}

func (t *FullTreeSearcher) Root() *Node   { return t.root }
func (t *FullTreeSearcher) Cursor() *Node { return t.cursor }

func (t *FullTreeSearcher) ChooseMove(req Request) (Decision, error) {
	if err := req.validate(); err != nil {
		return Decision{}, err
	}

	t.metrics.Start(t.mode.String(), FullTree.String(), t.cutoff)
	if t.onCursor(req) {
		t.metrics.SetTreeReset(false)
		// A node reached off the principal line may carry a pruning bound
		if !t.cursor.Exact() {
			log.Debug().Msgf("Re-searching inexact %s", t.cursor)
			if err := t.session.search(t.cursor); err != nil {
				return Decision{}, err
			}
		}
	} else {
		if t.root != nil {
			log.Info().Msgf("Tree reset: position diverged from the tree for %s", req.Mover)
		}
		t.metrics.SetTreeReset(true)
		if err := t.build(req); err != nil {
			return Decision{}, err
		}
	}

	d := t.session.decide(t.cursor)
	d.Metric = t.metrics.Complete()
	return d, nil
}

// Observe moves the cursor to the child reached by action. When the action
// cannot be followed the tree is dropped and the next ChooseMove rebuilds.
func (t *FullTreeSearcher) Observe(action game.Action) error {
	if t.cursor == nil {
		return nil
	}
	if err := t.session.expand(t.cursor); err != nil {
		t.cursor = nil
		return err
	}
	next := t.cursor.child(action)
	if next == nil {
		at := t.cursor
		t.cursor = nil
		return fmt.Errorf("failed to follow %s from %s: %w", action, at, ErrActionNotInTree)
	}
	t.cursor = next
	return nil
}

func (t *FullTreeSearcher) onCursor(req Request) bool {
	return t.cursor != nil &&
		t.cursor.mover == req.Mover &&
		t.cursor.state == req.State &&
		t.cursor.visited.Equal(req.Visited)
}

func (t *FullTreeSearcher) build(req Request) error {
	t.session = t.newSession(t.world)
	t.root = t.session.newRoot(req)
	t.cursor = t.root
	if err := t.session.search(t.root); err != nil {
		t.root, t.cursor = nil, nil
		return err
	}
	log.Debug().Msgf("Built %s tree to depth %d with %d nodes", t.mode, t.cutoff, t.session.nextID)
	return nil
}
