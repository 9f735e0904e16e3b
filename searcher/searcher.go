package searcher

import (
	"errors"
	"fmt"
	"strings"

	"hurricane/experiments/metrics"
	"hurricane/game"
	"hurricane/meta"
	"hurricane/utils"
	"hurricane/world"
)

var (
	ErrInvalidRequest  = errors.New("invalid search request")
	ErrActionNotInTree = errors.New("action not in search tree")
)

// Strategy decides how a tree is kept between moves.
type Strategy int

const (
	// Incremental builds a fresh tree from the real state on every call.
	Incremental Strategy = iota
	// FullTree builds one tree and walks a cursor down it as moves are played.
	FullTree
)

var strategyNames = []string{"incremental", "full-tree"}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return strategyNames[s]
}

func ParseStrategy(s string) (Strategy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "ping-pong", "pingpong":
		name = "incremental"
	case "full", "fulltree":
		name = "full-tree"
	}
	i := utils.FindIndex(strategyNames, name)
	if i < 0 {
		return 0, fmt.Errorf("unknown strategy %q", s)
	}
	return Strategy(i), nil
}

// Request is the real game position a move is wanted for.
type Request struct {
	State    game.State
	Visited  game.Visited
	Mover    game.AgentID
	Opponent game.AgentID
}

func (r Request) validate() error {
	if !r.Mover.Valid() || !r.Opponent.Valid() {
		return fmt.Errorf("%w: unknown agent in mover %d, opponent %d", ErrInvalidRequest, r.Mover, r.Opponent)
	}
	if r.Opponent != r.Mover.Other() {
		return fmt.Errorf("%w: mover and opponent are both %s", ErrInvalidRequest, r.Mover)
	}
	return nil
}

// Decision is the chosen action and the position it leads to.
type Decision struct {
	Action    game.Action
	State     game.State
	Visited   game.Visited
	Class     Classification // Class of the chosen child
	Value     Value          // Backed-up value of the searched position
	Variation []game.Action  // Expected line of play, starting with Action
	AtLeaf    bool           // The position itself was a leaf, nothing was searched
	Metric    metrics.SearchMetric
}

// Searcher picks moves for one agent. Observe is told every action played in
// the real game, by either agent.
type Searcher interface {
	ChooseMove(req Request) (Decision, error)
	Observe(action game.Action) error
}

type Option func(c *config)

type config struct {
	cutoff   int
	mode     Mode
	strategy Strategy
	pruning  bool
	metrics  metrics.Collector
}

// WithCutoff sets the horizon in plies. Zero makes the root itself a leaf.
func WithCutoff(depth int) Option {
	return func(c *config) {
		if depth >= 0 {
			c.cutoff = depth
		}
	}
}

func WithMode(mode Mode) Option {
	return func(c *config) {
		c.mode = mode
	}
}

func WithStrategy(strategy Strategy) Option {
	return func(c *config) {
		c.strategy = strategy
	}
}

// WithoutPruning searches adversarial trees with plain minimax.
func WithoutPruning() Option {
	return func(c *config) {
		c.pruning = false
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		cutoff:   meta.DEFAULT_CUTOFF,
		mode:     Adversarial,
		strategy: Incremental,
		pruning:  true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

func (c config) newSession(w world.World) *session {
	return &session{
		world:   w,
		policy:  NewPolicy(c.mode),
		cutoff:  c.cutoff,
		pruning: c.pruning,
		metrics: c.metrics,
	}
}

// New returns a searcher for the configured strategy.
func New(w world.World, options ...Option) Searcher {
	c := newConfig(options)
	if c.strategy == FullTree {
		return &FullTreeSearcher{world: w, config: c}
	}
	return &IncrementalSearcher{world: w, config: c}
}

// ChooseMove runs a single search from req.
func ChooseMove(w world.World, req Request, options ...Option) (Decision, error) {
	return New(w, options...).ChooseMove(req)
}

// Search builds and evaluates a tree rooted at req and returns its root.
func Search(w world.World, req Request, options ...Option) (*Node, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	c := newConfig(options)
	s := c.newSession(w)
	root := s.newRoot(req)
	if err := s.search(root); err != nil {
		return nil, err
	}
	return root, nil
}
