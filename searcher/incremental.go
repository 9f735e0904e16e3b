package searcher

import (
	"hurricane/game"
	"hurricane/world"

	"github.com/rs/zerolog/log"
)

// IncrementalSearcher discards its tree after every move and searches again
// from the real position, so the horizon always lies cutoff plies ahead.
type IncrementalSearcher struct {
	world world.World
	config
}

func NewIncremental(w world.World, options ...Option) *IncrementalSearcher {
	return &IncrementalSearcher{world: w, config: newConfig(options)}
}

func (p *IncrementalSearcher) ChooseMove(req Request) (Decision, error) {
	if err := req.validate(); err != nil {
		return Decision{}, err
	}

	p.metrics.Start(p.mode.String(), Incremental.String(), p.cutoff)
	p.metrics.SetTreeReset(true)

	s := p.newSession(p.world)
	root := s.newRoot(req)
	if err := s.search(root); err != nil {
		return Decision{}, err
	}

	d := s.decide(root)
	d.Metric = p.metrics.Complete()
	log.Debug().Msgf("%s chose %s from %d nodes", req.Mover, d.Action, s.nextID)
	return d, nil
}

// Observe is a no-op: nothing is kept between calls.
func (p *IncrementalSearcher) Observe(game.Action) error {
	return nil
}
