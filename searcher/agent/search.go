package agent

import (
	"hurricane/game"
	"hurricane/searcher"

	"github.com/rs/zerolog/log"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays the moves its game-tree search picks.
func NewSearchAgent(s searcher.Searcher) Agent {
	return &searchAgent{searcher: s}
}

func (a *searchAgent) FindMove(req searcher.Request) (Move, error) {
	d, err := a.searcher.ChooseMove(req)
	if err != nil {
		return Move{}, err
	}
	return Move{
		Action: d.Action,
		Class:  d.Class,
		Value:  d.Value.For(req.Mover),
		AtLeaf: d.AtLeaf,
		Metric: d.Metric,
	}, nil
}

func (a *searchAgent) Observe(action game.Action) {
	if err := a.searcher.Observe(action); err != nil {
		log.Warn().Err(err).Msg("Search tree dropped, rebuilding on next move")
	}
}
