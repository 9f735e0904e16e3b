package agent

import (
	"hurricane/game"
	"hurricane/searcher"
	"hurricane/world"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	world world.World
	rng   *rand.Rand
}

// NewRandomAgent returns a baseline agent that picks uniformly among the legal
// actions. The same seed replays the same game.
func NewRandomAgent(w world.World, seed uint64) Agent {
	return &randomAgent{world: w, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(req searcher.Request) (Move, error) {
	actions := game.LegalActions(a.world, req.State, req.Mover)
	return Move{Action: actions[a.rng.Intn(len(actions))]}, nil
}

func (a *randomAgent) Observe(game.Action) {}
