package experiments

import (
	"fmt"

	"hurricane/experiments/metrics"
	"hurricane/searcher"
	"hurricane/searcher/agent"
	"hurricane/world"
)

const (
	KindSearch = "search"
	KindRandom = "random"
)

// NewAgent builds the agent a config describes. Search agents always
// collect metrics.
func NewAgent(w world.World, config metrics.AgentConfig) (agent.Agent, error) {
	switch config.Kind {
	case KindRandom:
		return agent.NewRandomAgent(w, config.Seed), nil
	case KindSearch, "":
		options, err := SearchOptions(config)
		if err != nil {
			return nil, err
		}
		return agent.NewSearchAgent(searcher.New(w, options...)), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func SearchOptions(config metrics.AgentConfig) ([]searcher.Option, error) {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}

	if config.Mode != "" {
		mode, err := searcher.ParseMode(config.Mode)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithMode(mode))
	}
	if config.Strategy != "" {
		strategy, err := searcher.ParseStrategy(config.Strategy)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithStrategy(strategy))
	}
	if !config.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return options, nil
}
