package experiments

import (
	"fmt"

	"hurricane/engine"
	"hurricane/experiments/metrics"
	"hurricane/game"
	"hurricane/searcher"
	"hurricane/searcher/agent"
	"hurricane/world"

	"github.com/rs/zerolog/log"
)

const NumGames = 2 // Per match up, one with each starting player

type Experiment struct {
	Name     string
	World    world.World
	Start    [game.NumAgents]world.Tag
	Configs  []metrics.AgentConfig
	MatchUps [][game.NumAgents]metrics.AgentConfig
	Games    int // Per match up, defaults to NumGames
	MaxTurns int
	OutDir   string
}

// CutoffMatchUps pairs a baseline against one search agent per cutoff, all
// with the given mode and strategy.
func CutoffMatchUps(baseline metrics.AgentConfig, mode searcher.Mode, strategy searcher.Strategy, cutoffs []int) ([]metrics.AgentConfig, [][game.NumAgents]metrics.AgentConfig) {
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][game.NumAgents]metrics.AgentConfig{}
	for i, cutoff := range cutoffs {
		config := metrics.AgentConfig{
			ID:       baseline.ID + i + 1,
			Kind:     KindSearch,
			Mode:     mode.String(),
			Strategy: strategy.String(),
			Cutoff:   cutoff,
			Pruning:  true,
		}
		configs = append(configs, config)
		matchUps = append(matchUps, [game.NumAgents]metrics.AgentConfig{baseline, config})
	}
	return configs, matchUps
}

// Run plays every match up and stores the configs and records. It returns
// the directory the files were written to.
func Run(x Experiment) (string, error) {
	games := x.Games
	if games <= 0 {
		games = NumGames
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchup := range x.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.MatchUps), matchup[0], matchup[1])

		for i := 0; i < games; i++ {
			starting := game.AgentID(i % game.NumAgents)
			result, err := runGame(x, matchup, starting, uint64(count))
			if err != nil {
				return "", fmt.Errorf("failed to run matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     matchup[0].ID,
				Agent2:     matchup[1].ID,
				Reason:     result.Reason.String(),
				GameMetric: result.GameMetric,
			})
			for _, mm := range result.MoveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d: saved %v", mi+1, len(x.MatchUps), i+1, result.GameMetric.Saved)
		}
	}

	log.Info().Msgf("completed %s experiment", x.Name)
	return store(x, gameRecords, moveRecords)
}

func store(x Experiment, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(x.OutDir, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents
func runGame(x Experiment, matchup [game.NumAgents]metrics.AgentConfig, starting game.AgentID, salt uint64) (engine.Result, error) {
	var agents [game.NumAgents]agent.Agent
	for i, config := range matchup {
		config.Seed += salt
		a, err := NewAgent(x.World, config)
		if err != nil {
			return engine.Result{}, err
		}
		agents[i] = a
	}

	e := engine.LocalEngine(x.World, x.Start, agents,
		engine.WithStartingPlayer(starting),
		engine.WithMaxTurns(x.MaxTurns),
	)
	return e.Run()
}
