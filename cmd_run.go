package main

import (
	"fmt"
	"os"

	"hurricane/config"
	"hurricane/engine"
	"hurricane/experiments"
	"hurricane/game"
	"hurricane/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play one game between the configured agents",
	RunE:  runGame,
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	g, start, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	var (
		agents [game.NumAgents]agent.Agent
		human  agent.Agent // Both human seats share stdin
	)
	for i, spec := range cfg.Agents {
		if spec.Kind == config.KindHuman {
			if human == nil {
				human = agent.NewReaderAgent(os.Stdin, cmd.OutOrStdout())
			}
			agents[i] = human
			continue
		}
		agents[i], err = experiments.NewAgent(g, cfg.AgentConfig(i))
		if err != nil {
			return fmt.Errorf("agent %d: %w", i+1, err)
		}
	}

	log.Info().Msgf("Playing %s/%s with cutoff %d on %s", cfg.Mode, cfg.Strategy, cfg.Cutoff, cfg.Graph)
	result, err := engine.LocalEngine(g, start, agents, engine.WithMaxTurns(cfg.MaxTurns)).Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, turn := range result.Trace {
		fmt.Fprintf(out, "%3d %-9s %-4s %s\n", turn.Step, turn.Mover, turn.Action, turn.State)
	}
	fmt.Fprintf(out, "stopped: %s, saved %d + %d = %d at t=%g\n", result.Reason,
		result.GameMetric.Saved[0], result.GameMetric.Saved[1], result.GameMetric.TotalSaved, result.GameMetric.Elapsed)
	return nil
}
