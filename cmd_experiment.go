package main

import (
	"fmt"

	"hurricane/config"
	"hurricane/experiments"
	"hurricane/experiments/metrics"
	"hurricane/searcher"

	"github.com/spf13/cobra"
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Play search agents with increasing cutoffs against a baseline and store CSV records",
	RunE:  runExperiment,
}

func runExperiment(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	g, start, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	mode, err := searcher.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	strategy, err := searcher.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	baseline := metrics.AgentConfig{ID: 0, Kind: cfg.Experiment.Baseline, Seed: cfg.Seed}
	if baseline.Kind == config.KindSearch {
		baseline.Mode, baseline.Strategy, baseline.Cutoff, baseline.Pruning = mode.String(), strategy.String(), cfg.Cutoff, !cfg.NoPruning
	}
	cutoffs := cfg.Experiment.Cutoffs
	if len(cutoffs) == 0 {
		for c := 1; c <= cfg.Cutoff; c++ {
			cutoffs = append(cutoffs, c)
		}
	}
	configs, matchUps := experiments.CutoffMatchUps(baseline, mode, strategy, cutoffs)

	dir, err := experiments.Run(experiments.Experiment{
		Name:     cfg.Experiment.Name,
		World:    g,
		Start:    start,
		Configs:  configs,
		MatchUps: matchUps,
		Games:    cfg.Experiment.Games,
		MaxTurns: cfg.MaxTurns,
		OutDir:   cfg.OutDir,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), dir)
	return nil
}
