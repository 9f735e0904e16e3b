package main

import (
	"fmt"
	"os"

	"hurricane/config"
	"hurricane/game"
	"hurricane/logging"
	"hurricane/world"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	overrides  struct {
		graph    string
		cutoff   int
		mode     string
		strategy string
		maxTurns int
		outDir   string
	}
)

var rootCmd = &cobra.Command{
	Use:           "hurricane",
	Short:         "Two-agent game-tree search for the hurricane evacuation game",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return logging.Init(logLevel)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "yaml or toml config file")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVarP(&overrides.graph, "graph", "g", "", "graph file, overrides the config")
	flags.IntVar(&overrides.cutoff, "cutoff", 0, "search horizon in plies, overrides the config")
	flags.StringVar(&overrides.mode, "mode", "", "adversarial, semi-coop or full-coop, overrides the config")
	flags.StringVar(&overrides.strategy, "strategy", "", "incremental or full-tree, overrides the config")
	flags.IntVar(&overrides.maxTurns, "max-turns", 0, "turn limit, overrides the config")
	flags.StringVar(&overrides.outDir, "out-dir", "", "directory for experiment records, overrides the config")

	rootCmd.AddCommand(runCmd, experimentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Defaults()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("graph") {
		cfg.Graph = overrides.graph
	}
	if flags.Changed("cutoff") {
		cfg.Cutoff = overrides.cutoff
	}
	if flags.Changed("mode") {
		cfg.Mode = overrides.mode
	}
	if flags.Changed("strategy") {
		cfg.Strategy = overrides.strategy
	}
	if flags.Changed("max-turns") {
		cfg.MaxTurns = overrides.maxTurns
	}
	if flags.Changed("out-dir") {
		cfg.OutDir = overrides.outDir
	}
	if len(cfg.Agents) == 0 {
		cfg.Agents = []config.AgentSpec{{Kind: config.KindSearch, Start: 1}, {Kind: config.KindSearch, Start: 1}}
	}

	cfg.Normalize()
	return cfg, cfg.Validate()
}

func loadWorld(cfg config.Config) (*world.Graph, [game.NumAgents]world.Tag, error) {
	var start [game.NumAgents]world.Tag
	g, err := world.Load(cfg.Graph, cfg.Slowdown)
	if err != nil {
		return nil, start, err
	}
	for i, a := range cfg.Agents {
		tag := world.Tag(a.Start)
		if _, ok := g.Vertices[tag]; !ok {
			return nil, start, fmt.Errorf("agent %d starts at unknown vertex %d", i+1, a.Start)
		}
		start[i] = tag
	}
	return g, start, nil
}
