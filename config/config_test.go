package config

import (
	"os"
	"path/filepath"
	"testing"

	"hurricane/meta"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	return writeNamed(t, "game.yaml", body)
}

func writeNamed(t *testing.T, name, body string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reading a full config", func(t *testing.T) {
		path := writeConfig(t, `
graph: maps/small.txt
slowdown: 0.25
cutoff: 6
mode: Full-Coop
strategy: full-tree
agents:
  - kind: search
    start: 1
  - kind: random
    start: 4
    cutoff: 3
experiment:
  cutoffs: [2, 4]
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "maps/small.txt", cfg.Graph)
		require.Equal(t, 0.25, cfg.Slowdown)
		require.Equal(t, "full-coop", cfg.Mode, "Mode should be normalized")
		require.Equal(t, meta.MAX_TURNS, cfg.MaxTurns, "Unset fields keep their defaults")
		require.Equal(t, []int{2, 4}, cfg.Experiment.Cutoffs)
		require.Equal(t, KindRandom, cfg.Experiment.Baseline)

		first, second := cfg.AgentConfig(0), cfg.AgentConfig(1)
		require.Equal(t, 6, first.Cutoff)
		require.Equal(t, 3, second.Cutoff, "Agent cutoff overrides the global one")
		require.Equal(t, "full-tree", second.Strategy)
		require.True(t, first.Pruning)
		require.NotEqual(t, first.Seed, second.Seed)
	})

	t.Run("defaulting the agent kind", func(t *testing.T) {
		path := writeConfig(t, `
graph: g.txt
agents: [{start: 1}, {start: 2}]
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, KindSearch, cfg.Agents[0].Kind)
	})

	t.Run("collecting every validation error", func(t *testing.T) {
		path := writeConfig(t, `
mode: chaotic
cutoff: -1
agents:
  - kind: wizard
    start: 0
`)

		_, err := Load(path)

		require.Error(t, err)
		for _, msg := range []string{"graph path is required", "unknown mode", "cutoff must be positive", "exactly 2 agents", "unknown kind"} {
			require.ErrorContains(t, err, msg)
		}
	})

	t.Run("reading a toml config", func(t *testing.T) {
		path := writeNamed(t, "game.toml", `
graph = "maps/small.txt"
cutoff = 4
strategy = "Full-Tree"

[[agents]]
start = 1

[[agents]]
kind = "random"
start = 3

[experiment]
cutoffs = [1, 2]
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "full-tree", cfg.Strategy)
		require.Equal(t, 4, cfg.Cutoff)
		require.Equal(t, KindSearch, cfg.Agents[0].Kind)
		require.Equal(t, 3, cfg.Agents[1].Start)
		require.Equal(t, []int{1, 2}, cfg.Experiment.Cutoffs)
		require.Equal(t, "cutoff", cfg.Experiment.Name, "Unset tables keep their defaults")
	})

	t.Run("rejecting malformed toml", func(t *testing.T) {
		_, err := Load(writeNamed(t, "game.toml", "graph = "))
		require.Error(t, err)
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "agents: [unterminated"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		require.Equal(t, Defaults(), cfg)
	})
}
