package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hurricane/experiments/metrics"
	"hurricane/meta"
	"hurricane/searcher"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	KindSearch = "search"
	KindRandom = "random"
	KindHuman  = "human"
)

type Config struct {
	Graph      string         `yaml:"graph" toml:"graph"`
	Slowdown   float64        `yaml:"slowdown" toml:"slowdown"`
	Cutoff     int            `yaml:"cutoff" toml:"cutoff"`
	Mode       string         `yaml:"mode" toml:"mode"`
	Strategy   string         `yaml:"strategy" toml:"strategy"`
	NoPruning  bool           `yaml:"no_pruning" toml:"no_pruning"`
	MaxTurns   int            `yaml:"max_turns" toml:"max_turns"`
	Seed       uint64         `yaml:"seed" toml:"seed"`
	OutDir     string         `yaml:"out_dir" toml:"out_dir"`
	Agents     []AgentSpec    `yaml:"agents" toml:"agents"`
	Experiment ExperimentSpec `yaml:"experiment" toml:"experiment"`
}

// AgentSpec places one agent. Empty mode, strategy and a zero cutoff
// inherit the top-level values.
type AgentSpec struct {
	Kind     string `yaml:"kind" toml:"kind"`
	Start    int    `yaml:"start" toml:"start"`
	Mode     string `yaml:"mode,omitempty" toml:"mode,omitempty"`
	Strategy string `yaml:"strategy,omitempty" toml:"strategy,omitempty"`
	Cutoff   int    `yaml:"cutoff,omitempty" toml:"cutoff,omitempty"`
}

type ExperimentSpec struct {
	Name     string `yaml:"name" toml:"name"`
	Baseline string `yaml:"baseline" toml:"baseline"` // Agent kind the cutoff agents play against
	Cutoffs  []int  `yaml:"cutoffs" toml:"cutoffs"`
	Games    int    `yaml:"games" toml:"games"`
}

// Load reads a yaml config, or a toml one when the path ends in .toml, over
// the defaults. An empty path yields the defaults, which still need a graph
// before they validate.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := decode(path, b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decode(path string, b []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(b), cfg)
		return err
	}
	return yaml.Unmarshal(b, cfg)
}

func Defaults() Config {
	return Config{
		Slowdown: meta.SLOWDOWN_FACTOR,
		Cutoff:   meta.DEFAULT_CUTOFF,
		Mode:     searcher.Adversarial.String(),
		Strategy: searcher.Incremental.String(),
		MaxTurns: meta.MAX_TURNS,
		Seed:     meta.SEED,
		OutDir:   "experiments",
		Experiment: ExperimentSpec{
			Name:     "cutoff",
			Baseline: KindRandom,
			Games:    2,
		},
	}
}

func (c *Config) Normalize() {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	for i := range c.Agents {
		c.Agents[i].Kind = strings.ToLower(strings.TrimSpace(c.Agents[i].Kind))
		if c.Agents[i].Kind == "" {
			c.Agents[i].Kind = KindSearch
		}
	}
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Graph) == "" {
		errs = append(errs, errors.New("graph path is required"))
	}
	if c.Slowdown < 0 {
		errs = append(errs, fmt.Errorf("slowdown must be non-negative, got %g", c.Slowdown))
	}
	if c.Cutoff <= 0 {
		errs = append(errs, fmt.Errorf("cutoff must be positive, got %d", c.Cutoff))
	}
	if _, err := searcher.ParseMode(c.Mode); err != nil {
		errs = append(errs, err)
	}
	if _, err := searcher.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if c.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	if len(c.Agents) != 2 {
		errs = append(errs, fmt.Errorf("exactly 2 agents are required, got %d", len(c.Agents)))
	}
	for i, a := range c.Agents {
		if err := a.validate(); err != nil {
			errs = append(errs, fmt.Errorf("agent %d: %w", i+1, err))
		}
	}
	for _, cutoff := range c.Experiment.Cutoffs {
		if cutoff <= 0 {
			errs = append(errs, fmt.Errorf("experiment cutoffs must be positive, got %d", cutoff))
		}
	}
	return errors.Join(errs...)
}

func (a AgentSpec) validate() error {
	switch a.Kind {
	case KindSearch, KindRandom, KindHuman:
	default:
		return fmt.Errorf("unknown kind %q", a.Kind)
	}
	if a.Start <= 0 {
		return fmt.Errorf("start must be a vertex tag, got %d", a.Start)
	}
	if a.Mode != "" {
		if _, err := searcher.ParseMode(a.Mode); err != nil {
			return err
		}
	}
	if a.Strategy != "" {
		if _, err := searcher.ParseStrategy(a.Strategy); err != nil {
			return err
		}
	}
	if a.Cutoff < 0 {
		return fmt.Errorf("cutoff must be positive, got %d", a.Cutoff)
	}
	return nil
}

// AgentConfig resolves the i-th agent against the top-level settings.
func (c Config) AgentConfig(i int) metrics.AgentConfig {
	a := c.Agents[i]
	config := metrics.AgentConfig{
		ID:       i + 1,
		Kind:     a.Kind,
		Mode:     c.Mode,
		Strategy: c.Strategy,
		Cutoff:   c.Cutoff,
		Pruning:  !c.NoPruning,
		Seed:     c.Seed + uint64(i),
	}
	if a.Mode != "" {
		config.Mode = a.Mode
	}
	if a.Strategy != "" {
		config.Strategy = a.Strategy
	}
	if a.Cutoff > 0 {
		config.Cutoff = a.Cutoff
	}
	return config
}
