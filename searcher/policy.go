package searcher

import (
	"fmt"
	"strings"

	"hurricane/game"
	"hurricane/utils"
)

// Mode selects how the two agents' scores fold into a comparable value.
type Mode int

const (
	Adversarial Mode = iota
	SemiCooperative
	FullyCooperative
)

var modeNames = []string{"adversarial", "semi-coop", "full-coop"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode accepts the short names (adversarial, semi-coop, full-coop) and
// the long ones (semi-cooperative, fully-cooperative).
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "semi-cooperative":
		name = "semi-coop"
	case "fully-cooperative", "full-cooperative":
		name = "full-coop"
	}
	i := utils.FindIndex(modeNames, name)
	if i < 0 {
		return 0, fmt.Errorf("unknown mode %q", s)
	}
	return Mode(i), nil
}

// Value holds a backed-up objective as seen by each agent. A mover always
// maximizes its own coordinate.
type Value [game.NumAgents]float64

func (v Value) For(agent game.AgentID) float64 {
	return v[agent]
}

// Policy scores leaf states.
type Policy interface {
	Mode() Mode
	Utility(s game.State) Value
	// ZeroSum reports whether one agent's gain is the other's loss, the
	// precondition for alpha-beta pruning.
	ZeroSum() bool
}

func NewPolicy(mode Mode) Policy {
	switch mode {
	case Adversarial:
		return adversarial{}
	case SemiCooperative:
		return semiCooperative{}
	case FullyCooperative:
		return fullyCooperative{}
	default:
		panic(fmt.Sprintf("unknown mode %d", int(mode)))
	}
}

func score(s game.State, agent game.AgentID) float64 {
	return float64(s.Agent(agent).Saved)
}

// adversarial values the state by saved(primary) - saved(secondary).
type adversarial struct{}

func (adversarial) Mode() Mode    { return Adversarial }
func (adversarial) ZeroSum() bool { return true }

func (adversarial) Utility(s game.State) Value {
	return zeroSum(score(s, game.Primary) - score(s, game.Secondary))
}

func zeroSum(primary float64) Value {
	return Value{primary, -primary}
}

// semiCooperative keeps both scores; each agent maximizes its own.
type semiCooperative struct{}

func (semiCooperative) Mode() Mode    { return SemiCooperative }
func (semiCooperative) ZeroSum() bool { return false }

func (semiCooperative) Utility(s game.State) Value {
	return Value{score(s, game.Primary), score(s, game.Secondary)}
}

// fullyCooperative shares the total saved between both agents.
type fullyCooperative struct{}

func (fullyCooperative) Mode() Mode    { return FullyCooperative }
func (fullyCooperative) ZeroSum() bool { return false }

func (fullyCooperative) Utility(s game.State) Value {
	total := score(s, game.Primary) + score(s, game.Secondary)
	return Value{total, total}
}
