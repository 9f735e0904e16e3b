package game

import (
	"fmt"
	"strconv"
	"strings"

	"hurricane/world"
)

type ActionType int

const (
	NoOpAction ActionType = iota
	TraverseAction
)

// Action is either a no-op or a traversal to an adjacent vertex.
type Action struct {
	Type ActionType
	To   world.Tag // Destination, traversals only
}

func NoOp() Action {
	return Action{Type: NoOpAction}
}

func TraverseTo(tag world.Tag) Action {
	return Action{Type: TraverseAction, To: tag}
}

func (a Action) IsNoOp() bool {
	return a.Type == NoOpAction
}

// String renders the action token: NOP or T<tag>.
func (a Action) String() string {
	switch a.Type {
	case NoOpAction:
		return "NOP"
	case TraverseAction:
		return "T" + strconv.Itoa(int(a.To))
	default:
		return fmt.Sprintf("action(%d)", int(a.Type))
	}
}

// InvalidActionError reports an action token or traversal that cannot be played.
type InvalidActionError struct {
	Token  string
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("invalid action %q: %s", e.Token, e.Reason)
}

// ParseAction reads NOP, NOOP or T<tag>, case-insensitively.
func ParseAction(token string) (Action, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	switch {
	case t == "NOP" || t == "NOOP":
		return NoOp(), nil
	case strings.HasPrefix(t, "T") && len(t) > 1:
		n, err := strconv.Atoi(t[1:])
		if err != nil || n <= 0 {
			return Action{}, &InvalidActionError{Token: token, Reason: "destination must be a positive vertex tag"}
		}
		return TraverseTo(world.Tag(n)), nil
	default:
		return Action{}, &InvalidActionError{Token: token, Reason: "expected NOP or T<vertex>"}
	}
}
