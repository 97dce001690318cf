package core

import "fmt"

// Action represents a semantic game action, abstracted from physical key presses.
// Key bindings resolve to actions; the engine only ever sees actions.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionRotateCW
	ActionRotateCCW
	ActionDrop
)

// Actions lists every bindable action in display order.
var Actions = []Action{
	ActionMoveUp,
	ActionMoveDown,
	ActionRotateCW,
	ActionRotateCCW,
	ActionDrop,
}

// String returns the config name of the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveUp:
		return "move_up"
	case ActionMoveDown:
		return "move_down"
	case ActionRotateCW:
		return "rotate_cw"
	case ActionRotateCCW:
		return "rotate_ccw"
	case ActionDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// Description returns a short human-readable label for help output.
func (a Action) Description() string {
	switch a {
	case ActionMoveUp:
		return "move up"
	case ActionMoveDown:
		return "move down"
	case ActionRotateCW:
		return "rotate clockwise"
	case ActionRotateCCW:
		return "rotate counterclockwise"
	case ActionDrop:
		return "drop"
	default:
		return "nothing"
	}
}

// ParseAction converts a config name back to an Action.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if a.String() == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("core: unknown action %q", name)
}
