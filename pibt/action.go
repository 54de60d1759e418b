package pibt

import (
	"fmt"

	"github.com/katalvlaran/lvlath-pibt/grid"
)

// Action is a single agent's committed move for one tick.
type Action int

const (
	// ActionNone marks an agent not yet assigned an action this tick.
	ActionNone Action = iota
	ActionWait
	ActionMove
	ActionTurnLeft
	ActionTurnRight
)

func (a Action) String() string {
	switch a {
	case ActionWait:
		return "WAIT"
	case ActionMove:
		return "MOVE"
	case ActionTurnLeft:
		return "TURN_LEFT"
	case ActionTurnRight:
		return "TURN_RIGHT"
	default:
		return "NONE"
	}
}

// getAction derives curr -> next -> goal's Action, exactly mirroring
// PIBT::getAction. next is always a real (possibly unchanged) node by the
// time this is called — funcPIBT never leaves an agent's next unset.
func getAction(curr grid.State, next *grid.Node, goal grid.State) Action {
	if curr.Node == nil || next == nil || goal.Node == nil {
		panic(fmt.Errorf("%w: missing node in getAction", errInconsistentPlan))
	}

	if next == curr.Node {
		if next == goal.Node {
			dtheta := (int(goal.Orientation) - int(curr.Orientation) + 4) % 4
			if dtheta == 1 || dtheta == 2 {
				return ActionTurnLeft
			}

			return ActionTurnRight
		}

		return ActionWait
	}

	if curr.Orientation == grid.Unoriented {
		return ActionMove
	}

	target, ok := directionTo(curr.Node.Pos, next.Pos)
	if !ok {
		panic(fmt.Errorf("%w: agent intent to make an invalid move", errInconsistentPlan))
	}

	if curr.Orientation == target {
		return ActionMove
	}

	dtheta := (int(target) - int(curr.Orientation) + 4) % 4
	if dtheta == 1 || dtheta == 2 {
		return ActionTurnLeft
	}

	return ActionTurnRight
}

// directionTo returns the cardinal Orientation of the unit step from u to
// v, if v is exactly one of u's four cardinal neighbours.
func directionTo(u, v grid.Pos) (grid.Orientation, bool) {
	for _, o := range []grid.Orientation{grid.PlusY, grid.MinusX, grid.MinusY, grid.PlusX} {
		if u.Add(o.Step()) == v {
			return o, true
		}
	}

	return 0, false
}
