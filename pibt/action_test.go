package pibt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-pibt/grid"
)

func TestGetAction_Wait(t *testing.T) {
	n := &grid.Node{ID: 0, Pos: grid.Pos{X: 0, Y: 0}}
	curr := grid.State{Node: n, Orientation: grid.PlusY}
	goal := grid.State{Node: &grid.Node{ID: 1}, Orientation: grid.PlusY}

	require.Equal(t, ActionWait, getAction(curr, n, goal))
}

func TestGetAction_Move(t *testing.T) {
	u := &grid.Node{ID: 0, Pos: grid.Pos{X: 0, Y: 0}}
	v := &grid.Node{ID: 1, Pos: grid.Pos{X: 0, Y: 1}}
	curr := grid.State{Node: u, Orientation: grid.PlusY}
	goal := grid.State{Node: &grid.Node{ID: 2}, Orientation: grid.PlusY}

	require.Equal(t, ActionMove, getAction(curr, v, goal))
}

func TestGetAction_TurnToFaceNeighbor(t *testing.T) {
	u := &grid.Node{ID: 0, Pos: grid.Pos{X: 0, Y: 0}}
	v := &grid.Node{ID: 1, Pos: grid.Pos{X: 1, Y: 0}} // +x direction
	curr := grid.State{Node: u, Orientation: grid.PlusY}
	goal := grid.State{Node: &grid.Node{ID: 2}, Orientation: grid.PlusY}

	// Facing +y (0), target direction +x (3): dtheta = (3-0+4)%4 = 3 -> TURN_RIGHT.
	require.Equal(t, ActionTurnRight, getAction(curr, v, goal))
}

func TestGetAction_RotateAtGoal(t *testing.T) {
	n := &grid.Node{ID: 0, Pos: grid.Pos{X: 0, Y: 0}}
	curr := grid.State{Node: n, Orientation: grid.PlusY}    // 0
	goal := grid.State{Node: n, Orientation: grid.MinusY}   // 2, dtheta = 2 -> TURN_LEFT per bucketing

	require.Equal(t, ActionTurnLeft, getAction(curr, n, goal))
}

func TestGetAction_RotateAtGoal_Right(t *testing.T) {
	n := &grid.Node{ID: 0, Pos: grid.Pos{X: 0, Y: 0}}
	curr := grid.State{Node: n, Orientation: grid.PlusY}  // 0
	goal := grid.State{Node: n, Orientation: grid.PlusX}  // 3, dtheta = 3 -> TURN_RIGHT

	require.Equal(t, ActionTurnRight, getAction(curr, n, goal))
}
