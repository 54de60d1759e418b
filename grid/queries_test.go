package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-pibt/grid"
)

const openMap3x3 = `height 3
width 3
map
...
...
...
`

func TestGetNeighbor_Unoriented(t *testing.T) {
	g, err := grid.NewFromMap(strings.NewReader(openMap3x3))
	require.NoError(t, err)

	center := grid.State{Node: g.NodeAt(1, 1), Orientation: grid.Unoriented}
	succ := g.GetNeighbor(center)
	require.Len(t, succ, 4)
	for _, s := range succ {
		require.Equal(t, grid.Unoriented, s.Orientation)
	}
}

func TestGetNeighbor_Oriented_ForwardThenTurns(t *testing.T) {
	g, err := grid.NewFromMap(strings.NewReader(openMap3x3))
	require.NoError(t, err)

	s := grid.State{Node: g.NodeAt(1, 1), Orientation: grid.PlusY}
	succ := g.GetNeighbor(s)
	require.Len(t, succ, 3) // forward + two turns, edge of board not hit here

	require.Equal(t, g.NodeAt(1, 2), succ[0].Node)
	require.Equal(t, grid.PlusY, succ[0].Orientation)
	require.Equal(t, grid.PlusY.Left(), succ[1].Orientation)
	require.Equal(t, grid.PlusY.Right(), succ[2].Orientation)
	require.Equal(t, s.Node, succ[1].Node)
	require.Equal(t, s.Node, succ[2].Node)
}

func TestGetNeighbor_Oriented_ForwardBlockedAtEdge(t *testing.T) {
	g, err := grid.NewFromMap(strings.NewReader(openMap3x3))
	require.NoError(t, err)

	s := grid.State{Node: g.NodeAt(0, 0), Orientation: grid.MinusY} // facing off-grid
	succ := g.GetNeighbor(s)
	require.Len(t, succ, 2) // only the two turns, forward move off-grid pruned
}

func TestOrientation_LeftRightRoundTrip(t *testing.T) {
	require.Equal(t, grid.MinusX, grid.PlusY.Left())
	require.Equal(t, grid.PlusX, grid.PlusY.Right())
	require.Equal(t, grid.PlusY, grid.PlusY.Left().Right())
}

func TestOrientation_Step(t *testing.T) {
	require.Equal(t, grid.Pos{X: 0, Y: 1}, grid.PlusY.Step())
	require.Equal(t, grid.Pos{X: 1, Y: 0}, grid.PlusX.Step())
	require.Panics(t, func() { grid.Unoriented.Step() })
}
