package solver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-pibt/internal/warehouse"
	"github.com/katalvlaran/lvlath-pibt/plan"
	"github.com/katalvlaran/lvlath-pibt/solver"
)

func writeWarehouseMap(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	stem := filepath.Join(dir, "warehouse")
	require.NoError(t, os.WriteFile(stem+".map", []byte(warehouse.MapText), 0o644))

	return stem
}

// TestNew_WarehouseFixture exercises the solver's full load/validate
// pipeline against the reference benchmark grid (spec.md §8) rather than
// only the synthetic 3x3 map every other test in this package uses.
func TestNew_WarehouseFixture(t *testing.T) {
	stem := writeWarehouseMap(t)
	s, err := solver.New(solver.WithMapStem(stem), solver.WithRandomAgents(5), solver.WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, warehouse.Width, s.Grid().Width())
	require.Equal(t, warehouse.Height, s.Grid().Height())
	require.Equal(t, warehouse.Size, s.Grid().Size())
	require.Equal(t, 5, s.Instance().NumAgents())
}

// TestCreateDistanceTable_WarehouseBottleneck runs the distance-table
// precomputation and lower-bound derivation against one of §8's pinned
// bottleneck configurations, confirming the solver-level machinery (not
// just PIBT's own tick loop) operates correctly on the reference grid.
func TestCreateDistanceTable_WarehouseBottleneck(t *testing.T) {
	stem := writeWarehouseMap(t)
	g, err := warehouse.NewGrid()
	require.NoError(t, err)

	scn := warehouse.Scenarios[0] // two_agents
	startStates, goalStates := scn.Config(g)
	start := plan.Config(startStates)
	goal := plan.Config(goalStates)

	s, err := solver.New(solver.WithMapStem(stem), solver.WithStartGoal(start, goal))
	require.NoError(t, err)

	s.CreateDistanceTable()
	for i := 0; i < s.Instance().NumAgents(); i++ {
		require.Equal(t, 0, s.PathDist(i, goal[i].Node))
		require.Greater(t, s.PathDistFromStart(i), 0)
	}
	require.Greater(t, s.LowerBoundMakespan(), 0)
	require.GreaterOrEqual(t, s.LowerBoundSOC(), s.LowerBoundMakespan())
}
