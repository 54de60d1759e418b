package solver_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-pibt/solver"
)

const testMap = `height 3
width 3
map
...
...
...
`

func writeMap(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	stem := filepath.Join(dir, "grid")
	require.NoError(t, os.WriteFile(stem+".map", []byte(testMap), 0o644))

	return stem
}

func TestNew_UnknownSolverName(t *testing.T) {
	stem := writeMap(t)
	_, err := solver.New(
		solver.WithMapStem(stem),
		solver.WithRandomAgents(1),
		solver.WithSolverName("ECBS"),
	)
	require.ErrorIs(t, err, solver.ErrUnknownSolver)
}

func TestNew_RequiresMapStem(t *testing.T) {
	_, err := solver.New(solver.WithRandomAgents(1))
	require.ErrorIs(t, err, solver.ErrMapStemRequired)
}

func TestNew_RequiresAgents(t *testing.T) {
	stem := writeMap(t)
	_, err := solver.New(solver.WithMapStem(stem))
	require.ErrorIs(t, err, solver.ErrNoAgents)
}

func TestNew_Success(t *testing.T) {
	stem := writeMap(t)
	s, err := solver.New(
		solver.WithMapStem(stem),
		solver.WithRandomAgents(3),
		solver.WithSeed(1),
		solver.WithMaxTimestep(100),
		solver.WithMaxCompTime(200*time.Millisecond),
	)
	require.NoError(t, err)
	require.Equal(t, solver.PIBTSolverName, s.SolverName())
	require.Equal(t, 3, s.Instance().NumAgents())
	require.False(t, s.Succeed())
	require.Nil(t, s.Solution())
}

func TestCreateDistanceTable(t *testing.T) {
	stem := writeMap(t)
	s, err := solver.New(solver.WithMapStem(stem), solver.WithRandomAgents(2), solver.WithSeed(3))
	require.NoError(t, err)

	s.CreateDistanceTable()
	table := s.DistanceTable()
	require.Len(t, table, 2)

	for i := 0; i < s.Instance().NumAgents(); i++ {
		goalNode := s.Instance().Goal()[i].Node
		require.Equal(t, 0, s.PathDist(i, goalNode))
	}

	require.GreaterOrEqual(t, s.LowerBoundMakespan(), 0)
	require.GreaterOrEqual(t, s.LowerBoundSOC(), s.LowerBoundMakespan())
}

func TestPathDistNodes_SameNode(t *testing.T) {
	stem := writeMap(t)
	s, err := solver.New(solver.WithMapStem(stem), solver.WithRandomAgents(1))
	require.NoError(t, err)

	g := s.Grid()
	n := g.NodeAt(0, 0)
	require.Equal(t, 0, s.PathDistNodes(n, n))

	other := g.NodeAt(2, 2)
	require.Equal(t, 4, s.PathDistNodes(n, other))
}

func TestNew_LoadsWeights(t *testing.T) {
	stem := writeMap(t)
	weightsText := "height 3\nwidth 3\nchannels 4\n"
	require.NoError(t, os.WriteFile(stem+".weights", []byte(weightsText), 0o644))

	s, err := solver.New(solver.WithMapStem(stem), solver.WithWeights(true), solver.WithRandomAgents(1))
	require.NoError(t, err)
	require.Equal(t, 4, s.Grid().Channels())
}
