package pibt_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-pibt/grid"
	"github.com/katalvlaran/lvlath-pibt/pibt"
	"github.com/katalvlaran/lvlath-pibt/plan"
	"github.com/katalvlaran/lvlath-pibt/solver"
)

const openMap = `height 3
width 3
map
...
...
...
`

func newSolver(t *testing.T, opts ...solver.Option) *solver.Solver {
	t.Helper()
	dir := t.TempDir()
	stem := filepath.Join(dir, "grid")
	require.NoError(t, os.WriteFile(stem+".map", []byte(openMap), 0o644))

	base := []solver.Option{
		solver.WithMapStem(stem),
		solver.WithMaxTimestep(200),
		solver.WithMaxCompTime(time.Second),
	}
	s, err := solver.New(append(base, opts...)...)
	require.NoError(t, err)

	return s
}

func TestSolve_SingleAgent_Succeeds(t *testing.T) {
	s := newSolver(t, solver.WithRandomAgents(1), solver.WithSeed(11))
	p, err := pibt.NewPlanner(s)
	require.NoError(t, err)
	require.NoError(t, p.Solve())
	require.True(t, s.Succeed())
	require.NotNil(t, s.Solution())

	ins := s.Instance()
	require.True(t, s.Solution().Validate(ins.Start(), ins.Goal(), nil))
}

func TestSolve_TwoAgents_ConvergeOnSharedGoal(t *testing.T) {
	// Both agents head for the same center cell; the spec's bottleneck
	// property: this is allowed because the first to arrive is removed
	// before the second needs the cell.
	dir := t.TempDir()
	stem := filepath.Join(dir, "grid")
	require.NoError(t, os.WriteFile(stem+".map", []byte(openMap), 0o644))

	g, err := grid.NewFromMap(strings.NewReader(openMap))
	require.NoError(t, err)

	start := plan.Config{
		{Node: g.NodeAt(0, 1), Orientation: grid.PlusX},
		{Node: g.NodeAt(2, 1), Orientation: grid.MinusX},
	}
	goal := plan.Config{
		{Node: g.NodeAt(1, 1), Orientation: grid.PlusY},
		{Node: g.NodeAt(1, 1), Orientation: grid.PlusY},
	}

	s2, err := solver.New(
		solver.WithMapStem(stem),
		solver.WithMaxTimestep(200),
		solver.WithMaxCompTime(time.Second),
		solver.WithStartGoal(start, goal),
	)
	require.NoError(t, err)

	p, err := pibt.NewPlanner(s2)
	require.NoError(t, err)
	require.NoError(t, p.Solve())
	require.True(t, s2.Succeed())

	require.True(t, s2.Solution().Validate(start, goal, nil))
}

func TestSolve_LowerBoundHolds(t *testing.T) {
	s := newSolver(t, solver.WithRandomAgents(3), solver.WithSeed(5))
	p, err := pibt.NewPlanner(s)
	require.NoError(t, err)
	require.NoError(t, p.Solve())
	require.True(t, s.Succeed())

	require.LessOrEqual(t, s.LowerBoundMakespan(), s.Solution().Makespan())
}

func TestNewPlanner_AcceptsPIBTSolverName(t *testing.T) {
	// solver.New itself rejects unknown names, so NewPlanner's rejection
	// path cannot be reached with a Solver built the normal way; this checks
	// that its guard accepts the solver's recorded default name.
	s := newSolver(t, solver.WithRandomAgents(1))
	require.Equal(t, solver.PIBTSolverName, s.SolverName())

	p, err := pibt.NewPlanner(s)
	require.NoError(t, err)
	require.NotNil(t, p)
}
