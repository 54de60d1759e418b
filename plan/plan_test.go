package plan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-pibt/grid"
	"github.com/katalvlaran/lvlath-pibt/plan"
)

const line3 = `height 1
width 3
map
...
`

func TestPlan_EmptyAccessors(t *testing.T) {
	p := plan.New()
	require.True(t, p.Empty())
	require.Zero(t, p.Size())
	require.Zero(t, p.Makespan())

	_, err := p.At(0)
	require.ErrorIs(t, err, plan.ErrEmptyPlan)

	_, err = p.GetPath(0)
	require.ErrorIs(t, err, plan.ErrEmptyPlan)

	_, err = p.Last()
	require.ErrorIs(t, err, plan.ErrEmptyPlan)
}

func TestPlan_AddRejectsSizeMismatch(t *testing.T) {
	g, err := grid.NewFromMap(strings.NewReader(line3))
	require.NoError(t, err)

	p := plan.New()
	require.NoError(t, p.Add(plan.Config{{Node: g.NodeAt(0, 0), Orientation: grid.PlusX}}))
	err = p.Add(plan.Config{
		{Node: g.NodeAt(0, 0), Orientation: grid.PlusX},
		{Node: g.NodeAt(1, 0), Orientation: grid.PlusX},
	})
	require.ErrorIs(t, err, plan.ErrSizeMismatch)
}

func TestPlan_GetPathAndLast(t *testing.T) {
	g, err := grid.NewFromMap(strings.NewReader(line3))
	require.NoError(t, err)

	p := plan.New()
	require.NoError(t, p.Add(plan.Config{{Node: g.NodeAt(0, 0), Orientation: grid.PlusX}}))
	require.NoError(t, p.Add(plan.Config{{Node: g.NodeAt(1, 0), Orientation: grid.PlusX}}))
	require.NoError(t, p.Add(plan.Config{{Node: g.NodeAt(2, 0), Orientation: grid.PlusX}}))

	require.Equal(t, 1, p.Size())
	require.Equal(t, 2, p.Makespan())

	path, err := p.GetPath(0)
	require.NoError(t, err)
	require.Len(t, path, 3)
	require.Equal(t, g.NodeAt(2, 0), path[2].Node)

	last, err := p.Last()
	require.NoError(t, err)
	require.Equal(t, g.NodeAt(2, 0), last[0].Node)
}

func TestPlan_GetPathStopsAtAbsence(t *testing.T) {
	g, err := grid.NewFromMap(strings.NewReader(line3))
	require.NoError(t, err)

	p := plan.New()
	require.NoError(t, p.Add(plan.Config{{Node: g.NodeAt(0, 0), Orientation: grid.PlusX}}))
	require.NoError(t, p.Add(plan.Config{{Node: nil}}))

	path, err := p.GetPath(0)
	require.NoError(t, err)
	require.Len(t, path, 1)
}

func TestSameConfig(t *testing.T) {
	g, err := grid.NewFromMap(strings.NewReader(line3))
	require.NoError(t, err)

	a := plan.Config{{Node: g.NodeAt(0, 0), Orientation: grid.PlusX}}
	b := plan.Config{{Node: g.NodeAt(0, 0), Orientation: grid.PlusX}}
	c := plan.Config{{Node: g.NodeAt(1, 0), Orientation: grid.PlusX}}

	require.True(t, plan.SameConfig(a, b))
	require.False(t, plan.SameConfig(a, c))
	require.False(t, plan.SameConfig(a, plan.Config{}))
}

func TestPlan_Dump(t *testing.T) {
	g, err := grid.NewFromMap(strings.NewReader(line3))
	require.NoError(t, err)

	p := plan.New()
	require.NoError(t, p.Add(plan.Config{{Node: g.NodeAt(0, 0), Orientation: grid.PlusX}}))
	require.NoError(t, p.Add(plan.Config{{Node: g.NodeAt(1, 0), Orientation: grid.PlusX}}))

	var buf strings.Builder
	require.NoError(t, p.Dump(&buf))
	out := buf.String()
	require.Contains(t, out, "[Agent   0] :")
	require.Contains(t, out, "(  0,  0,  3)")
	require.Contains(t, out, "(  1,  0,  3)")
}

func TestPlan_Dump_EmptyIsNoop(t *testing.T) {
	p := plan.New()
	var buf strings.Builder
	require.NoError(t, p.Dump(&buf))
	require.Empty(t, buf.String())
}
