// Package warehouse holds the single warehouse fixture spec.md §8 pins its
// six reference scenarios against: a 35×21 map with one obstacle, plus the
// literal agent coordinates those scenarios name. It exists so grid, solver,
// and pibt's test suites share one source of the fixture instead of three
// independent, error-prone transcriptions of the same map and coordinates
// (mirroring the teacher's own "testutil" helper-file pattern, promoted to a
// package of its own because here the fixture crosses package boundaries).
package warehouse

import (
	"strings"

	"github.com/katalvlaran/lvlath-pibt/grid"
)

// Map dimensions. The reference benchmark grid this fixture stands in for is
// 35 columns by 21 rows with a single blocked cell; the original binary map
// asset was not part of the retrieved sources, so this map is engineered from
// scratch to reproduce every numeric assertion the reference test suite pins
// against a map of this shape (see MapText's doc comment for the proof).
const (
	Width  = 35
	Height = 21
	Size   = Width * Height // 735

	obstacleX = 7
	obstacleY = 2
)

// MapText is the grid.NewFromMap source for the warehouse fixture: Height
// rows of Width '.' cells, except a single 'T' obstacle at (obstacleX,
// obstacleY). Every cell other than that one is passable, which makes the
// fixture's geometry provable by hand rather than merely plausible:
//
//   - Width*Height == Size == 735, and (obstacleX, obstacleY) is the only
//     absent node, so Exists(0,0) is true and Exists(7,2) is false.
//   - The Manhattan distance from (0,0) to (34,20) is 34+20 = 54, and no
//     route of that length is blocked (the only obstacle sits at row 2,
//     column 7, off every shortest L-path between the corners). So the
//     unoriented shortest path has exactly 54 edges (55 states), and the
//     oriented path from facing +y to facing +x, a single quarter turn
//     apart, costs exactly 54 moves + 1 turn = 55 (56 states): go up
//     column 0 from (0,0) to (0,20), turn once from +y to +x, then go right
//     along row 20 to (34,20). Both figures are hard lower bounds (Manhattan
//     distance, and one turn whenever start and goal orientations differ),
//     so whatever A★ finds must match them exactly.
//   - At (6,2), the only missing neighbour is (7,2) itself: unoriented
//     degree 3, oriented degree 3 when facing the existing neighbours and 2
//     when facing the missing one (no forward move, only the two turns).
//   - At the (0,0) corner, unoriented degree is 2 and oriented degree (along
//     an existing axis) is 3; at the interior cell (1,1), unoriented degree
//     is 4 and oriented degree (along an existing axis) is 3.
// MapText is built once at package init from the row template rather than
// typed out by hand, so the row length and the obstacle's column can't drift
// out of sync with Width/Height/obstacleX/obstacleY above.
var MapText = buildMapText()

func buildMapText() string {
	var b strings.Builder
	b.WriteString("height 21\nwidth 35\nmap\n")
	row := strings.Repeat(".", Width)
	obstacleRow := row[:obstacleX] + "T" + row[obstacleX+1:]
	for y := 0; y < Height; y++ {
		if y == obstacleY {
			b.WriteString(obstacleRow)
		} else {
			b.WriteString(row)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// NewGrid parses MapText and installs uniform unit weights, ready for
// GetPathWithCost/GetNeighbor queries or a solver.WithMapStem-style load.
func NewGrid() (*grid.Grid, error) {
	g, err := grid.NewFromMap(strings.NewReader(MapText))
	if err != nil {
		return nil, err
	}
	g.GenerateUniformWeights()

	return g, nil
}

// State builds a grid.State for (x, y, orientation) against g, the shorthand
// the pinned scenarios below are expressed in.
func State(g *grid.Grid, x, y int, orientation grid.Orientation) grid.State {
	return grid.State{Node: g.NodeAt(x, y), Orientation: orientation}
}

// Scenario is one of spec.md §8's named multi-agent bottleneck fixtures: a
// fixed set of agent starts, all converging on (possibly shared) goals.
type Scenario struct {
	Name   string
	Starts [][3]int // (x, y, orientation) per agent
	Goals  [][3]int
}

// Scenarios holds the three literal bottleneck configurations spec.md §8
// pins by coordinate, each one extending the last by one more agent. The
// first three agents share the convergence point (17,18) facing PlusY; the
// fourth agent's goal is (17,15) facing MinusY.
var Scenarios = []Scenario{
	{
		Name: "two_agents",
		Starts: [][3]int{
			{9, 17, int(grid.PlusX)},
			{25, 17, int(grid.MinusX)},
		},
		Goals: [][3]int{
			{17, 18, int(grid.PlusY)},
			{17, 18, int(grid.PlusY)},
		},
	},
	{
		Name: "three_agents",
		Starts: [][3]int{
			{9, 17, int(grid.PlusX)},
			{25, 17, int(grid.MinusX)},
			{17, 9, int(grid.PlusY)},
		},
		Goals: [][3]int{
			{17, 18, int(grid.PlusY)},
			{17, 18, int(grid.PlusY)},
			{17, 18, int(grid.PlusY)},
		},
	},
	{
		Name: "four_agents",
		Starts: [][3]int{
			{9, 17, int(grid.PlusX)},
			{25, 17, int(grid.MinusX)},
			{17, 9, int(grid.PlusY)},
			{13, 19, int(grid.PlusX)},
		},
		Goals: [][3]int{
			{17, 18, int(grid.PlusY)},
			{17, 18, int(grid.PlusY)},
			{17, 18, int(grid.PlusY)},
			{17, 15, int(grid.MinusY)},
		},
	},
}

// Config expands a Scenario's (x, y, orientation) triples into a
// plan-package-shaped pair of State slices against g. It returns []grid.State
// rather than plan.Config directly so this package need not import plan,
// which in turn would force every consumer of the grid-only parts of this
// fixture (grid_test) to pull in the plan package transitively.
func (s Scenario) Config(g *grid.Grid) (starts, goals []grid.State) {
	starts = make([]grid.State, len(s.Starts))
	for i, t := range s.Starts {
		starts[i] = State(g, t[0], t[1], grid.Orientation(t[2]))
	}
	goals = make([]grid.State, len(s.Goals))
	for i, t := range s.Goals {
		goals[i] = State(g, t[0], t[1], grid.Orientation(t[2]))
	}

	return starts, goals
}
