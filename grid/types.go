package grid

import (
	"fmt"
	"math"
)

// MaxWeight is the impassability sentinel. Any edge weight >= MaxWeight is
// treated as "no edge" by A★ and by the distance table. Mirrors the
// reference implementation's INT_MAX/2 constant, expressed as a float64.
const MaxWeight float64 = 1073741823.0

// Orientation is one of four cardinal facings, or Unoriented to mean
// "direction ignored in neighbour expansion". Rotation arithmetic is modulo
// 4: (o+1)%4 is a left turn, (o+3)%4 is a right turn.
type Orientation int

// Cardinal facings. The numbering is also the weights-file channel order.
const (
	PlusY  Orientation = 0
	MinusX Orientation = 1
	MinusY Orientation = 2
	PlusX  Orientation = 3

	// Unoriented marks an agent whose facing is irrelevant to expansion.
	Unoriented Orientation = -1
)

// Valid reports whether o is one of the four cardinal facings or Unoriented.
func (o Orientation) Valid() bool {
	return o == Unoriented || (o >= PlusY && o <= PlusX)
}

// Left returns the facing one left turn away.
func (o Orientation) Left() Orientation { return Orientation((int(o) + 1) % 4) }

// Right returns the facing one right turn away.
func (o Orientation) Right() Orientation { return Orientation((int(o) + 3) % 4) }

// Step returns the unit displacement of a single forward move in facing o.
// o must be one of the four cardinal facings (not Unoriented); Step panics
// otherwise, matching unit's own contract.
func (o Orientation) Step() Pos { return unit(o) }

func (o Orientation) String() string {
	switch o {
	case PlusY:
		return "+y"
	case MinusX:
		return "-x"
	case MinusY:
		return "-y"
	case PlusX:
		return "+x"
	case Unoriented:
		return "unoriented"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// Pos is an integer 2D coordinate.
type Pos struct {
	X, Y int
}

// Add returns the component-wise sum of p and o.
func (p Pos) Add(o Pos) Pos { return Pos{p.X + o.X, p.Y + o.Y} }

// Manhattan returns the L1 distance between p and q.
func (p Pos) Manhattan(q Pos) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Euclidean returns the L2 distance between p and q.
func (p Pos) Euclidean(q Pos) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// unit returns the displacement of a single step in direction o.
// o must be one of the four cardinal facings (not Unoriented).
func unit(o Orientation) Pos {
	switch o {
	case PlusY:
		return Pos{0, 1}
	case MinusX:
		return Pos{-1, 0}
	case MinusY:
		return Pos{0, -1}
	case PlusX:
		return Pos{1, 0}
	default:
		panic(fmt.Sprintf("grid: unit() called with non-cardinal orientation %d", int(o)))
	}
}

// Node is a passable grid cell. Its id and position are fixed at creation;
// its neighbour list is appended in the fixed order (+y, −x, −y, +x) while
// the Grid loads and is never mutated afterward.
type Node struct {
	ID   int
	Pos  Pos
	next []*Node // finalized neighbour list, in fixed enumeration order
}

// Neighbors returns the node's immutable neighbour list.
func (n *Node) Neighbors() []*Node { return n.next }

// Degree returns the number of spatial neighbours of n.
func (n *Node) Degree() int { return len(n.next) }

// State pairs a Node with an Orientation. Two States are equal iff both
// components match. A nil Node is a sentinel for "agent absent at this
// timestep" in validation contexts only; states produced during planning
// always carry a live Node.
type State struct {
	Node        *Node
	Orientation Orientation
}

// Equal reports whether s and o refer to the same node and orientation.
func (s State) Equal(o State) bool {
	return s.Node == o.Node && s.Orientation == o.Orientation
}

// Grid is a static, directed, weighted 4-neighbour graph over a rectangular
// map. Nodes are indexed by id = y*width + x; obstacle cells leave a nil
// slot. Weights, when loaded, form a flat height*width*4 array, channel c at
// cell (x,y) holding the outgoing weight toward the neighbour in direction c.
type Grid struct {
	height, width int
	channels      int // 0 (unweighted) or 4
	nodes         []*Node
	weights       []float64
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Channels returns 0 (unweighted mode) or 4 (weighted mode).
func (g *Grid) Channels() int { return g.channels }

// Size returns height*width, the total number of cells (passable or not).
func (g *Grid) Size() int { return g.height * g.width }

// idOf returns the stable id for cell (x, y): y*width + x.
func (g *Grid) idOf(x, y int) int { return y*g.width + x }

// InBounds reports whether (x, y) lies within the grid's rectangle.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Exists reports whether (x, y) is in bounds and passable (has a Node).
func (g *Grid) Exists(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}

	return g.nodes[g.idOf(x, y)] != nil
}

// ExistsID reports whether id addresses an in-range, passable cell.
func (g *Grid) ExistsID(id int) bool {
	return id >= 0 && id < len(g.nodes) && g.nodes[id] != nil
}

// NodeAt returns the Node at (x, y), or nil if absent/out of bounds.
func (g *Grid) NodeAt(x, y int) *Node {
	if !g.Exists(x, y) {
		return nil
	}

	return g.nodes[g.idOf(x, y)]
}

// NodeByID returns the Node with the given id, or nil if absent/out of range.
func (g *Grid) NodeByID(id int) *Node {
	if !g.ExistsID(id) {
		return nil
	}

	return g.nodes[id]
}
