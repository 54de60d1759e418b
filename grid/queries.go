package grid

import "fmt"

// directionOf returns the channel (0:+y, 1:−x, 2:−y, 3:+x) from u to v.
// v must be a spatial neighbour of u.
func directionOf(u, v Pos) (Orientation, bool) {
	switch {
	case v == u.Add(unit(PlusY)):
		return PlusY, true
	case v == u.Add(unit(MinusX)):
		return MinusX, true
	case v == u.Add(unit(MinusY)):
		return MinusY, true
	case v == u.Add(unit(PlusX)):
		return PlusX, true
	default:
		return 0, false
	}
}

// GetWeight returns the outgoing edge weight from u toward v. Fails with
// ErrNotNeighbors if v is not a spatial neighbour of u, or ErrUnweighted if
// the grid has no loaded weights.
func (g *Grid) GetWeight(u, v *Node) (float64, error) {
	if g.channels == 0 {
		return 0, ErrUnweighted
	}
	ch, ok := directionOf(u.Pos, v.Pos)
	if !ok {
		return 0, fmt.Errorf("%w: (%d,%d) -> (%d,%d)", ErrNotNeighbors, u.Pos.X, u.Pos.Y, v.Pos.X, v.Pos.Y)
	}

	return g.weights[g.wid(u.Pos.X, u.Pos.Y, int(ch))], nil
}

// GetNeighbor enumerates s's successors, up to four, following §4.1:
//
//   - s.Orientation == Unoriented: every spatial neighbour of s.Node, itself
//     Unoriented, in the grid's fixed neighbour order.
//   - otherwise: forward move (same orientation, if the target cell exists),
//     then turn left, then turn right — turning always succeeds.
func (g *Grid) GetNeighbor(s State) []State {
	if s.Orientation == Unoriented {
		out := make([]State, 0, len(s.Node.next))
		for _, v := range s.Node.next {
			out = append(out, State{Node: v, Orientation: Unoriented})
		}

		return out
	}

	out := make([]State, 0, 3)
	target := s.Node.Pos.Add(unit(s.Orientation))
	if n := g.NodeAt(target.X, target.Y); n != nil {
		out = append(out, State{Node: n, Orientation: s.Orientation})
	}
	out = append(out, State{Node: s.Node, Orientation: s.Orientation.Left()})
	out = append(out, State{Node: s.Node, Orientation: s.Orientation.Right()})

	return out
}
