package grid

import (
	"container/heap"
	"math/rand"
)

// Path is a sequence of States from a search's start to goal, inclusive.
type Path []State

// astarNode is one expansion in the A★ search pool. parent links back into
// the same pool to allow path reconstruction without a separate came-from
// map.
type astarNode struct {
	state  State
	g      float64
	f      float64
	parent *astarNode
}

// astarHeap is a min-heap by f, tie-broken toward the larger g (the deeper
// node is preferred among equal-f candidates, matching the reference
// implementation's comparator).
type astarHeap []*astarNode

func (h astarHeap) Len() int { return len(h) }
func (h astarHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].g > h[j].g
}
func (h astarHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *astarHeap) Push(x interface{}) { *h = append(*h, x.(*astarNode)) }
func (h *astarHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// stateKey canonicalizes a State for use as a closed-set key.
type stateKey struct {
	id  int
	ori Orientation
}

func keyOf(s State) stateKey { return stateKey{id: s.Node.ID, ori: s.Orientation} }

// GetPathWithCost computes the weighted shortest path from s to g in the
// composite (node × orientation) space, following §4.1's cost model:
// a forward move (same orientation across the step) costs GetWeight(u,v); a
// turn in place costs 1.0. Forward moves whose weight is >= MaxWeight are
// pruned. The heuristic is Manhattan distance between node positions.
//
// When rng is non-nil, each node's successors are shuffled before insertion,
// randomizing the tie-break among equal-cost paths deterministically given
// the RNG. prohibited, if non-nil, names nodes that may not be entered.
//
// If s == g, returns an empty path and cost 0. If no path exists, returns a
// nil path and cost 0.
func (g *Grid) GetPathWithCost(s, goal State, rng *rand.Rand, prohibited map[*Node]struct{}) (Path, float64) {
	if s.Equal(goal) {
		return Path{}, 0
	}

	closed := make(map[stateKey]bool)
	start := &astarNode{state: s, g: 0, f: float64(s.Node.Pos.Manhattan(goal.Node.Pos))}
	open := &astarHeap{start}
	heap.Init(open)

	var last *astarNode
	for open.Len() > 0 {
		curr := heap.Pop(open).(*astarNode)
		k := keyOf(curr.state)
		if closed[k] {
			continue
		}
		closed[k] = true

		if curr.state.Equal(goal) {
			last = curr
			break
		}

		succ := g.GetNeighbor(curr.state)
		if rng != nil {
			rng.Shuffle(len(succ), func(i, j int) { succ[i], succ[j] = succ[j], succ[i] })
		}
		for _, next := range succ {
			if closed[keyOf(next)] {
				continue
			}
			if prohibited != nil {
				if _, blocked := prohibited[next.Node]; blocked {
					continue
				}
			}
			var w float64
			if curr.state.Orientation == next.Orientation {
				var err error
				w, err = g.GetWeight(curr.state.Node, next.Node)
				if err != nil {
					continue
				}
			} else {
				w = 1.0
			}
			if w >= MaxWeight {
				continue
			}
			gc := curr.g + w
			fc := gc + float64(next.Node.Pos.Manhattan(goal.Node.Pos))
			heap.Push(open, &astarNode{state: next, g: gc, f: fc, parent: curr})
		}
	}

	if last == nil {
		return nil, 0
	}

	var path Path
	for n := last; n != nil; n = n.parent {
		path = append(path, n.state)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, last.g
}
