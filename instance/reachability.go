package instance

import "github.com/katalvlaran/lvlath-pibt/grid"

// reachableSet breadth-first walks g's spatial adjacency from start,
// orientation ignored, and returns a node-id-indexed membership set of every
// node reached. It mirrors the teacher's bfs.BFS in shape (a visited set
// plus a FIFO frontier, touching each edge once) but is keyed directly by
// grid.Node.ID instead of a string vertex id, since every other query this
// module runs against a Grid — weight lookup, neighbour expansion, the
// distance table — already addresses nodes that way; routing reachability
// through a separate string-keyed graph would only add a translation layer
// this package has no other use for.
//
// Reachability here deliberately ignores directed edge weights: a node is
// "reachable" if some sequence of spatial moves can reach it at all, the
// same connectivity notion §4.5's pre-check is meant to police (an agent
// stranded behind obstacles, not an agent merely facing an expensive detour).
func reachableSet(g *grid.Grid, start *grid.Node) []bool {
	visited := make([]bool, g.Size())
	visited[start.ID] = true

	queue := make([]*grid.Node, 0, g.Size())
	queue = append(queue, start)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range u.Neighbors() {
			if visited[v.ID] {
				continue
			}
			visited[v.ID] = true
			queue = append(queue, v)
		}
	}

	return visited
}
