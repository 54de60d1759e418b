package pibt

import "github.com/katalvlaran/lvlath-pibt/grid"

// agent is PIBT's internal per-agent bookkeeping, mirroring the reference's
// PIBT::Agent. It exists only for the duration of one Solve call.
type agent struct {
	id       int
	curr     grid.State
	next     *grid.Node // tentative reservation for the upcoming tick
	goal     grid.State
	elapsed  int
	initDist int
	epsilon  float64
	done     bool
}

// byPriority sorts agents descending by (elapsed, init_dist, epsilon),
// exactly mirroring PIBT::run's compare lambda: more elapsed steps,
// then a longer initial distance, then a larger epsilon draw all push an
// agent earlier in priority order.
type byPriority []*agent

func (p byPriority) Len() int      { return len(p) }
func (p byPriority) Swap(i, j int) { p[i], p[j] = p[j], p[i] }
func (p byPriority) Less(i, j int) bool {
	a, b := p[i], p[j]
	if a.elapsed != b.elapsed {
		return a.elapsed > b.elapsed
	}
	if a.initDist != b.initDist {
		return a.initDist > b.initDist
	}

	return a.epsilon > b.epsilon
}
