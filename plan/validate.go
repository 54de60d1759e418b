package plan

import (
	"github.com/katalvlaran/lvlath-pibt/grid"
	"github.com/katalvlaran/lvlath-pibt/mapflog"
)

// component names this package's log lines under.
const component = "Plan"

// Validate checks the plan against (start, goal) per §4.3's five rules:
//
//  1. Config 0 equals start, and the last live state of every agent equals
//     its goal.
//  2. Every Config has the same length N.
//  3. Every live-to-live transition is node-adjacent (or a wait) and its
//     orientation change respects the no-180°-flip-in-one-tick rule, or (for
//     a move) preserves orientation and lands on the unit step in that
//     direction.
//  4. No vertex conflict: no two agents share a node in the same Config.
//  5. No edge (swap) conflict: no two agents cross the same edge in
//     opposite directions in one tick.
//
// Validate never aborts; on failure it logs a diagnostic via log (if
// non-nil) and returns false.
func (p *Plan) Validate(start, goal Config, log *mapflog.Logger) bool {
	if p.Empty() {
		warn(log, "plan is empty; nothing to validate")
		return false
	}

	last, err := p.Last()
	if err != nil {
		warn(log, "failed to compute final configuration: %v", err)
		return false
	}
	if !SameConfig(last, goal) {
		warn(log, "validation failed; agents did not reach their goal")
		return false
	}
	first, _ := p.At(0)
	if !SameConfig(first, start) {
		warn(log, "validation failed; incorrect agent start states")
		return false
	}

	n := len(first)
	for t := 1; t <= p.Makespan(); t++ {
		curr, _ := p.At(t)
		if len(curr) != n {
			warn(log, "validation failed; unknown size of configuration at t=%d", t)
			return false
		}
		prev, _ := p.At(t - 1)

		for i := 0; i < n; i++ {
			ci := curr[i]
			if ci.Node == nil {
				continue // agent absent at this tick
			}
			pi := prev[i]
			if pi.Node == nil {
				continue // agent had no live state to transition from
			}
			if !transitionLegal(pi, ci) {
				warn(log, "validation failed; agent %d made an invalid transition at t=%d", i, t)
				return false
			}

			for j := i + 1; j < n; j++ {
				cj, pj := curr[j], prev[j]
				if cj.Node == nil {
					continue
				}
				if ci.Node == cj.Node {
					warn(log, "validation failed; vertex conflict between agents %d and %d at t=%d", i, j, t)
					return false
				}
				if ci.Node == pj.Node && pi.Node == cj.Node {
					warn(log, "validation failed; edge conflict between agents %d and %d at t=%d", i, j, t)
					return false
				}
			}
		}
	}

	return true
}

// transitionLegal reports whether prev -> curr is a legal single-tick
// per-agent transition: either a wait/turn on the same node (dθ in
// {0,1,3}, i.e. never a 180° flip), or a move to a spatial neighbour that
// preserves orientation and lands on pos + unit(orientation).
func transitionLegal(prev, curr grid.State) bool {
	if prev.Node == curr.Node {
		dtheta := (int(curr.Orientation) - int(prev.Orientation) + 4) % 4
		return dtheta == 0 || dtheta == 1 || dtheta == 3
	}

	if curr.Orientation != prev.Orientation {
		return false
	}
	if prev.Orientation < grid.PlusY || prev.Orientation > grid.PlusX {
		return false // moving requires a cardinal facing
	}

	found := false
	for _, nb := range prev.Node.Neighbors() {
		if nb == curr.Node {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	want := prev.Node.Pos.Add(prev.Orientation.Step())

	return want == curr.Node.Pos
}

func warn(log *mapflog.Logger, format string, args ...interface{}) {
	if log != nil {
		log.Warn(component, format, args...)
	}
}
