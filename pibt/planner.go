package pibt

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath-pibt/grid"
	"github.com/katalvlaran/lvlath-pibt/mapflog"
	"github.com/katalvlaran/lvlath-pibt/plan"
	"github.com/katalvlaran/lvlath-pibt/solver"
)

const component = "PIBT"

// Planner runs a single PIBT solve over a *solver.Solver. One Planner is
// good for exactly one Solve call's worth of state; build a fresh one (or
// call Solve again, which resets its internal tables) to re-run.
type Planner struct {
	s *solver.Solver

	occupiedNow  []*agent // indexed by node id
	occupiedNext []*agent
	agents       []*agent
}

// NewPlanner wraps s. Returns ErrWrongSolverName if s was not built with
// solver.WithSolverName(solver.PIBTSolverName) (the default).
func NewPlanner(s *solver.Solver) (*Planner, error) {
	if s.SolverName() != solver.PIBTSolverName {
		return nil, fmt.Errorf("%w: %q", ErrWrongSolverName, s.SolverName())
	}

	size := s.Grid().Size()

	return &Planner{
		s:            s,
		occupiedNow:  make([]*agent, size),
		occupiedNext: make([]*agent, size),
	}, nil
}

// Solve runs exec(): precompute the distance table, then the PIBT tick
// loop, mirroring MinimumSolver::solve() (start(); exec(); end()) and
// MAPF_Solver::exec() (createDistanceTable(); run();). The outcome is
// recorded on the wrapped Solver (Succeed/Solution); Solve's own return
// value is non-nil only for an invariant violation (an internal
// programming-error bug, never a planning failure — a planning failure is
// reported via Succeed() == false with a partial Plan, not an error).
func (p *Planner) Solve() (err error) {
	p.s.Start()
	defer p.s.End()

	defer func() {
		if r := recover(); r != nil {
			if ierr, ok := r.(error); ok {
				err = ierr

				return
			}
			panic(r)
		}
	}()

	p.s.CreateDistanceTable()
	p.run()

	return nil
}

// run is PIBT's five-phase tick loop (reserve / derive actions / commit /
// retire / advance), exactly mirroring PIBT::run().
func (p *Planner) run() {
	log := p.s.Log()
	if log == nil {
		log = mapflog.Nop()
	}
	log.Info(component, "running PIBT")

	ins := p.s.Instance()
	n := ins.NumAgents()
	rng := ins.Rand()

	for i := range p.occupiedNow {
		p.occupiedNow[i] = nil
		p.occupiedNext[i] = nil
	}

	p.agents = make([]*agent, n)
	for i := 0; i < n; i++ {
		a := &agent{
			id:       i,
			curr:     ins.Start()[i],
			goal:     ins.Goal()[i],
			initDist: p.s.PathDist(i, ins.Start()[i].Node),
			epsilon:  rng.Float64(),
		}
		p.agents[i] = a
		p.occupiedNow[a.curr.Node.ID] = a
	}

	pl := plan.New()
	if err := pl.Add(ins.Start()); err != nil {
		panic(fmt.Errorf("%w: %v", errInconsistentPlan, err))
	}

	order := make(byPriority, n)
	copy(order, p.agents)
	sort.Sort(order)

	timestep := 0
	solved := false

	for {
		for _, a := range order {
			if a.done || a.next != nil {
				continue
			}
			p.funcPIBT(a, nil)
		}

		actions := make([]Action, n)
		for _, a := range order {
			if a.done {
				continue
			}
			actions[a.id] = getAction(a.curr, a.next, a.goal)
		}

		config := make(plan.Config, n)
		for _, a := range order {
			if a.done || a.next == nil {
				continue
			}
			switch actions[a.id] {
			case ActionWait:
				p.wait(a, config)
				a.elapsed++
			case ActionTurnLeft, ActionTurnRight:
				p.turn(a, actions, config)
				a.elapsed++
			case ActionMove:
				p.move(a, actions, config)
				a.elapsed++
			default:
				panic(fmt.Errorf("%w: unknown agent action", errInconsistentPlan))
			}
		}
		if err := pl.Add(config); err != nil {
			panic(fmt.Errorf("%w: %v", errInconsistentPlan, err))
		}

		done := true
		for _, a := range order {
			if a.done {
				continue
			}
			if a.curr.Equal(a.goal) {
				if p.occupiedNow[a.curr.Node.ID] != a {
					panic(errInconsistentPlan)
				}
				p.occupiedNow[a.curr.Node.ID] = nil
				a.done = true
			}
			done = done && a.done
		}
		timestep++

		if done {
			solved = true
			break
		}
		if timestep >= p.s.MaxTimestep() {
			log.Warn(component, "exceeded maximum number of timesteps")
			break
		}
		if p.s.OverCompTime() {
			log.Warn(component, "exceeded maximum computation time limit")
			break
		}
	}

	p.s.SetSolution(pl, solved)
}

// funcPIBT is PIBT's recursive reservation step, exactly mirroring
// PIBT::funcPIBT. It attempts to reserve a next node for a, ranking
// candidates by (distance-to-goal, forward bias, prefer-empty), trying
// each in turn and recursing through any occupant whose own next is still
// unset. b, when non-nil, is the agent that invoked this call expecting a
// to vacate its current node — a must not reserve b's current node (that
// would be a swap conflict).
func (p *Planner) funcPIBT(a, b *agent) bool {
	var candidates []*grid.Node
	for _, nb := range a.curr.Node.Neighbors() {
		w, err := p.s.Grid().GetWeight(a.curr.Node, nb)
		if err == nil && w < grid.MaxWeight {
			candidates = append(candidates, nb)
		}
	}
	candidates = append(candidates, a.curr.Node)

	rng := p.s.Instance().Rand()
	rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	sort.SliceStable(candidates, func(i, j int) bool {
		return p.rank(a, candidates[i], candidates[j])
	})

	for _, v := range candidates {
		if p.occupiedNext[v.ID] != nil {
			continue
		}
		if b != nil && v == b.curr.Node {
			continue
		}
		p.occupiedNext[v.ID] = a
		a.next = v
		k := p.occupiedNow[v.ID]
		if k != nil && k.next == nil {
			if !p.funcPIBT(k, a) {
				// k's forced wait has re-reserved v for k itself.
				a.next = nil

				continue
			}
		}

		return true
	}

	a.next = a.curr.Node
	p.occupiedNext[a.next.ID] = a

	return false
}

// rank reports whether candidate u should be tried before candidate v for
// agent a, mirroring funcPIBT's compare lambda: closer to goal first, then
// the straight-ahead neighbour, then prefer an already-empty node.
func (p *Planner) rank(a *agent, u, v *grid.Node) bool {
	du := p.s.PathDist(a.id, u)
	dv := p.s.PathDist(a.id, v)
	if du != dv {
		return du < dv
	}

	fwd := a.curr.Node.Pos.Add(a.curr.Orientation.Step())
	uFwd := u.Pos == fwd
	vFwd := v.Pos == fwd
	if uFwd && !vFwd {
		return true
	}
	if !uFwd && vFwd {
		return false
	}

	uOcc := p.occupiedNow[u.ID] != nil
	vOcc := p.occupiedNow[v.ID] != nil
	if uOcc && !vOcc {
		return false
	}
	if !uOcc && vOcc {
		return true
	}

	return false
}

// wait clears a's reservation and leaves it at its current State,
// mirroring PIBT::wait.
func (p *Planner) wait(a *agent, config plan.Config) {
	if p.occupiedNext[a.next.ID] != a {
		panic(errInconsistentPlan)
	}
	p.occupiedNext[a.next.ID] = nil
	a.next = nil
	config[a.id] = a.curr
}

// turn clears a's reservation and rotates it in place, mirroring
// PIBT::turn.
func (p *Planner) turn(a *agent, actions []Action, config plan.Config) {
	if p.occupiedNext[a.next.ID] != a {
		panic(errInconsistentPlan)
	}
	p.occupiedNext[a.next.ID] = nil
	a.next = nil

	var o grid.Orientation
	switch actions[a.id] {
	case ActionTurnLeft:
		o = a.curr.Orientation.Left()
	case ActionTurnRight:
		o = a.curr.Orientation.Right()
	default:
		panic(fmt.Errorf("%w: incorrect action resolution", errInconsistentPlan))
	}
	a.curr = grid.State{Node: a.curr.Node, Orientation: o}
	config[a.id] = a.curr
}

// move commits a's reservation, recursing through a dependency chain of
// occupants that must themselves move first, mirroring PIBT::move. The
// recursion depth equals the length of the chain and is bounded by the
// number of live agents, since each call advances at most one agent whose
// next is still set.
func (p *Planner) move(a *agent, actions []Action, config plan.Config) bool {
	if p.occupiedNext[a.next.ID] != a {
		panic(errInconsistentPlan)
	}

	if p.occupiedNow[a.next.ID] == nil {
		if p.occupiedNow[a.curr.Node.ID] != a {
			panic(errInconsistentPlan)
		}
		p.occupiedNow[a.curr.Node.ID] = nil
		p.occupiedNow[a.next.ID] = a
		a.curr = grid.State{Node: a.next, Orientation: a.curr.Orientation}
		p.occupiedNext[a.next.ID] = nil
		a.next = nil
		config[a.id] = a.curr

		return true
	}

	bOcc := p.occupiedNow[a.next.ID]
	if actions[bOcc.id] != ActionMove || bOcc.next == nil {
		p.wait(a, config)

		return false
	}

	if p.occupiedNow[a.curr.Node.ID] != a {
		panic(errInconsistentPlan)
	}
	p.occupiedNow[a.curr.Node.ID] = nil
	if !p.move(bOcc, actions, config) {
		p.occupiedNow[a.curr.Node.ID] = a
		p.wait(a, config)

		return false
	}
	if p.occupiedNow[a.next.ID] != nil {
		panic(errInconsistentPlan)
	}
	p.occupiedNow[a.next.ID] = a
	a.curr = grid.State{Node: a.next, Orientation: a.curr.Orientation}
	p.occupiedNext[a.next.ID] = nil
	a.next = nil
	config[a.id] = a.curr

	return true
}
