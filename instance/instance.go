package instance

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvlath-pibt/grid"
	"github.com/katalvlaran/lvlath-pibt/plan"
)

// Instance is a frozen MAPF problem: a Grid (borrowed, never mutated here),
// a start and goal Config of equal length, and the budgets a solver run
// obeys. It mirrors the reference's MAPF_Instance, minus the process-global
// RNG and logger the reference couples to it.
type Instance struct {
	g           *grid.Grid
	start       plan.Config
	goal        plan.Config
	rng         *rand.Rand
	maxTimestep int
	maxCompTime time.Duration
}

// New builds an Instance over g, applying opts in order. Returns a
// configuration error (see the package's sentinel errors) if the resulting
// configuration is inconsistent — too few/many agents, mismatched
// start/goal widths, or a non-positive budget.
func New(g *grid.Grid, opts ...Option) (*Instance, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	cfg := newInstanceConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.numAgents == 0 {
		return nil, ErrNoAgents
	}

	inst := &Instance{
		g:           g,
		rng:         cfg.rng,
		maxTimestep: cfg.maxTimestep,
		maxCompTime: time.Duration(cfg.maxCompTime) * time.Millisecond,
	}

	if cfg.randomize {
		start, goal, err := randomStartsGoals(g, cfg.numAgents, cfg.rng)
		if err != nil {
			return nil, err
		}
		inst.start, inst.goal = start, goal
	} else {
		inst.start, inst.goal = cfg.start, cfg.goal
	}

	return inst, nil
}

// Grid returns the Instance's underlying Grid.
func (ins *Instance) Grid() *grid.Grid { return ins.g }

// Start returns the initial Config, one State per agent.
func (ins *Instance) Start() plan.Config { return ins.start }

// Goal returns the goal Config, one State per agent.
func (ins *Instance) Goal() plan.Config { return ins.goal }

// NumAgents returns the number of agents in this instance.
func (ins *Instance) NumAgents() int { return len(ins.start) }

// Rand returns the Instance's shared RNG source.
func (ins *Instance) Rand() *rand.Rand { return ins.rng }

// MaxTimestep returns the outer-loop step cap.
func (ins *Instance) MaxTimestep() int { return ins.maxTimestep }

// MaxCompTime returns the wall-clock budget for a solver run.
func (ins *Instance) MaxCompTime() time.Duration { return ins.maxCompTime }

// Validate runs the reachability pre-check (SPEC_FULL §4.5): for every
// agent, it walks the grid's spatial adjacency (orientation ignored, and
// irrespective of directed edge weights — see reachableSet) breadth-first from
// the agent's start node, confirming the goal node lies in the same
// connected component. Returns ErrUnreachableGoal (wrapped with the
// offending agent index) on the first failure. This is purely a
// reachability check — it says nothing about whether PIBT can actually find
// a congestion-free plan.
func (ins *Instance) Validate() error {
	cache := make(map[int][]bool, len(ins.start))
	for i, s := range ins.start {
		if s.Node == nil || ins.goal[i].Node == nil {
			return fmt.Errorf("%w: agent %d has no start or goal node", ErrUnreachableGoal, i)
		}

		visited, ok := cache[s.Node.ID]
		if !ok {
			visited = reachableSet(ins.g, s.Node)
			cache[s.Node.ID] = visited
		}
		if !visited[ins.goal[i].Node.ID] {
			return fmt.Errorf("%w: agent %d cannot reach its goal from its start", ErrUnreachableGoal, i)
		}
	}

	return nil
}

// randomStartsGoals picks numAgents start nodes and numAgents goal nodes,
// each set distinct by construction (a sequential walk through a single
// random permutation of passable nodes never repeats a node), mirroring
// MAPF_Instance::setRandomStartsGoals. The only rejection is the "lazy
// reinitialization" case: if the i-th candidate goal equals agent i's own
// start node, the entire goal draw is discarded and restarted from a fresh
// shuffle — exactly the original's behavior, not a check against every
// other agent's start.
func randomStartsGoals(g *grid.Grid, numAgents int, rng *rand.Rand) (plan.Config, plan.Config, error) {
	nodes := passableNodes(g)
	if numAgents > len(nodes) {
		return nil, nil, ErrTooManyAgents
	}

	starts := shuffledCopy(nodes, rng)[:numAgents]

	goals := shuffledCopy(nodes, rng)
	picked := make([]*grid.Node, 0, numAgents)
	idx := 0
	for len(picked) < numAgents {
		cand := goals[idx]
		if cand == starts[len(picked)] {
			picked = picked[:0]
			goals = shuffledCopy(nodes, rng)
			idx = 0
			continue
		}
		picked = append(picked, cand)
		idx++
	}

	start := make(plan.Config, numAgents)
	goal := make(plan.Config, numAgents)
	for i := 0; i < numAgents; i++ {
		start[i] = grid.State{Node: starts[i], Orientation: randomOrientation(rng)}
		goal[i] = grid.State{Node: picked[i], Orientation: randomOrientation(rng)}
	}

	return start, goal, nil
}

// shuffledCopy returns a freshly shuffled copy of nodes.
func shuffledCopy(nodes []*grid.Node, rng *rand.Rand) []*grid.Node {
	out := make([]*grid.Node, len(nodes))
	copy(out, nodes)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

// randomOrientation returns a uniformly random cardinal facing, mirroring
// the reference's getRandomInt(0,3).
func randomOrientation(rng *rand.Rand) grid.Orientation {
	return grid.Orientation(rng.Intn(4))
}

// passableNodes collects every non-obstacle Node in row-major order.
func passableNodes(g *grid.Grid) []*grid.Node {
	nodes := make([]*grid.Node, 0, g.Size())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if n := g.NodeAt(x, y); n != nil {
				nodes = append(nodes, n)
			}
		}
	}

	return nodes
}
