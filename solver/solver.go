package solver

import (
	"container/heap"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/lvlath-pibt/grid"
	"github.com/katalvlaran/lvlath-pibt/instance"
	"github.com/katalvlaran/lvlath-pibt/mapflog"
	"github.com/katalvlaran/lvlath-pibt/plan"
)

const component = "Solver"

// DistanceTable holds, for each agent and each node id, the minimum step
// count (edges traversed, orientation ignored) from that node to the
// agent's goal. Undefined cells hold the instance's max timestep as a
// default "unreachable" fill, matching the reference's DistanceTable.
type DistanceTable [][]int

// Solver is the solver-agnostic half of a planner run: it owns the Grid,
// Instance, logger, timing, and the precomputed DistanceTable/lower bounds
// a concrete planner (package pibt) consumes. It corresponds to the
// reference's MinimumSolver + MAPF_Solver, merged because Go has no base
// class to split timing from distance-table bookkeeping across.
type Solver struct {
	name string
	g    *grid.Grid
	ins  *instance.Instance
	log  *mapflog.Logger

	maxTimestep int
	maxCompTime time.Duration

	startTime   time.Time
	compTime    time.Duration
	precompTime time.Duration

	distanceTable DistanceTable
	lbSOC         int
	lbMakespan    int

	solved   bool
	solution *plan.Plan
}

// New runs the full ambient pipeline described in SPEC_FULL §6: it loads
// the grid from "<stem>.map" (and "<stem>.weights" if requested), builds
// the Instance (random or explicit agents), runs its reachability
// pre-check, wires the logger, and validates the solver name. The returned
// Solver has not yet run; distance-table precomputation happens lazily
// when a planner calls CreateDistanceTable (pibt's Planner.Solve does so
// before its tick loop), mirroring MAPF_Solver::exec().
func New(opts ...Option) (*Solver, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.solverName != PIBTSolverName {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, cfg.solverName)
	}
	if cfg.mapStem == "" {
		return nil, ErrMapStemRequired
	}
	if cfg.numAgents == 0 && cfg.start == nil {
		return nil, ErrNoAgents
	}

	g, err := loadGrid(cfg.mapStem, cfg.loadWeights)
	if err != nil {
		return nil, err
	}

	instOpts := []instance.Option{
		instance.WithSeed(cfg.seed),
		instance.WithMaxTimestep(cfg.maxTimestep),
		instance.WithMaxCompTime(cfg.maxCompTime.Milliseconds()),
	}
	if cfg.randomize {
		instOpts = append(instOpts, instance.WithRandomAgents(cfg.numAgents))
	} else {
		instOpts = append(instOpts, instance.WithStartGoal(cfg.start, cfg.goal))
	}
	ins, err := instance.New(g, instOpts...)
	if err != nil {
		return nil, err
	}
	if err := ins.Validate(); err != nil {
		return nil, err
	}

	var logPath string
	if cfg.fileLogging {
		logPath = cfg.mapStem + ".log"
	}
	log, err := mapflog.New(cfg.verbose, logPath)
	if err != nil {
		return nil, err
	}

	return &Solver{
		name:        cfg.solverName,
		g:           g,
		ins:         ins,
		log:         log,
		maxTimestep: cfg.maxTimestep,
		maxCompTime: cfg.maxCompTime,
	}, nil
}

func loadGrid(stem string, loadWeights bool) (*grid.Grid, error) {
	mf, err := os.Open(stem + ".map")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", grid.ErrMapNotFound, err)
	}
	defer mf.Close()

	g, err := grid.NewFromMap(mf)
	if err != nil {
		return nil, err
	}
	if !loadWeights {
		g.GenerateUniformWeights()

		return g, nil
	}

	wf, err := os.Open(stem + ".weights")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", grid.ErrMapNotFound, err)
	}
	defer wf.Close()

	if err := g.LoadWeights(wf); err != nil {
		return nil, err
	}

	return g, nil
}

// Grid returns the Solver's Grid.
func (s *Solver) Grid() *grid.Grid { return s.g }

// Instance returns the Solver's Instance.
func (s *Solver) Instance() *instance.Instance { return s.ins }

// Log returns the Solver's logger handle.
func (s *Solver) Log() *mapflog.Logger { return s.log }

// SolverName returns the configured solver name.
func (s *Solver) SolverName() string { return s.name }

// MaxTimestep returns the outer-loop step cap.
func (s *Solver) MaxTimestep() int { return s.maxTimestep }

// Succeed reports whether the most recent run reached every agent's goal.
func (s *Solver) Succeed() bool { return s.solved }

// Solution returns the Plan produced by the most recent run (partial, if
// the run failed).
func (s *Solver) Solution() *plan.Plan { return s.solution }

// CompTime returns the wall-clock duration the most recent run took.
func (s *Solver) CompTime() time.Duration { return s.compTime }

// PreCompTime returns the time spent in CreateDistanceTable during the
// most recent run.
func (s *Solver) PreCompTime() time.Duration { return s.precompTime }

// SetSolution records the outcome of a concrete planner's run. Called by
// package pibt after its tick loop terminates.
func (s *Solver) SetSolution(p *plan.Plan, solved bool) {
	s.solution = p
	s.solved = solved
}

// Start records the wall-clock start of a run, mirroring
// MinimumSolver::start().
func (s *Solver) Start() { s.startTime = time.Now() }

// End freezes CompTime at the elapsed time since Start, mirroring
// MinimumSolver::end().
func (s *Solver) End() { s.compTime = time.Since(s.startTime) }

// ElapsedSince returns the wall-clock duration elapsed since Start.
func (s *Solver) ElapsedSince() time.Duration { return time.Since(s.startTime) }

// OverCompTime reports whether the elapsed time since Start has reached
// the configured wall-clock budget.
func (s *Solver) OverCompTime() bool { return s.ElapsedSince() >= s.maxCompTime }

// CreateDistanceTable runs a backward Dijkstra from each agent's goal node
// over the reverse of the weighted edges, recording step counts (not cost
// sums) into DistanceTable. It mirrors MAPF_Solver::createDistanceTable
// exactly, including the float64 cost accumulator used only to pick
// relaxation order; the stored quantity is always an integer step count.
func (s *Solver) CreateDistanceTable() {
	start := time.Now()
	n := s.ins.NumAgents()
	size := s.g.Size()

	table := make(DistanceTable, n)
	for i := 0; i < n; i++ {
		table[i] = s.backwardDijkstra(s.ins.Goal()[i].Node, size)
	}
	s.distanceTable = table
	s.precompTime = time.Since(start)
}

// dtItem is one entry of the backward-Dijkstra open list: (cost, step,
// node), ordered by cost ascending to match the reference's
// std::priority_queue<cmp, ..., std::greater<>>.
type dtItem struct {
	cost float64
	step int
	node *grid.Node
}

type dtHeap []dtItem

func (h dtHeap) Len() int            { return len(h) }
func (h dtHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h dtHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *dtHeap) Push(x interface{}) { *h = append(*h, x.(dtItem)) }
func (h *dtHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

func (s *Solver) backwardDijkstra(goal *grid.Node, size int) []int {
	dist := make([]int, size)
	for i := range dist {
		dist[i] = s.maxTimestep
	}
	tmp := make([]float64, size)
	for i := range tmp {
		tmp[i] = grid.MaxWeight
	}

	dist[goal.ID] = 0
	tmp[goal.ID] = 0

	open := &dtHeap{{cost: 0, step: 0, node: goal}}
	heap.Init(open)

	for open.Len() > 0 {
		cur := heap.Pop(open).(dtItem)
		if cur.cost > tmp[cur.node.ID] {
			continue
		}
		for _, m := range cur.node.Neighbors() {
			w, err := s.g.GetWeight(m, cur.node)
			if err != nil || w >= grid.MaxWeight {
				continue
			}
			cm := cur.cost + w
			if cm < tmp[m.ID] {
				tmp[m.ID] = cm
				dist[m.ID] = cur.step + 1
				heap.Push(open, dtItem{cost: cm, step: cur.step + 1, node: m})
			}
		}
	}

	return dist
}

// DistanceTable returns the precomputed per-agent, per-node step-distance
// table. Empty until CreateDistanceTable has run.
func (s *Solver) DistanceTable() DistanceTable { return s.distanceTable }

// PathDist returns agent i's step distance from u to its goal, read
// directly from the precomputed DistanceTable.
func (s *Solver) PathDist(i int, u *grid.Node) int {
	return s.distanceTable[i][u.ID]
}

// PathDistFromStart returns agent i's step distance from its own start
// node to its goal.
func (s *Solver) PathDistFromStart(i int) int {
	return s.PathDist(i, s.ins.Start()[i].Node)
}

// PathDistNodes computes the step distance between two arbitrary nodes via
// a single A★ query, mirroring MAPF_Solver::pathDist(Node*, Node*). Unlike
// the table-based PathDist, this is not cached.
func (s *Solver) PathDistNodes(u, v *grid.Node) int {
	if u == v {
		return 0
	}
	path, _ := s.g.GetPathWithCost(
		grid.State{Node: u, Orientation: grid.Unoriented},
		grid.State{Node: v, Orientation: grid.Unoriented},
		s.ins.Rand(),
		nil,
	)

	return len(path) - 1
}

// computeLowerBounds derives LB_soc and LB_makespan from the distance
// table, mirroring MAPF_Solver::computeLowerBounds(). Both are cached
// after the first non-zero computation; callers reach them only through
// LowerBoundSOC/LowerBoundMakespan.
func (s *Solver) computeLowerBounds() {
	s.lbSOC = 0
	s.lbMakespan = 0
	for i := 0; i < s.ins.NumAgents(); i++ {
		d := s.PathDistFromStart(i)
		s.lbSOC += d
		if d > s.lbMakespan {
			s.lbMakespan = d
		}
	}
}

// LowerBoundSOC returns the sum, over agents, of each agent's shortest
// step distance from start to goal. Computed and cached lazily.
func (s *Solver) LowerBoundSOC() int {
	if s.lbSOC == 0 {
		s.computeLowerBounds()
	}

	return s.lbSOC
}

// LowerBoundMakespan returns the maximum, over agents, of each agent's
// shortest step distance from start to goal. Computed and cached lazily.
func (s *Solver) LowerBoundMakespan() int {
	if s.lbMakespan == 0 {
		s.computeLowerBounds()
	}

	return s.lbMakespan
}
