package solver

import (
	"time"

	"github.com/katalvlaran/lvlath-pibt/plan"
)

// PIBTSolverName is the only value WithSolverName accepts.
const PIBTSolverName = "PIBT"

// Default budgets, mirroring instance's own defaults.
const (
	DefaultMaxTimestep = 10000
	DefaultMaxCompTime = time.Second
	DefaultSeed        = int64(42)
)

// Option customizes New's construction pipeline.
type Option func(cfg *config)

type config struct {
	mapStem     string
	loadWeights bool
	verbose     bool
	fileLogging bool
	seed        int64
	maxTimestep int
	maxCompTime time.Duration
	solverName  string
	numAgents   int
	randomize   bool
	start, goal plan.Config
	err         error
}

func newConfig() *config {
	return &config{
		seed:        DefaultSeed,
		maxTimestep: DefaultMaxTimestep,
		maxCompTime: DefaultMaxCompTime,
		solverName:  PIBTSolverName,
	}
}

// WithMapStem sets the file stem New loads the grid from: "<stem>.map",
// plus "<stem>.weights" when WithWeights(true) is also given.
func WithMapStem(stem string) Option {
	return func(cfg *config) { cfg.mapStem = stem }
}

// WithWeights toggles loading "<stem>.weights" alongside the map.
func WithWeights(enabled bool) Option {
	return func(cfg *config) { cfg.loadWeights = enabled }
}

// WithVerbose gates Debug/Info/Warn output on the wired mapflog.Logger.
func WithVerbose(enabled bool) Option {
	return func(cfg *config) { cfg.verbose = enabled }
}

// WithFileLogging mirrors log lines to "<stem>.log" alongside stdout.
func WithFileLogging(enabled bool) Option {
	return func(cfg *config) { cfg.fileLogging = enabled }
}

// WithSeed sets the RNG seed passed through to instance.New. Without it,
// New passes DefaultSeed; the seed handed to instance.New is always the
// configured one, never overridden inside the instance.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.seed = seed }
}

// WithMaxTimestep sets the outer-loop step cap.
func WithMaxTimestep(n int) Option {
	return func(cfg *config) {
		if n <= 0 {
			cfg.err = ErrInvalidBudget
			return
		}
		cfg.maxTimestep = n
	}
}

// WithMaxCompTime sets the wall-clock budget.
func WithMaxCompTime(d time.Duration) Option {
	return func(cfg *config) {
		if d <= 0 {
			cfg.err = ErrInvalidBudget
			return
		}
		cfg.maxCompTime = d
	}
}

// WithSolverName selects the concrete planner. Only PIBTSolverName is
// recognized; New surfaces ErrUnknownSolver for anything else.
func WithSolverName(name string) Option {
	return func(cfg *config) { cfg.solverName = name }
}

// WithRandomAgents requests n agents with random, collision-free
// start/goal placement (see instance.WithRandomAgents).
func WithRandomAgents(n int) Option {
	return func(cfg *config) {
		cfg.numAgents = n
		cfg.randomize = true
	}
}

// WithStartGoal fixes an explicit start/goal Config pair. The *grid.Node
// pointers inside start/goal need not belong to the Grid New will build
// internally from the map stem — every grid query New's pipeline performs
// (GetWeight, neighbour expansion) is driven by Node.Pos/Node.ID, not
// pointer identity, so States from any Grid parsed from the same map file
// are interchangeable. Callers typically parse the map once themselves
// (grid.NewFromMap) to build these States before calling New.
func WithStartGoal(start, goal plan.Config) Option {
	return func(cfg *config) {
		cfg.start, cfg.goal = start, goal
		cfg.randomize = false
	}
}
