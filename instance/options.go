// Package instance holds a problem instance: the Grid a plan is computed
// over, start and goal Configs, the shared RNG, and the time/step budgets a
// solver run obeys. Construction follows the teacher's functional-option
// engine (see builder/config.go): an Option mutates an instanceConfig,
// applied in order, defaults first.
package instance

import (
	"math/rand"

	"github.com/katalvlaran/lvlath-pibt/plan"
)

// Option customizes Instance construction. Option constructors never panic
// at runtime; invalid values are recorded and surfaced as an error from New.
type Option func(cfg *instanceConfig)

// instanceConfig accumulates Option values before New validates and freezes
// them into an Instance.
type instanceConfig struct {
	rng         *rand.Rand
	maxTimestep int
	maxCompTime int64 // milliseconds
	start       plan.Config
	goal        plan.Config
	numAgents   int
	randomize   bool
	err         error
}

// Default budgets, mirroring the reference's Parameters defaults.
const (
	DefaultMaxTimestep = 10000
	DefaultMaxCompTime = int64(1000) // ms
	DefaultSeed        = int64(42)
)

func newInstanceConfig() *instanceConfig {
	return &instanceConfig{
		rng:         rand.New(rand.NewSource(DefaultSeed)),
		maxTimestep: DefaultMaxTimestep,
		maxCompTime: DefaultMaxCompTime,
	}
}

// WithSeed seeds the Instance's RNG explicitly. Without WithSeed or WithRand
// the RNG is seeded with DefaultSeed; a seed given here always replaces that
// default, unlike the reference implementation (whose MAPF_Instance always
// seeds 42 regardless of the caller's configured seed).
func WithSeed(seed int64) Option {
	return func(cfg *instanceConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects an explicit RNG source in place of the seeded one. If
// both WithRand and WithSeed are supplied, whichever is applied last wins,
// per usual functional option semantics. A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *instanceConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithMaxTimestep sets the outer-loop step cap. Values <= 0 are rejected.
func WithMaxTimestep(n int) Option {
	return func(cfg *instanceConfig) {
		if n <= 0 {
			cfg.err = ErrInvalidBudget
			return
		}
		cfg.maxTimestep = n
	}
}

// WithMaxCompTime sets the wall-clock cap in milliseconds. Values <= 0 are
// rejected.
func WithMaxCompTime(ms int64) Option {
	return func(cfg *instanceConfig) {
		if ms <= 0 {
			cfg.err = ErrInvalidBudget
			return
		}
		cfg.maxCompTime = ms
	}
}

// WithStartGoal fixes an explicit start/goal Config pair for numAgents
// agents, mirroring MAPF_Instance::make(config_s, config_g, num_agents).
func WithStartGoal(start, goal plan.Config) Option {
	return func(cfg *instanceConfig) {
		if len(start) != len(goal) {
			cfg.err = ErrStartGoalSizeMismatch
			return
		}
		cfg.start = start
		cfg.goal = goal
		cfg.numAgents = len(start)
		cfg.randomize = false
	}
}

// WithRandomAgents requests n random start/goal states via shuffle + reject,
// mirroring MAPF_Instance::make(int). Mutually exclusive with
// WithStartGoal; whichever Option is applied last wins.
func WithRandomAgents(n int) Option {
	return func(cfg *instanceConfig) {
		if n <= 0 {
			cfg.err = ErrInvalidAgentCount
			return
		}
		cfg.numAgents = n
		cfg.randomize = true
	}
}
