// Package plan holds the joint Configs produced by a solver run: an
// append-only sequence of per-tick agent states, per-agent path extraction,
// and the full transition/conflict validator that defines PIBT's
// correctness contract.
package plan

import (
	"errors"

	"github.com/katalvlaran/lvlath-pibt/grid"
)

// Sentinel errors for Plan access and mutation.
var (
	// ErrEmptyPlan indicates an operation that requires at least one Config
	// was attempted on a Plan with none appended yet.
	ErrEmptyPlan = errors.New("plan: plan is empty")

	// ErrInvalidTimestep indicates a timestep index outside [0, len(configs)).
	ErrInvalidTimestep = errors.New("plan: invalid timestep")

	// ErrInvalidAgentIndex indicates an agent index outside [0, N).
	ErrInvalidAgentIndex = errors.New("plan: invalid agent index")

	// ErrSizeMismatch indicates Add was called with a Config whose length
	// differs from every previously appended Config's length.
	ErrSizeMismatch = errors.New("plan: config size mismatch")
)

// Config is one joint state of all agents at a specific tick: an ordered
// sequence of States, index = agent id. A nil Node within a State marks an
// agent absent at that tick (used only in validation bookkeeping; live
// planning never produces one).
type Config []grid.State

// SameConfig reports whether a and b hold the same States in the same order.
func SameConfig(a, b Config) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// Plan is an append-only sequence of Configs, one per discrete timestep.
type Plan struct {
	configs []Config
}

// New returns an empty Plan.
func New() *Plan { return &Plan{} }

// Empty reports whether the plan has no Configs yet.
func (p *Plan) Empty() bool { return len(p.configs) == 0 }

// Size returns the number of agents (the width of Config 0), or 0 if empty.
func (p *Plan) Size() int {
	if p.Empty() {
		return 0
	}

	return len(p.configs[0])
}

// Makespan returns the number of ticks in the plan (len(configs) - 1), or 0
// if empty.
func (p *Plan) Makespan() int {
	if p.Empty() {
		return 0
	}

	return len(p.configs) - 1
}

// Add appends c to the plan. Returns ErrSizeMismatch if c's length differs
// from the width established by the first appended Config.
func (p *Plan) Add(c Config) error {
	if !p.Empty() && len(p.configs[0]) != len(c) {
		return ErrSizeMismatch
	}
	cc := make(Config, len(c))
	copy(cc, c)
	p.configs = append(p.configs, cc)

	return nil
}

// At returns the Config at timestep t.
func (p *Plan) At(t int) (Config, error) {
	if p.Empty() {
		return nil, ErrEmptyPlan
	}
	if t < 0 || t >= len(p.configs) {
		return nil, ErrInvalidTimestep
	}

	return p.configs[t], nil
}

// StateAt returns agent i's State at timestep t.
func (p *Plan) StateAt(t, i int) (grid.State, error) {
	c, err := p.At(t)
	if err != nil {
		return grid.State{}, err
	}
	if i < 0 || i >= len(c) {
		return grid.State{}, ErrInvalidAgentIndex
	}

	return c[i], nil
}

// GetPath extracts agent i's path: its State at each tick up to (but not
// including) the first tick where it is absent (nil Node).
func (p *Plan) GetPath(i int) (grid.Path, error) {
	if p.Empty() {
		return nil, ErrEmptyPlan
	}
	if i < 0 || i >= len(p.configs[0]) {
		return nil, ErrInvalidAgentIndex
	}

	var path grid.Path
	for t := 0; t <= p.Makespan(); t++ {
		s := p.configs[t][i]
		if s.Node == nil {
			break
		}
		path = append(path, s)
	}

	return path, nil
}

// Last returns agent-wise final live State: for each agent i, the last
// entry of GetPath(i). This differs from At(Makespan()) only when an agent
// has no live state at the final tick (which does not occur in a
// successful PIBT run, but is handled the way the reference's getLast does).
func (p *Plan) Last() (Config, error) {
	if p.Empty() {
		return nil, ErrEmptyPlan
	}
	n := len(p.configs[0])
	out := make(Config, n)
	for i := 0; i < n; i++ {
		path, err := p.GetPath(i)
		if err != nil {
			return nil, err
		}
		if len(path) == 0 {
			continue // agent never had a live state; leave the zero State
		}
		out[i] = path[len(path)-1]
	}

	return out, nil
}
