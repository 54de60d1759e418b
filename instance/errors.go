package instance

import "errors"

// Sentinel errors surfaced by New and Validate. These represent
// configuration errors per the three-tier taxonomy: fatal, discovered
// before any planning begins.
var (
	// ErrInvalidBudget indicates a non-positive step or time budget was
	// supplied via WithMaxTimestep/WithMaxCompTime.
	ErrInvalidBudget = errors.New("instance: budget must be positive")

	// ErrInvalidAgentCount indicates WithRandomAgents was called with n <= 0.
	ErrInvalidAgentCount = errors.New("instance: agent count must be positive")

	// ErrStartGoalSizeMismatch indicates WithStartGoal received start/goal
	// Configs of differing length.
	ErrStartGoalSizeMismatch = errors.New("instance: start and goal configs differ in length")

	// ErrNoAgents indicates New was called with neither WithStartGoal nor
	// WithRandomAgents applied.
	ErrNoAgents = errors.New("instance: no agents configured")

	// ErrTooManyAgents indicates more agents were requested than the grid
	// has distinct nodes, making a collision-free placement impossible.
	ErrTooManyAgents = errors.New("instance: more agents requested than available nodes")

	// ErrUnreachableGoal indicates Validate's reachability pre-check found
	// at least one agent whose goal is not reachable from its start.
	ErrUnreachableGoal = errors.New("instance: one or more goals are unreachable from their start")

	// ErrNilGrid indicates New was called with a nil *grid.Grid.
	ErrNilGrid = errors.New("instance: grid must not be nil")
)
