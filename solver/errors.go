package solver

import "errors"

// Sentinel errors surfaced by New. All are configuration errors per the
// three-tier taxonomy: discovered before any planning work starts.
var (
	// ErrUnknownSolver indicates WithSolverName named something other than
	// PIBTSolverName.
	ErrUnknownSolver = errors.New("solver: unknown solver name")

	// ErrMapStemRequired indicates New was called without WithMapStem.
	ErrMapStemRequired = errors.New("solver: map stem is required")

	// ErrNoAgents indicates neither WithRandomAgents nor WithStartGoal was
	// supplied.
	ErrNoAgents = errors.New("solver: no agents configured")

	// ErrInvalidBudget indicates a non-positive step or time budget.
	ErrInvalidBudget = errors.New("solver: budget must be positive")
)
