package pibt

import "errors"

// ErrWrongSolverName indicates NewPlanner was handed a *solver.Solver not
// configured for PIBT.
var ErrWrongSolverName = errors.New("pibt: solver is not configured for PIBT")

// errInconsistentPlan is an internal invariant violation — occupied_next not
// pointing to the agent expected, an agent attempting a non-neighbour move,
// or an unknown action — mirroring the reference's fatal error() calls.
// It never escapes this package as a panic value: Planner.Solve recovers it
// at its top level and converts it into a returned error, per spec.md §7's
// three-tier taxonomy (a programming-error invariant violation must abort
// the solver, not the host process).
var errInconsistentPlan = errors.New("pibt: inconsistent plan")
