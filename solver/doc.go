// Package solver provides the solver-agnostic machinery every concrete
// planner builds on: elapsed-time bookkeeping against a wall-clock budget,
// the backward-Dijkstra per-agent distance table, and the lazily cached
// lower bounds derived from it. It mirrors the reference implementation's
// MinimumSolver/MAPF_Solver split, collapsed into a single embeddable
// struct since Go has no class inheritance.
//
// Config/Option follow the teacher's builder.BuilderOption idiom: a
// functional-option engine with panic-free, defer-validated construction.
// solver.New performs the full ambient pipeline — loading the map (and
// optionally its weights) from a file stem, building the Instance, running
// its reachability pre-check, and wiring the logger — so that a concrete
// planner (e.g. package pibt) only has to implement the search itself.
package solver
