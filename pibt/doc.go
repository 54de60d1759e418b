// Package pibt implements Priority Inheritance with Backtracking: a
// recursive, per-timestep, single-shot decentralized planner that assigns
// every agent a next node each tick while guaranteeing collision freedom
// by construction. It is the sole concrete planner this module ships,
// consuming a *solver.Solver built by solver.New.
package pibt
