// Package relax implements the iterated relaxation driver of spec §4.G:
// a sequence of searches over a finite partial order of relaxed tasks,
// merging each sub-search's MSGS into its task, propagating solvability
// upward through the order's upper-cover, and seeding each next task's
// MSGS from its lower-cover before running it.
//
// Alongside the general lattice driver (Run), this package also provides
// IteratedBoundDriver, a narrower loop that re-runs tarjan.Driver over one
// fixed task with a multiplicatively increasing cost bound until the task
// solves or a round at the cap has run — the "bound-step multiplicative
// re-run" recovered from the C++ original's BoundedCostTarjanSearch
// (c_bound_step, c_max_bound) and named, but never wired to behavior, in
// the distilled spec's Configuration table (max_bound, step).
package relax
