// Package search implements the best-first expansion loop of spec §4.E: an
// open list prioritized by f = g + h, a closed set with an optional
// reopening discipline, and an MSGS collection (via pruning.Pruner) fed
// from every expanded state.
//
// Like lvlath's algorithms package, the driver is built around an Options
// struct (budget, deadline, reopen-closed, anytime, osp); cancellation is
// cooperative, through a clock.Deadline polled at the top of every
// expansion. Unlike a plain graph traversal it owns no recursion —
// everything is driven from an explicit container/heap open list. When the
// deadline expires, Run returns ErrOutOfResource with the collection
// gathered so far; a stopped search is not resumed.
package search
