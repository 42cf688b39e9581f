// Package pruning composes an evaluator.Evaluator with a mugs.Collection
// into the single dead-end test a search driver calls on every generated
// state (spec §4.D): estimate each goal fact's cost-to-go, add it to the
// accumulated path cost g, and hand the resulting total-cost vector to the
// collection's prune/track step.
//
// The package holds no state of its own beyond the two collaborators it
// wires together; like mugs, a Pruner is owned by one search driver and is
// not safe for concurrent use.
package pruning
