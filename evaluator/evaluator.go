package evaluator

import "github.com/katalvlaran/mugs-search/fdr"

// Cost and Inf (fdr.InfCost) are re-exported from fdr so evaluator callers do not
// need to import fdr solely for the cost type; the budget (spec §3) and
// per-fact estimates (spec §4.C) share one representation.
type Cost = fdr.Cost

// Inf marks a fact as unreachable.
const Inf Cost = fdr.InfCost

// CostVector holds one estimate per requested fact, in the same order as
// the facts slice passed to Estimate.
type CostVector []Cost

// Evaluator estimates, for each of a set of facts, a non-negative lower
// bound on the cost to achieve that fact from state (under path cost g),
// or Inf if no such bound is known to be finite.
type Evaluator interface {
	Estimate(state *fdr.State, g Cost, facts []fdr.Fact) CostVector
}

// DeadEndDetector is an optional capability: an evaluator may know a state
// is a dead end more cheaply than computing a finite/infinite estimate for
// every requested fact.
type DeadEndDetector interface {
	IsDeadEnd(state *fdr.State) bool
}

// PreferredOperators is an optional capability used to order successor
// traversal (spec §4.F: "ordered by (¬preferred, h)").
type PreferredOperators interface {
	Preferred(state *fdr.State) []fdr.OperatorID
}

// Refiner is the capability spec §4.F's Tarjan variant calls into when it
// completes a dead-end strongly-connected component: it is handed the
// component and its recognized (already-dead) neighbors, and reports
// whether it learned something that lets future Estimate/IsDeadEnd calls
// recognize these states as dead ends.
type Refiner interface {
	Refine(component []*fdr.State, recognizedNeighbors []*fdr.State) (refined bool)
}

// IsPreferred reports whether op is among the preferred operators eval
// returns for state, or false if eval does not implement PreferredOperators.
func IsPreferred(eval Evaluator, state *fdr.State, op fdr.OperatorID) bool {
	p, ok := eval.(PreferredOperators)
	if !ok {
		return false
	}
	for _, pref := range p.Preferred(state) {
		if pref == op {
			return true
		}
	}
	return false
}

// DeadEnd reports whether eval recognizes state as a dead end, via the
// optional DeadEndDetector capability. Evaluators without the capability
// are never treated as recognizing dead ends up front; the caller still
// learns about unreachability through Inf-valued Estimate results.
func DeadEnd(eval Evaluator, state *fdr.State) bool {
	d, ok := eval.(DeadEndDetector)
	return ok && d.IsDeadEnd(state)
}
