package evaluator

import "github.com/katalvlaran/mugs-search/fdr"

// Blind estimates 0 for any fact already holding and the task's cheapest
// operator cost for every other fact — the per-fact generalization of the
// classical blind search heuristic (uninformed, but consistent: it can
// never overestimate, since reaching any not-yet-true fact costs at least
// one operator application).
type Blind struct {
	task      *fdr.Task
	minOpCost Cost
}

// NewBlind precomputes the task's minimum operator cost.
func NewBlind(task *fdr.Task) *Blind {
	min := Cost(1)
	if len(task.Operators) > 0 {
		min = task.Operators[0].Cost
		for _, op := range task.Operators[1:] {
			if op.Cost < min {
				min = op.Cost
			}
		}
	}
	return &Blind{task: task, minOpCost: min}
}

// Estimate implements Evaluator.
func (b *Blind) Estimate(state *fdr.State, _ Cost, facts []fdr.Fact) CostVector {
	out := make(CostVector, len(facts))
	for i, f := range facts {
		if state.Holds(f) {
			out[i] = 0
		} else if len(b.task.Operators) == 0 {
			out[i] = Inf
		} else {
			out[i] = b.minOpCost
		}
	}
	return out
}
