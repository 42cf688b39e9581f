package evaluator

import "github.com/katalvlaran/mugs-search/fdr"

// Delta is a precondition-blind relaxation: the estimated cost of a fact
// not already holding is the cost of the cheapest operator that has it as
// an effect, ignoring that operator's own preconditions entirely. Because
// dropping preconditions can only make a fact easier to reach, Delta never
// overestimates the true cost and is consistent along any single edge
// (the estimate for a fact does not depend on g, so it cannot increase
// along a path). It is deliberately shallower than a fixpoint relaxation
// like h-max (out of scope per spec §1) — a single static table lookup.
type Delta struct {
	cheapestEffect map[fdr.Fact]Cost
}

// NewDelta builds the per-fact cheapest-supporting-operator table.
func NewDelta(task *fdr.Task) *Delta {
	table := make(map[fdr.Fact]Cost)
	for _, op := range task.Operators {
		for _, eff := range op.Effects {
			if cur, ok := table[eff]; !ok || op.Cost < cur {
				table[eff] = op.Cost
			}
		}
	}
	return &Delta{cheapestEffect: table}
}

// Estimate implements Evaluator.
func (d *Delta) Estimate(state *fdr.State, _ Cost, facts []fdr.Fact) CostVector {
	out := make(CostVector, len(facts))
	for i, f := range facts {
		if state.Holds(f) {
			out[i] = 0
			continue
		}
		if c, ok := d.cheapestEffect[f]; ok {
			out[i] = c
		} else {
			out[i] = Inf
		}
	}
	return out
}
