package pruning

import (
	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/mugs"
)

// Pruner is the 4.D composition: an evaluator supplies per-fact cost-to-go
// estimates, a mugs.Collection supplies the antichain test that decides
// whether continuing past a state could still add a new MSGS.
type Pruner struct {
	eval    evaluator.Evaluator
	coll    *mugs.Collection
	goals   []fdr.Fact // HardGoals() ++ SoftGoals(), cached at construction
	budget  evaluator.Cost
	nHard   int
	subsume bool
}

// NewPruner builds a Pruner for the given evaluator and collection. budget
// is B from spec §3; pass evaluator.Inf for an unbounded search, in which
// case Prune degenerates to a pure reachability test (spec §4.D: "the
// collection still grows monotonically"). MSGS-subsumption pruning (spec
// §6's `prune` config option) is enabled by default; call
// DisableSubsumption to turn it off.
func NewPruner(eval evaluator.Evaluator, coll *mugs.Collection, budget evaluator.Cost) *Pruner {
	goals := append([]fdr.Fact(nil), coll.HardGoals()...)
	goals = append(goals, coll.SoftGoals()...)
	return &Pruner{eval: eval, coll: coll, goals: goals, budget: budget, nHard: len(coll.HardGoals()), subsume: true}
}

// DisableSubsumption turns off the MSGS-subsumption half of Prune (spec
// §6 `prune` option, "otherwise only tracking"): a state is then only
// pruned when a hard goal is genuinely unreachable within budget, and
// Track still runs on every other state. This is the only way a task
// with no soft goals can be explored past its initial state at all —
// with subsumption enabled, the ever-present empty subset trivially
// subsumes every reachable-soft projection when there are no soft goals
// to project onto (spec §8 scenario S1: "MSGS = {∅} from the initial
// state only"), so nothing past the root is ever worth visiting under
// the default MSGS-centric reading.
func (p *Pruner) DisableSubsumption() {
	p.subsume = false
}

// Prune evaluates state reached at accumulated cost g and reports whether
// it is safe to skip (spec §4.D): true means no further expansion from
// state can add a new MSGS, either because a hard goal is now unreachable
// within budget or because the reachable soft-goal projection is already
// subsumed by a recorded MSGS. Track is only invoked — and the collection
// only mutated — when Prune returns false.
func (p *Pruner) Prune(state *fdr.State, g evaluator.Cost) (bool, error) {
	estimates := p.eval.Estimate(state, g, p.goals)

	total := make(evaluator.CostVector, len(estimates))
	for i, h := range estimates {
		if h == evaluator.Inf || g == evaluator.Inf {
			total[i] = evaluator.Inf
			continue
		}
		total[i] = g + h
	}

	if p.subsume {
		return p.coll.Prune(state, total, p.budget)
	}

	for i := 0; i < p.nHard; i++ {
		if total[i] == evaluator.Inf || total[i] >= p.budget {
			return true, nil
		}
	}
	p.coll.Track(state)
	return false, nil
}

// IsDeadEnd reports whether the evaluator itself recognizes state as a
// dead end (spec §4.F: "compute and store the heuristic value; if the
// node is pruned, mark dead-end"), independent of the MSGS collection.
func (p *Pruner) IsDeadEnd(state *fdr.State) bool {
	return evaluator.DeadEnd(p.eval, state)
}

// Collection returns the underlying MSGS collection, so a search driver
// can read Best()/MUGS() once the search terminates.
func (p *Pruner) Collection() *mugs.Collection { return p.coll }
