package mugs

import (
	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/goalset"
)

// BestState records the highest-cardinality soft-goal subset tracked so
// far and the state that reached it, for the §4.E "osp" (optimal-soft-goal)
// termination mode. Ties on cardinality keep the earliest-inserted state
// (see DESIGN.md: "best-state tie-break" for why this reading of spec §4.B
// was chosen over a literal ">=").
type BestState struct {
	Subset goalset.Subset
	State  fdr.State
	Order  uint64
}

// Collection is the MSGS antichain (spec §4.B): cardinality-bucketed,
// duplicate- and subsumption-free, with a running best-state pointer and
// bookkeeping counters.
type Collection struct {
	width Width
	hard  []fdr.Fact
	soft  []fdr.Fact

	buckets []bucket // buckets[card], card in [0, width]

	size int
	best *BestState
	order uint64

	prunedStates            uint64
	statesSinceLastAddition uint64

	onSubsumed func(goalset.Subset)
	onAdded    func(goalset.Subset)
}

// Width is the soft-goal universe width of a Collection; re-exported for
// callers that only need to size facts arrays without importing goalset.
type Width = goalset.Width

// NewCollection builds an MSGS collection for the given hard/soft goal
// partition and inserts the empty subset, matching spec §4.B's
// initialize(): "reads H, S, sets w = |S|; inserts the empty subset".
func NewCollection(hard, soft []fdr.Fact) (*Collection, error) {
	w, err := goalset.NewWidth(len(soft))
	if err != nil {
		return nil, err
	}
	c := &Collection{
		width:   w,
		hard:    append([]fdr.Fact(nil), hard...),
		soft:    append([]fdr.Fact(nil), soft...),
		buckets: make([]bucket, int(w)+1),
	}
	for i := range c.buckets {
		c.buckets[i] = newBucket()
	}
	c.Add(goalset.Empty)
	return c, nil
}

// Width returns |S|, the soft-goal universe width.
func (c *Collection) Width() Width { return c.width }

// Size returns the total number of recorded MSGS.
func (c *Collection) Size() int { return c.size }

// PrunedStates returns the number of states 4.D pruned via this collection.
func (c *Collection) PrunedStates() uint64 { return c.prunedStates }

// StatesSinceLastAddition returns the number of Track calls since an MSGS
// was last newly added.
func (c *Collection) StatesSinceLastAddition() uint64 { return c.statesSinceLastAddition }

// Best returns the best state recorded so far, or nil if none has been
// tracked yet (only the initial empty subset is recorded).
func (c *Collection) Best() *BestState { return c.best }

// OnSubsumed registers a callback invoked, during Add, once per element
// removed from a smaller-cardinality bucket because it became a strict
// subset of the newly added subset (spec §4.B: "reported through an
// optional callback so observers can react"). Passing nil disables it.
func (c *Collection) OnSubsumed(fn func(goalset.Subset)) {
	c.onSubsumed = fn
}

// OnAdded registers a callback invoked once per subset that Add newly
// inserts into the antichain (spec §4.E "anytime output": "whenever track
// reports a newly added MSGS the driver immediately prints it"). Passing
// nil disables it. Not invoked for the constructor's initial empty-subset
// insertion.
func (c *Collection) OnAdded(fn func(goalset.Subset)) {
	c.onAdded = fn
}

// ContainsSuperset reports whether some recorded MSGS is a (non-strict)
// superset of s: a linear scan over buckets of cardinality >= |s|,
// short-circuiting on the first hit (spec §4.B).
func (c *Collection) ContainsSuperset(s goalset.Subset) bool {
	for card := s.Card(); card <= int(c.width); card++ {
		for existing := range c.buckets[card].items {
			if existing.IsSupersetOf(s) {
				return true
			}
		}
	}
	return false
}

// Add inserts s, restoring the antichain invariant (spec §4.B):
//   - if some recorded element is already a superset of s (including s
//     itself), s is discarded and Add reports false (equal-cardinality
//     duplicate adds are idempotent no-ops, as required);
//   - otherwise s is inserted and every recorded element that is now a
//     strict subset of s is removed, firing OnSubsumed once per removal.
func (c *Collection) Add(s goalset.Subset) bool {
	if c.ContainsSuperset(s) {
		return false
	}

	var removed []goalset.Subset
	for card := 0; card < s.Card(); card++ {
		b := &c.buckets[card]
		for existing := range b.items {
			if s.IsStrictSupersetOf(existing) {
				b.remove(existing)
				c.size--
				removed = append(removed, existing)
			}
		}
	}

	c.buckets[s.Card()].insert(s)
	c.size++

	if c.onSubsumed != nil {
		for _, r := range removed {
			c.onSubsumed(r)
		}
	}
	if c.onAdded != nil {
		c.onAdded(s)
	}
	return true
}

// satisfiedSubset returns the bitmask of facts in goals that hold in state.
func satisfiedSubset(state *fdr.State, goals []fdr.Fact) goalset.Subset {
	var s goalset.Subset
	for i, f := range goals {
		if state.Holds(f) {
			s |= goalset.Single(i)
		}
	}
	return s
}

func allHardSatisfied(state *fdr.State, hard []fdr.Fact) bool {
	for _, f := range hard {
		if !state.Holds(f) {
			return false
		}
	}
	return true
}

// Track offers state to the collection (spec §4.B): if every hard goal
// holds and no recorded MSGS already supersedes state's satisfied-soft
// subset, the subset is added, the best-state pointer is refreshed on a
// strict cardinality increase, and Track returns true.
func (c *Collection) Track(state *fdr.State) bool {
	if !allHardSatisfied(state, c.hard) {
		c.statesSinceLastAddition++
		return false
	}

	ss := satisfiedSubset(state, c.soft)
	if c.ContainsSuperset(ss) {
		c.statesSinceLastAddition++
		return false
	}

	added := c.Add(ss)
	if !added {
		c.statesSinceLastAddition++
		return false
	}

	c.statesSinceLastAddition = 0
	if c.best == nil || ss.Card() > c.best.Subset.Card() {
		c.order++
		c.best = &BestState{Subset: ss, State: state.Clone(), Order: c.order}
	}
	return true
}

// Prune implements spec §4.B's prune(): costs must align with
// append(hardGoals, softGoals...) (fdr.Task.AllGoals()'s order). It
// returns true iff the state can be safely skipped:
//  1. if some hard goal is unreachable within remainingBudget, prune
//     without touching the collection;
//  2. else if some recorded MSGS already supersedes the reachable-soft
//     projection, prune without touching the collection (no new MSGS can
//     arise by continuing);
//  3. else call Track(state) and return false.
//
// When len(hard) == 0, step 1 is vacuously satisfied, matching the "all
// goals treated as soft" edge case.
func (c *Collection) Prune(state *fdr.State, costs evaluator.CostVector, remainingBudget evaluator.Cost) (bool, error) {
	if len(costs) != len(c.hard)+len(c.soft) {
		return false, ErrCostVectorLength
	}

	for i := range c.hard {
		cost := costs[i]
		if cost == evaluator.Inf || cost >= remainingBudget {
			c.prunedStates++
			return true, nil
		}
	}

	var reachableSoft goalset.Subset
	for i := range c.soft {
		cost := costs[len(c.hard)+i]
		if cost != evaluator.Inf && cost < remainingBudget {
			reachableSoft |= goalset.Single(i)
		}
	}

	if c.ContainsSuperset(reachableSoft) {
		c.prunedStates++
		return true, nil
	}

	c.Track(state)
	return false, nil
}

// MUGS returns the Minimal Unsolvable Goal Subsets: the minimal hitting
// sets of {soft-goal-universe complement of m : m in MSGS} (spec §4.A,
// §4.B's get_mugs()).
func (c *Collection) MUGS() []goalset.Subset {
	family := make([]goalset.Subset, 0, c.size)
	for card := 0; card <= int(c.width); card++ {
		for s := range c.buckets[card].items {
			family = append(family, s.Complement(c.width))
		}
	}
	return goalset.MinimalHittingSets(family)
}

// All returns every recorded MSGS, smallest cardinality first.
func (c *Collection) All() []goalset.Subset {
	out := make([]goalset.Subset, 0, c.size)
	for card := 0; card <= int(c.width); card++ {
		for s := range c.buckets[card].items {
			out = append(out, s)
		}
	}
	return out
}

// HardGoals returns the hard-goal facts this collection was built with.
func (c *Collection) HardGoals() []fdr.Fact { return append([]fdr.Fact(nil), c.hard...) }

// SoftGoals returns the soft-goal facts this collection was built with.
func (c *Collection) SoftGoals() []fdr.Fact { return append([]fdr.Fact(nil), c.soft...) }
