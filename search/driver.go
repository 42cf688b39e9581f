package search

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/goalset"
	"github.com/katalvlaran/mugs-search/internal/clock"
	"github.com/katalvlaran/mugs-search/internal/statereg"
	"github.com/katalvlaran/mugs-search/mugs"
	"github.com/katalvlaran/mugs-search/pruning"
)

// Options configures one Run of the best-first driver (spec §4.E).
type Options struct {
	// Budget is B; pass evaluator.Inf for an unbounded search.
	Budget evaluator.Cost

	// ReopenClosed enables reopening a closed node whose g strictly
	// improves (spec §4.E "Reopening discipline"): needed only when the
	// evaluator is not known to be consistent.
	ReopenClosed bool

	// Anytime streams every newly discovered MSGS to Logger as soon as
	// track reports it, instead of only at the end of the run.
	Anytime bool

	// OSP (optimal-soft-goal) changes empty-open termination from
	// failure to success, reporting the collection's current best state.
	OSP bool

	// Deadline is polled at the top of every expansion; the zero value
	// (clock.Deadline{}) behaves as Unbounded.
	Deadline clock.Deadline

	// Logger receives the anytime/reopen/out-of-resource trace points
	// (spec §2 AMBIENT STACK); the zero value discards everything.
	Logger zerolog.Logger

	// DisableSubsumptionPruning turns off the MSGS-subsumption half of
	// pruning (spec §6 `prune` option, "otherwise only tracking"): states
	// are then only skipped for genuine hard-goal unreachability. Needed
	// to explore past the initial state at all when the task has no soft
	// goals (see pruning.Pruner.DisableSubsumption).
	DisableSubsumptionPruning bool

	// Collection, when non-nil, seeds the run with an already-populated
	// MSGS antichain instead of starting from {∅} — used by relax.Run to
	// carry a lower-cover's merged MSGS into the next task in the lattice
	// (spec §4.G step 3: "its initial MSGS is seeded from the MSGS of
	// every task in its lower-cover"). The caller retains ownership; Run
	// mutates it in place and also returns it as Result.Collection.
	Collection *mugs.Collection
}

// Stats reports expansion-loop counters for diagnostics.
type Stats struct {
	Expansions    uint64
	Generated     uint64
	Reopened      uint64
	DeadEnds      uint64
	OutOfResource bool
}

// Result is the outcome of one Run.
type Result struct {
	Stats      Stats
	Collection *mugs.Collection
	// Solved is true when a state satisfying every hard goal was found.
	Solved bool
	// Plan is the operator sequence from the task's initial state to
	// GoalState, set only when Solved.
	Plan      []fdr.OperatorID
	GoalState *fdr.State
}

// node tracks the driver's per-state bookkeeping, indexed by StateID.
type node struct {
	bestG    evaluator.Cost
	expanded bool
}

// Run executes the best-first expansion loop of spec §4.E over task using
// eval for priority and dead-end detection. It never returns an error for
// planner-level failure (spec §4.E "Failure semantics": "not a
// system-level failure"); Result.Solved reports that instead. A non-nil
// error indicates a genuine precondition violation (ErrNoEvaluator) or
// that the deadline was exceeded (ErrOutOfResource, Stats still valid).
func Run(task *fdr.Task, eval evaluator.Evaluator, opts Options) (*Result, error) {
	if eval == nil {
		return nil, ErrNoEvaluator
	}
	budget := opts.Budget
	if budget == 0 {
		budget = evaluator.Inf
	}

	coll := opts.Collection
	if coll == nil {
		var err error
		coll, err = mugs.NewCollection(task.HardGoals, task.SoftGoals)
		if err != nil {
			return nil, err
		}
	}
	pruner := pruning.NewPruner(eval, coll, budget)
	if opts.DisableSubsumptionPruning {
		pruner.DisableSubsumption()
	}

	if opts.Anytime {
		coll.OnAdded(func(s goalset.Subset) {
			opts.Logger.Info().Ints("soft_goals", s.Members()).Msg("new MSGS discovered")
		})
	}

	reg := statereg.New()
	nodes := make(map[statereg.StateID]*node)

	initial := task.Initial.Clone()
	startID := reg.Intern(&initial)
	nodes[startID] = &node{bestG: 0}

	open := newOpenList()
	open.push(&openItem{id: startID, g: 0, f: hEstimate(eval, &initial, 0, task.HardGoals)})

	result := &Result{Collection: coll}

	for open.Len() > 0 {
		if opts.Deadline.Expired() {
			result.Stats.OutOfResource = true
			opts.Logger.Warn().Msg("out of resource: deadline exceeded")
			return result, ErrOutOfResource
		}

		item := open.pop()
		n := nodes[item.id]
		if n.expanded && item.g > n.bestG {
			continue // stale entry from before a reopen/better path
		}
		n.expanded = true

		state := reg.State(item.id)
		coll.Track(state)
		result.Stats.Expansions++

		if !result.Solved && allHold(state, task.HardGoals) {
			result.Solved = true
			result.GoalState = &fdr.State{Values: append([]fdr.Value(nil), state.Values...)}
			result.Plan = reg.Path(item.id)
		}

		for _, opID := range orderedApplicable(eval, task, state) {
			op := &task.Operators[opID]
			childG := item.g + op.Cost
			if childG >= budget {
				continue
			}

			child := state.Apply(op)
			result.Stats.Generated++

			pruned, err := pruner.Prune(&child, childG)
			if err != nil {
				return result, err
			}
			if pruned {
				result.Stats.DeadEnds++
				continue
			}

			childID, seen := reg.Lookup(&child)
			if !seen {
				childID = reg.Intern(&child)
				nodes[childID] = &node{bestG: childG}
				reg.SetParent(childID, item.id, opID)
				open.push(&openItem{id: childID, g: childG, f: childG + sumEstimate(eval, &child, childG, task.HardGoals)})
				continue
			}

			cn := nodes[childID]
			if childG < cn.bestG {
				cn.bestG = childG
				reg.SetParent(childID, item.id, opID)
				if cn.expanded {
					if !opts.ReopenClosed {
						continue
					}
					cn.expanded = false
					result.Stats.Reopened++
					opts.Logger.Debug().Uint32("state_id", uint32(childID)).Msg("reopening closed node")
				}
				open.push(&openItem{id: childID, g: childG, f: childG + sumEstimate(eval, &child, childG, task.HardGoals)})
			}
		}
	}

	if !result.Solved && opts.OSP {
		if best := coll.Best(); best != nil {
			result.GoalState = &best.State
		}
	}
	return result, nil
}

func allHold(state *fdr.State, facts []fdr.Fact) bool {
	for _, f := range facts {
		if !state.Holds(f) {
			return false
		}
	}
	return true
}

// sumEstimate is the priority heuristic: the sum of per-fact estimates
// over every hard goal not yet satisfied in state (spec §4.E: "f = g +
// h"). Soft goals do not participate in ordering — they are the
// collection's concern, not the open list's.
func sumEstimate(eval evaluator.Evaluator, state *fdr.State, g evaluator.Cost, hardGoals []fdr.Fact) evaluator.Cost {
	if len(hardGoals) == 0 {
		return 0
	}
	estimates := eval.Estimate(state, g, hardGoals)
	var total evaluator.Cost
	for _, h := range estimates {
		if h == evaluator.Inf {
			return evaluator.Inf
		}
		total += h
	}
	return total
}

func hEstimate(eval evaluator.Evaluator, state *fdr.State, g evaluator.Cost, hardGoals []fdr.Fact) evaluator.Cost {
	return sumEstimate(eval, state, g, hardGoals)
}

// orderedApplicable returns task's applicable operators at state, ordered
// by (¬preferred, operator id) (spec §4.F's successor-traversal order,
// reused here so preferred operators reach the open list first and keep
// StateID assignment — hence tie-breaking — deterministic across runs).
func orderedApplicable(eval evaluator.Evaluator, task *fdr.Task, state *fdr.State) []fdr.OperatorID {
	ids := task.ApplicableOperators(*state)
	preferred := make([]fdr.OperatorID, 0, len(ids))
	rest := make([]fdr.OperatorID, 0, len(ids))
	for _, id := range ids {
		if evaluator.IsPreferred(eval, state, id) {
			preferred = append(preferred, id)
		} else {
			rest = append(rest, id)
		}
	}
	return append(preferred, rest...)
}
