package tarjan

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/internal/statereg"
	"github.com/katalvlaran/mugs-search/mugs"
	"github.com/katalvlaran/mugs-search/pruning"
)

// Stats reports per-run Tarjan driver counters.
type Stats struct {
	Visited              uint64
	SCCsFound            uint64
	DeadEndComponents    uint64
	RefinementsAttempted uint64
	RefinementsSucceeded uint64
	RefinementTime       time.Duration
}

// Options configures a Driver.
type Options struct {
	// Logger receives one Debug line per closed dead-end component and one Warn line
	// if the refiner reports failure (spec §2 AMBIENT STACK).
	Logger zerolog.Logger

	// DisableSubsumptionPruning turns off MSGS-subsumption pruning (spec
	// §6 `prune` option); see pruning.Pruner.DisableSubsumption. Without
	// it, a task with no soft goals can never be explored past its root.
	DisableSubsumptionPruning bool

	// UniqueNeighbors deduplicates a closed component's recognized
	// dead-end neighbors by StateID before they are passed to Refine
	// (spec §6 `unique_neighbors` option).
	UniqueNeighbors bool
}

type nodeInfo struct {
	index, lowlink int
	onStack        bool
	dead           bool // this state is itself a recognized dead end
}

// Driver runs the cost-bounded Tarjan DFS of spec §4.F against one task,
// sharing its MSGS collection (and hence the same dead-end arithmetic)
// with pruning.Pruner exactly as the best-first search driver does.
type Driver struct {
	task   *fdr.Task
	eval   evaluator.Evaluator
	pruner *pruning.Pruner
	reg    *statereg.Registry
	opts   Options

	info   map[statereg.StateID]*nodeInfo
	stack  []statereg.StateID
	counter int

	refinementDisabled bool
	stats              Stats
	solved             bool
}

// NewDriver builds a Driver over task using eval and sharing coll — the
// same collection a search.Run or a sibling Driver round may already be
// populating (spec §4.G: rounds merge into "the current task's MSGS").
func NewDriver(task *fdr.Task, eval evaluator.Evaluator, coll *mugs.Collection, budget evaluator.Cost, opts Options) (*Driver, error) {
	if eval == nil {
		return nil, ErrNoEvaluator
	}
	pruner := pruning.NewPruner(eval, coll, budget)
	if opts.DisableSubsumptionPruning {
		pruner.DisableSubsumption()
	}
	return &Driver{
		task:   task,
		eval:   eval,
		pruner: pruner,
		reg:    statereg.New(),
		opts:   opts,
		info:   make(map[statereg.StateID]*nodeInfo),
	}, nil
}

// Stats returns the driver's cumulative counters across every Run call.
func (d *Driver) Stats() Stats { return d.stats }

// Collection returns the MSGS collection this driver populates.
func (d *Driver) Collection() *mugs.Collection { return d.pruner.Collection() }

// Solved reports whether any state visited across every Run call so far
// satisfies every hard goal. Unlike the MSGS collection's Track bookkeeping
// (which records nothing when the task has no soft goals, since every
// reachable-soft projection is trivially subsumed by the ever-present
// empty subset — spec §8 scenario S1), this is tracked independently of
// pruning, so it is the signal relax.IteratedBoundDriver polls for "the
// task is solved" (spec §4.F "Bound tightening").
func (d *Driver) Solved() bool { return d.solved }

// Run performs one Tarjan DFS from start (spec §4.F). Repeated calls (one
// per bound-tightening round, spec §4.F "Bound tightening") reuse the
// driver's visited-node table: a state already classified dead remains
// dead, and index/lowlink numbering continues to advance.
func (d *Driver) Run(start *fdr.State) error {
	id := d.reg.Intern(start)
	d.strongConnect(id)
	return nil
}

func (d *Driver) isDead(id statereg.StateID) bool {
	if info, ok := d.info[id]; ok && info.dead {
		return true
	}
	return evaluator.DeadEnd(d.eval, d.reg.State(id))
}

// strongConnect is the classical Tarjan DFS step, specialized so that only
// zero-cost edges to an on-stack node may lower lowlink below a tree-edge
// contribution (spec §4.F: "positive-cost edges never close cycles ...
// but are still traversed").
func (d *Driver) strongConnect(v statereg.StateID) {
	if _, done := d.info[v]; done {
		return
	}
	state := d.reg.State(v)
	if !d.solved && allHold(state, d.task.HardGoals) {
		d.solved = true
	}

	// g is passed as 0: this driver classifies a state as dead purely by
	// whether its goal facts are reachable within the fixed budget the
	// Driver was constructed with, independent of the path cost used to
	// reach v (spec §4.F does not thread per-node g through the SCC test).
	pruned, _ := d.pruner.Prune(state, 0)
	if pruned || d.pruner.IsDeadEnd(state) {
		d.info[v] = &nodeInfo{dead: true}
		d.stats.Visited++
		return
	}

	info := &nodeInfo{index: d.counter, lowlink: d.counter}
	d.counter++
	info.onStack = true
	d.info[v] = info
	d.stack = append(d.stack, v)
	d.stats.Visited++

	for _, succ := range d.orderedSuccessors(v) {
		w, zeroCost := succ.id, succ.zeroCost

		wInfo, visited := d.info[w]
		if !visited {
			d.strongConnect(w)
			wInfo = d.info[w]
			if wInfo != nil && !wInfo.dead && wInfo.lowlink < info.lowlink {
				info.lowlink = wInfo.lowlink
			}
		} else if wInfo.onStack && zeroCost {
			if wInfo.index < info.lowlink {
				info.lowlink = wInfo.index
			}
		}
	}

	if info.lowlink == info.index {
		d.closeSCC(v)
	}
}

// allHold reports whether every fact in facts holds in state.
func allHold(state *fdr.State, facts []fdr.Fact) bool {
	for _, f := range facts {
		if !state.Holds(f) {
			return false
		}
	}
	return true
}

type successor struct {
	id       statereg.StateID
	op       fdr.OperatorID
	zeroCost bool
}

// orderedSuccessors returns v's applicable-operator successors ordered by
// (¬preferred, h) (spec §4.F).
func (d *Driver) orderedSuccessors(v statereg.StateID) []successor {
	state := d.reg.State(v)
	ids := d.task.ApplicableOperators(*state)

	preferred := make([]fdr.OperatorID, 0, len(ids))
	rest := make([]fdr.OperatorID, 0, len(ids))
	for _, id := range ids {
		if evaluator.IsPreferred(d.eval, state, id) {
			preferred = append(preferred, id)
		} else {
			rest = append(rest, id)
		}
	}
	ordered := append(preferred, rest...)

	out := make([]successor, 0, len(ordered))
	for _, opID := range ordered {
		op := &d.task.Operators[opID]
		child := state.Apply(op)
		childID := d.reg.Intern(&child)
		out = append(out, successor{id: childID, op: opID, zeroCost: op.Cost == 0})
	}
	return out
}

// closeSCC pops the completed component rooted at v, classifies it, and
// (if closed) attempts conflict-driven refinement.
func (d *Driver) closeSCC(v statereg.StateID) {
	var component []statereg.StateID
	for {
		n := len(d.stack) - 1
		w := d.stack[n]
		d.stack = d.stack[:n]
		d.info[w].onStack = false
		component = append(component, w)
		if w == v {
			break
		}
	}
	d.stats.SCCsFound++

	closed := true
	var recognizedNeighbors []statereg.StateID
	inComponent := make(map[statereg.StateID]bool, len(component))
	for _, id := range component {
		inComponent[id] = true
	}
	for _, id := range component {
		for _, succ := range d.orderedSuccessors(id) {
			if inComponent[succ.id] {
				continue
			}
			if d.isDead(succ.id) {
				recognizedNeighbors = append(recognizedNeighbors, succ.id)
				continue
			}
			closed = false
		}
	}

	if !closed {
		return
	}
	if d.opts.UniqueNeighbors {
		recognizedNeighbors = uniqueNeighbors(recognizedNeighbors)
	}
	d.stats.DeadEndComponents++
	d.opts.Logger.Debug().Int("component_size", len(component)).Msg("closed dead-end component")

	for _, id := range component {
		d.info[id].dead = true
	}

	refiner, ok := d.eval.(evaluator.Refiner)
	if !ok || d.refinementDisabled {
		return
	}

	compStates := make([]*fdr.State, len(component))
	for i, id := range component {
		compStates[i] = d.reg.State(id)
	}
	neighborStates := make([]*fdr.State, len(recognizedNeighbors))
	for i, id := range recognizedNeighbors {
		neighborStates[i] = d.reg.State(id)
	}

	d.stats.RefinementsAttempted++
	startedAt := time.Now()
	refined := refiner.Refine(compStates, neighborStates)
	d.stats.RefinementTime += time.Since(startedAt)

	if !refined {
		d.refinementDisabled = true
		d.opts.Logger.Warn().Msg("refiner failed; disabling further refinement")
		return
	}
	d.stats.RefinementsSucceeded++

	goals := append([]fdr.Fact(nil), d.task.HardGoals...)
	goals = append(goals, d.task.SoftGoals...)
	assertRefined(d.eval, compStates, goals)
}
