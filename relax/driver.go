package relax

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/mugs"
	"github.com/katalvlaran/mugs-search/search"
)

// Options configures one Run of the lattice driver.
type Options struct {
	// Budget is the per-sub-search cost bound B passed to search.Run.
	Budget evaluator.Cost

	// SearchOptions carries through to every sub-search's search.Run call
	// (Anytime, ReopenClosed, OSP, Deadline, Logger); its Collection and
	// Budget fields are overwritten per node, so leave them zero.
	SearchOptions search.Options

	// Logger receives one Info line per node processed and one Debug line
	// per solvability propagation.
	Logger zerolog.Logger
}

// TaskResult is one lattice node's outcome (spec §4.G "per-task MUGS
// report").
type TaskResult struct {
	Name       string
	Solved     bool
	Collection *mugs.Collection
	// Propagated is true when Solved was inherited from a lower-cover
	// node rather than established by running a sub-search here.
	Propagated bool
}

// Report is the outcome of one Run: one TaskResult per lattice node, in
// Lattice.Nodes order (not processing order).
type Report struct {
	Results []TaskResult
}

// Run executes spec §4.G's iterated relaxation driver over lattice,
// stopping when every node has either been run or had its result
// propagated from a solved predecessor. defaultEval is used for any Node
// that does not set its own Eval; it is an error for a node to end up
// with no evaluator at all.
func Run(lattice *Lattice, defaultEval evaluator.Evaluator, opts Options) (*Report, error) {
	if len(lattice.Nodes) == 0 {
		return nil, ErrEmptyLattice
	}
	for _, node := range lattice.Nodes {
		if node.Eval == nil && defaultEval == nil {
			return nil, ErrNoEvaluator
		}
	}
	order, err := lattice.topoOrder()
	if err != nil {
		return nil, err
	}

	budget := opts.Budget
	if budget == 0 {
		budget = evaluator.Inf
	}

	results := make([]TaskResult, len(lattice.Nodes))
	solved := make([]bool, len(lattice.Nodes))

	for _, id := range order {
		node := lattice.Nodes[id]

		if solved[id] {
			// Already propagated from a lower-cover node before we got
			// here (spec §4.G step 2): nothing left to run.
			opts.Logger.Debug().Str("task", node.Name).Msg("solvability propagated; skipping sub-search")
			continue
		}

		coll, err := mugs.NewCollection(node.Task.HardGoals, node.Task.SoftGoals)
		if err != nil {
			return nil, err
		}
		for _, lc := range node.LowerCover {
			for _, s := range results[lc].Collection.All() {
				coll.Add(s)
			}
		}

		sOpts := opts.SearchOptions
		sOpts.Budget = budget
		sOpts.Collection = coll
		opts.Logger.Info().Str("task", node.Name).Msg("running relaxed task")

		eval := node.Eval
		if eval == nil {
			eval = defaultEval
		}
		res, err := search.Run(node.Task, eval, sOpts)
		if err != nil {
			return nil, err
		}

		results[id] = TaskResult{Name: node.Name, Solved: res.Solved, Collection: coll}
		solved[id] = res.Solved

		if res.Solved {
			propagateSolved(lattice, id, results, solved, opts.Logger)
		}
	}

	return &Report{Results: results}, nil
}

// propagateSolved marks every node transitively reachable from id through
// upper-cover edges as solved, copying id's collection (spec §4.G step 2:
// "if the current task is solvable, so is every task above it in the
// upper-cover; their MSGS is set to the current one"). Already-solved
// nodes are not revisited, bounding this to one pass per edge.
func propagateSolved(lattice *Lattice, id NodeID, results []TaskResult, solved []bool, logger zerolog.Logger) {
	queue := append([]NodeID(nil), lattice.Nodes[id].UpperCover...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if solved[cur] {
			continue
		}
		solved[cur] = true
		results[cur] = TaskResult{
			Name:       lattice.Nodes[cur].Name,
			Solved:     true,
			Collection: results[id].Collection,
			Propagated: true,
		}
		logger.Debug().Str("task", lattice.Nodes[cur].Name).Str("from", lattice.Nodes[id].Name).Msg("solvability propagated")
		queue = append(queue, lattice.Nodes[cur].UpperCover...)
	}
}
