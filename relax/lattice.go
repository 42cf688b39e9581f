package relax

import (
	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
)

// NodeID indexes a Node within a Lattice's Nodes slice.
type NodeID int

// Node is one relaxed task in the partial order (spec §6 "optional
// relaxed-task definitions ... each naming the task, a partial
// initial-state override, lower-cover and upper-cover neighbor ids, and
// applicable-action filters"). The partial initial-state override and
// applicable-action filter are expressed simply as a fully-built Task:
// the caller (typically the YAML loader) applies those overrides once,
// ahead of time, so this package only ever deals in plain fdr.Task values
// plus the graph of covers between them.
type Node struct {
	Name string
	Task *fdr.Task

	// Eval overrides Run's default evaluator for this node. A relaxed
	// task typically has a different operator set than its neighbors
	// (that is what "relaxed" means), so most evaluator implementations
	// — Blind's precomputed minimum operator cost included — must be
	// rebuilt per task rather than reused across the lattice; leave nil
	// to fall back to Run's default only when the lattice's evaluator
	// genuinely is task-agnostic.
	Eval evaluator.Evaluator

	LowerCover []NodeID // nodes this one's MSGS is seeded from
	UpperCover []NodeID // nodes that inherit this one's MSGS once solved
}

// Lattice is a finite collection of relaxed-task Nodes related by the
// lower-cover/upper-cover edges above. It need not be a lattice in the
// strict order-theoretic sense; any DAG of cover edges is accepted, the
// same way the spec's "finite partial order" is realized in practice by
// whatever relaxation relation the task reader computed.
type Lattice struct {
	Nodes []Node
}

// topoOrder returns Lattice.Nodes indices in an order where every node
// appears after all of its LowerCover dependencies, so that by the time a
// node is processed every task it is seeded from has already run (spec
// §4.G step 3). Returns ErrCyclicLattice if the cover edges are not
// acyclic, ErrUnknownNode if a cover references an out-of-range id.
func (l *Lattice) topoOrder() ([]NodeID, error) {
	n := len(l.Nodes)
	indegree := make([]int, n)
	for _, node := range l.Nodes {
		for _, lc := range node.LowerCover {
			if int(lc) < 0 || int(lc) >= n {
				return nil, ErrUnknownNode
			}
		}
		for _, uc := range node.UpperCover {
			if int(uc) < 0 || int(uc) >= n {
				return nil, ErrUnknownNode
			}
		}
	}
	for id := range l.Nodes {
		indegree[id] = len(l.Nodes[id].LowerCover)
	}

	queue := make([]NodeID, 0, n)
	for id := 0; id < n; id++ {
		if indegree[id] == 0 {
			queue = append(queue, NodeID(id))
		}
	}

	order := make([]NodeID, 0, n)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, uc := range l.Nodes[id].UpperCover {
			indegree[uc]--
			if indegree[uc] == 0 {
				queue = append(queue, uc)
			}
		}
	}

	if len(order) != n {
		return nil, ErrCyclicLattice
	}
	return order, nil
}
