package search

import (
	"container/heap"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/internal/statereg"
)

// openItem is one entry in the priority queue: a candidate state to expand
// at accumulated cost G, ranked by F = G + h.
type openItem struct {
	id    statereg.StateID
	g     evaluator.Cost
	f     evaluator.Cost
	index int
}

// openList is a min-heap over openItem ordered by (f, id) — state-id
// ascending breaks ties deterministically (spec §5: "the order in which
// equal-priority open states are expanded is deterministic under a fixed
// tie-break rule (state-id ascending)"), matching the nodePQ pattern the
// teacher's Dijkstra uses for its container/heap priority queue.
type openList []*openItem

func (pq openList) Len() int { return len(pq) }

func (pq openList) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].id < pq[j].id
}

func (pq openList) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openList) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *openList) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

func newOpenList() *openList {
	pq := &openList{}
	heap.Init(pq)
	return pq
}

func (pq *openList) push(item *openItem) { heap.Push(pq, item) }

func (pq *openList) pop() *openItem { return heap.Pop(pq).(*openItem) }
