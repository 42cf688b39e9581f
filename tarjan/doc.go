// Package tarjan implements the cost-bounded Tarjan variant of spec §4.F:
// strongly-connected-component discovery over the explicit search graph,
// specialized to recognize dead-end components and, when the evaluator
// exposes a Refine callback, to learn from them.
//
// The recursive strongConnect structure follows the classical Tarjan DFS
// (index/lowlink/on-stack bookkeeping, SCC popped when lowlink==index) as
// found elsewhere in the retrieval pack's graph-algorithm code; this
// package specializes it with the cost-bounded planning semantics spec
// §4.F describes: a zero-cost "layer" in which only zero-cost edges may
// close a cycle, closed-component detection, and a conflict-learning hook.
package tarjan
