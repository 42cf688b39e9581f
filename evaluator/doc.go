// Package evaluator defines the uniform contract (spec §4.C) through which
// the search, pruning and Tarjan-conflict-learning components consume
// per-fact distance estimates, without depending on any individual
// heuristic's internals (h-max, h^C critical-path, Cartesian abstractions,
// potential heuristics — all external collaborators per spec §1).
//
// An Evaluator must be consistent in the classical sense (monotonic along
// edges) for the admissibility of pruning to hold; this package only
// states and exercises the contract, it does not prove consistency for
// any particular implementation.
//
// Two small, self-contained evaluators live here because they are not
// "individual heuristic implementations" in the sense the Non-goals
// exclude — they are reference stand-ins used by tests, documentation
// examples, and the iterated-relaxation driver's root re-evaluation:
// Blind (0 for a fact already holding, else the task's cheapest operator
// cost, or Inf when the task has no operators) and Delta
// (a tiny consistent per-operator-cost relaxation used where a sharper
// estimate isn't needed).
package evaluator
