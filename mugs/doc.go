// Package mugs maintains the MSGS (Maximally Solvable Goal Subset)
// collection at the heart of this search engine (spec §4.B): an antichain
// of soft-goal subsets, partitioned by cardinality into ascending buckets,
// incrementally kept minimal as new subsets are discovered. On demand
// (typically once at search end) it dualizes to the MUGS (Minimal
// Unsolvable Goal Subset) family via goalset.MinimalHittingSets.
//
// A Collection is owned by exactly one search driver and mutated only
// from its expansion loop (spec §5); it holds no locks and is not safe
// for concurrent use, matching the engine's single-threaded cooperative
// scheduling model.
package mugs
