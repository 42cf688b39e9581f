package tarjan

import "github.com/katalvlaran/mugs-search/internal/statereg"

// uniqueNeighbors deduplicates ids by StateID, preserving first-seen order
// (C++ original's c_make_neighbors_unique, recovered as the
// unique_neighbors Configuration option): a recognized dead end may be
// reached as a neighbor of several component members, and a refiner that
// counts occurrences should see each once.
func uniqueNeighbors(ids []statereg.StateID) []statereg.StateID {
	seen := make(map[statereg.StateID]struct{}, len(ids))
	out := make([]statereg.StateID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
