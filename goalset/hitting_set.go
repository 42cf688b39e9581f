package goalset

// MinimalHittingSets computes the inclusion-minimal subsets H of the
// universe {0,...,w-1} such that H intersects every member of family
// (spec §4.A). Called on the complements of the MSGS family, this yields
// the MUGS; the correctness argument is the classical duality between
// minimal hitting sets and minimal transversals of the maximal
// complements (spec §4.A).
//
// Algorithm (as specified):
//  1. H := singletons(family[0])
//  2. for each subsequent A in family: H := minimize(H x singletons(A))
//     where "x" is the cross product of subsets under set union.
//  3. return H
//
// An empty family yields a single hitting set: the empty subset (there is
// nothing to hit). A family containing the empty subset can never be hit
// (no subset intersects the empty set), so MinimalHittingSets returns nil
// in that case — the empty subset's presence makes the hitting-set
// problem infeasible.
func MinimalHittingSets(family []Subset) []Subset {
	if len(family) == 0 {
		return []Subset{Empty}
	}
	if containsEmpty(family) {
		return nil
	}

	h := family[0].Singletons()
	for _, a := range family[1:] {
		h = crossUnionMinimize(h, a.Singletons())
		if len(h) == 0 {
			return nil
		}
	}
	return h
}

func containsEmpty(family []Subset) bool {
	for _, a := range family {
		if a == Empty {
			return true
		}
	}
	return false
}

// crossUnionMinimize forms {x ∪ y : x ∈ left, y ∈ right}, deduplicates, and
// discards every non-minimal element (any element that strictly contains
// another element of the result).
func crossUnionMinimize(left, right []Subset) []Subset {
	seen := make(map[Subset]struct{}, len(left)*len(right))
	combined := make([]Subset, 0, len(left)*len(right))
	for _, x := range left {
		for _, y := range right {
			u := x.Union(y)
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			combined = append(combined, u)
		}
	}
	return minimize(combined)
}

// minimize removes every element of xs that is a strict superset of
// another element of xs, returning an antichain.
func minimize(xs []Subset) []Subset {
	out := make([]Subset, 0, len(xs))
	for i, x := range xs {
		dominated := false
		for j, y := range xs {
			if i == j {
				continue
			}
			if x.IsStrictSupersetOf(y) {
				dominated = true
				break
			}
			// Tie-break equal-cardinality duplicates deterministically: keep
			// the lower index so the result is stable for identical inputs.
			if x == y && j < i {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, x)
		}
	}
	return out
}
