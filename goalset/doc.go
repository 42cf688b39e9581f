// Package goalset implements the fixed-width soft-goal subset algebra
// (spec §4.A): a Subset is a bitmask over {0,...,w-1} stored in a single
// machine word, with union, intersection, complement, (strict) superset
// tests, cardinality, and singleton enumeration all O(1) via hardware
// popcount intrinsics exposed by math/bits.
//
// It also implements minimal hitting-set dualization, the algorithm that
// turns the MSGS collection (package mugs) into its dual MUGS family.
package goalset
