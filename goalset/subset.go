package goalset

import "math/bits"

// MaxWidth is the widest soft-goal universe a Subset can represent: one
// bit per soft goal in a 64-bit machine word (spec §3: "w ≤ 64").
const MaxWidth = 64

// Width is the nominal size of a soft-goal universe, 0..MaxWidth (0 for a
// task with no soft goals).
type Width uint8

// NewWidth validates w and returns it as a Width.
func NewWidth(w int) (Width, error) {
	if w < 0 || w > MaxWidth {
		return 0, ErrWidthTooLarge
	}
	return Width(w), nil
}

// fullMask returns a mask with exactly the low w bits set.
func (w Width) fullMask() uint64 {
	if w == 0 {
		return 0
	}
	if w == MaxWidth {
		return ^uint64(0)
	}
	return (uint64(1) << uint(w)) - 1
}

// Subset is a bitmask over a soft-goal universe of some fixed Width: bit i
// set means soft goal i is a member. The empty subset is the zero value
// and is always a valid element (spec §3 invariant).
type Subset uint64

// Empty is the subset containing no soft goals.
const Empty Subset = 0

// Single returns the subset containing only soft goal i.
func Single(i int) Subset {
	return Subset(uint64(1) << uint(i))
}

// Union returns the union of s and o.
func (s Subset) Union(o Subset) Subset {
	return s | o
}

// Intersect returns the intersection of s and o.
func (s Subset) Intersect(o Subset) Subset {
	return s & o
}

// Complement returns the complement of s relative to the full universe of
// width w.
func (s Subset) Complement(w Width) Subset {
	return Subset(w.fullMask()) &^ s
}

// Contains reports whether soft goal i is a member of s.
func (s Subset) Contains(i int) bool {
	return s&(Subset(1)<<uint(i)) != 0
}

// IsSupersetOf reports whether s ⊇ o.
func (s Subset) IsSupersetOf(o Subset) bool {
	return o&^s == 0
}

// IsStrictSupersetOf reports whether s ⊃ o (s ⊇ o and s != o).
func (s Subset) IsStrictSupersetOf(o Subset) bool {
	return s != o && s.IsSupersetOf(o)
}

// IsSubsetOf reports whether s ⊆ o.
func (s Subset) IsSubsetOf(o Subset) bool {
	return o.IsSupersetOf(s)
}

// Card returns the number of members of s (its popcount).
func (s Subset) Card() int {
	return bits.OnesCount64(uint64(s))
}

// Singletons returns the Card() subsets each containing exactly one member
// bit set in s, in ascending bit-index order.
func (s Subset) Singletons() []Subset {
	out := make([]Subset, 0, s.Card())
	rest := uint64(s)
	for rest != 0 {
		lowest := rest & -rest
		out = append(out, Subset(lowest))
		rest &^= lowest
	}
	return out
}

// Members returns the sorted indices of set bits in s.
func (s Subset) Members() []int {
	out := make([]int, 0, s.Card())
	rest := uint64(s)
	for rest != 0 {
		i := bits.TrailingZeros64(rest)
		out = append(out, i)
		rest &^= uint64(1) << uint(i)
	}
	return out
}

// FromMembers builds a Subset from a list of member indices.
func FromMembers(idx []int) Subset {
	var s Subset
	for _, i := range idx {
		s |= Subset(1) << uint(i)
	}
	return s
}
