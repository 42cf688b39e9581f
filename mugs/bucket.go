package mugs

import "github.com/katalvlaran/mugs-search/goalset"

// bucket holds every recorded MSGS of one fixed cardinality, keyed by
// subset for O(1) duplicate detection.
type bucket struct {
	items map[goalset.Subset]struct{}
}

func newBucket() bucket {
	return bucket{items: make(map[goalset.Subset]struct{})}
}

func (b *bucket) contains(s goalset.Subset) bool {
	_, ok := b.items[s]
	return ok
}

func (b *bucket) insert(s goalset.Subset) {
	b.items[s] = struct{}{}
}

func (b *bucket) remove(s goalset.Subset) {
	delete(b.items, s)
}

func (b *bucket) len() int {
	return len(b.items)
}
