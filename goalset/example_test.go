package goalset_test

import (
	"fmt"

	"github.com/katalvlaran/mugs-search/goalset"
)

// ExampleMinimalHittingSets dualizes the complements of a small MSGS family,
// matching scenario S2 of the spec: two independent soft goals whose pair
// is jointly unreachable.
func ExampleMinimalHittingSets() {
	g1, g2 := 0, 1
	msgs := []goalset.Subset{goalset.Single(g1), goalset.Single(g2)}
	w := goalset.Width(2)

	complements := make([]goalset.Subset, len(msgs))
	for i, m := range msgs {
		complements[i] = m.Complement(w)
	}

	mugs := goalset.MinimalHittingSets(complements)
	fmt.Println(mugs[0].Members())
	// Output: [0 1]
}
