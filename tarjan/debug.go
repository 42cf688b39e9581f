//go:build mugsdebug

package tarjan

import (
	"fmt"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
)

// assertRefined panics unless every state re-evaluates to Inf on every
// goal fact, the invariant a successful Refine call must establish
// ("recognized ⇒ evaluated to ∞", hc_neighbors_refinement.cc's assert).
// Built only under -tags mugsdebug, mirroring the C++ original's
// assert() calls being compiled out of release builds.
func assertRefined(eval evaluator.Evaluator, states []*fdr.State, goals []fdr.Fact) {
	for _, s := range states {
		for i, h := range eval.Estimate(s, 0, goals) {
			if h != evaluator.Inf {
				panic(fmt.Sprintf("tarjan: refinement invariant violated: goal %d estimated %v, want Inf", i, h))
			}
		}
	}
}
