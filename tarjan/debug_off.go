//go:build !mugsdebug

package tarjan

import (
	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
)

// assertRefined is a no-op outside -tags mugsdebug builds.
func assertRefined(evaluator.Evaluator, []*fdr.State, []fdr.Fact) {}
