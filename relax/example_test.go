package relax_test

import (
	"fmt"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/relax"
	"github.com/katalvlaran/mugs-search/search"
)

// ExampleRun relaxes a single hard goal into an easier lower task: the
// lower task's only operator is cheap enough to solve outright, and its
// solved status propagates to the upper (original) task without running a
// second search. Neither task has soft goals, so subsumption pruning is
// turned off for the sub-searches.
func ExampleRun() {
	vars := []fdr.Variable{{Name: "x", ValueNames: []string{"a", "b"}}}
	ops := []fdr.Operator{
		{Name: "to-b", Preconditions: []fdr.Fact{{Var: 0, Val: 0}}, Effects: []fdr.Fact{{Var: 0, Val: 1}}, Cost: 1},
	}
	lower, _ := fdr.NewTask("lower", vars, ops, fdr.State{Values: []fdr.Value{0}},
		[]fdr.Fact{{Var: 0, Val: 1}}, nil, nil)
	upper, _ := fdr.NewTask("upper", vars, nil, fdr.State{Values: []fdr.Value{0}},
		[]fdr.Fact{{Var: 0, Val: 1}}, nil, nil)

	lattice := &relax.Lattice{
		Nodes: []relax.Node{
			{Name: "lower", Task: lower, Eval: evaluator.NewBlind(lower), UpperCover: []relax.NodeID{1}},
			{Name: "upper", Task: upper, Eval: evaluator.NewBlind(upper), LowerCover: []relax.NodeID{0}},
		},
	}

	report, _ := relax.Run(lattice, nil, relax.Options{
		Budget:        evaluator.Inf,
		SearchOptions: search.Options{DisableSubsumptionPruning: true},
	})
	for _, result := range report.Results {
		fmt.Println(result.Name, result.Solved, result.Propagated)
	}
	// Output:
	// lower true false
	// upper true true
}
