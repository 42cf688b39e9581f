package search_test

import (
	"fmt"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/search"
)

// ExampleRun finds the optimal plan for a two-step chain task and reports
// its total cost. The task has no soft goals, so subsumption pruning is
// turned off; with it on, the recorded empty subset would prune every
// successor of the initial state.
func ExampleRun() {
	vars := []fdr.Variable{{Name: "x", ValueNames: []string{"a", "b", "c"}}}
	ops := []fdr.Operator{
		{Name: "to-b", Preconditions: []fdr.Fact{{Var: 0, Val: 0}}, Effects: []fdr.Fact{{Var: 0, Val: 1}}, Cost: 3},
		{Name: "to-c", Preconditions: []fdr.Fact{{Var: 0, Val: 1}}, Effects: []fdr.Fact{{Var: 0, Val: 2}}, Cost: 2},
	}
	task, _ := fdr.NewTask("chain", vars, ops, fdr.State{Values: []fdr.Value{0}},
		[]fdr.Fact{{Var: 0, Val: 2}}, nil, nil)

	result, _ := search.Run(task, evaluator.NewBlind(task), search.Options{Budget: evaluator.Inf, DisableSubsumptionPruning: true})

	var total fdr.Cost
	for _, opID := range result.Plan {
		total += task.Operators[opID].Cost
	}
	fmt.Println(result.Solved, total)
	// Output: true 5
}
