package planjson_test

import (
	"fmt"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/planjson"
	"github.com/katalvlaran/mugs-search/search"
)

// ExampleEncodeMUGS runs a two-soft-goal task with no operators to
// completion and renders its MUGS as fact-name strings: neither goal is
// reachable, so the only MSGS is the empty subset and each goal on its own
// is a MUGS, giving two.
func ExampleEncodeMUGS() {
	vars := []fdr.Variable{
		{Name: "p", ValueNames: []string{"off", "on"}},
		{Name: "q", ValueNames: []string{"off", "on"}},
	}
	task, _ := fdr.NewTask("two-goal", vars, nil, fdr.State{Values: []fdr.Value{0, 0}},
		nil, []fdr.Fact{{Var: 0, Val: 1}, {Var: 1, Val: 1}}, nil)

	result, _ := search.Run(task, evaluator.NewBlind(task), search.Options{Budget: evaluator.Inf})
	report, _ := planjson.EncodeMUGS(task, result.Collection)

	fmt.Println(len(report.MUGS))
	// Output: 2
}
