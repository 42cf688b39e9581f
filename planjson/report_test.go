package planjson_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/mugs"
	"github.com/katalvlaran/mugs-search/planjson"
	"github.com/katalvlaran/mugs-search/search"
)

func twoGoalTask(t *testing.T) *fdr.Task {
	t.Helper()
	vars := []fdr.Variable{
		{Name: "p", ValueNames: []string{"off", "on"}},
		{Name: "q", ValueNames: []string{"off", "on"}},
	}
	task, err := fdr.NewTask("two-goal", vars, nil, fdr.State{Values: []fdr.Value{0, 0}},
		nil, []fdr.Fact{{Var: 0, Val: 1}, {Var: 1, Val: 1}}, nil)
	require.NoError(t, err)
	return task
}

func TestFactName(t *testing.T) {
	task := twoGoalTask(t)

	name, err := planjson.FactName(task, fdr.Fact{Var: 0, Val: 1})
	require.NoError(t, err)
	require.Equal(t, "p=on", name)

	_, err = planjson.FactName(task, fdr.Fact{Var: 5, Val: 0})
	require.ErrorIs(t, err, planjson.ErrVariableOutOfRange)

	_, err = planjson.FactName(task, fdr.Fact{Var: 0, Val: 9})
	require.ErrorIs(t, err, planjson.ErrVariableOutOfRange)
}

func TestEncodeMUGS_NeitherGoalReachable(t *testing.T) {
	task := twoGoalTask(t)
	result, err := search.Run(task, evaluator.NewBlind(task), search.Options{Budget: evaluator.Inf})
	require.NoError(t, err)

	report, err := planjson.EncodeMUGS(task, result.Collection)
	require.NoError(t, err)
	require.Contains(t, report.MUGS, []string{"p=on"})
	require.Contains(t, report.MUGS, []string{"q=on"})
}

func TestEncodeTask(t *testing.T) {
	task := twoGoalTask(t)
	coll, err := mugs.NewCollection(task.HardGoals, task.SoftGoals)
	require.NoError(t, err)
	coll.Track(&task.Initial)

	tr, err := planjson.EncodeTask(task, coll, "root", false)
	require.NoError(t, err)
	require.Equal(t, "root", tr.Name)
	require.False(t, tr.Solved)
	require.NotEmpty(t, tr.MUGS)
}
