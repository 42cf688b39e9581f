package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/internal/clock"
)

func chainTask(t *testing.T) *fdr.Task {
	t.Helper()
	vars := []fdr.Variable{
		{Name: "x", ValueNames: []string{"a", "b", "c"}},
		{Name: "s", ValueNames: []string{"no", "yes"}},
	}
	ops := []fdr.Operator{
		{Name: "to-b", Preconditions: []fdr.Fact{{Var: 0, Val: 0}}, Effects: []fdr.Fact{{Var: 0, Val: 1}}, Cost: 3},
		{Name: "to-c", Preconditions: []fdr.Fact{{Var: 0, Val: 1}}, Effects: []fdr.Fact{{Var: 0, Val: 2}}, Cost: 2},
		{Name: "set-s", Preconditions: nil, Effects: []fdr.Fact{{Var: 1, Val: 1}}, Cost: 1},
	}
	task, err := fdr.NewTask("chain", vars, ops,
		fdr.State{Values: []fdr.Value{0, 0}},
		[]fdr.Fact{{Var: 0, Val: 2}},
		[]fdr.Fact{{Var: 1, Val: 1}},
		nil,
	)
	require.NoError(t, err)
	return task
}

func TestRun_FindsOptimalPlan(t *testing.T) {
	task := chainTask(t)
	eval := evaluator.NewBlind(task)

	result, err := Run(task, eval, Options{Budget: evaluator.Inf})
	require.NoError(t, err)
	require.True(t, result.Solved)
	require.NotNil(t, result.GoalState)

	var total fdr.Cost
	for _, opID := range result.Plan {
		total += task.Operators[opID].Cost
	}
	require.EqualValues(t, 5, total, "optimal plan costs 3 (to-b) + 2 (to-c)")
	// Once [x=b, s=yes] -> [x=c, s=yes] records {s=yes} as an MSGS, the
	// three later children whose reachable soft goals are {s=yes} are
	// subsumption-pruned and counted as dead ends.
	require.EqualValues(t, 3, result.Stats.DeadEnds)
	require.Greater(t, result.Stats.Expansions, uint64(0))
}

func TestRun_UnreachableHardGoalFailsPlannerLevelOnly(t *testing.T) {
	vars := []fdr.Variable{{Name: "x", ValueNames: []string{"a", "b"}}}
	task, err := fdr.NewTask("stuck", vars, nil,
		fdr.State{Values: []fdr.Value{0}},
		[]fdr.Fact{{Var: 0, Val: 1}},
		nil, nil,
	)
	require.NoError(t, err)
	eval := evaluator.NewBlind(task)

	result, err := Run(task, eval, Options{Budget: evaluator.Inf})
	require.NoError(t, err, "planner failure is not a system-level error")
	require.False(t, result.Solved)
}

func TestRun_OutOfResource(t *testing.T) {
	task := chainTask(t)
	eval := evaluator.NewBlind(task)

	result, err := Run(task, eval, Options{
		Budget:   evaluator.Inf,
		Deadline: clock.After(nil, -time.Millisecond),
	})
	require.ErrorIs(t, err, ErrOutOfResource)
	require.True(t, result.Stats.OutOfResource)
}

func TestRun_NoEvaluator(t *testing.T) {
	task := chainTask(t)
	_, err := Run(task, nil, Options{})
	require.ErrorIs(t, err, ErrNoEvaluator)
}

func TestRun_ProducesMSGSAntichain(t *testing.T) {
	task := chainTask(t)
	eval := evaluator.NewBlind(task)

	result, err := Run(task, eval, Options{Budget: evaluator.Inf})
	require.NoError(t, err)
	require.True(t, result.Solved)
	// The soft goal (s=yes) is always independently reachable from any
	// hard-goal-satisfying state, so the collection should record {g0} as
	// an MSGS (possibly alongside the empty subset only if {g0} was never
	// reached, which should not happen here).
	require.NotEmpty(t, result.Collection.All())
}
