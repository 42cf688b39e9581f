package tarjan_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/mugs"
	"github.com/katalvlaran/mugs-search/tarjan"
)

// DriverSuite exercises the Tarjan driver under various component shapes.
type DriverSuite struct {
	suite.Suite
}

// cycleTask builds a two-state zero-cost cycle (x in {a,b}, toggle both
// ways at cost 0), an independent always-toggleable soft-goal variable s,
// and an unreachable hard goal x=c. Because no operator ever produces
// x=c, the hard goal is never satisfied, so track() never adds a new
// MSGS and the soft-goal subsumption check in prune() never short
// circuits — every one of the four reachable (x, s) combinations reaches
// the driver's main DFS path, forming one connected zero-cost component
// with no edge leaving it.
func (s *DriverSuite) cycleTask() *fdr.Task {
	vars := []fdr.Variable{
		{Name: "x", ValueNames: []string{"a", "b", "c"}},
		{Name: "s", ValueNames: []string{"no", "yes"}},
	}
	ops := []fdr.Operator{
		{Name: "a-to-b", Preconditions: []fdr.Fact{{Var: 0, Val: 0}}, Effects: []fdr.Fact{{Var: 0, Val: 1}}, Cost: 0},
		{Name: "b-to-a", Preconditions: []fdr.Fact{{Var: 0, Val: 1}}, Effects: []fdr.Fact{{Var: 0, Val: 0}}, Cost: 0},
		{Name: "set-s", Preconditions: nil, Effects: []fdr.Fact{{Var: 1, Val: 1}}, Cost: 0},
	}
	task, err := fdr.NewTask("cycle", vars, ops, fdr.State{Values: []fdr.Value{0, 0}},
		[]fdr.Fact{{Var: 0, Val: 2}}, []fdr.Fact{{Var: 1, Val: 1}}, nil)
	s.Require().NoError(err)
	return task
}

func (s *DriverSuite) TestClosedCycleIsDeadEndComponent() {
	task := s.cycleTask()
	eval := evaluator.NewBlind(task)
	coll, err := mugs.NewCollection(task.HardGoals, task.SoftGoals)
	s.Require().NoError(err)

	d, err := tarjan.NewDriver(task, eval, coll, evaluator.Inf, tarjan.Options{})
	s.Require().NoError(err)

	err = d.Run(&task.Initial)
	s.Require().NoError(err)

	stats := d.Stats()
	s.Greater(stats.Visited, uint64(0))
	s.GreaterOrEqual(stats.SCCsFound, uint64(1))
	s.Equal(uint64(1), stats.DeadEndComponents, "the {a,b} cycle cannot reach x=c; it is a single closed component")
}

// TestExhaustiveSearchClosesEveryComponent runs the driver to completion
// over a tiny fully-reachable two-state chain. With no budget cutoff the
// DFS visits the entire reachable space, so every component — including
// the goal state itself, a terminal sink with no outgoing edges — closes
// as a recognized dead end: there is nothing left anywhere reachable from
// it for a further round to discover (spec §4.F's closure test is vacuous
// once exploration is exhaustive, not an indictment of the goal state).
func (s *DriverSuite) TestExhaustiveSearchClosesEveryComponent() {
	// x carries the hard goal; done is a single-valued variable that
	// holds from the initial state onward (no operator touches it), so
	// its soft goal is a distinct fact from the hard goal without
	// perturbing the two-state reachable space fdr.NewTask would
	// otherwise reject as a hard/soft goal overlap.
	vars := []fdr.Variable{
		{Name: "x", ValueNames: []string{"a", "b"}},
		{Name: "done", ValueNames: []string{"yes"}},
	}
	ops := []fdr.Operator{
		{Name: "a-to-b", Preconditions: []fdr.Fact{{Var: 0, Val: 0}}, Effects: []fdr.Fact{{Var: 0, Val: 1}}, Cost: 1},
	}
	task, err := fdr.NewTask("reachable", vars, ops, fdr.State{Values: []fdr.Value{0, 0}},
		[]fdr.Fact{{Var: 0, Val: 1}}, []fdr.Fact{{Var: 1, Val: 0}}, nil)
	s.Require().NoError(err)
	eval := evaluator.NewBlind(task)
	coll, err := mugs.NewCollection(task.HardGoals, task.SoftGoals)
	s.Require().NoError(err)

	d, err := tarjan.NewDriver(task, eval, coll, evaluator.Inf, tarjan.Options{})
	s.Require().NoError(err)
	s.Require().NoError(d.Run(&task.Initial))

	stats := d.Stats()
	s.Equal(uint64(2), stats.SCCsFound)
	s.Equal(uint64(2), stats.DeadEndComponents)
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverSuite))
}

func TestNewDriver_RequiresEvaluator(t *testing.T) {
	vars := []fdr.Variable{{Name: "x", ValueNames: []string{"a"}}}
	task, err := fdr.NewTask("solo", vars, nil, fdr.State{Values: []fdr.Value{0}}, nil, nil, nil)
	require.NoError(t, err)
	coll, err := mugs.NewCollection(nil, nil)
	require.NoError(t, err)

	_, err = tarjan.NewDriver(task, nil, coll, evaluator.Inf, tarjan.Options{})
	require.ErrorIs(t, err, tarjan.ErrNoEvaluator)
}
