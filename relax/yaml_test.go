package relax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/relax"
	"github.com/katalvlaran/mugs-search/search"
)

const twoNodeLatticeYAML = `
nodes:
  - name: base
    task:
      name: base
      variables:
        - name: x
          values: ["a", "b"]
      operators:
        - name: to-b
          pre: [[0, 0]]
          effects: [[0, 1]]
          cost: 1
      initial: [0]
      hard_goals: [[0, 1]]
    upper_cover: [1]
  - name: upper
    task:
      name: upper
      variables:
        - name: y
          values: ["a", "b", "c"]
      initial: [0]
      hard_goals: [[0, 2]]
    lower_cover: [0]
`

func TestLoadLatticeYAML_ParsesNodesAndCovers(t *testing.T) {
	lattice, err := relax.LoadLatticeYAML([]byte(twoNodeLatticeYAML))
	require.NoError(t, err)
	require.Len(t, lattice.Nodes, 2)

	require.Equal(t, "base", lattice.Nodes[0].Name)
	require.Equal(t, []fdr.Fact{{Var: 0, Val: 1}}, lattice.Nodes[0].Task.HardGoals)
	require.Equal(t, []relax.NodeID{1}, lattice.Nodes[0].UpperCover)

	require.Equal(t, "upper", lattice.Nodes[1].Name)
	require.Equal(t, []relax.NodeID{0}, lattice.Nodes[1].LowerCover)
}

func TestLoadLatticeYAML_RunsThroughRelaxRun(t *testing.T) {
	lattice, err := relax.LoadLatticeYAML([]byte(twoNodeLatticeYAML))
	require.NoError(t, err)
	for i := range lattice.Nodes {
		lattice.Nodes[i].Eval = evaluator.NewBlind(lattice.Nodes[i].Task)
	}

	// Neither task has soft goals, so subsumption pruning would stop each
	// sub-search at its initial state.
	report, err := relax.Run(lattice, nil, relax.Options{
		Budget:        evaluator.Inf,
		SearchOptions: search.Options{DisableSubsumptionPruning: true},
	})
	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	require.True(t, report.Results[0].Solved)
	require.False(t, report.Results[0].Propagated)

	require.True(t, report.Results[1].Solved)
	require.True(t, report.Results[1].Propagated, "upper's hard goal y=c is unreachable (no operators); it must inherit base's solved flag")
}

func TestLoadLatticeYAML_RejectsInvalidYAML(t *testing.T) {
	_, err := relax.LoadLatticeYAML([]byte("not: [valid"))
	require.Error(t, err)
}
