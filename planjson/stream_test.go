package planjson_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/goalset"
	"github.com/katalvlaran/mugs-search/planjson"
)

func TestStreamer_EmitWritesOneLinePerSubset(t *testing.T) {
	task := twoGoalTask(t)
	soft := task.SoftGoals

	var buf bytes.Buffer
	st := planjson.NewStreamer(&buf, task, soft)

	require.NoError(t, st.Emit(goalset.Single(0)))
	require.NoError(t, st.Emit(goalset.FromMembers([]int{0, 1})))

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.Len(t, lines, 2)

	var first struct {
		RunID string   `json:"run_id"`
		MSGS  []string `json:"msgs"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, st.RunID(), first.RunID)
	require.Equal(t, []string{"p=on"}, first.MSGS)

	var second struct {
		MSGS []string `json:"msgs"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.ElementsMatch(t, []string{"p=on", "q=on"}, second.MSGS)
}

func TestStreamer_EmitPropagatesFactNameError(t *testing.T) {
	task := twoGoalTask(t)
	var buf bytes.Buffer
	st := planjson.NewStreamer(&buf, task, []fdr.Fact{{Var: 9, Val: 0}})

	err := st.Emit(goalset.Single(0))
	require.ErrorIs(t, err, planjson.ErrVariableOutOfRange)
}
