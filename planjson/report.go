package planjson

import (
	"fmt"

	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/goalset"
	"github.com/katalvlaran/mugs-search/mugs"
)

// MUGSReport is the one-shot-mode output document: a single task's MUGS,
// each rendered as a list of fact-name strings (spec §6 Output: "a single
// MUGS array (for one-shot mode) ... a list of fact-name strings").
type MUGSReport struct {
	MUGS [][]string `json:"mugs"`
}

// TaskReport is one entry of the iterated-driver output document (spec §6
// Output: "a list of {name, MUGS} objects ... for the iterated driver").
type TaskReport struct {
	Name string     `json:"name"`
	Solved bool     `json:"solved"`
	MUGS [][]string `json:"mugs"`
}

// FactName renders f as "variable=value" using task's Variables for
// diagnostics (spec §3: Variable.ValueNames exist "for diagnostics only").
func FactName(task *fdr.Task, f fdr.Fact) (string, error) {
	if int(f.Var) < 0 || int(f.Var) >= len(task.Variables) {
		return "", fmt.Errorf("%w: var %d", ErrVariableOutOfRange, f.Var)
	}
	v := task.Variables[f.Var]
	if int(f.Val) < 0 || int(f.Val) >= len(v.ValueNames) {
		return "", fmt.Errorf("%w: %s value %d", ErrVariableOutOfRange, v.Name, f.Val)
	}
	return v.Name + "=" + v.ValueNames[f.Val], nil
}

// SubsetNames renders subset's members as fact-name strings, resolving
// each bit index against soft (the collection's soft-goal ordering, i.e.
// coll.SoftGoals()).
func SubsetNames(task *fdr.Task, soft []fdr.Fact, subset goalset.Subset) ([]string, error) {
	members := subset.Members()
	names := make([]string, 0, len(members))
	for _, idx := range members {
		if idx < 0 || idx >= len(soft) {
			return nil, fmt.Errorf("%w: soft-goal index %d", ErrVariableOutOfRange, idx)
		}
		name, err := FactName(task, soft[idx])
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// EncodeMUGS builds the one-shot MUGSReport for task's collection.
func EncodeMUGS(task *fdr.Task, coll *mugs.Collection) (MUGSReport, error) {
	soft := coll.SoftGoals()
	sets := coll.MUGS()
	out := make([][]string, len(sets))
	for i, s := range sets {
		names, err := SubsetNames(task, soft, s)
		if err != nil {
			return MUGSReport{}, err
		}
		out[i] = names
	}
	return MUGSReport{MUGS: out}, nil
}

// EncodeTask builds one TaskReport entry for the iterated driver's output,
// named name and solved as relax.TaskResult reports them.
func EncodeTask(task *fdr.Task, coll *mugs.Collection, name string, solved bool) (TaskReport, error) {
	report, err := EncodeMUGS(task, coll)
	if err != nil {
		return TaskReport{}, err
	}
	return TaskReport{Name: name, Solved: solved, MUGS: report.MUGS}, nil
}
