package main

import "github.com/katalvlaran/mugs-search/fdr"

// allSoftGoalsTask returns a copy of task with every hard goal fact moved
// into the soft-goal list (spec §6 `all_softgoals` option), discarding the
// original hard/soft partition. Re-validates through fdr.NewTask so the
// MaxSoftGoals width check still applies to the merged list.
func allSoftGoalsTask(task *fdr.Task) *fdr.Task {
	soft := append([]fdr.Fact(nil), task.SoftGoals...)
	soft = append(soft, task.HardGoals...)

	relaxed, err := fdr.NewTask(task.Name, task.Variables, task.Operators, task.Initial, nil, soft, task.Mutexes)
	if err != nil {
		// Only the width check (MaxSoftGoals) can newly fail here, since
		// every fact already validated against the same variables; surface
		// the original task rather than a softer partial result.
		return task
	}
	return relaxed
}
