package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mugs-search/evaluator"
	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/goalset"
	"github.com/katalvlaran/mugs-search/mugs"
	"github.com/katalvlaran/mugs-search/planjson"
	"github.com/katalvlaran/mugs-search/relax"
	"github.com/katalvlaran/mugs-search/search"
	"github.com/katalvlaran/mugs-search/tarjan"
)

// run dispatches to the one-shot driver, the iterated bound-increase
// driver (--max-bound), or the lattice driver (--lattice), and writes the
// resulting JSON document to out (spec §6 Output).
func run(out io.Writer, f *flags, logger zerolog.Logger) error {
	if f.taskPath == "" && f.latticePath == "" {
		return ErrNoTaskFile
	}
	if f.latticePath != "" {
		return runLattice(out, f, logger)
	}

	budget := evaluator.Cost(f.bound)
	if budget == 0 {
		budget = evaluator.Inf
	}

	raw, err := os.ReadFile(f.taskPath)
	if err != nil {
		return fmt.Errorf("mugs-search: reading task file: %w", err)
	}
	task, err := fdr.LoadTaskYAML(raw)
	if err != nil {
		return err
	}
	if f.allSoftGoals {
		task = allSoftGoalsTask(task)
	}

	eval := evaluator.NewBlind(task)

	if f.maxBound > 0 {
		return runIteratedBound(out, f, logger, task, eval)
	}

	coll, err := mugs.NewCollection(task.HardGoals, task.SoftGoals)
	if err != nil {
		return err
	}
	if f.anytime {
		streamer := planjson.NewStreamer(out, task, coll.SoftGoals())
		coll.OnAdded(func(s goalset.Subset) { _ = streamer.Emit(s) })
	}

	// search.Options.Anytime stays unset here: it would replace the
	// streamer callback above with a log line.
	result, err := search.Run(task, eval, search.Options{
		Budget:                    budget,
		ReopenClosed:              f.reopenClosed,
		OSP:                       f.osp,
		Logger:                    logger,
		DisableSubsumptionPruning: !f.prune,
		Collection:                coll,
	})
	if err != nil {
		return err
	}

	report, err := planjson.EncodeMUGS(task, result.Collection)
	if err != nil {
		return err
	}
	return encodeJSON(out, report)
}

func runIteratedBound(out io.Writer, f *flags, logger zerolog.Logger, task *fdr.Task, eval evaluator.Evaluator) error {
	budget := evaluator.Cost(f.bound)
	if budget <= 0 {
		budget = 1
	}

	driver, err := relax.NewIteratedBoundDriver(task, eval, tarjan.Options{
		Logger:                    logger,
		UniqueNeighbors:           f.uniqueNeighbors,
		DisableSubsumptionPruning: !f.prune,
	})
	if err != nil {
		return err
	}

	report, err := driver.Run(budget, f.step, evaluator.Cost(f.maxBound))
	if err != nil {
		return err
	}

	taskReport, err := planjson.EncodeTask(task, report.Collection, task.Name, report.Solved)
	if err != nil {
		return err
	}
	return encodeJSON(out, planjson.MUGSReport{MUGS: taskReport.MUGS})
}

func runLattice(out io.Writer, f *flags, logger zerolog.Logger) error {
	raw, err := os.ReadFile(f.latticePath)
	if err != nil {
		return fmt.Errorf("mugs-search: reading lattice file: %w", err)
	}
	lattice, err := relax.LoadLatticeYAML(raw)
	if err != nil {
		return err
	}
	for i := range lattice.Nodes {
		if lattice.Nodes[i].Eval == nil {
			lattice.Nodes[i].Eval = evaluator.NewBlind(lattice.Nodes[i].Task)
		}
	}

	budget := evaluator.Cost(f.bound)
	if budget == 0 {
		budget = evaluator.Inf
	}

	report, err := relax.Run(lattice, nil, relax.Options{
		Budget: budget,
		SearchOptions: search.Options{
			ReopenClosed:              f.reopenClosed,
			Anytime:                   f.anytime,
			OSP:                       f.osp,
			Logger:                    logger,
			DisableSubsumptionPruning: !f.prune,
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	taskReports := make([]planjson.TaskReport, len(report.Results))
	for i, res := range report.Results {
		tr, err := planjson.EncodeTask(lattice.Nodes[i].Task, res.Collection, res.Name, res.Solved)
		if err != nil {
			return err
		}
		taskReports[i] = tr
	}
	return encodeJSON(out, taskReports)
}

func encodeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
