package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// flags mirrors the §6 Configuration table directly; cobra/pflag bind CLI
// flags onto it, and run.go reads it without any further indirection.
type flags struct {
	taskPath        string
	latticePath     string
	bound           int64
	anytime         bool
	reopenClosed    bool
	osp             bool
	prune           bool
	allSoftGoals    bool
	maxBound        int64
	step            float64
	uniqueNeighbors bool
	verbose         bool
}

func newRootCommand() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "mugs-search",
		Short: "Compute Minimal Unsolvable Goal Subsets for a finite-domain planning task",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.Nop()
			if f.verbose {
				logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			}
			return run(cmd.OutOrStdout(), f, logger)
		},
	}

	flagSet := cmd.Flags()
	flagSet.StringVar(&f.taskPath, "task", "", "path to a YAML task document (required)")
	flagSet.StringVar(&f.latticePath, "lattice", "", "path to a YAML relaxed-task lattice document (enables the iterated relaxation driver)")
	flagSet.Int64Var(&f.bound, "bound", 0, "integer cost bound B; 0 means unbounded")
	flagSet.BoolVar(&f.anytime, "anytime", false, "stream newly discovered MSGS to stdout as soon as found")
	flagSet.BoolVar(&f.reopenClosed, "reopen-closed", false, "enable reopening a closed node whose cost strictly improves")
	flagSet.BoolVar(&f.osp, "osp", false, "on open-list exhaustion, report the best-seen state as a solution")
	flagSet.BoolVar(&f.prune, "prune", true, "enable MSGS-based subsumption pruning (otherwise only tracking)")
	flagSet.BoolVar(&f.allSoftGoals, "all-softgoals", false, "treat every goal fact as soft")
	flagSet.Int64Var(&f.maxBound, "max-bound", 0, "upper cap for the iterated bound-increase driver; 0 disables it")
	flagSet.Float64Var(&f.step, "step", 2, "multiplicative bound-increase factor (> 1), used with --max-bound")
	flagSet.BoolVar(&f.uniqueNeighbors, "unique-neighbors", false, "deduplicate recognized dead-end neighbors before refinement")
	flagSet.BoolVar(&f.verbose, "verbose", false, "enable structured logging to stderr")

	return cmd
}
