// Command mugs-search loads a finite-domain planning task and reports its
// Minimal Unsolvable Goal Subsets, per spec §6's External Interfaces. It is
// pure CLI glue: task-document parsing lives in fdr, search in search and
// relax, JSON rendering in planjson — nothing here duplicates their logic.
package main

import (
	"errors"
	"os"

	"github.com/katalvlaran/mugs-search/search"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if errors.Is(err, search.ErrOutOfResource) {
			os.Exit(exitOutOfResource)
		}
		os.Exit(exitInputError)
	}
}
