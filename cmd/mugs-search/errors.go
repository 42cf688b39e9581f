package main

import "errors"

// ErrNoTaskFile indicates --task was not given a path.
var ErrNoTaskFile = errors.New("mugs-search: --task is required")

// exitInputError and exitOutOfResource are the non-zero exit codes named
// by spec §6: "non-zero for input errors ... and out-of-resource." Exit
// code 0 covers both "solved" and "MUGS produced" — a MUGS report is a
// normal result, not a failure, even when no hard goal was reached.
const (
	exitOK            = 0
	exitInputError    = 1
	exitOutOfResource = 2
)
