package search

import "errors"

// ErrNoEvaluator indicates Run was called with a nil evaluator.
var ErrNoEvaluator = errors.New("search: no evaluator configured")

// ErrOutOfResource indicates the wall-clock deadline was exceeded before
// the open list emptied (spec §5: "an out-of-resource condition terminates
// the current search cleanly, preserving the MSGS so far").
var ErrOutOfResource = errors.New("search: out of resource (deadline exceeded)")
