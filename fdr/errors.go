package fdr

import "errors"

// Sentinel errors for Task construction and validation.
var (
	// ErrNoVariables indicates a Task was built with zero variables.
	ErrNoVariables = errors.New("fdr: task has no variables")

	// ErrUnknownVariable indicates a Fact referenced a variable index out of range.
	ErrUnknownVariable = errors.New("fdr: unknown variable index")

	// ErrUnknownValue indicates a Fact referenced a value outside its variable's domain.
	ErrUnknownValue = errors.New("fdr: value out of domain")

	// ErrGoalOverlap indicates the same fact appears in both the hard and soft goal lists.
	ErrGoalOverlap = errors.New("fdr: fact present in both hard and soft goals")

	// ErrGoalTooWide indicates more soft goals were supplied than the fixed-width
	// goalset.Subset bitmask can represent.
	ErrGoalTooWide = errors.New("fdr: soft goal count exceeds maximum subset width")

	// ErrIncompleteInitialState indicates the initial state does not assign every variable.
	ErrIncompleteInitialState = errors.New("fdr: initial state missing a variable assignment")

	// ErrNegativeCost indicates an operator declared a negative cost.
	ErrNegativeCost = errors.New("fdr: operator cost must be non-negative")
)
