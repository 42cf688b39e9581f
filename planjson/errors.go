package planjson

import "errors"

// ErrVariableOutOfRange is returned by FactName when a fact names a
// variable index outside the task's Variables slice.
var ErrVariableOutOfRange = errors.New("planjson: variable index out of range")
