package tarjan

import "errors"

// ErrNoEvaluator indicates NewDriver was called with a nil evaluator.
var ErrNoEvaluator = errors.New("tarjan: no evaluator configured")
