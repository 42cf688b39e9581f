package mugs

import "errors"

// ErrCostVectorLength indicates Prune was called with a cost vector whose
// length does not match len(hardGoals)+len(softGoals).
var ErrCostVectorLength = errors.New("mugs: cost vector length does not match goal count")
