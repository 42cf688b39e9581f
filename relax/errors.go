package relax

import "errors"

// ErrNoEvaluator indicates Run or NewIteratedBoundDriver was called with a
// nil evaluator.
var ErrNoEvaluator = errors.New("relax: no evaluator configured")

// ErrEmptyLattice indicates a Lattice with zero nodes was passed to Run.
var ErrEmptyLattice = errors.New("relax: lattice has no nodes")

// ErrCyclicLattice indicates the lower-cover/upper-cover edges of a
// Lattice do not form a partial order (a cycle was found while ordering
// nodes for processing).
var ErrCyclicLattice = errors.New("relax: lattice covers form a cycle")

// ErrUnknownNode indicates a LowerCover or UpperCover entry names a
// NodeID outside the lattice.
var ErrUnknownNode = errors.New("relax: cover references unknown node")

// ErrInvalidStep indicates IteratedBoundDriver.Run was called with a step
// factor that would never increase the bound.
var ErrInvalidStep = errors.New("relax: step factor must be greater than 1")
