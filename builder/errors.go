package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadGraphInput indicates an adjacency map that does not describe a graph,
// e.g. a neighbor that is not itself a key.
var ErrBadGraphInput = errors.New("builder: bad graph input")

// ErrConstructFailed indicates a construction pipeline failure, such as a nil
// constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
