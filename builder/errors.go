package builder

import "errors"

// Sentinel errors for construction. Callers branch with errors.Is;
// implementations attach context via %w wrapping.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without an RNG (supply WithSeed or WithRand).
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates construction could not proceed
	// (nil constructor, underlying graph failure).
	ErrConstructFailed = errors.New("builder: construction failed")
)
