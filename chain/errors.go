package chain

import "errors"

var (
	// ErrRunLength indicates a requested streak length below 1.
	ErrRunLength = errors.New("chain: run length must be >= 1")
	// ErrProbability indicates a success probability outside [0,1] or NaN.
	ErrProbability = errors.New("chain: success probability must be within [0,1]")
)
