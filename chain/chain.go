package chain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/streaks/matrix"
)

// Transition builds the one-step transition matrix of the capped run-length
// chain: (run+1)×(run+1) over states 0..run, where row i < run sends mass
// 1−successProbability to state 0 and successProbability to state i+1, and
// row run is absorbing.
//
// The matrix is freshly allocated and owned by the caller.
// Complexity: O(run²) time and memory (allocation-dominated; fill is O(run)).
func Transition(run int, successProbability float64) (*matrix.Dense, error) {
	if run < 1 {
		return nil, fmt.Errorf("Transition(%d): %w", run, ErrRunLength)
	}
	if math.IsNaN(successProbability) || successProbability < 0 || successProbability > 1 {
		return nil, fmt.Errorf("Transition(%v): %w", successProbability, ErrProbability)
	}

	m, err := matrix.NewDense(run+1, run+1)
	if err != nil {
		return nil, fmt.Errorf("Transition: %w", err)
	}

	failureProbability := 1 - successProbability
	for i := 0; i < run; i++ {
		if err = m.Set(i, 0, failureProbability); err != nil {
			return nil, fmt.Errorf("Transition: %w", err)
		}
		if err = m.Set(i, i+1, successProbability); err != nil {
			return nil, fmt.Errorf("Transition: %w", err)
		}
	}
	// Absorbing state: a streak of length >= run has occurred.
	if err = m.Set(run, run, 1); err != nil {
		return nil, fmt.Errorf("Transition: %w", err)
	}

	return m, nil
}

// Start returns the initial distribution over states of a chain with the
// given state count: all mass on state 0 (no trials yet, streak length 0).
// Start returns nil when states < 1.
func Start(states int) []float64 {
	if states < 1 {
		return nil
	}
	v := make([]float64, states)
	v[0] = 1

	return v
}
