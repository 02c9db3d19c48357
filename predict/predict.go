package predict

import (
	"fmt"
	"math"

	"github.com/katalvlaran/streaks/chain"
	"github.com/katalvlaran/streaks/matrix"
	"github.com/katalvlaran/streaks/witness"
)

// Fit configures the model: the number of trials and the per-trial success
// probability. Both are validated together and replace any prior fit
// wholesale; on error the previous fit is left untouched.
//
// Returns ErrInvalidParameter when attempts < 1 or the probability is outside
// [0,1] (NaN included).
func (m *Model) Fit(attempts int, successProbability float64) error {
	if attempts < 1 {
		return fmt.Errorf("Fit: attempts must be >= 1, got %d: %w", attempts, ErrInvalidParameter)
	}
	if math.IsNaN(successProbability) || successProbability < 0 || successProbability > 1 {
		return fmt.Errorf("Fit: success probability must be within [0,1], got %v: %w",
			successProbability, ErrInvalidParameter)
	}

	m.attempts = attempts
	m.successProb = successProbability
	m.fitted = true

	return nil
}

// Predict evaluates the query mode selected by opts for every streak length
// in runs, in input order. A nil opts means DefaultOptions. When
// opts.Examples > 0, examples[i] holds up to opts.Examples witness strings
// for runs[i]; otherwise examples is nil.
//
// Returns ErrNotFitted before a successful Fit, and ErrInvalidParameter when
// any run is outside [1, attempts] or opts.Examples < 0. The call is
// all-or-nothing: no partial results accompany an error.
func (m *Model) Predict(runs []int, opts *Options) (probs []float64, examples [][]string, err error) {
	if m == nil || !m.fitted {
		return nil, nil, ErrNotFitted
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Examples < 0 {
		return nil, nil, fmt.Errorf("Predict: examples must be >= 0, got %d: %w", o.Examples, ErrInvalidParameter)
	}
	for _, run := range runs {
		if run < 1 || run > m.attempts {
			return nil, nil, fmt.Errorf("Predict: streak length must be within [1,%d], got %d: %w",
				m.attempts, run, ErrInvalidParameter)
		}
	}

	probs = make([]float64, len(runs))
	if o.Examples > 0 {
		examples = make([][]string, len(runs))
	}
	for i, run := range runs {
		if probs[i], err = m.probability(run, o); err != nil {
			return nil, nil, err
		}
		if o.Examples > 0 {
			examples[i], err = witness.Generate(m.attempts, run, o.Examples,
				witness.Options{ExactlyOnLast: o.ExactlyOnLast, Exactly: o.Exactly})
			if err != nil {
				return nil, nil, err
			}
		}
	}

	return probs, examples, nil
}

// probability dispatches one validated streak length to its query mode.
func (m *Model) probability(run int, o Options) (float64, error) {
	switch {
	case o.ExactlyOnLast:
		return m.exactlyOnLast(run, o.Exactly)
	case o.Exactly:
		return m.exactly(run)
	default:
		return m.atLeast(run, m.attempts)
	}
}

// atLeast computes the probability that a streak of >= run successes occurs
// within the given number of trials: the capped chain for run is walked
// trials steps from the start distribution and the absorbing mass read off.
// run > trials yields 0 (no streak can fit); run == 0 yields 1.
func (m *Model) atLeast(run, trials int) (float64, error) {
	if run == 0 {
		return 1, nil
	}
	if run > trials {
		return 0, nil
	}

	tm, err := chain.Transition(run, m.successProb)
	if err != nil {
		return 0, fmt.Errorf("Predict: %w", err)
	}
	dist, err := matrix.PowVec(chain.Start(run+1), tm, trials)
	if err != nil {
		return 0, fmt.Errorf("Predict: %w", err)
	}

	return dist[run], nil
}

// exactly computes the probability that the longest streak equals run:
// atLeast(run) − atLeast(run+1). The subtraction is exact as event algebra
// because {streak >= run} contains {streak >= run+1}.
func (m *Model) exactly(run int) (float64, error) {
	lower, err := m.atLeast(run, m.attempts)
	if err != nil {
		return 0, err
	}
	upper, err := m.atLeast(run+1, m.attempts)
	if err != nil {
		return 0, err
	}

	return lower - upper, nil
}

// exactlyOnLast computes the probability that a streak of exactly run
// successes ends on the final trial: the last run trials succeed (s^run) and
// the trial before them, when one exists, fails (×(1−s)). The capped chain
// cannot express this — absorption discards when the streak happened — so it
// is assembled from the trial-indexed structure directly.
//
// With exactlyToo, the prefix before the separating failure must contain no
// streak >= run, contributing ×(1 − atLeast over those attempts−run−1 trials).
func (m *Model) exactlyOnLast(run int, exactlyToo bool) (float64, error) {
	p := math.Pow(m.successProb, float64(run))
	if m.attempts > run {
		p *= 1 - m.successProb
	}
	if exactlyToo {
		if prefix := m.attempts - run - 1; prefix > 0 {
			occurred, err := m.atLeast(run, prefix)
			if err != nil {
				return 0, err
			}
			p *= 1 - occurred
		}
	}

	return p, nil
}
