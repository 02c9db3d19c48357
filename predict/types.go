// Package predict: the fitted model and query options.
package predict

// Options configures one Predict call. The flags apply to every queried
// streak length in that call.
//
// Example:
//
//	opts := predict.DefaultOptions()
//	opts.Exactly = true // longest streak == p, not >= p
//	opts.Examples = 3   // also return up to 3 witness strings per query
//
//	probs, examples, err := model.Predict([]int{2, 3}, &opts)
type Options struct {
	// ExactlyOnLast queries the probability that a streak of exactly the
	// requested length ends on the final trial.
	ExactlyOnLast bool

	// Exactly queries the probability that the longest streak equals the
	// requested length exactly. Combined with ExactlyOnLast it additionally
	// requires the prefix before the final streak to be streak-free.
	Exactly bool

	// Examples asks for up to this many witness strings per queried length,
	// enumerated deterministically; 0 disables example generation.
	Examples int
}

// DefaultOptions returns the default query configuration:
// at-least mode, no examples.
func DefaultOptions() Options {
	return Options{}
}

// Model carries the fitted trial parameters. The zero value is unfitted;
// call Fit before Predict. A Model is caller-owned: no package-level state.
type Model struct {
	attempts    int
	successProb float64
	fitted      bool
}

// Attempts returns the fitted trial count, 0 when unfitted.
func (m *Model) Attempts() int { return m.attempts }

// SuccessProbability returns the fitted per-trial success probability,
// 0 when unfitted.
func (m *Model) SuccessProbability() float64 { return m.successProb }

// Fitted reports whether Fit has succeeded on this Model.
func (m *Model) Fitted() bool { return m.fitted }
