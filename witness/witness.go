package witness

import (
	"fmt"
	"strings"
)

// Symbols of a trial outcome within a witness string.
const (
	// Success marks a successful trial.
	Success byte = 'S'
	// Failure marks a failed trial.
	Failure byte = 'F'
)

// Options selects the query predicate witnesses must satisfy.
// The zero value is the default at-least mode.
type Options struct {
	// ExactlyOnLast requires a streak of exactly run successes ending on the
	// final trial: the last run symbols are S and the symbol before them, if
	// any, is F. The earlier prefix is unconstrained unless Exactly is set.
	ExactlyOnLast bool

	// Exactly requires the longest streak to equal run exactly. Combined with
	// ExactlyOnLast it constrains the prefix before the final streak instead:
	// no streak >= run may occur there.
	Exactly bool
}

// MaxRun returns the length of the longest streak of Success symbols in s.
// Complexity: O(len(s)).
func MaxRun(s string) int {
	var best, cur int
	for i := 0; i < len(s); i++ {
		if s[i] == Success {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 0
		}
	}

	return best
}

// Matches reports whether s satisfies the predicate for the given streak
// length under opts. Strings with run < 1 or run > len(s) never match.
// Complexity: O(len(s)).
func Matches(s string, run int, opts Options) bool {
	if run < 1 || run > len(s) {
		return false
	}

	if opts.ExactlyOnLast {
		// Final run symbols must all be Success…
		for i := len(s) - run; i < len(s); i++ {
			if s[i] != Success {
				return false
			}
		}
		// …preceded by a Failure, unless the streak spans the whole string.
		sep := len(s) - run - 1
		if sep >= 0 && s[sep] != Failure {
			return false
		}
		if opts.Exactly && sep > 0 && MaxRun(s[:sep]) >= run {
			return false
		}

		return true
	}

	if opts.Exactly {
		return MaxRun(s) == run
	}

	return MaxRun(s) >= run
}

// Generate enumerates strings of the given length over {F, S} in
// lexicographic order (F < S, from all-F upward) and returns the first limit
// strings matching the predicate, re-checkable via Matches.
//
// Fewer than limit strings (possibly none) are returned when the space holds
// fewer matches; ErrUnsatisfiable is returned only when the predicate can
// never hold for this length/run combination. A limit <= 0 yields no strings.
//
// Complexity: O(2^length · length) worst case, early-stopped at limit matches.
func Generate(length, run, limit int, opts Options) ([]string, error) {
	if length < 1 || run < 1 || run > length {
		return nil, fmt.Errorf("Generate(length=%d, run=%d): %w", length, run, ErrUnsatisfiable)
	}
	if limit <= 0 {
		return nil, nil
	}

	// A full-length streak has a single candidate; skip the 2^length scan.
	if run == length {
		return []string{strings.Repeat(string(Success), length)}, nil
	}

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = Failure
	}

	out := make([]string, 0, limit)
	for {
		if s := string(buf); Matches(s, run, opts) {
			out = append(out, s)
			if len(out) == limit {
				break
			}
		}
		if !increment(buf) {
			break // enumeration exhausted before reaching limit
		}
	}

	return out, nil
}

// increment advances buf to the next string in lexicographic order (F < S),
// odometer-style from the last position. It reports false once buf was the
// final all-S string.
func increment(buf []byte) bool {
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] == Failure {
			buf[i] = Success

			return true
		}
		buf[i] = Failure
	}

	return false
}
