// Package witness enumerates concrete success/failure strings that satisfy a
// consecutive-success query — existence witnesses, not probability-weighted
// samples.
//
// What:
//
//   - Generate walks all strings over {F, S} of the given length in
//     lexicographic order (F < S, starting from all-F) and returns the first
//     limit strings matching the query predicate, stopping early.
//   - Matches re-checks a single string against a predicate; MaxRun scans a
//     string for its longest success streak. Together they form the
//     ground-truth oracle the probabilistic engine is validated against.
//
// Query modes (Options) mirror predict:
//
//   - default: the string contains a streak of at least run successes.
//   - Exactly: the longest streak equals run exactly.
//   - ExactlyOnLast: the final run trials are all successes and the trial
//     just before them (if any) is a failure — a streak of exactly run ends
//     on the last trial. Combined with Exactly, the prefix before that
//     failure must additionally contain no streak ≥ run.
//
// Termination:
//
//   - Enumeration always terminates: it stops at limit matches or after the
//     last string (S…S). When fewer than limit matches exist, however many
//     were found are returned — possibly none. ErrUnsatisfiable is returned
//     only when no string of the given length can ever match (run < 1 or
//     run > length), not when limit merely exceeds the match count.
//
// Cost:
//
//   - Worst case O(2^length · length); use small lengths or small run gaps.
//     The run == length case short-circuits to the single candidate S…S.
package witness
