// Package predict answers consecutive-success queries over a fixed number of
// independent Bernoulli trials: how likely is a streak of p successes, under
// three query modes, with optional concrete example sequences.
//
// What:
//
//   - Model holds the two fitted parameters (attempts, success probability).
//     The zero value is usable but unfitted; Fit configures it, Predict reads
//     it. A later Fit replaces the parameters wholesale.
//   - Predict evaluates one probability per queried streak length, all under
//     the same Options, and optionally attaches witness strings per query.
//
// Query modes (Options):
//
//   - default (at-least): probability that a streak of >= p successes occurs
//     anywhere within the attempts. Mass of the absorbing state of the capped
//     chain after `attempts` steps: (e₀·M_p^attempts)[p].
//   - Exactly: probability the longest streak equals p exactly, computed as
//     atLeast(p) − atLeast(p+1); exact as event algebra since
//     {streak >= p} ⊇ {streak >= p+1}.
//   - ExactlyOnLast: probability that a streak of exactly p ends on the final
//     trial: s^p · (1−s) when attempts > p, s^p otherwise. Combined with
//     Exactly, the prefix before the separating failure must additionally be
//     streak-free: × (1 − atLeast over the first attempts−p−1 trials).
//
// Concurrency:
//
//   - Fit mutates the Model; Predict only reads it. Use one Model per
//     session, or serialize Fit calls externally — Predict calls on a fitted
//     Model that is no longer being Fit are safe to run concurrently.
//
// Errors:
//
//   - ErrNotFitted: Predict before a successful Fit.
//   - ErrInvalidParameter: attempts < 1, probability outside [0,1], a queried
//     streak length outside [1, attempts], or Examples < 0.
//
// Calls are all-or-nothing: either every requested probability (and every
// requested example list) is returned, or the call fails as a whole.
package predict
