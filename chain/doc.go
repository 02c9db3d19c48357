// Package chain builds the capped run-length Markov chain behind every
// consecutive-success query.
//
// What:
//
//   - Transition(run, s) produces the (run+1)×(run+1) one-step transition
//     matrix over run-length states 0..run. State i < run means "the current
//     streak of successes has length i"; state run is absorbing and means
//     "a streak of length ≥ run has occurred at some point".
//   - Start(states) produces the initial distribution [1, 0, ..., 0]:
//     no trials yet, streak length 0.
//
// Why capped:
//
//   - Tracking exact streak length would need O(attempts) states. Capping at
//     run keeps the chain at O(run) states while exactly preserving the
//     "first time streak ≥ run" event — once a streak of run successes has
//     occurred, its further length no longer matters for the at-least
//     question, so all of that mass can live in one absorbing state.
//
// Transitions from a non-absorbing state i:
//
//	with probability s   → state i+1 (success extends the streak)
//	with probability 1−s → state 0   (failure resets it)
//
// Both functions are pure: every call allocates a fresh matrix owned by the
// caller, so results can be memoized or mutated freely.
//
// Errors:
//
//   - ErrRunLength: run < 1.
//   - ErrProbability: success probability outside [0,1] or NaN.
package chain
