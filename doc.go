// Package streaks estimates probabilities of consecutive-success runs in a
// fixed number of independent Bernoulli trials — from a capped Markov chain
// core to concrete example sequences.
//
// 🚀 What is streaks?
//
//	A small, pure-Go library that answers "how likely is a streak?":
//		• At-least-p: probability that a run of ≥ p successes occurs anywhere
//		• Exactly-p: probability that the longest run equals exactly p
//		• Exactly-on-last: probability that a run of exactly p ends on the final trial
//		• Witnesses: concrete S/F strings satisfying any of the above
//
// ✨ Why choose streaks?
//
//   - Exact answers – capped absorbing Markov chain, not Monte Carlo
//   - Fast – O(p³·log n) per query via repeated squaring, O(p) states
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – no global state, no randomness; one Model per session
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/  — row-major Dense float64 matrices, Mul, Pow, PowVec
//	chain/   — capped run-length transition matrix construction
//	predict/ — Model.Fit / Model.Predict with the three query modes
//	witness/ — lexicographic enumeration of satisfying S/F strings
//
// Quick example:
//
//	var m predict.Model
//	_ = m.Fit(5, 0.3)
//	probs, _, _ := m.Predict([]int{2}, &predict.Options{Exactly: true})
//	// probs[0] ≈ 0.20853 — chance the longest streak in 5 trials is exactly 2
//
// Dive into the per-package doc.go files for semantics, complexity, and the
// error contracts of each layer.
//
//	go get github.com/katalvlaran/streaks
package streaks
