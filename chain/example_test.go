package chain_test

import (
	"fmt"

	"github.com/katalvlaran/streaks/chain"
	"github.com/katalvlaran/streaks/matrix"
)

// ExampleTransition computes the probability that a streak of at least two
// successes shows up somewhere in five trials with success probability 0.3:
// build the capped chain for run = 2, walk it five steps from the start
// distribution, and read the mass in the absorbing state.
func ExampleTransition() {
	m, err := chain.Transition(2, 0.3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	dist, err := matrix.PowVec(chain.Start(3), m, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("P(streak >= 2 in 5 trials) = %.5f\n", dist[2])
	// Output:
	// P(streak >= 2 in 5 trials) = 0.27333
}
