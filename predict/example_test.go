package predict_test

import (
	"fmt"

	"github.com/katalvlaran/streaks/predict"
)

// ExampleModel_Predict answers: in five trials that each succeed with
// probability 0.3, how likely is it that the longest success streak is
// exactly two — and what do such sequences look like?
func ExampleModel_Predict() {
	var m predict.Model
	if err := m.Fit(5, 0.3); err != nil {
		fmt.Println("error:", err)

		return
	}

	opts := predict.DefaultOptions()
	opts.Exactly = true
	opts.Examples = 3

	probs, examples, err := m.Predict([]int{2}, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("P(longest streak == 2) = %.5f\n", probs[0])
	for _, s := range examples[0] {
		fmt.Println("witness:", s)
	}
	// Output:
	// P(longest streak == 2) = 0.20853
	// witness: FFFSS
	// witness: FFSSF
	// witness: FSFSS
}

// ExampleModel_Predict_atLeast queries several streak lengths at once in the
// default at-least mode.
func ExampleModel_Predict_atLeast() {
	var m predict.Model
	if err := m.Fit(7, 0.5); err != nil {
		fmt.Println("error:", err)

		return
	}

	probs, _, err := m.Predict([]int{1, 3, 7}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, run := range []int{1, 3, 7} {
		fmt.Printf("P(streak >= %d) = %.7f\n", run, probs[i])
	}
	// Output:
	// P(streak >= 1) = 0.9921875
	// P(streak >= 3) = 0.3671875
	// P(streak >= 7) = 0.0078125
}
