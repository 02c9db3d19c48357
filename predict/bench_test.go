package predict_test

import (
	"testing"

	"github.com/katalvlaran/streaks/predict"
)

// benchmarkPredict fits once and measures repeated Predict calls.
func benchmarkPredict(b *testing.B, attempts int, runs []int, opts predict.Options) {
	var m predict.Model
	if err := m.Fit(attempts, 0.3); err != nil {
		b.Fatalf("Fit failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := m.Predict(runs, &opts); err != nil {
			b.Fatalf("Predict failed: %v", err)
		}
	}
}

// BenchmarkPredict_AtLeastSmall measures a single short-streak query over few trials.
func BenchmarkPredict_AtLeastSmall(b *testing.B) {
	benchmarkPredict(b, 10, []int{3}, predict.DefaultOptions())
}

// BenchmarkPredict_AtLeastLarge measures a long-streak query over many trials,
// exercising the O(log attempts) squaring on a bigger chain.
func BenchmarkPredict_AtLeastLarge(b *testing.B) {
	benchmarkPredict(b, 100000, []int{50}, predict.DefaultOptions())
}

// BenchmarkPredict_ExactlyMulti measures the exactly mode across several
// streak lengths in one call (two chain walks per length).
func BenchmarkPredict_ExactlyMulti(b *testing.B) {
	benchmarkPredict(b, 1000, []int{2, 5, 10, 20}, predict.Options{Exactly: true})
}

// BenchmarkPredict_WithExamples measures the combined engine + witness path.
func BenchmarkPredict_WithExamples(b *testing.B) {
	benchmarkPredict(b, 12, []int{4}, predict.Options{Exactly: true, Examples: 5})
}
