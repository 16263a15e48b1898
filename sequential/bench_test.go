package sequential_test

import (
	"testing"

	"github.com/katalvlaran/smallgrammar/sequential"
)

func benchmarkBuild(b *testing.B, n int) {
	text := randomText(1, n, "abcdefghijklmnopqrstuvwxyz")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sequential.Build(text); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_10K benchmarks greedy tokenization on 10 000 random characters.
func BenchmarkBuild_10K(b *testing.B) { benchmarkBuild(b, 10_000) }

// BenchmarkBuild_100K benchmarks greedy tokenization on 100 000 random characters.
func BenchmarkBuild_100K(b *testing.B) { benchmarkBuild(b, 100_000) }
