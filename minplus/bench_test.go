// SPDX-License-Identifier: MIT

package minplus_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/minplus/generator"
	"github.com/katalvlaran/minplus/matrix"
	"github.com/katalvlaran/minplus/minplus"
)

var benchSizes = []int{64, 128, 256}

// sink defeats dead-code elimination.
var sink *matrix.Dense

func benchmarkEngine(b *testing.B, e minplus.Engine) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, err := generator.Matrix(n, n, 50, generator.WithSeed(int64(n)), generator.WithSentinelRatio(0.2))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := e.Product(a, a)
				if err != nil {
					b.Fatal(err)
				}
				sink = c
			}
		})
	}
}

func BenchmarkSequentialProduct(b *testing.B) { benchmarkEngine(b, minplus.NewSequential()) }

func BenchmarkConcurrentProduct(b *testing.B) { benchmarkEngine(b, minplus.NewConcurrent()) }
