package fibonacci

import (
	"fmt"
	"math"
	"testing"
)

func BenchmarkGenerate_Length(b *testing.B) {
	for _, n := range []int{5, 50, MaxTerms} {
		b.Run(fmt.Sprintf("length=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Generate(Length(n)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGenerate_End(b *testing.B) {
	for _, end := range []int64{10, 1_000_000, math.MaxInt64} {
		b.Run(fmt.Sprintf("end=%d", end), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Generate(End(end)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGenerate_Overflow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(Length(math.MaxInt32)); err == nil {
			b.Fatal("expected overflow")
		}
	}
}

func BenchmarkGenerator_WithCollector(b *testing.B) {
	g := New(WithRecorder(NewCollector("bench")))
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := g.Generate(Length(MaxTerms)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
