package window

import (
	"strconv"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	for _, n := range []int{256, 1024, 4096, 16384} {
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Generate(TypeHann, n)
			}
		})
		b.Run("bh4/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Generate(TypeBlackmanHarris4Term, n)
			}
		})
	}
}

func BenchmarkTableApplyTo(b *testing.B) {
	for _, n := range []int{256, 1024, 4096, 16384} {
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			tbl, err := NewTable(TypeHann, n, WithPeriodic())
			if err != nil {
				b.Fatal(err)
			}
			src := make([]float64, n)
			dst := make([]float64, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = tbl.ApplyTo(dst, src)
			}
		})
	}
}
