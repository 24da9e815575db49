package vecmath

import "testing"

func BenchmarkDotProduct(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			x := make([]float64, tc.size)
			y := make([]float64, tc.size)
			for i := range x {
				x[i] = float64(i) * 0.5
				y[i] = float64(tc.size-i) * 0.25
			}

			b.SetBytes(int64(tc.size * 8 * 2))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = DotProduct(x, y)
			}
		})
	}
}
