package vecmath

import "testing"

func BenchmarkMulBlock(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			a := make([]float64, tc.size)
			c := make([]float64, tc.size)
			dst := make([]float64, tc.size)

			for i := range a {
				a[i] = float64(i) + 0.5
				c[i] = float64(tc.size-i) * 0.1
			}

			b.SetBytes(int64(tc.size * 8 * 3))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				MulBlock(dst, a, c)
			}
		})
	}
}

func BenchmarkMulBlockInPlace(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			src := make([]float64, tc.size)
			dst := make([]float64, tc.size)

			for i := range src {
				src[i] = 1.0 + float64(i)*1e-9
				dst[i] = float64(i) + 0.5
			}

			b.SetBytes(int64(tc.size * 8 * 2))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				MulBlockInPlace(dst, src)
			}
		})
	}
}
