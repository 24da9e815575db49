package vecmath

import "testing"

func BenchmarkMagnitude(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			re := make([]float64, tc.size)
			im := make([]float64, tc.size)
			dst := make([]float64, tc.size)
			for i := range re {
				re[i] = float64(i) * 0.5
				im[i] = float64(tc.size-i) * 0.25
			}

			b.SetBytes(int64(tc.size * 8 * 3))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Magnitude(dst, re, im)
			}
		})
	}
}

func BenchmarkPower(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			re := make([]float64, tc.size)
			im := make([]float64, tc.size)
			dst := make([]float64, tc.size)
			for i := range re {
				re[i] = float64(i) * 0.5
				im[i] = float64(tc.size-i) * 0.25
			}

			b.SetBytes(int64(tc.size * 8 * 3))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Power(dst, re, im)
			}
		})
	}
}
