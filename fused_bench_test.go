package vecmath

import "testing"

func BenchmarkAddMulBlock(b *testing.B) {
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
				AddMulBlock(dst, a, c, 0.5)
			}
		})
	}
}

func BenchmarkMulAddBlock(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			a := make([]float64, tc.size)
			c := make([]float64, tc.size)
			d := make([]float64, tc.size)
			dst := make([]float64, tc.size)

			for i := range a {
				a[i] = float64(i) + 0.5
				c[i] = float64(tc.size-i) * 0.1
				d[i] = float64(i) - 1.0
			}

			b.SetBytes(int64(tc.size * 8 * 4))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				MulAddBlock(dst, a, c, d)
			}
		})
	}
}
