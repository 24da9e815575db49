package vecmath

import "testing"

func BenchmarkMaxAbs(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			x := make([]float64, tc.size)
			for i := range x {
				x[i] = float64(i) - float64(tc.size)/2
			}

			b.SetBytes(int64(tc.size * 8))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = MaxAbs(x)
			}
		})
	}
}
