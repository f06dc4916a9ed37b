package ampute_test

import (
	"testing"

	"github.com/katalvlaran/imputelab/ampute"
	"github.com/katalvlaran/imputelab/dataset"
)

func benchInput(b *testing.B) *dataset.Dataset {
	b.Helper()
	ds, err := dataset.SyntheticNormal(1000, 10, &dataset.SyntheticOptions{
		Mean: 1, Variance: 1, Correlation: 0.5, Seed: 42,
	})
	if err != nil {
		b.Fatal(err)
	}
	return ds
}

func benchmarkAmputate(b *testing.B, mech ampute.Mechanism) {
	X := benchInput(b).Matrix()
	opts := &ampute.Options{Seed: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := ampute.Amputate(X, mech, 0.3, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAmputate_MCAR(b *testing.B) { benchmarkAmputate(b, ampute.MCAR) }
func BenchmarkAmputate_MAR(b *testing.B)  { benchmarkAmputate(b, ampute.MAR) }
func BenchmarkAmputate_MNAR(b *testing.B) { benchmarkAmputate(b, ampute.MNAR) }
