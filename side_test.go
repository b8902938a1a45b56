package side

import (
	"math/rand"

	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

const nd = -9999.

func uniform(n int, v float64) []float64 {
	a := make([]float64, n)
	for i := range a {
		a[i] = v
	}
	return a
}

// testDomain wraps a DEM with unit flow accumulation and an empty
// stream mask; tests flag stream cells directly on Strms.
func testDomain(nrow, ncol int, cw float64, dem []float64) *Domain {
	n := nrow * ncol
	return NewDomain(dem, uniform(n, 1.), uniform(n, 0.), nrow, ncol, cw, nd)
}

func randomDEM(nrow, ncol int, seed int64) []float64 {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	dem := make([]float64, nrow*ncol)
	for i := range dem {
		dem[i] = 10. * rng.Float64()
	}
	return dem
}
