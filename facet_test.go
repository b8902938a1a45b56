package side

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestFacetPortionsCone(t *testing.T) {
	// inverted cone apex: every facet's downslope direction falls at
	// the centre of its 45 degree span, so flow spreads evenly
	s := math.Sqrt2
	d := testDomain(3, 3, 1., []float64{
		-s, -1, -s,
		-1, 0, -1,
		-s, -1, -s,
	})
	p := d.FacetPortions(1, 1, 1.)
	assert.InDelta(t, 1., floats.Sum(p[:]), 1e-9)
	for c := 0; c < 8; c++ {
		assert.InDelta(t, 1./8., p[c], 1e-9)
	}
}

func TestFacetPortionsPyramid(t *testing.T) {
	// all 8 neighbours equally lower: adjacent facet pairs share
	// their downslope direction and drain to the cardinals only
	d := testDomain(3, 3, 1., []float64{
		-1, -1, -1,
		-1, 0, -1,
		-1, -1, -1,
	})
	p := d.FacetPortions(1, 1, 1.)
	assert.InDelta(t, 1., floats.Sum(p[:]), 1e-9)
	for _, c := range []int{0, 2, 4, 6} {
		assert.InDelta(t, .25, p[c], 1e-9)
	}
	for _, c := range []int{1, 3, 5, 7} {
		assert.InDelta(t, 0., p[c], 1e-12)
	}
}

func TestFacetPortionsTwoValleys(t *testing.T) {
	dem := []float64{
		1.5, 1.5, 1.5,
		1.5, 1, .5,
		1.5, 0, 1.5,
	}
	d := testDomain(3, 3, 1., dem)

	// the southern valley is twice as steep as the eastern one
	p := d.FacetPortions(1, 1, 1.)
	assert.InDelta(t, 2./3., p[4], 1e-9)
	assert.InDelta(t, 1./3., p[6], 1e-9)
	assert.InDelta(t, 1., floats.Sum(p[:]), 1e-9)

	// high exponents send everything down the steepest facet
	p = d.FacetPortions(1, 1, 10.)
	assert.InDelta(t, 1., p[4], 1e-12)
	assert.InDelta(t, 1., floats.Sum(p[:]), 1e-12)
}

func TestFacetPortionsNoDescent(t *testing.T) {
	{ // pit
		d := testDomain(3, 3, 1., []float64{
			2, 2, 2,
			2, 0, 2,
			2, 2, 2,
		})
		p := d.FacetPortions(1, 1, 1.)
		assert.Equal(t, [8]float64{}, p)
	}
	{ // flat
		d := testDomain(3, 3, 1., uniform(9, 5.))
		p := d.FacetPortions(1, 1, 1.)
		assert.Equal(t, [8]float64{}, p)
	}
	{ // no-data cell
		dem := uniform(9, 1.)
		dem[4] = nd
		d := testDomain(3, 3, 1., dem)
		p := d.FacetPortions(1, 1, 1.)
		assert.Equal(t, [8]float64{}, p)
	}
}

func TestFacetPortionsNormalized(t *testing.T) {
	// fractions stay non-negative and sum to either 0 or 1
	nr, nc := 20, 20
	dem := randomDEM(nr, nc, 42)
	dem[5*nc+5] = nd
	dem[12*nc+17] = nd
	d := testDomain(nr, nc, 1., dem)
	for row := 0; row < nr; row++ {
		for col := 0; col < nc; col++ {
			p := d.FacetPortions(row, col, 1.1)
			s := floats.Sum(p[:])
			for c := 0; c < 8; c++ {
				assert.GreaterOrEqual(t, p[c], 0.)
			}
			if s > 0 {
				assert.InDelta(t, 1., s, 1e-9)
			} else {
				assert.Equal(t, 0., s)
			}
		}
	}
}
