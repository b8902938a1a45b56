package side

import (
	"fmt"

	"github.com/maseology/goHydro/grid"
)

// Domain binds the three aligned input rasters needed to separate
// stream contributions by bank: a DEM, a precomputed upstream flow
// accumulation raster, and a stream-presence raster. Cell values are
// held in dense row-major arrays indexed by cell id (row*Ncol+col),
// the same ordering used by goHydro grid definitions.
type Domain struct {
	GD               *grid.Definition // optional; required only by the raster/csv writers
	Dem, FAcc, Strms []float64
	Nrow, Ncol       int
	Cw               float64 // uniform cell width
	NoData           float64
}

// NewDomain builds a Domain from in-memory rasters. All three arrays
// must be row-major of length nrow*ncol.
func NewDomain(dem, facc, strms []float64, nrow, ncol int, cw, nodata float64) *Domain {
	n := nrow * ncol
	if len(dem) != n || len(facc) != n || len(strms) != n {
		panic(fmt.Sprintf("side.NewDomain: raster dimensions do not match %d x %d", nrow, ncol))
	}
	return &Domain{
		Dem:    dem,
		FAcc:   facc,
		Strms:  strms,
		Nrow:   nrow,
		Ncol:   ncol,
		Cw:     cw,
		NoData: nodata,
	}
}

func (d *Domain) cellID(row, col int) int { return row*d.Ncol + col }

func (d *Domain) inGrid(row, col int) bool {
	return row >= 0 && row < d.Nrow && col >= 0 && col < d.Ncol
}

// z returns the DEM elevation at (row, col), NoData outside the grid.
func (d *Domain) z(row, col int) float64 {
	if !d.inGrid(row, col) {
		return d.NoData
	}
	return d.Dem[d.cellID(row, col)]
}

func (d *Domain) facc(row, col int) float64 {
	if !d.inGrid(row, col) {
		return d.NoData
	}
	return d.FAcc[d.cellID(row, col)]
}

func (d *Domain) isStream(row, col int) bool {
	if !d.inGrid(row, col) {
		return false
	}
	v := d.Strms[d.cellID(row, col)]
	return v > 0 && v != d.NoData
}
