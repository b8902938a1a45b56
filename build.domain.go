package side

import (
	"fmt"
	"log"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
)

const nodataDefault = -9999.

// LoadDomain reads a grid definition and the three input rasters
// (DEM, upstream flow accumulation, stream network). The rasters must
// share the grid definition's dimensions and cell size; mismatches are
// fatal before any processing begins.
func LoadDomain(gdefFP, demFP, faccFP, strmFP string) *Domain {
	gd, err := grid.ReadGDEF(gdefFP, true)
	if err != nil {
		log.Fatalf(" LoadDomain grid.ReadGDEF: %v", err)
	}

	loadReal := func(fp string) []float64 {
		if _, ok := mmio.FileExists(fp); !ok {
			log.Fatalf(" LoadDomain: file not found: %s", fp)
		}
		fmt.Printf(" loading: %s\n", fp)
		var g grid.Real
		g.NewGD32(fp, gd)
		a := gd.NullArray(nodataDefault)
		for c, v := range g.A {
			if c < 0 || c >= len(a) {
				log.Fatalf(" LoadDomain: %s does not align with %s", fp, gdefFP)
			}
			a[c] = v
		}
		return a
	}

	d := &Domain{
		GD:     gd,
		Dem:    loadReal(demFP),
		FAcc:   loadReal(faccFP),
		Strms:  loadReal(strmFP),
		Nrow:   gd.Nrow,
		Ncol:   gd.Ncol,
		Cw:     gd.Cwidth,
		NoData: nodataDefault,
	}
	if len(d.Dem) != d.Nrow*d.Ncol {
		log.Fatalf(" LoadDomain: %s: %d cells read, %d x %d grid expected", demFP, len(d.Dem), d.Nrow, d.Ncol)
	}
	fmt.Printf(" %s cells (%d x %d), cell width %.2f\n", mmio.Thousands(int64(gd.Ncells())), d.Nrow, d.Ncol, d.Cw)
	return d
}
