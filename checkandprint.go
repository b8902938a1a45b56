package side

import (
	"fmt"
	"log"

	"github.com/maseology/mmio"
)

// Checkandprint writes diagnostic rasters of the loaded domain: the
// steepest-descent direction of every cell together with the channel
// mask, useful for verifying inputs before a long run.
func (d *Domain) Checkandprint(chkdirprfx string) {

	// summarize
	nstrm := 0
	for row := 0; row < d.Nrow; row++ {
		for col := 0; col < d.Ncol; col++ {
			if d.isStream(row, col) {
				nstrm++
			}
		}
	}
	fmt.Printf("   %s stream cells of %s\n", mmio.Thousands(int64(nstrm)), mmio.Thousands(int64(d.Nrow*d.Ncol)))

	// output
	fdir, strm := d.GD.NullInt32(-9999), d.GD.NullInt32(-9999)
	for row := 0; row < d.Nrow; row++ {
		for col := 0; col < d.Ncol; col++ {
			if d.z(row, col) == d.NoData {
				continue
			}
			c := d.cellID(row, col)
			fdir[c] = int32(d.FlowDirection(row, col))
			if d.isStream(row, col) {
				strm[c] = 1
			} else {
				strm[c] = 0
			}
		}
	}

	if err := writeInts(d.GD, chkdirprfx+"domain.fdir.bil", fdir); err != nil { // steepest-descent direction (0=N counter-clockwise to 7=NE), -1 pits
		log.Fatalf("Checkandprint %v", err)
	}
	if err := writeInts(d.GD, chkdirprfx+"domain.strm.bil", strm); err != nil { // channel mask
		log.Fatalf("Checkandprint %v", err)
	}
}
