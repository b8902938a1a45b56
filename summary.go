package side

import (
	"log"

	"github.com/maseology/mmio"
)

// WriteStreamSummary prints a per-stream-cell csv of the accumulated
// totals, with cell centroids for joining back to GIS.
func (a *Accumulation) WriteStreamSummary(d *Domain, fp string) {
	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	if err := csvw.WriteHead("cid,x,y,total,left,right"); err != nil {
		log.Fatalf("WriteStreamSummary %v", err)
	}
	for row := 0; row < d.Nrow; row++ {
		for col := 0; col < d.Ncol; col++ {
			if !d.isStream(row, col) || d.z(row, col) == d.NoData {
				continue
			}
			cid := d.cellID(row, col)
			xy := d.GD.Coord[cid]
			csvw.WriteLine(cid, xy.X, xy.Y, a.Total[cid], a.Left[cid], a.Right[cid])
		}
	}
}
