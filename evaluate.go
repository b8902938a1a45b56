package side

// Accumulation holds the stream contributing-area rasters produced by
// the evaluators. Left and Right are with respect to an observer
// facing downstream; contributions that cannot be lateralized are
// split evenly between the two.
type Accumulation struct {
	Total, Left, Right []float64
}

// Evaluate computes bank-separated contributing area for every stream
// cell, serially. Non-stream cells carry zero; cells with no elevation
// carry the domain no-data value.
func (d *Domain) Evaluate(opts *Options) *Accumulation {
	a := d.newAccumulation()
	initial, thresh := opts.seed(d.Cw)
	for row := 0; row < d.Nrow; row++ {
		d.evalRow(a, row, initial, thresh, opts.HExp)
	}
	return a
}

func (d *Domain) newAccumulation() *Accumulation {
	n := d.Nrow * d.Ncol
	a := &Accumulation{
		Total: make([]float64, n),
		Left:  make([]float64, n),
		Right: make([]float64, n),
	}
	for i, z := range d.Dem {
		if z == d.NoData {
			a.Total[i] = d.NoData
			a.Left[i] = d.NoData
			a.Right[i] = d.NoData
		}
	}
	return a
}

// evalRow resolves every stream cell on one row. All writes land on
// the stream cell being processed, so rows may be evaluated
// concurrently without coordination.
func (d *Domain) evalRow(a *Accumulation, row int, initial, thresh, hexp float64) {
	for col := 0; col < d.Ncol; col++ {
		if !d.isStream(row, col) || d.z(row, col) == d.NoData {
			continue
		}
		cid := d.cellID(row, col)
		a.Total[cid] = initial - thresh
		a.Left[cid] = (initial - thresh) / 2.
		a.Right[cid] = (initial - thresh) / 2.
		for c := 0; c < 8; c++ {
			d.accumulate(a, row+yd[c], col+xd[c], row, col, (c+4)%8, thresh, hexp)
		}
	}
}

// accumulate transfers area from the cell at (row,col) into the stream
// cell at (srow,scol), which the source cell sees in direction flowDir.
func (d *Domain) accumulate(a *Accumulation, row, col, srow, scol, flowDir int, thresh, hexp float64) {
	if !d.inGrid(row, col) || d.z(row, col) == d.NoData {
		return
	}
	cid := d.cellID(srow, scol)
	if d.isStream(row, col) {
		// upstream channel cell; it hands over the fixed
		// initiation increment when its steepest descent points
		// here
		if d.FlowDirection(row, col) == flowDir {
			a.Total[cid] += thresh
			a.Left[cid] += thresh / 2.
			a.Right[cid] += thresh / 2.
		}
		return
	}
	portion := d.FacetPortions(row, col, hexp)
	if portion[flowDir] <= 0. {
		return
	}
	v := d.facc(row, col) * portion[flowDir]
	a.Total[cid] += v
	switch d.FindSide(srow, scol, flowDir) {
	case Right:
		a.Right[cid] += v
	case Left:
		a.Left[cid] += v
	default:
		a.Left[cid] += v / 2.
		a.Right[cid] += v / 2.
	}
}
