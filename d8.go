package side

import "math"

// FlowDirection returns the D8 steepest-descent direction from
// (row, col), or -1 where the cell is no-data or has no valid lower
// neighbour (a pit or the domain edge). Ties keep the first direction
// encountered in the fixed scan order.
func (d *Domain) FlowDirection(row, col int) int {
	z := d.z(row, col)
	if z == d.NoData {
		return -1
	}
	maxSlope, fdir := math.Inf(-1), -1
	for c := 0; c < 8; c++ {
		zn := d.z(row+yd[c], col+xd[c])
		if z > zn && zn != d.NoData {
			if slope := (z - zn) / dd[c]; slope > maxSlope {
				maxSlope = slope
				fdir = c
			}
		}
	}
	return fdir
}
