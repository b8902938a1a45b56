package side

import "math"

// FacetPortions decomposes the 8-neighbour ring of (row, col) into 8
// triangular facets and returns the fraction of the cell's flow
// directed to each neighbour (MDInf; Seibert and McGlynn, 2007).
// Fractions are non-negative and sum to at most 1; a no-data or fully
// flat/ascending cell returns all zeros. Exponents hexp >= 10
// degenerate to single-direction (D8-like) routing.
func (d *Domain) FacetPortions(row, col int, hexp float64) (portion [8]float64) {
	z := d.z(row, col)
	if z == d.NoData {
		return
	}

	var rFacet, sFacet [8]float64
	for i := range sFacet {
		sFacet[i] = d.NoData
	}

	// slope and downslope direction of each triangular facet
	for i := 0; i < 8; i++ {
		ii := (i + 1) % 8
		p1 := d.z(row+yd[i], col+xd[i])
		p2 := d.z(row+yd[ii], col+xd[ii])
		if p1 != d.NoData && p2 != d.NoData {
			z1, z2 := p1-z, p2-z

			// normal to the facet
			nx := (float64(yd[i])*z2 - float64(yd[ii])*z1) * d.Cw
			ny := (float64(xd[ii])*z1 - float64(xd[i])*z2) * d.Cw
			nz := float64(xd[i]*yd[ii]-xd[ii]*yd[i]) * d.Cw * d.Cw

			var hr float64
			switch {
			case nx == 0 && ny >= 0:
				hr = 0
			case nx == 0:
				hr = math.Pi
			case nx > 0:
				hr = math.Pi/2 - math.Atan(ny/nx)
			default:
				hr = 3*math.Pi/2 - math.Atan(ny/nx)
			}
			hs := -math.Tan(math.Acos(nz / math.Sqrt(nx*nx+ny*ny+nz*nz)))

			// downslope direction outside the facet's 45 degree span:
			// fall back to the lower bounding edge
			if hr < float64(i)*math.Pi/4 || hr > float64(i+1)*math.Pi/4 {
				if p1 < p2 {
					hr = float64(i) * math.Pi / 4
					hs = (z - p1) / (dd[i] * d.Cw)
				} else {
					hr = float64(ii) * math.Pi / 4
					hs = (z - p2) / (dd[ii] * d.Cw)
				}
			}
			rFacet[i] = hr
			sFacet[i] = hs
		} else if p1 != d.NoData && p1 < z {
			// facet bounded by a single valid edge
			rFacet[i] = float64(i) * math.Pi / 4
			sFacet[i] = (z - p1) / (dd[ii] * d.Cw)
		}
	}

	// collect the facets water flows to (the valley set)
	var valley [8]float64
	valleySum, valleyMax, iMax := 0., 0., 0
	for i := 0; i < 8; i++ {
		ii := (i + 1) % 8
		if sFacet[i] > 0 {
			switch {
			case rFacet[i] > float64(i)*math.Pi/4 && rFacet[i] < float64(i+1)*math.Pi/4:
				// downslope direction within the facet
				valley[i] = sFacet[i]
			case rFacet[i] == rFacet[ii]:
				// two adjacent facets draining the same way
				valley[i] = sFacet[i]
			case sFacet[ii] == d.NoData && rFacet[i] == float64(i+1)*math.Pi/4:
				// on the border shared with a no-data facet
				valley[i] = sFacet[i]
			default:
				ii = (i + 7) % 8
				if sFacet[ii] == d.NoData && rFacet[i] == float64(i)*math.Pi/4 {
					valley[i] = sFacet[i]
				}
			}
		}
		valleySum += math.Pow(valley[i], hexp)
		if valleyMax < valley[i] {
			iMax = i
			valleyMax = valley[i]
		}
	}
	if valleySum <= 0 {
		return
	}

	if hexp < 10 {
		for i := 0; i < 8; i++ {
			valley[i] = math.Pow(valley[i], hexp) / valleySum
		}
	} else {
		// high exponents degenerate to the steepest facet only
		for i := 0; i < 8; i++ {
			if i == iMax {
				valley[i] = 1
			} else {
				valley[i] = 0
			}
		}
	}

	if rFacet[7] == 0 {
		rFacet[7] = 2 * math.Pi
	}

	// split each facet's weight between its two bounding directions
	for i := 0; i < 8; i++ {
		ii := (i + 1) % 8
		if valley[i] > 0 {
			portion[i] += valley[i] * (float64(i+1)*math.Pi/4 - rFacet[i]) / (math.Pi / 4)
			portion[ii] += valley[i] * (rFacet[i] - float64(i)*math.Pi/4) / (math.Pi / 4)
		}
	}
	return
}
