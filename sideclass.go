package side

import "math"

// FindSide determines which bank of the channel at stream cell
// (row, col) an inflow arriving from direction flowDir enters on,
// following Grabs et al. (2010): the inflow vector is compared against
// the local streamflow direction and each upstream tributary's own
// flow direction by the sign of their cross products. Junctions where
// the inflow lies between two tributaries, stream endpoints opposing
// the inflow, and cells without a descent direction are Unknown.
func (d *Domain) FindSide(row, col, flowDir int) Side {
	s1Dir := d.FlowDirection(row, col) // local streamflow direction
	if s1Dir == -1 {
		return Unknown // outlet or pit: no downstream direction
	}

	fx, fy := float64(xd[flowDir]), float64(yd[flowDir])
	s1x, s1y := float64(xd[s1Dir]), float64(yd[s1Dir])

	left, right := true, true // default: side undetermined

	sp := (fx*s1x + fy*s1y) / math.Sqrt(fx*fx+fy*fy) / math.Sqrt(s1x*s1x+s1y*s1y)
	if math.Abs(sp+1) >= 1e-5 {
		// Were sp ~ -1 the inflow would oppose the streamflow
		// direction, which occurs at stream endpoints lying inside the
		// grid rather than on its edge; the side is then left
		// undetermined without inspecting tributaries.
		nTrib := 0
		zcpA := fx*s1y - fy*s1x
		for i := 0; i < 8; i++ {
			r2, c2 := row+yd[i], col+xd[i]
			if !d.isStream(r2, c2) {
				continue
			}
			s2Dir := d.FlowDirection(r2, c2)
			if s2Dir == -1 || r2+yd[s2Dir] != row || c2+xd[s2Dir] != col {
				continue // stream cell, but not an upstream tributary
			}
			nTrib++
			s2x, s2y := float64(xd[s2Dir]), float64(yd[s2Dir])
			zcpB := fx*s2y - fy*s2x
			prevRight := right
			if zcpA*zcpB > 0 {
				// consistent side relative to both flow vectors
				right = zcpB > 0
			} else {
				// opposite signs (or zero): a sharp channel bend, or
				// inflow parallel to the channel; compare the two
				// stream vectors instead
				zcpC := s1x*s2y - s1y*s2x
				right = zcpC > 0
			}
			left = !right
			if nTrib > 1 && right != prevRight {
				// a junction, and the inflow lies between two
				// tributaries
				left, right = true, true
				break
			}
		}
	}

	switch {
	case left && right:
		return Unknown
	case right:
		return Right
	case left:
		return Left
	default:
		return Unknown
	}
}
