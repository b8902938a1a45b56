// Package side computes side-separated contributions to a stream
// network: for every channel cell, the upslope contributing flow is
// split into the portion arriving over the left bank and the portion
// arriving over the right bank (facing downstream). Hillslope flow is
// apportioned with the MDInf multiple flow direction algorithm of
// Seibert and McGlynn (2007); bank assignment follows the SIDE
// algorithm of Grabs et al. (2010).
package side

import "math"

// 8-neighbour scan order, counter-clockwise from north
var (
	xd = [8]int{0, -1, -1, -1, 0, 1, 1, 1}          // column offset
	yd = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}          // row offset
	dd = [8]float64{1, sq2, 1, sq2, 1, sq2, 1, sq2} // unit distance
)

const sq2 = math.Sqrt2

// Side is the bank a flow line enters a stream cell on, facing
// downstream. Unknown contributions are split evenly between banks.
type Side int

const (
	Unknown Side = iota
	Right
	Left
)

func (s Side) String() string {
	switch s {
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
