package spatial

import "math"

// leafEpsilon inflates a finalized leaf bound by this amount on every axis,
// on both sides, to absorb axis-aligned flat triangles that would otherwise
// produce a degenerate box that fails the segment clip test.
const leafEpsilon = 1e-6

// AABB is an axis-aligned bounding box. The zero value is the degenerate
// (but Valid) box at the origin, not an empty one — use NewInvalidAABB to
// get a box that ExpandByPoint/ExpandByBox can grow from nothing.
type AABB struct {
	Min, Max [3]float32
}

// NewInvalidAABB returns the canonical "nothing expanded into this yet"
// box: Min is +inf on every axis, Max is -inf, so the first ExpandByPoint
// or ExpandByBox call always wins.
func NewInvalidAABB() AABB {
	return AABB{
		Min: [3]float32{posInf, posInf, posInf},
		Max: [3]float32{negInf, negInf, negInf},
	}
}

var (
	posInf = float32(math.Inf(1))
	negInf = float32(math.Inf(-1))
)

// ExpandByPoint grows the box to include p.
func (b *AABB) ExpandByPoint(p [3]float32) {
	for a := 0; a < 3; a++ {
		if p[a] < b.Min[a] {
			b.Min[a] = p[a]
		}
		if p[a] > b.Max[a] {
			b.Max[a] = p[a]
		}
	}
}

// ExpandByBox grows the box to include other.
func (b *AABB) ExpandByBox(other AABB) {
	b.ExpandByPoint(other.Min)
	b.ExpandByPoint(other.Max)
}

// Inflate grows the box by amount on every axis, on both sides.
func (b *AABB) Inflate(amount float32) {
	for a := 0; a < 3; a++ {
		b.Min[a] -= amount
		b.Max[a] += amount
	}
}

// Valid reports whether Min <= Max on every axis.
func (b AABB) Valid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Center returns the midpoint of the box.
func (b AABB) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) * 0.5,
		(b.Min[1] + b.Max[1]) * 0.5,
		(b.Min[2] + b.Max[2]) * 0.5,
	}
}

// extent returns Max-Min on every axis.
func (b AABB) extent() [3]float32 {
	return [3]float32{
		b.Max[0] - b.Min[0],
		b.Max[1] - b.Min[1],
		b.Max[2] - b.Min[2],
	}
}
