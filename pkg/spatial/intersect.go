package spatial

// Intersection records one triangle hit along a queried segment.
type Intersection struct {
	Ratio             float32    // parametric position along the segment, in [0,1]
	PrimitiveIndex    uint32     // triangle id (index into the original triangle stream)
	IntersectionPoint [3]float32
	Normal            [3]float32
	Indices           [3]uint32  // the triangle's three vertex indices
	Barycentric       [3]float32 // weights corresponding to Indices, summing to 1
}

// raySegment holds the per-query derived quantities the triangle test
// needs, computed once per Intersect call rather than once per triangle.
type raySegment struct {
	start         vec3
	dir           vec3 // end - start, NOT normalized
	length        float32
	inverseLength float32
}

func newRaySegment(start, end vec3) raySegment {
	d := vecSub(end, start)
	length := vecLength(d)
	inv := float32(0)
	if length != 0 {
		inv = 1 / length
	}
	return raySegment{start: start, dir: d, length: length, inverseLength: inv}
}

// intersectTriangle tests the segment described by ray against the
// triangle (v1,v2,v3), emitting an Intersection on i and reporting true on
// a successful hit. It silently skips degenerate triangles (two equal
// vertices), lines parallel to an edge (zero denominator on a barycentric
// ratio), and intersection points that come out non-finite — this is part
// of the contract, not a bug: the caller sees an unaffected query result.
func intersectTriangle(ray raySegment, v1, v2, v3 vec3, primitiveIndex uint32, idx [3]uint32, i *Intersection) bool {
	if vecEqual(v1, v2) || vecEqual(v2, v3) || vecEqual(v1, v3) {
		return false
	}

	v12 := vecSub(v2, v1)
	n12 := vecCross(v12, ray.dir)
	ds12 := vecDot(vecSub(ray.start, v1), n12)
	d312 := vecDot(vecSub(v3, v1), n12)
	if d312 >= 0 {
		if ds12 < 0 || ds12 > d312 {
			return false
		}
	} else {
		if ds12 > 0 || ds12 < d312 {
			return false
		}
	}

	v23 := vecSub(v3, v2)
	n23 := vecCross(v23, ray.dir)
	ds23 := vecDot(vecSub(ray.start, v2), n23)
	d123 := vecDot(vecSub(v1, v2), n23)
	if d123 >= 0 {
		if ds23 < 0 || ds23 > d123 {
			return false
		}
	} else {
		if ds23 > 0 || ds23 < d123 {
			return false
		}
	}

	v31 := vecSub(v1, v3)
	n31 := vecCross(v31, ray.dir)
	ds31 := vecDot(vecSub(ray.start, v3), n31)
	d231 := vecDot(vecSub(v2, v3), n31)
	if d231 >= 0 {
		if ds31 < 0 || ds31 > d231 {
			return false
		}
	} else {
		if ds31 > 0 || ds31 < d231 {
			return false
		}
	}

	var r1, r2, r3 float32

	switch {
	case ds12 == 0:
		r3 = 0
	case d312 != 0:
		r3 = ds12 / d312
	default:
		return false
	}

	switch {
	case ds23 == 0:
		r1 = 0
	case d123 != 0:
		r1 = ds23 / d123
	default:
		return false
	}

	switch {
	case ds31 == 0:
		r2 = 0
	case d231 != 0:
		r2 = ds31 / d231
	default:
		return false
	}

	totalR := r1 + r2 + r3
	if totalR != 1 {
		if totalR == 0 {
			return false
		}
		inv := 1 / totalR
		r1 *= inv
		r2 *= inv
		r3 *= inv
	}

	point := vecAdd(vecAdd(vecScale(v1, r1), vecScale(v2, r2)), vecScale(v3, r3))
	if !vecFinite(point) {
		return false
	}

	dAlong := vecDot(vecSub(point, ray.start), ray.dir)
	lengthSq := ray.length * ray.length
	if dAlong < 0 || dAlong > lengthSq {
		return false
	}
	ratio := dAlong * ray.inverseLength * ray.inverseLength

	normal := vecNormalize(vecCross(v12, v23))

	i.Ratio = ratio
	i.PrimitiveIndex = primitiveIndex
	i.IntersectionPoint = [3]float32(point)
	i.Normal = [3]float32(normal)
	i.Indices = idx
	i.Barycentric = [3]float32{r1, r2, r3}
	return true
}
