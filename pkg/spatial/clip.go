package spatial

// clipSegmentToAABB clips the finite segment [s,e] against bb, updating s
// and e in place to the entry/exit points on the box. It returns false if
// the segment lies entirely outside bb on some axis, in which case s and e
// are left in an unspecified state.
//
// Each axis is handled independently, in whichever of the two orderings
// s[a] <= e[a] or s[a] > e[a] holds for that axis, and axes are processed
// in sequence (X, then Y, then Z) so later clips interpolate against
// already-clipped endpoints, not the caller's original segment.
func clipSegmentToAABB(s, e *vec3, bb AABB) bool {
	for a := 0; a < 3; a++ {
		min, max := bb.Min[a], bb.Max[a]

		if s[a] <= e[a] {
			if e[a] < min || s[a] > max {
				return false
			}
			if s[a] < min {
				*s = vecAdd(*s, vecScale(vecSub(*e, *s), (min-s[a])/(e[a]-s[a])))
			}
			if e[a] > max {
				*e = vecAdd(*s, vecScale(vecSub(*e, *s), (max-s[a])/(e[a]-s[a])))
			}
		} else {
			if s[a] < min || e[a] > max {
				return false
			}
			if e[a] < min {
				*e = vecAdd(*s, vecScale(vecSub(*e, *s), (min-s[a])/(e[a]-s[a])))
			}
			if s[a] > max {
				*s = vecAdd(*s, vecScale(vecSub(*e, *s), (max-s[a])/(e[a]-s[a])))
			}
		}
	}
	return true
}
