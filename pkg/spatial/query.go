package spatial

// Intersect finds every triangle the closed segment [start, end] crosses
// and inserts an Intersection record for each into sink. It returns
// whether sink grew: a segment that misses the root bounds, or one that
// passes through the tree without crossing any triangle, both report
// false.
func (t *Tree) Intersect(start, end [3]float32, sink IntersectionSink) bool {
	if t == nil || t.pool == nil {
		return false
	}

	ray := newRaySegment(vec3(start), vec3(end))

	s, e := vec3(start), vec3(end)
	if !clipSegmentToAABB(&s, &e, t.RootBounds()) {
		return false
	}

	before := sink.Size()
	t.intersectNode(0, s, e, ray, sink)
	return sink.Size() != before
}

// intersectNode descends the tree below handle, clipping s/e against each
// node's bounds before recursing or testing leaf triangles. s and e are
// already known to lie within handle's bounds when this is called.
func (t *Tree) intersectNode(handle int32, s, e vec3, ray raySegment, sink IntersectionSink) {
	n := t.pool.get(handle)

	if n.kind == leafNode {
		for i := n.start; i < n.start+n.count; i++ {
			primID := t.primitives[i]
			tri := t.triangles[primID]
			v1 := vec3(t.vertices.At(tri.P1))
			v2 := vec3(t.vertices.At(tri.P2))
			v3 := vec3(t.vertices.At(tri.P3))

			var hit Intersection
			if intersectTriangle(ray, v1, v2, v3, uint32(primID), [3]uint32{tri.P1, tri.P2, tri.P3}, &hit) {
				sink.Insert(hit)
			}
		}
		return
	}

	if n.left != noChild {
		ls, le := s, e
		if clipSegmentToAABB(&ls, &le, t.pool.get(n.left).bb) {
			t.intersectNode(n.left, ls, le, ray, sink)
		}
	}
	if n.right != noChild {
		rs, re := s, e
		if clipSegmentToAABB(&rs, &re, t.pool.get(n.right).bb) {
			t.intersectNode(n.right, rs, re, ray, sink)
		}
	}
}
