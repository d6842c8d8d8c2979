package spatial

// Build constructs a k-d tree over the triangles triangles enumerates,
// indexed into vertices. It returns (nil, false) if vertices is absent or
// holds at most opts.TargetNumTrianglesPerLeaf vertices — too small a
// mesh to be worth indexing. On success it returns the tree and true.
//
// opts is received by value. Once the size check passes, Build adds the
// number of vertices in this mesh to the NumVerticesProcessed of that copy,
// which the returned Tree keeps. The caller's BuildOptions value is not
// modified, so reusing it across calls does not accumulate a count.
func Build(opts BuildOptions, vertices VertexSource, triangles TriangleSource) (*Tree, bool) {
	if vertices == nil {
		return nil, false
	}
	numVertices := vertices.Len()
	if numVertices <= opts.TargetNumTrianglesPerLeaf {
		return nil, false
	}

	opts.NumVerticesProcessed += numVertices

	rootBB := NewInvalidAABB()
	for i := 0; i < numVertices; i++ {
		rootBB.ExpandByPoint(vertices.At(uint32(i)))
	}

	t := &Tree{
		vertices: vertices,
		opts:     opts,
		axis:     computeAxisSchedule(rootBB, opts.MaxNumLevels),
	}

	capacityBasis := opts.TargetNumTrianglesPerLeaf
	if capacityBasis <= 0 {
		capacityBasis = 1
	}
	estimatedTriangles := numVertices * 2
	t.triangles = make([]Triangle, 0, estimatedTriangles)
	t.centroids = make([]vec3, 0, estimatedTriangles)
	t.primitives = make([]int32, 0, estimatedTriangles)

	collectTriangles(t, triangles)

	t.pool = newNodePool((2*numVertices/capacityBasis)*5 + 1)
	rootHandle := t.pool.add(newLeafNode(0, int32(len(t.primitives)), rootBB))
	if rootHandle != 0 {
		// The root is always the first node allocated; RootBounds and
		// Intersect both start from handle 0.
		panic("spatial: root node did not land on handle 0")
	}

	t.divide(0, rootBB, 0)

	return t, true
}

// collectTriangles runs the TriangleSource, appending to t's triangle,
// centroid, and (identity, at this point) primitive-index arrays.
func collectTriangles(t *Tree, triangles TriangleSource) {
	triangles.EachTriangle(func(p1, p2, p3 uint32) {
		id := int32(len(t.triangles))
		t.triangles = append(t.triangles, Triangle{P1: p1, P2: p2, P3: p3})

		bb := NewInvalidAABB()
		bb.ExpandByPoint(t.vertices.At(p1))
		bb.ExpandByPoint(t.vertices.At(p2))
		bb.ExpandByPoint(t.vertices.At(p3))

		t.centroids = append(t.centroids, vec3(bb.Center()))
		t.primitives = append(t.primitives, id)
	})
}

// divide either finalizes nodeHandle as a leaf or splits it, recursing
// into the children it creates. bb is the caller's current bound for this
// node (tighter than the node's own stored bb while a split is pending);
// it is mutated and restored around each recursive call rather than
// copied, matching the original builder's stack discipline.
func (t *Tree) divide(nodeHandle int32, bb AABB, level int) {
	n := t.pool.get(nodeHandle)

	needToDivide := n.kind == leafNode &&
		level < len(t.axis) &&
		n.count > int32(t.opts.TargetNumTrianglesPerLeaf)

	if !needToDivide {
		if n.kind == leafNode {
			t.finalizeLeaf(n)
		}
		return
	}

	axis := t.axis[level]
	istart := n.start
	iend := n.start + n.count - 1
	mid := (bb.Min[axis] + bb.Max[axis]) / 2

	right := t.partition(istart, iend, axis, mid)
	left := right + 1

	leftCount := right - istart + 1
	rightCount := iend - left + 1

	var leftHandle, rightHandle int32 = noChild, noChild
	if leftCount > 0 {
		leftHandle = t.pool.add(newLeafNode(istart, leftCount, AABB{}))
	}
	if rightCount > 0 {
		rightHandle = t.pool.add(newLeafNode(left, rightCount, AABB{}))
	}

	if leftHandle != noChild {
		restore := bb.Max[axis]
		bb.Max[axis] = mid
		t.divide(leftHandle, bb, level+1)
		bb.Max[axis] = restore
	}
	if rightHandle != noChild {
		restore := bb.Min[axis]
		bb.Min[axis] = mid
		t.divide(rightHandle, bb, level+1)
		bb.Min[axis] = restore
	}

	// n may be stale: divide() above can have grown the pool and
	// reallocated its backing array. Re-fetch before writing.
	n = t.pool.get(nodeHandle)
	n.kind = internalNode
	n.left = leftHandle
	n.right = rightHandle

	union := NewInvalidAABB()
	if leftHandle != noChild {
		union.ExpandByBox(t.pool.get(leftHandle).bb)
	}
	if rightHandle != noChild {
		union.ExpandByBox(t.pool.get(rightHandle).bb)
	}
	n.bb = union
}

// partition reorders P[istart..iend] in place (Hoare-style) so that every
// entry whose centroid lies at or below mid on axis comes before every
// entry whose centroid lies above it, and returns the index of the last
// "at or below" entry, or istart-1 if none qualify.
func (t *Tree) partition(istart, iend int32, axis int, mid float32) int32 {
	belowOrEqual := func(i int32) bool {
		return t.centroids[t.primitives[i]][axis] <= mid
	}

	left, right := istart, iend
	for left < right {
		for left < right && belowOrEqual(left) {
			left++
		}
		for left < right && !belowOrEqual(right) {
			right--
		}
		if left < right {
			t.primitives[left], t.primitives[right] = t.primitives[right], t.primitives[left]
			left++
			right--
		}
	}

	if left == right {
		if belowOrEqual(left) {
			left++
		} else {
			right--
		}
	}

	return right
}

// finalizeLeaf recomputes n's bound from scratch by unioning its
// triangles' vertices, then inflates it by leafEpsilon on every axis.
func (t *Tree) finalizeLeaf(n *node) {
	bb := NewInvalidAABB()
	for i := n.start; i < n.start+n.count; i++ {
		tri := t.triangles[t.primitives[i]]
		bb.ExpandByPoint(t.vertices.At(tri.P1))
		bb.ExpandByPoint(t.vertices.At(tri.P2))
		bb.ExpandByPoint(t.vertices.At(tri.P3))
	}
	bb.Inflate(leafEpsilon)
	n.bb = bb
}
