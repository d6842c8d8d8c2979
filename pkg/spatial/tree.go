package spatial

// Triangle is a triple of vertex indices. Triangles are stored in the
// order the TriangleSource emitted them; that order is otherwise
// arbitrary and never relied on for anything but the primitive id.
type Triangle struct {
	P1, P2, P3 uint32
}

// Tree is an immutable k-d tree spatial index over one mesh's triangles.
// Build it with Build; query it with Intersect. A Tree must not be
// queried concurrently with any build, but concurrent read-only queries
// are safe.
type Tree struct {
	vertices VertexSource
	pool     *nodePool
	axis     []int
	opts     BuildOptions

	triangles  []Triangle
	centroids  []vec3
	primitives []int32 // P: permutation of 0..len(triangles)
}

// NumTriangles returns the number of triangles indexed by the tree.
func (t *Tree) NumTriangles() int {
	return len(t.triangles)
}

// RootBounds returns the bounding box of the whole tree.
func (t *Tree) RootBounds() AABB {
	return t.pool.get(0).bb
}
