package spatial

// VertexSource is a random-access, read-only view of N 3D float points,
// indexed by u32. The tree borrows it for the lifetime of the build and
// of every subsequent query — the caller must keep the backing data alive
// and unmodified for at least that long.
type VertexSource interface {
	Len() int
	At(i uint32) [3]float32
}

// TriangleSource enumerates triangles by vertex-index triple, once per
// triangle, via a visitor callback. Triangle order is whatever the source
// emits; the builder assigns primitive ids in that order.
type TriangleSource interface {
	EachTriangle(fn func(p1, p2, p3 uint32))
}

// MeshVertexSource adapts a flat float32 buffer (3 floats per vertex, x,y,z
// interleaved — the layout kernel.Mesh.Vertices uses) to VertexSource.
type MeshVertexSource []float32

// Len returns the number of vertices in the buffer.
func (m MeshVertexSource) Len() int {
	return len(m) / 3
}

// At returns vertex i as a [3]float32.
func (m MeshVertexSource) At(i uint32) [3]float32 {
	base := int(i) * 3
	return [3]float32{m[base], m[base+1], m[base+2]}
}

// MeshTriangleSource adapts a flat uint32 buffer (3 indices per triangle —
// the layout kernel.Mesh.Indices uses) to TriangleSource.
type MeshTriangleSource []uint32

// EachTriangle invokes fn once per triangle in buffer order.
func (m MeshTriangleSource) EachTriangle(fn func(p1, p2, p3 uint32)) {
	for i := 0; i+2 < len(m); i += 3 {
		fn(m[i], m[i+1], m[i+2])
	}
}
