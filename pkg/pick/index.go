// Package pick turns the triangle meshes tessellate.Tessellate produces
// into something a 3D viewport can click on: a per-mesh triangle-accurate
// index (pkg/spatial) behind a scene-level broad phase (an R-tree over
// per-part bounding boxes) so a click doesn't have to precisely test every
// part in the design.
package pick

import (
	"github.com/chazu/lignincad/pkg/kernel"
	"github.com/chazu/lignincad/pkg/spatial"
)

// MeshIndex pairs a mesh with its lazily-built spatial index. The index is
// built on first use rather than at construction time: many parts in a
// design are never clicked on, and building a tree for all of them up
// front would be wasted work.
type MeshIndex struct {
	PartName string
	Mesh     *kernel.Mesh
	Bounds   spatial.AABB

	tree  *spatial.Tree
	built bool
}

func newMeshIndex(partName string, mesh *kernel.Mesh) *MeshIndex {
	bb := spatial.NewInvalidAABB()
	verts := spatial.MeshVertexSource(mesh.Vertices)
	for i := 0; i < verts.Len(); i++ {
		bb.ExpandByPoint(verts.At(uint32(i)))
	}
	return &MeshIndex{PartName: partName, Mesh: mesh, Bounds: bb}
}

// ensureBuilt builds the mesh's spatial.Tree if it hasn't been already.
// It returns false if the mesh is too small to be worth indexing (see
// spatial.Build); in that case every subsequent call re-attempts nothing
// and just reports the mesh has no tree.
func (mi *MeshIndex) ensureBuilt(opts spatial.BuildOptions) bool {
	if mi.built {
		return mi.tree != nil
	}
	mi.built = true

	tree, ok := spatial.Build(opts, spatial.MeshVertexSource(mi.Mesh.Vertices), spatial.MeshTriangleSource(mi.Mesh.Indices))
	if !ok {
		return false
	}
	mi.tree = tree
	return true
}
