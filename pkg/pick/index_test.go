package pick

import (
	"testing"

	"github.com/chazu/lignincad/pkg/kernel"
	"github.com/chazu/lignincad/pkg/spatial"
)

func cubeTestMesh() *kernel.Mesh {
	return &kernel.Mesh{
		PartName: "cube",
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
			0, 0, 1,
			1, 0, 1,
			1, 1, 1,
			0, 1, 1,
		},
		Indices: []uint32{
			0, 1, 2, 0, 2, 3,
			4, 6, 5, 4, 7, 6,
			0, 4, 5, 0, 5, 1,
			3, 2, 6, 3, 6, 7,
			0, 3, 7, 0, 7, 4,
			1, 5, 6, 1, 6, 2,
		},
	}
}

func TestMeshIndex_BoundsMatchMesh(t *testing.T) {
	mi := newMeshIndex("cube", cubeTestMesh())
	if !mi.Bounds.Valid() {
		t.Fatalf("expected valid bounds")
	}
	if mi.Bounds.Min != [3]float32{0, 0, 0} || mi.Bounds.Max != [3]float32{1, 1, 1} {
		t.Fatalf("unexpected bounds %+v", mi.Bounds)
	}
}

func TestMeshIndex_EnsureBuiltIsIdempotent(t *testing.T) {
	mi := newMeshIndex("cube", cubeTestMesh())
	opts := spatial.DefaultBuildOptions()

	ok1 := mi.ensureBuilt(opts)
	tree1 := mi.tree
	ok2 := mi.ensureBuilt(opts)

	if ok1 != ok2 {
		t.Fatalf("ensureBuilt should be stable across calls")
	}
	if mi.tree != tree1 {
		t.Fatalf("ensureBuilt should not rebuild an already-built tree")
	}
}

func TestMeshIndex_TooSmallMeshNeverBuilds(t *testing.T) {
	mesh := &kernel.Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0},
		Indices:  []uint32{0, 1, 0},
	}
	mi := newMeshIndex("sliver", mesh)
	if mi.ensureBuilt(spatial.DefaultBuildOptions()) {
		t.Fatalf("expected a too-small mesh to fail ensureBuilt")
	}
	if mi.tree != nil {
		t.Fatalf("expected no tree to be built")
	}
}
