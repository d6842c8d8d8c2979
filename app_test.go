package main

import (
	"testing"

	"github.com/chazu/lignincad/pkg/scene"
)

// TestE2EBoxExample exercises the full pipeline: scene spec -> validate ->
// tessellate -> meshes. This is the same path the Wails Build binding
// takes, but without the Wails runtime.
func TestE2EBoxExample(t *testing.T) {
	app := NewApp()

	var spec scene.Spec
	spec.AddPart("front", scene.Box(600, 18, 300))
	spec.AddPart("back", scene.Translate(scene.Box(600, 18, 300), 0, 282, 0))
	spec.AddPart("left", scene.Translate(scene.Box(18, 300, 300), 0, 0, 0))
	spec.AddPart("right", scene.Translate(scene.Box(18, 300, 300), 582, 0, 0))
	spec.AddPart("bottom", scene.Translate(scene.Box(600, 300, 18), 0, 0, 0))

	result := app.Build(spec)

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("build error (part %q): %s", e.Part, e.Message)
		}
		t.FailNow()
	}

	if len(result.Meshes) != 5 {
		t.Fatalf("expected 5 meshes, got %d", len(result.Meshes))
	}

	expectedParts := map[string]bool{
		"front":  false,
		"back":   false,
		"left":   false,
		"right":  false,
		"bottom": false,
	}

	for _, m := range result.Meshes {
		if _, ok := expectedParts[m.PartName]; !ok {
			t.Errorf("unexpected part name: %q", m.PartName)
			continue
		}
		expectedParts[m.PartName] = true

		if len(m.Vertices) == 0 {
			t.Errorf("part %q: no vertices", m.PartName)
		}
		if len(m.Normals) == 0 {
			t.Errorf("part %q: no normals", m.PartName)
		}
		if len(m.Indices) == 0 {
			t.Errorf("part %q: no indices", m.PartName)
		}
		if m.Color == "" {
			t.Errorf("part %q: no color assigned", m.PartName)
		}
	}

	for name, found := range expectedParts {
		if !found {
			t.Errorf("missing mesh for part %q", name)
		}
	}
}

// TestE2EEmptySpec ensures the pipeline handles an empty scene gracefully.
func TestE2EEmptySpec(t *testing.T) {
	app := NewApp()
	result := app.Build(scene.Spec{})

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors for empty spec: %v", result.Errors)
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes for empty spec, got %d", len(result.Meshes))
	}
}

// TestE2EInvalidSpecReportsErrorsNotMeshes ensures validation failures are
// reported as build errors rather than reaching the kernel.
func TestE2EInvalidSpecReportsErrorsNotMeshes(t *testing.T) {
	app := NewApp()

	var spec scene.Spec
	spec.AddPart("shelf", scene.Box(0, 300, 18))

	result := app.Build(spec)

	if len(result.Errors) == 0 {
		t.Fatal("expected a build error for a non-positive box dimension")
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes on error, got %d", len(result.Meshes))
	}
}

// TestE2EPickHitsBuiltPart ensures a ray through a freshly built part's
// bounding box comes back as a hit on that part.
func TestE2EPickHitsBuiltPart(t *testing.T) {
	app := NewApp()

	var spec scene.Spec
	spec.AddPart("shelf", scene.Box(600, 300, 18))
	result := app.Build(spec)
	if len(result.Errors) > 0 || len(result.Meshes) != 1 {
		t.Fatalf("expected a single clean mesh, got %+v", result)
	}

	mesh := result.Meshes[0]
	var minV, maxV [3]float32
	minV = [3]float32{mesh.Vertices[0], mesh.Vertices[1], mesh.Vertices[2]}
	maxV = minV
	for i := 0; i+2 < len(mesh.Vertices); i += 3 {
		for a := 0; a < 3; a++ {
			v := mesh.Vertices[i+a]
			if v < minV[a] {
				minV[a] = v
			}
			if v > maxV[a] {
				maxV[a] = v
			}
		}
	}
	center := [3]float64{
		float64(minV[0]+maxV[0]) / 2,
		float64(minV[1]+maxV[1]) / 2,
		float64(minV[2]+maxV[2]) / 2,
	}
	span := float64(maxV[2]-minV[2]) + 10

	pick := app.Pick(PickRequest{
		Origin:      [3]float64{center[0], center[1], center[2] - span},
		Direction:   [3]float64{0, 0, 1},
		MaxDistance: 2 * span,
	})
	if !pick.Hit {
		t.Fatalf("expected a hit on the built part, got %+v", pick)
	}
	if pick.PartName != "shelf" {
		t.Errorf("expected part name 'shelf', got %q", pick.PartName)
	}
}

// TestE2ESingleBoard ensures a minimal single-part spec renders one mesh.
func TestE2ESingleBoard(t *testing.T) {
	app := NewApp()

	var spec scene.Spec
	spec.AddPart("shelf", scene.Box(600, 300, 18))
	result := app.Build(spec)

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("build error: %s", e.Message)
		}
		t.FailNow()
	}
	if len(result.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(result.Meshes))
	}
	if result.Meshes[0].PartName != "shelf" {
		t.Errorf("expected part name 'shelf', got %q", result.Meshes[0].PartName)
	}
}
