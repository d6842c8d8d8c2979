package main

import (
	"context"
	"log"

	"github.com/chazu/lignincad/pkg/kernel"
	"github.com/chazu/lignincad/pkg/kernel/sdfx"
	"github.com/chazu/lignincad/pkg/pick"
	"github.com/chazu/lignincad/pkg/scene"
	"github.com/chazu/lignincad/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to parts.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	kernel kernel.Kernel
	picker *pick.Picker
}

// PickRequest is the viewport ray the frontend sends for a click.
type PickRequest struct {
	Origin      [3]float64 `json:"origin"`
	Direction   [3]float64 `json:"direction"`
	MaxDistance float64    `json:"maxDistance"`
}

// PickResultData is the JSON-serializable pick result returned to the
// frontend. Hit is false and every other field is zero when nothing was
// under the ray.
type PickResultData struct {
	Hit      bool       `json:"hit"`
	PartName string     `json:"partName"`
	Point    [3]float32 `json:"point"`
	Normal   [3]float32 `json:"normal"`
	Ratio    float32    `json:"ratio"`
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// BuildErrorData is a JSON-serializable scene validation/build error for
// the frontend.
type BuildErrorData struct {
	Part    string `json:"part"`
	Message string `json:"message"`
}

// BuildResult is the full result returned to the frontend.
type BuildResult struct {
	Meshes []MeshData       `json:"meshes"`
	Errors []BuildErrorData `json:"errors"`
}

// NewApp creates a new App with the sdfx kernel and a fresh picker.
func NewApp() *App {
	return &App{
		kernel: sdfx.New(),
		picker: pick.NewPicker(),
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Build validates spec, realizes every part against the geometry kernel,
// and returns the resulting meshes + any errors. This is the primary
// binding called by the frontend editor each time the scene changes.
func (a *App) Build(spec scene.Spec) BuildResult {
	result := BuildResult{
		Meshes: []MeshData{},
		Errors: []BuildErrorData{},
	}

	// Step 1: structural validation before touching the kernel at all.
	if verrs := scene.Validate(spec); len(verrs) > 0 {
		for _, e := range verrs {
			result.Errors = append(result.Errors, BuildErrorData{Part: e.Part, Message: e.Message})
		}
		return result
	}

	// Step 2: realize every part's construction tree into a triangle mesh.
	meshes, err := tessellate.Tessellate(spec, a.kernel)
	if err != nil {
		log.Printf("Build: tessellate error: %v", err)
		result.Errors = append(result.Errors, BuildErrorData{Message: "build failed: " + err.Error()})
		return result
	}

	// Step 3: convert kernel meshes to the frontend MeshData format, and
	// index each one for picking.
	for i, m := range meshes {
		color := colorPalette[i%len(colorPalette)]
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			PartName: m.PartName,
			Color:    color,
		})
		a.picker.Index(m.PartName, m)
	}

	return result
}

// Pick casts a ray from the 3D viewport and returns the closest part
// surface it crosses, if any. It is the binding behind click-to-select in
// the frontend; the ray is in the same world space as the mesh data
// Build returned.
func (a *App) Pick(req PickRequest) PickResultData {
	result, ok := a.picker.Pick(req.Origin, req.Direction, req.MaxDistance)
	if !ok {
		return PickResultData{}
	}
	return PickResultData{
		Hit:      true,
		PartName: result.PartName,
		Point:    result.Intersection.IntersectionPoint,
		Normal:   result.Intersection.Normal,
		Ratio:    result.Intersection.Ratio,
	}
}
