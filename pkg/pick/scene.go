package pick

import (
	"github.com/chazu/lignincad/pkg/kernel"
	"github.com/chazu/lignincad/pkg/spatial"
	"github.com/dhconnelly/rtreego"
)

// rtreeDimensions, rtreeMinBranch and rtreeMaxBranch are the R-tree's
// dimension count and branching limits. The scene holds one entry per part, not per
// triangle, so branch factors tuned for a handful to a few hundred parts
// are plenty.
const (
	rtreeDimensions = 3
	rtreeMinBranch  = 4
	rtreeMaxBranch  = 16
)

// boundsEpsilon pads a part's broad-phase rectangle so a perfectly flat
// part (zero-thickness sheet, single-plane sketch) still has a positive
// volume for rtreego to index.
const boundsEpsilon = 1e-6

// meshEntry adapts a MeshIndex to rtreego.Spatial so it can live in the
// scene's R-tree.
type meshEntry struct {
	index *MeshIndex
}

func (e *meshEntry) Bounds() rtreego.Rect {
	bb := e.index.Bounds
	point := rtreego.Point{float64(bb.Min[0]), float64(bb.Min[1]), float64(bb.Min[2])}
	lengths := make([]float64, rtreeDimensions)
	for a := 0; a < rtreeDimensions; a++ {
		l := float64(bb.Max[a] - bb.Min[a])
		if l <= 0 {
			l = boundsEpsilon
		}
		lengths[a] = l
	}
	rect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		// Only NewRect's own length validation can fail here, and
		// every length above is clamped to at least boundsEpsilon.
		panic(err)
	}
	return rect
}

// PickResult reports where a Pick call found the closest surface hit.
type PickResult struct {
	PartName     string
	Intersection spatial.Intersection
}

// Picker is a scene-level picking facade: an R-tree broad phase over
// per-part bounding boxes, backed by one lazily-built spatial.Tree per
// part for the precise triangle test.
type Picker struct {
	rtree *rtreego.Rtree
	parts map[string]*meshEntry
	opts  spatial.BuildOptions
}

// NewPicker returns an empty Picker using the default build options for
// any tree it builds.
func NewPicker() *Picker {
	return &Picker{
		rtree: rtreego.NewTree(rtreeDimensions, rtreeMinBranch, rtreeMaxBranch),
		parts: make(map[string]*meshEntry),
		opts:  spatial.DefaultBuildOptions(),
	}
}

// Index registers (or re-registers) a part's mesh with the scene. Calling
// it again for a part name that's already indexed replaces the previous
// mesh and drops its spatial tree, so a re-tessellated part is picked
// against its current geometry rather than a stale one.
func (p *Picker) Index(partName string, mesh *kernel.Mesh) {
	if mesh == nil || mesh.IsEmpty() {
		return
	}
	if existing, ok := p.parts[partName]; ok {
		p.rtree.Delete(existing)
	}

	entry := &meshEntry{index: newMeshIndex(partName, mesh)}
	p.parts[partName] = entry
	p.rtree.Insert(entry)
}

// Pick casts the ray origin+t*dir, t in [0, maxDistance], against every
// part whose bounding box the ray's own bounding box overlaps, and
// returns the closest triangle hit across all of them. It reports false
// if no part's mesh was crossed.
func (p *Picker) Pick(origin, dir [3]float64, maxDistance float64) (*PickResult, bool) {
	end := [3]float64{
		origin[0] + dir[0]*maxDistance,
		origin[1] + dir[1]*maxDistance,
		origin[2] + dir[2]*maxDistance,
	}

	query, err := segmentBoundsRect(origin, end)
	if err != nil {
		return nil, false
	}

	start32 := [3]float32{float32(origin[0]), float32(origin[1]), float32(origin[2])}
	end32 := [3]float32{float32(end[0]), float32(end[1]), float32(end[2])}

	var best *PickResult
	for _, candidate := range p.rtree.SearchIntersect(query) {
		entry, ok := candidate.(*meshEntry)
		if !ok {
			continue
		}
		if !entry.index.ensureBuilt(p.opts) {
			continue
		}

		sink := spatial.NewIntersectionSet()
		entry.index.tree.Intersect(start32, end32, sink)

		for _, hit := range sink.Items() {
			if best == nil || hit.Ratio < best.Intersection.Ratio {
				best = &PickResult{PartName: entry.index.PartName, Intersection: hit}
			}
		}
	}

	return best, best != nil
}

// segmentBoundsRect returns the axis-aligned bounding rectangle of the
// segment [a,b], padded by boundsEpsilon on every axis so an
// axis-aligned ray (zero extent on two axes) still yields a valid
// positive-volume rtreego.Rect.
func segmentBoundsRect(a, b [3]float64) (rtreego.Rect, error) {
	min := [3]float64{}
	max := [3]float64{}
	for i := 0; i < 3; i++ {
		if a[i] <= b[i] {
			min[i], max[i] = a[i], b[i]
		} else {
			min[i], max[i] = b[i], a[i]
		}
	}

	point := rtreego.Point{min[0] - boundsEpsilon, min[1] - boundsEpsilon, min[2] - boundsEpsilon}
	lengths := []float64{
		max[0] - min[0] + 2*boundsEpsilon,
		max[1] - min[1] + 2*boundsEpsilon,
		max[2] - min[2] + 2*boundsEpsilon,
	}
	return rtreego.NewRect(point, lengths)
}
