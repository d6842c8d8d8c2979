// Package tessellate realizes a scene.Spec against a geometry kernel and
// produces triangle meshes. One mesh is produced per part; a part with no
// construction tree (nil Root) is skipped.
package tessellate

import (
	"fmt"

	"github.com/chazu/lignincad/pkg/kernel"
	"github.com/chazu/lignincad/pkg/scene"
)

// defaultCylinderSegments is used when a scene.Node doesn't specify one.
const defaultCylinderSegments = 32

// Tessellate walks each part's construction tree and realizes it against k,
// bottom-up: primitives become kernel solids first, then booleans and
// transforms combine or reposition them on the way back up. The
// tessellator is read-only and never mutates spec.
func Tessellate(spec scene.Spec, k kernel.Kernel) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh

	for _, part := range spec.Parts {
		if part.Root == nil {
			continue
		}

		solid, err := buildSolid(k, part.Root)
		if err != nil {
			return nil, fmt.Errorf("tessellate: part %q: %w", part.Name, err)
		}

		mesh, err := k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: part %q: ToMesh failed: %w", part.Name, err)
		}
		mesh.PartName = part.Name

		meshes = append(meshes, mesh)
	}

	return meshes, nil
}

// buildSolid recursively realizes n against k. Booleans and transforms are
// applied to the kernel.Solid values their children already produced, so a
// transform sitting above a union repositions the whole union correctly
// rather than requiring the same offset to be threaded into each leaf.
func buildSolid(k kernel.Kernel, n *scene.Node) (kernel.Solid, error) {
	switch n.Kind {
	case scene.NodeBox:
		return k.Box(n.Size[0], n.Size[1], n.Size[2]), nil

	case scene.NodeCylinder:
		segments := n.Segments
		if segments <= 0 {
			segments = defaultCylinderSegments
		}
		return k.Cylinder(n.Height, n.Radius, segments), nil

	case scene.NodeUnion, scene.NodeDifference, scene.NodeIntersection:
		if len(n.Children) != 2 {
			return nil, fmt.Errorf("%s requires exactly 2 children, got %d", n.Kind, len(n.Children))
		}
		a, err := buildSolid(k, n.Children[0])
		if err != nil {
			return nil, err
		}
		b, err := buildSolid(k, n.Children[1])
		if err != nil {
			return nil, err
		}
		switch n.Kind {
		case scene.NodeUnion:
			return k.Union(a, b), nil
		case scene.NodeDifference:
			return k.Difference(a, b), nil
		default:
			return k.Intersection(a, b), nil
		}

	case scene.NodeTranslate:
		if len(n.Children) != 1 {
			return nil, fmt.Errorf("translate requires exactly 1 child, got %d", len(n.Children))
		}
		child, err := buildSolid(k, n.Children[0])
		if err != nil {
			return nil, err
		}
		return k.Translate(child, n.Offset[0], n.Offset[1], n.Offset[2]), nil

	case scene.NodeRotate:
		if len(n.Children) != 1 {
			return nil, fmt.Errorf("rotate requires exactly 1 child, got %d", len(n.Children))
		}
		child, err := buildSolid(k, n.Children[0])
		if err != nil {
			return nil, err
		}
		return k.Rotate(child, n.Rotation[0], n.Rotation[1], n.Rotation[2]), nil

	default:
		return nil, fmt.Errorf("unknown scene node kind: %v", n.Kind)
	}
}
