// Package scene describes the parts of an assembly as trees of solid
// operations, the minimal vocabulary tessellate.Tessellate needs to drive a
// kernel.Kernel and produce one kernel.Mesh per part. It replaces a full
// design-graph/DSL layer with just primitives, booleans, and transforms.
package scene

// NodeKind identifies what a Node builds when it is realized against a
// kernel.Kernel.
type NodeKind int

const (
	NodeBox NodeKind = iota
	NodeCylinder
	NodeUnion
	NodeDifference
	NodeIntersection
	NodeTranslate
	NodeRotate
)

func (k NodeKind) String() string {
	switch k {
	case NodeBox:
		return "box"
	case NodeCylinder:
		return "cylinder"
	case NodeUnion:
		return "union"
	case NodeDifference:
		return "difference"
	case NodeIntersection:
		return "intersection"
	case NodeTranslate:
		return "translate"
	case NodeRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Node is one step in a part's solid-construction tree. Only the fields
// relevant to Kind are meaningful; see the Box/Cylinder/Union/Difference/
// Intersection/Translate/Rotate constructors below for the supported shapes.
type Node struct {
	Kind NodeKind

	// NodeBox: full extent along each axis, in mm.
	Size [3]float64

	// NodeCylinder.
	Height   float64
	Radius   float64
	Segments int

	// NodeTranslate: offset in mm.
	Offset [3]float64

	// NodeRotate: Euler angles in degrees.
	Rotation [3]float64

	// NodeUnion / NodeDifference / NodeIntersection take exactly two
	// children; NodeTranslate / NodeRotate take exactly one.
	Children []*Node
}

// Box returns a rectangular solid node with the given extents in mm.
func Box(x, y, z float64) *Node {
	return &Node{Kind: NodeBox, Size: [3]float64{x, y, z}}
}

// Cylinder returns a cylindrical solid node. segments <= 0 makes
// tessellate.Tessellate use its default segment count (32).
func Cylinder(height, radius float64, segments int) *Node {
	return &Node{Kind: NodeCylinder, Height: height, Radius: radius, Segments: segments}
}

// Union combines a and b.
func Union(a, b *Node) *Node {
	return &Node{Kind: NodeUnion, Children: []*Node{a, b}}
}

// Difference subtracts b from a.
func Difference(a, b *Node) *Node {
	return &Node{Kind: NodeDifference, Children: []*Node{a, b}}
}

// Intersection keeps only the overlap of a and b.
func Intersection(a, b *Node) *Node {
	return &Node{Kind: NodeIntersection, Children: []*Node{a, b}}
}

// Translate offsets n by (x, y, z) mm.
func Translate(n *Node, x, y, z float64) *Node {
	return &Node{Kind: NodeTranslate, Offset: [3]float64{x, y, z}, Children: []*Node{n}}
}

// Rotate rotates n by Euler angles in degrees.
func Rotate(n *Node, x, y, z float64) *Node {
	return &Node{Kind: NodeRotate, Rotation: [3]float64{x, y, z}, Children: []*Node{n}}
}

// Part names one solid-construction tree to tessellate and mesh.
type Part struct {
	Name string
	Root *Node
}

// Spec is a full scene: every named part to realize and mesh.
type Spec struct {
	Parts []Part
}

// AddPart appends a part to the spec and returns the spec for chaining.
func (s *Spec) AddPart(name string, root *Node) *Spec {
	s.Parts = append(s.Parts, Part{Name: name, Root: root})
	return s
}
