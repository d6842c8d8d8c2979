// Package spatial implements a k-d tree spatial index over indexed
// triangle meshes. It supports building a tree from a vertex array and a
// stream of triangle vertex-index triples, and intersecting a finite line
// segment against the mesh with the tree accelerating triangle rejection.
//
// The tree is built once and is immutable afterwards: there is no support
// for inserting or removing triangles after Build returns. Arithmetic is
// single-precision; leaf bounds are inflated by a small epsilon to absorb
// axis-aligned flat triangles.
package spatial
