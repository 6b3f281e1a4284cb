// Package meshcsg implements Boolean set operations (union, intersection,
// difference) on triangle meshes, including open (non-watertight)
// surfaces such as terrain patches and partial shells.
package meshcsg

import (
	"fmt"
	"math"
)

// Vertex is a point in 3D space, or a free vector, depending on context.
// There is no identity beyond position: two vertices are "the same" when
// their coordinates match within tolerance, or when their fixed-decimal
// keys agree.
type Vertex struct {
	X, Y, Z float64
}

// String returns a human-readable representation of v.
func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// VertexAdd returns v1 + v2.
func VertexAdd(v1, v2 Vertex) Vertex {
	return Vertex{v1.X + v2.X, v1.Y + v2.Y, v1.Z + v2.Z}
}

// VertexSub returns v1 - v2.
func VertexSub(v1, v2 Vertex) Vertex {
	return Vertex{v1.X - v2.X, v1.Y - v2.Y, v1.Z - v2.Z}
}

// VertexScale returns v scaled by s.
func VertexScale(v Vertex, s float64) Vertex {
	return Vertex{v.X * s, v.Y * s, v.Z * s}
}

// VertexDot returns the dot product of v1 and v2.
func VertexDot(v1, v2 Vertex) float64 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
}

// VertexCross returns the cross product v1 x v2.
func VertexCross(v1, v2 Vertex) Vertex {
	return Vertex{
		v1.Y*v2.Z - v1.Z*v2.Y,
		v1.Z*v2.X - v1.X*v2.Z,
		v1.X*v2.Y - v1.Y*v2.X,
	}
}

// VertexLenSqr returns the square of the scalar length of v.
func VertexLenSqr(v Vertex) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// VertexLen returns the scalar length of v.
func VertexLen(v Vertex) float64 {
	return math.Sqrt(VertexLenSqr(v))
}

// VertexNormalize returns v scaled to unit length, and its original
// length. If v is near the zero vector (length below eps), the zero
// vector is returned along with a length of 0.
func VertexNormalize(v Vertex, eps float64) (Vertex, float64) {
	l := VertexLen(v)
	if l < eps {
		return Vertex{}, 0
	}
	return VertexScale(v, 1/l), l
}

// VertexDist returns the distance between two points.
func VertexDist(v1, v2 Vertex) float64 {
	return VertexLen(VertexSub(v2, v1))
}

// VertexLerp returns the linear interpolation between v1 and v2 at
// parameter t (0 yields v1, 1 yields v2).
func VertexLerp(v1, v2 Vertex, t float64) Vertex {
	return Vertex{
		v1.X + (v2.X-v1.X)*t,
		v1.Y + (v2.Y-v1.Y)*t,
		v1.Z + (v2.Z-v1.Z)*t,
	}
}

func fmin(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vertex
}

// TriangleAABB returns the bounding box of a triangle's three vertices.
func TriangleAABB(v0, v1, v2 Vertex) AABB {
	bb := AABB{Min: v0, Max: v0}
	bb.extend(v1)
	bb.extend(v2)
	return bb
}

func (bb *AABB) extend(v Vertex) {
	bb.Min.X = fmin(bb.Min.X, v.X)
	bb.Min.Y = fmin(bb.Min.Y, v.Y)
	bb.Min.Z = fmin(bb.Min.Z, v.Z)
	bb.Max.X = fmax(bb.Max.X, v.X)
	bb.Max.Y = fmax(bb.Max.Y, v.Y)
	bb.Max.Z = fmax(bb.Max.Z, v.Z)
}

// Overlaps reports whether bb and other overlap on every axis.
func (bb AABB) Overlaps(other AABB) bool {
	if bb.Min.X > other.Max.X || bb.Max.X < other.Min.X {
		return false
	}
	if bb.Min.Y > other.Max.Y || bb.Max.Y < other.Min.Y {
		return false
	}
	if bb.Min.Z > other.Max.Z || bb.Max.Z < other.Min.Z {
		return false
	}
	return true
}

// Union returns the smallest AABB containing both bb and other.
func (bb AABB) Union(other AABB) AABB {
	r := bb
	r.extend(other.Min)
	r.extend(other.Max)
	return r
}

// keyPrecision is the fixed-decimal precision (six places) used to
// derive topological identity for vertices and edges. It is distinct
// from, and coarser than, any of the geometric tolerances used by the
// intersector or splitter.
const keyPrecision = 1e6

// vkey is the fixed-decimal quantization of a vertex, used as a map key
// to establish topological identity (edge sharing, crossed-set
// membership) regardless of tiny floating point jitter.
type vkey struct {
	x, y, z int64
}

func quantize(f float64) int64 {
	return int64(math.Round(f * keyPrecision))
}

// vertexKey returns the topological identity key of v.
func vertexKey(v Vertex) vkey {
	return vkey{quantize(v.X), quantize(v.Y), quantize(v.Z)}
}

// ekey is the canonical, order-independent key of an undirected edge.
type ekey struct {
	a, b vkey
}

// edgeKey returns the canonical key of the undirected edge (a, b): it is
// the same regardless of which endpoint is passed first.
func edgeKey(a, b vkey) ekey {
	if less(a, b) {
		return ekey{a, b}
	}
	return ekey{b, a}
}

func less(a, b vkey) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	if a.y != b.y {
		return a.y < b.y
	}
	return a.z < b.z
}
