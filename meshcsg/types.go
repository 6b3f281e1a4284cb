package meshcsg

// Triangle is three vertices in winding order. Triangles carry no shared
// identity with their neighbours; two triangles sharing an edge store
// independent copies of its endpoints.
type Triangle struct {
	V0, V1, V2 Vertex
}

// AABB returns the triangle's axis-aligned bounding box.
func (t Triangle) AABB() AABB {
	return TriangleAABB(t.V0, t.V1, t.V2)
}

// Centroid returns the triangle's centroid.
func (t Triangle) Centroid() Vertex {
	return VertexScale(VertexAdd(VertexAdd(t.V0, t.V1), t.V2), 1.0/3.0)
}

// Normal returns the triangle's (non-normalized) normal vector, the cross
// product of its two leading edges.
func (t Triangle) Normal() Vertex {
	return VertexCross(VertexSub(t.V1, t.V0), VertexSub(t.V2, t.V0))
}

// Degenerate reports whether the triangle has fewer than three distinct
// vertices (under the topological key) or near-zero area.
func (t Triangle) Degenerate(areaEps float64) bool {
	k0, k1, k2 := vertexKey(t.V0), vertexKey(t.V1), vertexKey(t.V2)
	if k0 == k1 || k1 == k2 || k0 == k2 {
		return true
	}
	return VertexLenSqr(t.Normal()) < areaEps*areaEps
}

// flip returns a copy of t with v1 and v2 swapped, reversing its winding.
func (t Triangle) flip() Triangle {
	return Triangle{t.V0, t.V2, t.V1}
}

// Soup is an ordered sequence of triangles. Order is meaningful only as a
// stable index used to tag intersections and classifications; it carries
// no other semantics.
type Soup []Triangle

// AABB returns the bounding box of the whole soup, or the zero AABB if
// the soup is empty.
func (s Soup) AABB() AABB {
	if len(s) == 0 {
		return AABB{}
	}
	bb := s[0].AABB()
	for _, t := range s[1:] {
		bb = bb.Union(t.AABB())
	}
	return bb
}

// avgEdgeSampleSize bounds how many leading triangles are sampled when
// estimating a soup's average edge length.
const avgEdgeSampleSize = 100

// avgEdge returns the mean edge length over the first avgEdgeSampleSize
// triangles of s, or 1.0 if s is empty.
func avgEdge(s Soup) float64 {
	if len(s) == 0 {
		return 1.0
	}
	n := len(s)
	if n > avgEdgeSampleSize {
		n = avgEdgeSampleSize
	}
	var sum float64
	var count int
	for _, t := range s[:n] {
		sum += VertexDist(t.V0, t.V1)
		sum += VertexDist(t.V1, t.V2)
		sum += VertexDist(t.V2, t.V0)
		count += 3
	}
	if count == 0 {
		return 1.0
	}
	return sum / float64(count)
}

// gridCellSize derives the uniform cell size used for every spatial grid
// built over s: twice the average edge length, floored at 0.1.
func gridCellSize(s Soup) float64 {
	return fmax(2*avgEdge(s), 0.1)
}

// IndexedMesh is a unique-vertex pool plus triangles referencing pool
// positions: the result of welding a soup under a tolerance.
type IndexedMesh struct {
	Points    []Vertex
	Triangles [][3]int
}

// Segment is the 3D intersection of two triangles.
type Segment struct {
	P0, P1 Vertex
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return VertexDist(s.P0, s.P1)
}

// TaggedSegment is a Segment carrying the indices of its two source
// triangles, one in each of the two soups being intersected.
type TaggedSegment struct {
	Segment
	IdxA, IdxB int
}

// Classification is the inside/outside verdict for a triangle or point.
type Classification int8

const (
	// Unclassified means no verdict has been produced yet.
	Unclassified Classification = 0
	// Inside means the triangle or point lies inside the solid bounded
	// by the opposing mesh.
	Inside Classification = 1
	// Outside means the triangle or point lies outside.
	Outside Classification = -1
)

// Projection names one of the three coordinate planes a spatial grid or
// point classifier axis can be built against.
type Projection int

const (
	// ProjectionXY projects onto the X/Y plane (ray axis Z).
	ProjectionXY Projection = iota
	// ProjectionYZ projects onto the Y/Z plane (ray axis X).
	ProjectionYZ
	// ProjectionXZ projects onto the X/Z plane (ray axis Y).
	ProjectionXZ
)

// project2D returns the two in-plane coordinates of v for the given
// projection, and the coordinate along the third (ray) axis.
func project2D(v Vertex, proj Projection) (a, b, ray float64) {
	switch proj {
	case ProjectionXY:
		return v.X, v.Y, v.Z
	case ProjectionYZ:
		return v.Y, v.Z, v.X
	default: // ProjectionXZ
		return v.X, v.Z, v.Y
	}
}
