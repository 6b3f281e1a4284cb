package meshcsg

import (
	"math"

	assert "github.com/arl/assertgo"

	"github.com/arl/go-meshcsg/meshrepair"
)

// minFrameVectorLen is the minimum length an edge or normal must have to
// seed a triangle's local 2D frame; shorter than this and the triangle
// is treated as already degenerate.
const minFrameVectorLen = 1e-12

// steinerWeldEps merges Steiner points (crossing-segment endpoints)
// that land within this distance of one another, or of one of the
// triangle's own corners, before triangulating.
const steinerWeldEps = 1e-9

// steinerBaryEps is the barycentric slack allowed to a Steiner point
// that fell slightly outside its host triangle due to float error; any
// endpoint further out is discarded before triangulation.
const steinerBaryEps = -1e-4

// minAreaRatio rejects sub-triangles whose area, relative to the parent
// triangle's own area, falls below this ratio: slivers
// produced by near-coincident Steiner points.
const minAreaRatio = 1e-8

// outsideBaryEps is the barycentric slack used when deciding whether a
// split sub-triangle's centroid still lies within the parent triangle.
const outsideBaryEps = -1e-6

// frame is a local orthonormal 2D basis embedded in a triangle's plane.
type frame struct {
	origin  Vertex
	u, v, n Vertex
}

// triangleFrame builds the local frame for t: origin at V0, u along the
// first edge, n the triangle normal, v completing the right-handed
// basis. ok is false when the triangle is degenerate under
// minFrameVectorLen.
func triangleFrame(t Triangle) (frame, bool) {
	u, ulen := VertexNormalize(VertexSub(t.V1, t.V0), minFrameVectorLen)
	if ulen == 0 {
		return frame{}, false
	}
	rawN := VertexCross(u, VertexSub(t.V2, t.V0))
	n, nlen := VertexNormalize(rawN, minFrameVectorLen)
	if nlen == 0 {
		return frame{}, false
	}
	v := VertexCross(n, u)
	assert.True(math.Abs(VertexDot(u, v)) < 1e-6, "triangle frame basis should be orthogonal, got u.v=%g", VertexDot(u, v))
	return frame{origin: t.V0, u: u, v: v, n: n}, true
}

func (f frame) to2D(p Vertex) meshrepair.Vec2 {
	d := VertexSub(p, f.origin)
	return meshrepair.Vec2{X: VertexDot(d, f.u), Y: VertexDot(d, f.v)}
}

func (f frame) to3D(p meshrepair.Vec2) Vertex {
	return VertexAdd(f.origin, VertexAdd(VertexScale(f.u, p.X), VertexScale(f.v, p.Y)))
}

// SplitStraddlingAndClassify re-triangulates t around the intersection
// segments crossing it, and labels each resulting sub-triangle
// Inside/Outside against opposing: the splitter and
// the sub-triangle classifier are run back to back here since neither is
// useful without the other once a triangle is known to straddle the
// opposing surface.
//
// segs are the tagged segments whose crossed triangle is t; their 3D
// endpoints become Steiner points and their connecting chords become
// constrained edges of the local re-triangulation. Endpoints that fall
// outside t beyond steinerBaryEps are discarded, and sub-triangles
// whose centroid escapes t or whose area is negligible relative to t's
// own are dropped. If splitting fails, or filtering leaves nothing, t
// itself is returned unchanged, classified as a whole.
//
// known carries already-established vertex classifications that
// classifySubTriangle tries before resorting to a ray cast; curve holds
// the keys of vertices lying on the intersection curve, which never
// vote. Both may be nil.
func SplitStraddlingAndClassify(t Triangle, segs []TaggedSegment, known map[vkey]Classification, curve map[vkey]bool, opposing Soup, opposingGrids Grids3) []ClassifiedTriangle {
	whole := func() []ClassifiedTriangle {
		return []ClassifiedTriangle{{Triangle: t, Class: classifySubTriangle(t, known, curve, opposing, opposingGrids)}}
	}

	fr, ok := triangleFrame(t)
	if !ok {
		return whole()
	}

	pts := []meshrepair.Vec2{fr.to2D(t.V0), fr.to2D(t.V1), fr.to2D(t.V2)}
	if _, _, _, ok := bary2D(pts[0], pts[0], pts[1], pts[2]); !ok {
		return whole()
	}

	var constraints [][2]int
	for _, s := range segs {
		i0 := insertSteiner(&pts, fr.to2D(s.P0))
		i1 := insertSteiner(&pts, fr.to2D(s.P1))
		if i0 >= 0 && i1 >= 0 && i0 != i1 {
			constraints = append(constraints, [2]int{i0, i1})
		}
	}

	tris := meshrepair.Delaunay(pts, constraints)
	parentArea := triangle2DArea(pts[0], pts[1], pts[2])

	var out []ClassifiedTriangle
	for _, it := range tris {
		a, b, c := pts[it[0]], pts[it[1]], pts[it[2]]
		if !insideParent(a, b, c, pts[0], pts[1], pts[2]) {
			continue
		}
		area := triangle2DArea(a, b, c)
		if parentArea > 0 && area/parentArea < minAreaRatio {
			continue
		}

		sub := Triangle{V0: fr.to3D(a), V1: fr.to3D(b), V2: fr.to3D(c)}
		class := classifySubTriangle(sub, known, curve, opposing, opposingGrids)
		out = append(out, ClassifiedTriangle{Triangle: sub, Class: class})
	}
	if len(out) == 0 {
		return whole()
	}
	return out
}

// ClassifiedTriangle pairs a triangle with its inside/outside verdict.
type ClassifiedTriangle struct {
	Triangle
	Class Classification
}

// insertSteiner adds Steiner point p to pts, returning its index. An
// existing point within steinerWeldEps (one of the triangle's corners,
// or an endpoint shared by two segments) is reused instead, and a point
// lying outside the parent triangle beyond steinerBaryEps is rejected
// with index -1.
func insertSteiner(pts *[]meshrepair.Vec2, p meshrepair.Vec2) int {
	for i, q := range *pts {
		dx, dy := p.X-q.X, p.Y-q.Y
		if dx*dx+dy*dy < steinerWeldEps*steinerWeldEps {
			return i
		}
	}
	w0, w1, w2, ok := bary2D(p, (*pts)[0], (*pts)[1], (*pts)[2])
	if !ok || w0 < steinerBaryEps || w1 < steinerBaryEps || w2 < steinerBaryEps {
		return -1
	}
	*pts = append(*pts, p)
	return len(*pts) - 1
}

// bary2D computes the barycentric coordinates of p within triangle
// (p0, p1, p2). ok is false when the triangle's 2D determinant is too
// small to invert.
func bary2D(p, p0, p1, p2 meshrepair.Vec2) (w0, w1, w2 float64, ok bool) {
	det := (p1.Y-p2.Y)*(p0.X-p2.X) + (p2.X-p1.X)*(p0.Y-p2.Y)
	if math.Abs(det) < 1e-12 {
		return 0, 0, 0, false
	}
	w0 = ((p1.Y-p2.Y)*(p.X-p2.X) + (p2.X-p1.X)*(p.Y-p2.Y)) / det
	w1 = ((p2.Y-p0.Y)*(p.X-p2.X) + (p0.X-p2.X)*(p.Y-p2.Y)) / det
	w2 = 1 - w0 - w1
	return w0, w1, w2, true
}

func triangle2DArea(a, b, c meshrepair.Vec2) float64 {
	area := ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
	if area < 0 {
		return -area
	}
	return area
}

// insideParent reports whether triangle (a,b,c)'s centroid lies within
// the parent triangle (p0,p1,p2), tolerating a small outward slack.
func insideParent(a, b, c, p0, p1, p2 meshrepair.Vec2) bool {
	centroid := meshrepair.Vec2{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
	w0, w1, w2, ok := bary2D(centroid, p0, p1, p2)
	if !ok {
		return false
	}
	return w0 >= outsideBaryEps && w1 >= outsideBaryEps && w2 >= outsideBaryEps
}
