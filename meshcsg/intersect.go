package meshcsg

import "math"

// Tolerances of the intersection test. They are part of the contract:
// changing them changes behaviour on near-coplanar and near-degenerate
// input, so they are never exposed as parameters.
const (
	coplanarCosTolerance = 0.9999
	lineDirMinLength     = 1e-12
	cramerMinDet         = 1e-12
	onPlaneVertexEps     = 1e-10
	intervalOverlapEps   = 1e-10
	segmentMinLength     = 1e-8
)

type plane struct {
	n Vertex
	d float64
}

func planeOf(v0, v1, v2 Vertex) plane {
	n := VertexCross(VertexSub(v1, v0), VertexSub(v2, v0))
	return plane{n: n, d: -VertexDot(n, v0)}
}

func (p plane) signedDist(v Vertex) float64 {
	return VertexDot(p.n, v) + p.d
}

// allSameSign reports whether d0, d1, d2 are all strictly positive or
// all strictly negative.
func allSameSign(d0, d1, d2 float64) bool {
	if d0 > 0 && d1 > 0 && d2 > 0 {
		return true
	}
	if d0 < 0 && d1 < 0 && d2 < 0 {
		return true
	}
	return false
}

// IntersectTriangles computes the 3D segment in which triangles a and b
// intersect, implementing the Möller separating-axis test. It returns
// ok=false when the triangles do not intersect, or
// when the intersection is degenerate under the fixed tolerance ladder.
func IntersectTriangles(a, b Triangle) (Segment, bool) {
	seg, _, _, _, ok := intersectTrianglesDetailed(a, b)
	return seg, ok
}

// IntersectTrianglesDetailed is the detailed variant of
// IntersectTriangles: in addition to the segment, it returns the signed
// distances of each triangle's vertices to the other triangle's plane,
// and the segment's length. Its rejection logic is identical to
// IntersectTriangles.
func IntersectTrianglesDetailed(a, b Triangle) (distA, distB [3]float64, segLen float64, ok bool) {
	_, distA, distB, segLen, ok = intersectTrianglesDetailed(a, b)
	return
}

func intersectTrianglesDetailed(a, b Triangle) (seg Segment, distA, distB [3]float64, segLen float64, ok bool) {
	planeB := planeOf(b.V0, b.V1, b.V2)
	distA = [3]float64{planeB.signedDist(a.V0), planeB.signedDist(a.V1), planeB.signedDist(a.V2)}
	if allSameSign(distA[0], distA[1], distA[2]) {
		return Segment{}, distA, distB, 0, false
	}

	planeA := planeOf(a.V0, a.V1, a.V2)
	distB = [3]float64{planeA.signedDist(b.V0), planeA.signedDist(b.V1), planeA.signedDist(b.V2)}
	if allSameSign(distB[0], distB[1], distB[2]) {
		return Segment{}, distA, distB, 0, false
	}

	unitA, lenA := VertexNormalize(planeA.n, lineDirMinLength)
	unitB, lenB := VertexNormalize(planeB.n, lineDirMinLength)
	if lenA == 0 || lenB == 0 {
		return Segment{}, distA, distB, 0, false
	}
	if math.Abs(VertexDot(unitA, unitB)) > coplanarCosTolerance {
		// Near-coplanar: deliberately not handled as a face overlap.
		return Segment{}, distA, distB, 0, false
	}

	dir, dirLen := VertexNormalize(VertexCross(planeA.n, planeB.n), lineDirMinLength)
	if dirLen == 0 {
		return Segment{}, distA, distB, 0, false
	}

	ref, ok := linePoint(planeA, planeB, dir)
	if !ok {
		return Segment{}, distA, distB, 0, false
	}

	ivA, ok := triangleInterval(a, distA, ref, dir)
	if !ok {
		return Segment{}, distA, distB, 0, false
	}
	ivB, ok := triangleInterval(b, distB, ref, dir)
	if !ok {
		return Segment{}, distA, distB, 0, false
	}

	lo := math.Max(ivA.lo, ivB.lo)
	hi := math.Min(ivA.hi, ivB.hi)
	if hi-lo < intervalOverlapEps {
		return Segment{}, distA, distB, 0, false
	}

	p0 := VertexAdd(ref, VertexScale(dir, lo))
	p1 := VertexAdd(ref, VertexScale(dir, hi))
	segLen = VertexDist(p0, p1)
	if segLen < segmentMinLength {
		return Segment{}, distA, distB, 0, false
	}

	return Segment{P0: p0, P1: p1}, distA, distB, segLen, true
}

// linePoint finds a point on the line of intersection of planeA and
// planeB, given its (already normalized) direction: the dominant
// component of dir is held at zero and the remaining 2x2 system is
// solved by Cramer's rule.
func linePoint(planeA, planeB plane, dir Vertex) (Vertex, bool) {
	ax, ay, az := math.Abs(dir.X), math.Abs(dir.Y), math.Abs(dir.Z)
	i, j, k := 0, 1, 2 // solve for X,Y, hold Z=0
	switch {
	case ax >= ay && ax >= az:
		i, j, k = 1, 2, 0 // hold X=0, solve Y,Z
	case ay >= ax && ay >= az:
		i, j, k = 0, 2, 1 // hold Y=0, solve X,Z
	}

	nA := [3]float64{planeA.n.X, planeA.n.Y, planeA.n.Z}
	nB := [3]float64{planeB.n.X, planeB.n.Y, planeB.n.Z}

	det := nA[i]*nB[j] - nA[j]*nB[i]
	if math.Abs(det) < cramerMinDet {
		return Vertex{}, false
	}

	dA, dB := -planeA.d, -planeB.d
	xi := (dA*nB[j] - dB*nA[j]) / det
	xj := (nA[i]*dB - nB[i]*dA) / det

	var comp [3]float64
	comp[i], comp[j], comp[k] = xi, xj, 0
	return Vertex{comp[0], comp[1], comp[2]}, true
}

type interval struct {
	lo, hi float64
}

// triangleInterval computes the parametric interval, along the line
// (ref, dir), in which t's interior crosses the opposing plane: for
// each edge whose endpoints have opposite sign distances, the crossing
// point's projection onto the line is inserted; any vertex with a
// near-zero distance is inserted directly. Fewer than two values means
// no interval.
func triangleInterval(t Triangle, dist [3]float64, ref, dir Vertex) (interval, bool) {
	verts := [3]Vertex{t.V0, t.V1, t.V2}
	var params []float64

	project := func(p Vertex) float64 {
		return VertexDot(VertexSub(p, ref), dir)
	}

	for e := 0; e < 3; e++ {
		n := (e + 1) % 3
		d0, d1 := dist[e], dist[n]
		if math.Abs(d0) < onPlaneVertexEps {
			params = append(params, project(verts[e]))
		}
		if d0*d1 < 0 {
			s := d0 / (d0 - d1)
			cross := VertexLerp(verts[e], verts[n], s)
			params = append(params, project(cross))
		}
	}
	if len(params) < 2 {
		return interval{}, false
	}
	lo, hi := params[0], params[0]
	for _, p := range params[1:] {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	return interval{lo: lo, hi: hi}, true
}
