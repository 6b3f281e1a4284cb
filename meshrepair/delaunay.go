package meshrepair

import "math"

// Delaunay triangulates pts (a local, already-planar 2D point set) and
// then forces every edge named in constraints to appear in the result,
// recovering it by a sequence of diagonal flips when the unconstrained
// triangulation does not already contain it.
//
// pts must contain at least 3 points. constraints pairs index into pts
// and are assumed to not cross one another.
func Delaunay(pts []Vec2, constraints [][2]int) []IndexTriangle {
	if len(pts) < 3 {
		return nil
	}

	tris := bowyerWatson(pts)
	for _, c := range constraints {
		tris = recoverEdge(pts, tris, c[0], c[1])
	}
	return tris
}

// superTriangleMargin multiplies the point set's bounding extent to size
// the temporary super-triangle used to seed incremental insertion.
const superTriangleMargin = 20

func bowyerWatson(pts []Vec2) []IndexTriangle {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	d := math.Max(dx, dy)
	if d <= 0 {
		d = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	// Indices len(pts), len(pts)+1, len(pts)+2 are the super-triangle's
	// own vertices, appended to a working copy of pts and stripped out
	// of the final result below.
	work := make([]Vec2, len(pts), len(pts)+3)
	copy(work, pts)
	work = append(work,
		Vec2{midX - superTriangleMargin*d, midY - superTriangleMargin*d},
		Vec2{midX + superTriangleMargin*d, midY - superTriangleMargin*d},
		Vec2{midX, midY + superTriangleMargin*d},
	)
	superA, superB, superC := len(pts), len(pts)+1, len(pts)+2

	tris := []IndexTriangle{{superA, superB, superC}}

	for i := range pts {
		tris = insertPoint(work, tris, i)
	}

	out := tris[:0]
	for _, t := range tris {
		if t[0] == superA || t[0] == superB || t[0] == superC ||
			t[1] == superA || t[1] == superB || t[1] == superC ||
			t[2] == superA || t[2] == superB || t[2] == superC {
			continue
		}
		out = append(out, t)
	}
	return out
}

// insertPoint adds point p (an index into pts) to the triangulation by
// removing every triangle whose circumcircle contains it and
// retriangulating the resulting star-shaped cavity fan-wise from p.
func insertPoint(pts []Vec2, tris []IndexTriangle, p int) []IndexTriangle {
	var bad []IndexTriangle
	var kept []IndexTriangle
	for _, t := range tris {
		if inCircumcircle(pts[t[0]], pts[t[1]], pts[t[2]], pts[p]) {
			bad = append(bad, t)
		} else {
			kept = append(kept, t)
		}
	}

	boundary := cavityBoundary(bad)
	for _, e := range boundary {
		kept = append(kept, IndexTriangle{e[0], e[1], p})
	}
	return kept
}

// cavityBoundary returns the edges of bad that are not shared by two
// triangles of bad: the polygon boundary of the cavity they leave
// behind.
func cavityBoundary(bad []IndexTriangle) [][2]int {
	count := make(map[[2]int]int)
	order := make(map[[2]int][2]int)
	addEdge := func(a, b int) {
		k := [2]int{a, b}
		if a > b {
			k = [2]int{b, a}
		}
		count[k]++
		order[k] = [2]int{a, b}
	}
	for _, t := range bad {
		addEdge(t[0], t[1])
		addEdge(t[1], t[2])
		addEdge(t[2], t[0])
	}
	var boundary [][2]int
	for k, n := range count {
		if n == 1 {
			e := order[k]
			boundary = append(boundary, [2]int{e[0], e[1]})
		}
	}
	return boundary
}

// inCircumcircle reports whether d lies strictly inside the circumcircle
// of triangle (a, b, c), using the standard determinant test. The
// triangle is assumed counter-clockwise; a clockwise triangle flips the
// test's sign, so callers that cannot guarantee orientation should check
// both.
func inCircumcircle(a, b, c, d Vec2) bool {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	detA := ax*ax + ay*ay
	detB := bx*bx + by*by
	detC := cx*cx + cy*cy

	det := ax*(by*detC-detB*cy) - ay*(bx*detC-detB*cx) + detA*(bx*cy-by*cx)

	// Orient the triangle so the test is insensitive to winding.
	orient := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if orient < 0 {
		det = -det
	}
	return det > 1e-12
}

// recoverEdge forces the undirected edge (i, j) to appear in tris,
// repeatedly flipping the diagonal of any quadrilateral whose diagonal
// crosses segment (i, j), as long as the quadrilateral is convex.
func recoverEdge(pts []Vec2, tris []IndexTriangle, i, j int) []IndexTriangle {
	if edgePresent(tris, i, j) {
		return tris
	}

	const maxPasses = 64
	for pass := 0; pass < maxPasses; pass++ {
		if edgePresent(tris, i, j) {
			return tris
		}
		flipped := false
		for idx := 0; idx < len(tris); idx++ {
			for e := 0; e < 3; e++ {
				a, b := tris[idx][e], tris[idx][(e+1)%3]
				if !segmentsCross(pts[i], pts[j], pts[a], pts[b]) {
					continue
				}
				other, apex, ok := findOpposite(tris, idx, a, b)
				if !ok {
					continue
				}
				opposite := tris[idx][(e+2)%3]
				if !convexQuad(pts[opposite], pts[a], pts[apex], pts[b]) {
					continue
				}
				tris[idx] = IndexTriangle{opposite, a, apex}
				tris[other] = IndexTriangle{opposite, apex, b}
				flipped = true
			}
		}
		if !flipped {
			break
		}
	}
	return tris
}

func edgePresent(tris []IndexTriangle, i, j int) bool {
	for _, t := range tris {
		for e := 0; e < 3; e++ {
			a, b := t[e], t[(e+1)%3]
			if (a == i && b == j) || (a == j && b == i) {
				return true
			}
		}
	}
	return false
}

// findOpposite locates the triangle other than skip that shares directed
// or reversed edge (a, b), and returns its apex vertex (the one not on
// the edge).
func findOpposite(tris []IndexTriangle, skip int, a, b int) (other, apex int, ok bool) {
	for idx, t := range tris {
		if idx == skip {
			continue
		}
		for e := 0; e < 3; e++ {
			x, y := t[e], t[(e+1)%3]
			if (x == a && y == b) || (x == b && y == a) {
				return idx, t[(e+2)%3], true
			}
		}
	}
	return 0, 0, false
}

// segmentsCross reports whether open segments (p0,p1) and (p2,p3)
// properly cross (neither touching at an endpoint nor collinear).
func segmentsCross(p0, p1, p2, p3 Vec2) bool {
	o1 := orient2(p0, p1, p2)
	o2 := orient2(p0, p1, p3)
	o3 := orient2(p2, p3, p0)
	o4 := orient2(p2, p3, p1)
	return (o1 > 0) != (o2 > 0) && (o3 > 0) != (o4 > 0) && o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0
}

func orient2(a, b, c Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// convexQuad reports whether the quadrilateral a-b-c-d, taken in order,
// is convex: every one of its four turns has the same sign.
func convexQuad(a, b, c, d Vec2) bool {
	s1 := orient2(a, b, c)
	s2 := orient2(b, c, d)
	s3 := orient2(c, d, a)
	s4 := orient2(d, a, b)
	pos := s1 > 0 && s2 > 0 && s3 > 0 && s4 > 0
	neg := s1 < 0 && s2 < 0 && s3 < 0 && s4 < 0
	return pos || neg
}
