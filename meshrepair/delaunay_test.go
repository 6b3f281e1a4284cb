package meshrepair

import "testing"

func TestDelaunayTooFewPointsReturnsNil(t *testing.T) {
	if got := Delaunay([]Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}, nil); got != nil {
		t.Fatalf("expected nil for fewer than 3 points, got %v", got)
	}
}

func TestDelaunayTriangulatesConvexQuad(t *testing.T) {
	pts := []Vec2{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 1},
		{X: 1, Y: 3},
	}
	tris := Delaunay(pts, nil)
	if len(tris) != 2 {
		t.Fatalf("a simple convex quad should triangulate into 2 triangles, got %d", len(tris))
	}
}

func TestDelaunayRecoversConstrainedDiagonal(t *testing.T) {
	pts := []Vec2{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 1},
		{X: 1, Y: 3},
	}
	// Force the 0-2 diagonal, whichever the unconstrained triangulation
	// would have picked on its own.
	tris := Delaunay(pts, [][2]int{{0, 2}})
	if !edgePresent(tris, 0, 2) {
		t.Fatalf("constrained edge (0,2) should appear in the recovered triangulation: %v", tris)
	}
}

func TestInCircumcircle(t *testing.T) {
	a, b, c := Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0}, Vec2{X: 0, Y: 1}
	inside := Vec2{X: 0.2, Y: 0.2}
	outside := Vec2{X: 10, Y: 10}

	if !inCircumcircle(a, b, c, inside) {
		t.Fatal("a point near the triangle's centroid should be inside its circumcircle")
	}
	if inCircumcircle(a, b, c, outside) {
		t.Fatal("a far away point should be outside the circumcircle")
	}
}
