package meshrepair

import "testing"

func TestOrientZUpKeepsUpwardNormal(t *testing.T) {
	tri := Triangle{V0: Vertex{0, 0, 0}, V1: Vertex{1, 0, 0}, V2: Vertex{0, 1, 0}}
	got := OrientZUp(tri)
	if got != tri {
		t.Fatalf("a triangle already normal-up should be returned unchanged, got %+v", got)
	}
}

func TestOrientZUpFlipsDownwardNormal(t *testing.T) {
	tri := Triangle{V0: Vertex{0, 0, 0}, V1: Vertex{0, 1, 0}, V2: Vertex{1, 0, 0}}
	got := OrientZUp(tri)
	if got.normal().Z <= 0 {
		t.Fatalf("OrientZUp should flip a downward-facing triangle, got normal %+v", got.normal())
	}
}

func TestOrientZUpKeepsVerticalTriangle(t *testing.T) {
	// Normal lies exactly in the XY plane (Z == 0), inside the flip
	// threshold band: the triangle keeps its winding.
	tri := Triangle{V0: Vertex{0, 0, 0}, V1: Vertex{0, 0, 1}, V2: Vertex{1, 0, 0}}
	got := OrientZUp(tri)
	if got != tri {
		t.Fatalf("a vertical triangle should keep its winding, got %+v", got)
	}
}
