package meshrepair

import "testing"

func TestDedupSeamsSnapsCoincidentVertices(t *testing.T) {
	// Two triangles meet along a seam whose endpoints differ by less
	// than the tolerance: after dedup both must reference identical
	// coordinates.
	s := Soup{
		{V0: Vertex{0, 0, 0}, V1: Vertex{1, 0, 0}, V2: Vertex{0, 1, 0}},
		{V0: Vertex{1, 1e-5, 0}, V1: Vertex{1, 1, 0}, V2: Vertex{1e-5, 1, 0}},
	}
	out := DedupSeams(s, 1e-4)
	if len(out) != 2 {
		t.Fatalf("no triangle should be lost, got %d", len(out))
	}
	if out[1].V0 != (Vertex{1, 0, 0}) {
		t.Fatalf("seam vertex should snap onto the first representative, got %+v", out[1].V0)
	}
	if out[1].V2 != (Vertex{0, 1, 0}) {
		t.Fatalf("seam vertex should snap onto the first representative, got %+v", out[1].V2)
	}
}

func TestDedupSeamsDropsCollapsedTriangle(t *testing.T) {
	// A sliver whose corners all land in the same quantization cell
	// collapses to a point and must be removed.
	s := Soup{
		{V0: Vertex{0, 0, 0}, V1: Vertex{1e-6, 0, 0}, V2: Vertex{0, 1e-6, 0}},
		{V0: Vertex{0, 0, 0}, V1: Vertex{5, 0, 0}, V2: Vertex{0, 5, 0}},
	}
	out := DedupSeams(s, 1e-4)
	if len(out) != 1 {
		t.Fatalf("the collapsed sliver should be dropped, got %d triangles", len(out))
	}
}

func TestDedupSeamsKeepsSeparatedGeometry(t *testing.T) {
	s := Soup{
		{V0: Vertex{0, 0, 0}, V1: Vertex{1, 0, 0}, V2: Vertex{0, 1, 0}},
		{V0: Vertex{10, 0, 0}, V1: Vertex{11, 0, 0}, V2: Vertex{10, 1, 0}},
	}
	out := DedupSeams(s, 1e-4)
	if len(out) != 2 {
		t.Fatalf("well separated triangles should pass through untouched, got %d", len(out))
	}
}
