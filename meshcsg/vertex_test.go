package meshcsg

import "testing"

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

func TestVertexCross(t *testing.T) {
	tests := []struct {
		v1, v2, want Vertex
	}{
		{Vertex{1, 0, 0}, Vertex{0, 1, 0}, Vertex{0, 0, 1}},
		{Vertex{3, -3, 1}, Vertex{4, 9, 2}, Vertex{-15, -2, 39}},
		{Vertex{3, -3, 1}, Vertex{3, -3, 1}, Vertex{0, 0, 0}},
	}
	for _, tt := range tests {
		got := VertexCross(tt.v1, tt.v2)
		if !approxEqual(got.X, tt.want.X, 1e-9) || !approxEqual(got.Y, tt.want.Y, 1e-9) || !approxEqual(got.Z, tt.want.Z, 1e-9) {
			t.Errorf("VertexCross(%v, %v) = %v, want %v", tt.v1, tt.v2, got, tt.want)
		}
	}
}

func TestVertexDot(t *testing.T) {
	tests := []struct {
		v1, v2 Vertex
		want   float64
	}{
		{Vertex{1, 0, 0}, Vertex{1, 0, 0}, 1},
		{Vertex{1, 2, 3}, Vertex{0, 0, 0}, 0},
	}
	for _, tt := range tests {
		if got := VertexDot(tt.v1, tt.v2); !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("VertexDot(%v, %v) = %f, want %f", tt.v1, tt.v2, got, tt.want)
		}
	}
}

func TestVertexNormalize(t *testing.T) {
	got, l := VertexNormalize(Vertex{3, 4, 0}, 1e-12)
	if !approxEqual(l, 5, 1e-9) {
		t.Fatalf("length = %f, want 5", l)
	}
	if !approxEqual(VertexLen(got), 1, 1e-9) {
		t.Fatalf("normalized length = %f, want 1", VertexLen(got))
	}

	zero, zeroLen := VertexNormalize(Vertex{0, 0, 0}, 1e-12)
	if zeroLen != 0 || zero != (Vertex{}) {
		t.Fatalf("normalizing the zero vector should yield (zero, 0), got (%v, %f)", zero, zeroLen)
	}
}

func TestVertexKeyIgnoresJitter(t *testing.T) {
	a := vertexKey(Vertex{1.0000001, 2, 3})
	b := vertexKey(Vertex{1.0000002, 2, 3})
	if a != b {
		t.Fatalf("vertices within quantization should share a key: %v != %v", a, b)
	}

	c := vertexKey(Vertex{1.01, 2, 3})
	if a == c {
		t.Fatalf("vertices 0.01 apart should not share a key")
	}
}

func TestEdgeKeyOrderIndependent(t *testing.T) {
	a, b := vertexKey(Vertex{0, 0, 0}), vertexKey(Vertex{1, 0, 0})
	if edgeKey(a, b) != edgeKey(b, a) {
		t.Fatalf("edgeKey should not depend on argument order")
	}
}

func TestTriangleDegenerate(t *testing.T) {
	good := Triangle{Vertex{0, 0, 0}, Vertex{1, 0, 0}, Vertex{0, 1, 0}}
	if good.Degenerate(1e-9) {
		t.Fatal("a unit right triangle is not degenerate")
	}

	collapsed := Triangle{Vertex{0, 0, 0}, Vertex{0, 0, 0}, Vertex{1, 0, 0}}
	if !collapsed.Degenerate(1e-9) {
		t.Fatal("a triangle with two identical vertices is degenerate")
	}

	sliver := Triangle{Vertex{0, 0, 0}, Vertex{1, 0, 0}, Vertex{0.5, 1e-14, 0}}
	if !sliver.Degenerate(1e-9) {
		t.Fatal("a near-zero-area sliver is degenerate")
	}
}

func TestSoupAABBCoversAllTriangles(t *testing.T) {
	s := Soup{
		{Vertex{0, 0, 0}, Vertex{1, 0, 0}, Vertex{0, 1, 0}},
		{Vertex{-5, 2, 3}, Vertex{-4, 2, 3}, Vertex{-5, 3, 3}},
	}
	bb := s.AABB()
	if bb.Min != (Vertex{-5, 0, 0}) || bb.Max != (Vertex{1, 3, 3}) {
		t.Fatalf("unexpected soup AABB: %+v", bb)
	}
}

func TestAABBOverlaps(t *testing.T) {
	a := TriangleAABB(Vertex{0, 0, 0}, Vertex{1, 0, 0}, Vertex{0, 1, 0})
	b := TriangleAABB(Vertex{0.5, 0.5, 0}, Vertex{2, 2, 0}, Vertex{2, 0.5, 0})
	if !a.Overlaps(b) {
		t.Fatalf("overlapping AABBs should report Overlaps == true")
	}

	c := TriangleAABB(Vertex{10, 10, 10}, Vertex{11, 10, 10}, Vertex{10, 11, 10})
	if a.Overlaps(c) {
		t.Fatalf("disjoint AABBs should report Overlaps == false")
	}
}
