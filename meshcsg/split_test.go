package meshcsg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/go-meshcsg/meshrepair"
)

func TestTriangleFrameIsOrthonormal(t *testing.T) {
	tri := Triangle{Vertex{0, 0, 0}, Vertex{2, 0, 0}, Vertex{0, 3, 0}}
	fr, ok := triangleFrame(tri)
	assert.True(t, ok)
	assert.InDelta(t, 0, VertexDot(fr.u, fr.v), 1e-9)
	assert.InDelta(t, 1, VertexLen(fr.u), 1e-9)
	assert.InDelta(t, 1, VertexLen(fr.v), 1e-9)
}

func TestTriangleFrameRoundTrip2D3D(t *testing.T) {
	tri := Triangle{Vertex{1, 1, 1}, Vertex{3, 1, 2}, Vertex{1, 4, 1}}
	fr, ok := triangleFrame(tri)
	assert.True(t, ok)

	for _, v := range [3]Vertex{tri.V0, tri.V1, tri.V2} {
		got := fr.to3D(fr.to2D(v))
		assert.InDelta(t, v.X, got.X, 1e-9)
		assert.InDelta(t, v.Y, got.Y, 1e-9)
		assert.InDelta(t, v.Z, got.Z, 1e-9)
	}
}

func TestTriangleFrameDegenerate(t *testing.T) {
	_, ok := triangleFrame(Triangle{Vertex{0, 0, 0}, Vertex{0, 0, 0}, Vertex{1, 1, 1}})
	assert.False(t, ok, "a triangle with a zero-length edge has no frame")
}

func TestSplitStraddlingAndClassifyCoversParentArea(t *testing.T) {
	tri := Triangle{Vertex{0, 0, 0}, Vertex{2, 0, 0}, Vertex{0, 2, 0}}
	segs := []TaggedSegment{
		{Segment: Segment{P0: Vertex{1, 0, 0}, P1: Vertex{0, 1, 0}}},
	}
	opposing := cubeSoup(Vertex{0, 0, 0}, 1)
	grids := BuildGrids3(opposing)

	out := SplitStraddlingAndClassify(tri, segs, nil, nil, opposing, grids)
	assert.NotEmpty(t, out)
	assert.Greater(t, len(out), 1, "a crossing chord should split the triangle into several pieces")

	var total float64
	for _, ct := range out {
		assert.NotEqual(t, Unclassified, ct.Class, "every emitted sub-triangle should carry a verdict")
		ab := VertexSub(ct.V1, ct.V0)
		ac := VertexSub(ct.V2, ct.V0)
		total += VertexLen(VertexCross(ab, ac)) / 2
	}
	parentArea := VertexLen(VertexCross(VertexSub(tri.V1, tri.V0), VertexSub(tri.V2, tri.V0))) / 2
	assert.InDelta(t, parentArea, total, 1e-6, "split sub-triangles should tile the parent without gaps or overlap")
}

func TestSplitStraddlingAndClassifyDegenerateReturnsParent(t *testing.T) {
	// A triangle too thin to seed a 2D frame cannot be split; it must
	// come back whole, classified as one piece.
	tri := Triangle{Vertex{0, 0, 0}, Vertex{0, 0, 0}, Vertex{1, 1, 1}}
	opposing := cubeSoup(Vertex{0, 0, 0}, 10)
	grids := BuildGrids3(opposing)

	out := SplitStraddlingAndClassify(tri, nil, nil, nil, opposing, grids)
	if assert.Len(t, out, 1) {
		assert.Equal(t, tri, out[0].Triangle)
	}
}

func TestInsertSteinerDedupesClosePoints(t *testing.T) {
	pts := []meshrepair.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	i := insertSteiner(&pts, meshrepair.Vec2{X: 1 + 1e-12, Y: 0})
	assert.Equal(t, 1, i, "a point within tolerance of an existing one should be welded, not appended")
	assert.Len(t, pts, 3)

	j := insertSteiner(&pts, meshrepair.Vec2{X: 0.25, Y: 0.25})
	assert.Equal(t, 3, j)
	assert.Len(t, pts, 4)
}

func TestInsertSteinerRejectsFarOutsidePoint(t *testing.T) {
	pts := []meshrepair.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	i := insertSteiner(&pts, meshrepair.Vec2{X: 5, Y: 5})
	assert.Equal(t, -1, i, "an endpoint well outside the parent triangle must be discarded")
	assert.Len(t, pts, 3)
}
