package meshcsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridQueryBoxFindsOverlappingTriangle(t *testing.T) {
	mesh := cubeSoup(Vertex{0, 0, 0}, 1)
	g := NewGrid(mesh, gridCellSize(mesh), ProjectionXY)

	hits := g.QueryBox(-2, -2, 2, 2)
	assert.NotEmpty(t, hits, "a box covering the whole cube should hit every triangle touching the XY projection")

	farHits := g.QueryBox(100, 100, 101, 101)
	assert.Empty(t, farHits, "a box far from the cube should hit nothing")
}

func TestGridQueryPointMatchesBucket(t *testing.T) {
	mesh := cubeSoup(Vertex{0, 0, 0}, 1)
	g := NewGrid(mesh, gridCellSize(mesh), ProjectionXY)

	assert.NotEmpty(t, g.QueryPoint(0, 0), "the grid center should fall in an occupied cell")
}

func TestFloorDivHandlesNegatives(t *testing.T) {
	assert.Equal(t, int64(-1), floorDiv(-0.5, 1))
	assert.Equal(t, int64(0), floorDiv(0, 1))
	assert.Equal(t, int64(-2), floorDiv(-2, 1))
}
