package meshcsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectMeshPairTaggedOverlappingCubes(t *testing.T) {
	a := cubeSoup(Vertex{0, 0, 0}, 1)
	b := cubeSoup(Vertex{1, 0, 0}, 1)

	segs := IntersectMeshPairTagged(a, b)
	assert.NotEmpty(t, segs)
	for _, s := range segs {
		assert.True(t, s.IdxA >= 0 && s.IdxA < len(a), "IdxA out of range: %d", s.IdxA)
		assert.True(t, s.IdxB >= 0 && s.IdxB < len(b), "IdxB out of range: %d", s.IdxB)
		assert.Greater(t, s.Length(), 0.0)
	}
}

func TestIntersectMeshPairTaggedSelfPairsRejected(t *testing.T) {
	a := cubeSoup(Vertex{0, 0, 0}, 1)

	// Intersecting a mesh with itself pairs every triangle with its own
	// coplanar copy; the coplanar reject must keep those out.
	for _, s := range IntersectMeshPairTagged(a, a) {
		assert.NotEqual(t, s.IdxA, s.IdxB, "a triangle must never intersect itself")
	}
}

func TestIntersectMeshPairTaggedDisjoint(t *testing.T) {
	a := cubeSoup(Vertex{0, 0, 0}, 1)
	b := cubeSoup(Vertex{10, 10, 10}, 1)

	assert.Empty(t, IntersectMeshPairTagged(a, b))
}

func TestCrossedSetsPartitionOnOwnIndex(t *testing.T) {
	segs := []TaggedSegment{
		{IdxA: 0, IdxB: 5},
		{IdxA: 0, IdxB: 6},
		{IdxA: 2, IdxB: 5},
	}
	csA := crossedSetA(segs)
	csB := crossedSetB(segs)

	assert.Len(t, csA[0], 2)
	assert.Len(t, csA[2], 1)
	assert.Len(t, csB[5], 2)
	assert.Len(t, csB[6], 1)
}
