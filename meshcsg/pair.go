package meshcsg

// IntersectMeshPairTagged finds every segment in which a triangle of a
// crosses a triangle of b, tagged with both source indices. It builds a
// spatial grid on b in the XY projection, and for each
// triangle of a queries candidates by its projected AABB, running the
// triangle intersector on each candidate pair.
//
// Every pair whose 3D AABBs overlap and whose planes yield a valid
// intersection produces exactly one tagged segment; no segment is
// emitted twice.
func IntersectMeshPairTagged(a, b Soup) []TaggedSegment {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	grid := NewGrid(b, gridCellSize(b), ProjectionXY)

	var out []TaggedSegment
	for i, ta := range a {
		aMin, bMin, aMax, bMax := grid.AABBBox2D(ta.AABB())
		for _, j := range grid.QueryBox(aMin, bMin, aMax, bMax) {
			tb := b[j]
			if !ta.AABB().Overlaps(tb.AABB()) {
				continue
			}
			if seg, ok := IntersectTriangles(ta, tb); ok {
				out = append(out, TaggedSegment{Segment: seg, IdxA: i, IdxB: j})
			}
		}
	}
	return out
}

// crossedSet maps a triangle index to the tagged segments intersecting
// it, keyed by its own index (idxA for soup A, idxB for soup B).
type crossedSet map[int][]TaggedSegment

// crossedSetA partitions tagged segments on their soup-A index.
func crossedSetA(segs []TaggedSegment) crossedSet {
	cs := make(crossedSet)
	for _, s := range segs {
		cs[s.IdxA] = append(cs[s.IdxA], s)
	}
	return cs
}

// crossedSetB partitions tagged segments on their soup-B index.
func crossedSetB(segs []TaggedSegment) crossedSet {
	cs := make(crossedSet)
	for _, s := range segs {
		cs[s.IdxB] = append(cs[s.IdxB], s)
	}
	return cs
}
