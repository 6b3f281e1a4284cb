package meshcsg

// classifySubTriangle decides a split sub-triangle's verdict cheaply
// first, by vertex adjacency: its three vertices are inspected in
// order, and the first one that does not lie on the
// intersection curve and already carries a classification inherited
// from a region-classified neighbour decides. Only when no such vertex
// exists does it fall back to a direct ray cast against the opposing
// mesh.
//
// known maps a vertex's topological key to the classification already
// established for it elsewhere in the mesh (the verdict of a
// non-crossed triangle sharing the vertex, first write wins). curve
// holds the keys of intersection-segment endpoints, which sit exactly
// on the boundary between inside and outside and must not vote. Either
// map may be nil, in which case the ray cast decides.
func classifySubTriangle(t Triangle, known map[vkey]Classification, curve map[vkey]bool, opposing Soup, opposingGrids Grids3) Classification {
	if verdict, ok := adjacencyVerdict(t, known, curve); ok {
		return verdict
	}
	return ClassifyPointMultiAxis(t.Centroid(), opposing, opposingGrids)
}

// adjacencyVerdict returns the classification of t's first corner, in
// vertex order, that is off the intersection curve and present in
// known.
func adjacencyVerdict(t Triangle, known map[vkey]Classification, curve map[vkey]bool) (Classification, bool) {
	for _, v := range [3]Vertex{t.V0, t.V1, t.V2} {
		k := vertexKey(v)
		if curve[k] {
			continue
		}
		if c, ok := known[k]; ok {
			return c, true
		}
	}
	return Unclassified, false
}
