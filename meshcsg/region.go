package meshcsg

// regionClassify assigns Inside/Outside to every non-crossed triangle of
// mesh cheaply, by flood-filling a single ray-cast verdict across each
// connected component of the non-crossed sub-mesh.
//
// Adjacency is built over shared edges between non-crossed triangles
// only; crossed triangles are never linked through an edge and are
// never visited here, since the splitter re-triangulates them
// piecewise.
func regionClassify(mesh, opposing Soup, crossed crossedSet, opposingGrids Grids3) []Classification {
	classes := make([]Classification, len(mesh))
	neighbours := buildEdgeAdjacency(mesh, crossed)

	visited := make([]bool, len(mesh))
	for seed := range mesh {
		if crossed[seed] != nil || visited[seed] {
			continue
		}
		verdict := ClassifyPointMultiAxis(mesh[seed].Centroid(), opposing, opposingGrids)
		floodAssign(seed, verdict, neighbours, visited, classes)
	}
	return classes
}

// buildEdgeAdjacency returns, for every non-crossed triangle index, the
// list of other non-crossed triangle indices it shares a canonical edge
// with.
func buildEdgeAdjacency(mesh Soup, crossed crossedSet) map[int][]int {
	byEdge := make(map[ekey][]int)
	for i, t := range mesh {
		if crossed[i] != nil {
			continue
		}
		k0, k1, k2 := vertexKey(t.V0), vertexKey(t.V1), vertexKey(t.V2)
		for _, e := range [3]ekey{edgeKey(k0, k1), edgeKey(k1, k2), edgeKey(k2, k0)} {
			byEdge[e] = append(byEdge[e], i)
		}
	}

	neighbours := make(map[int][]int)
	for _, tris := range byEdge {
		if len(tris) < 2 {
			continue
		}
		for _, i := range tris {
			for _, j := range tris {
				if i != j {
					neighbours[i] = append(neighbours[i], j)
				}
			}
		}
	}
	return neighbours
}

// floodAssign performs a breadth-first flood from seed, assigning
// verdict to every triangle transitively reachable through an edge
// shared with another non-crossed triangle.
func floodAssign(seed int, verdict Classification, neighbours map[int][]int, visited []bool, classes []Classification) {
	queue := []int{seed}
	visited[seed] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		classes[cur] = verdict

		for _, nb := range neighbours[cur] {
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
}
