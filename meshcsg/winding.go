package meshcsg

import "github.com/arl/go-meshcsg/meshrepair"

// PropagateWinding returns a copy of mesh in which every triangle winds
// consistently with its neighbours: two adjacent triangles traverse
// their shared edge in opposite directions. The group
// must be manifold for propagation to be meaningful; if any edge is not
// shared by exactly two triangles, every triangle is instead oriented
// individually by the repair collaborator's Z-up heuristic.
func PropagateWinding(mesh Soup) Soup {
	out := make(Soup, len(mesh))
	copy(out, mesh)

	adjacency, flips, manifold := buildHalfEdgeAdjacency(out)
	if !manifold {
		for i, t := range out {
			rt := toRepairTriangle(t)
			if meshrepair.OrientZUp(rt) != rt {
				out[i] = t.flip()
			}
		}
		return out
	}

	visited := make([]bool, len(out))
	flipped := make([]bool, len(out))
	for seed := range out {
		if visited[seed] {
			continue
		}
		visited[seed] = true

		queue := []int{seed}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for k, nb := range adjacency[cur] {
				if visited[nb] {
					continue
				}
				visited[nb] = true
				// A same-direction shared edge means the neighbour is
				// inconsistent with cur's (possibly already corrected)
				// state, so its flip flag is cur's XOR the edge verdict.
				flipped[nb] = flipped[cur] != flips[cur][k]
				queue = append(queue, nb)
			}
		}
	}
	for i, f := range flipped {
		if f {
			out[i] = out[i].flip()
		}
	}
	return out
}

func toRepairTriangle(t Triangle) meshrepair.Triangle {
	return meshrepair.Triangle{
		V0: meshrepair.Vertex{X: t.V0.X, Y: t.V0.Y, Z: t.V0.Z},
		V1: meshrepair.Vertex{X: t.V1.X, Y: t.V1.Y, Z: t.V1.Z},
		V2: meshrepair.Vertex{X: t.V2.X, Y: t.V2.Y, Z: t.V2.Z},
	}
}

// buildHalfEdgeAdjacency links every triangle to the other triangles
// sharing one of its three edges, and records, per link, whether the
// neighbour must be flipped to keep winding consistent with the current
// triangle: consistent winding means the shared edge runs in opposite
// directions in the two triangles' own vertex orders. manifold reports
// whether every undirected edge is owned by exactly two triangles.
func buildHalfEdgeAdjacency(mesh Soup) (adjacency [][]int, flips [][]bool, manifold bool) {
	type owner struct {
		tri  int
		a, b vkey // directed, as stored in the owning triangle
	}
	byUndirected := make(map[ekey][]owner)

	for i, t := range mesh {
		k0, k1, k2 := vertexKey(t.V0), vertexKey(t.V1), vertexKey(t.V2)
		for _, e := range [3][2]vkey{{k0, k1}, {k1, k2}, {k2, k0}} {
			k := edgeKey(e[0], e[1])
			byUndirected[k] = append(byUndirected[k], owner{tri: i, a: e[0], b: e[1]})
		}
	}

	manifold = true
	adjacency = make([][]int, len(mesh))
	flips = make([][]bool, len(mesh))
	for _, owners := range byUndirected {
		if len(owners) != 2 {
			manifold = false
		}
		if len(owners) < 2 {
			continue
		}
		for i := 0; i < len(owners); i++ {
			for j := 0; j < len(owners); j++ {
				if i == j {
					continue
				}
				oi, oj := owners[i], owners[j]
				sameDirection := oi.a == oj.a && oi.b == oj.b
				adjacency[oi.tri] = append(adjacency[oi.tri], oj.tri)
				flips[oi.tri] = append(flips[oi.tri], sameDirection)
			}
		}
	}
	return adjacency, flips, manifold
}
