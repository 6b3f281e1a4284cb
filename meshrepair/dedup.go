package meshrepair

import "math"

// DedupSeams merges positionally coincident vertices of s at tol: every
// vertex is snapped to the first representative found in its
// quantization cell, so the two independently computed cut boundaries
// of a Boolean seam end up sharing exact coordinates. Triangles left
// degenerate by the snapping (two or three corners collapsed onto the
// same representative) are removed.
func DedupSeams(s Soup, tol float64) Soup {
	if tol <= 0 {
		tol = 1e-9
	}
	scale := 1.0 / tol

	reps := make(map[[3]int64]Vertex)
	snap := func(v Vertex) Vertex {
		k := [3]int64{
			int64(math.Round(v.X * scale)),
			int64(math.Round(v.Y * scale)),
			int64(math.Round(v.Z * scale)),
		}
		if rep, ok := reps[k]; ok {
			return rep
		}
		reps[k] = v
		return v
	}

	out := make(Soup, 0, len(s))
	for _, t := range s {
		v0, v1, v2 := snap(t.V0), snap(t.V1), snap(t.V2)
		if v0 == v1 || v1 == v2 || v0 == v2 {
			continue
		}
		out = append(out, Triangle{V0: v0, V1: v1, V2: v2})
	}
	return out
}
