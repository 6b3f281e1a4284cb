package meshrepair

import "math"

// chainWeldEps merges segment endpoints within this distance when
// deciding whether two segments share a joint.
const chainWeldEps = 1e-7

// ChainSegments links disjoint 3D segments sharing coincident endpoints
// into ordered polylines, a debugging and export aid for inspecting the
// curves a Boolean intersection produced. Segments that cannot be
// chained to anything
// are returned as their own single-segment polyline.
func ChainSegments(segs []Segment) [][]Vertex {
	used := make([]bool, len(segs))
	var chains [][]Vertex

	for i := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		chain := []Vertex{segs[i].P0, segs[i].P1}

		extended := true
		for extended {
			extended = false
			for j := range segs {
				if used[j] {
					continue
				}
				head, tail := chain[0], chain[len(chain)-1]
				switch {
				case vdist(tail, segs[j].P0) < chainWeldEps:
					chain = append(chain, segs[j].P1)
				case vdist(tail, segs[j].P1) < chainWeldEps:
					chain = append(chain, segs[j].P0)
				case vdist(head, segs[j].P1) < chainWeldEps:
					chain = append([]Vertex{segs[j].P0}, chain...)
				case vdist(head, segs[j].P0) < chainWeldEps:
					chain = append([]Vertex{segs[j].P1}, chain...)
				default:
					continue
				}
				used[j] = true
				extended = true
			}
		}
		chains = append(chains, chain)
	}
	return chains
}

// SimplifyPolyline reduces pts to a sparser polyline by the
// Douglas-Peucker algorithm, dropping any vertex within spacing of the
// chord connecting its neighbours. A non-positive spacing, or a
// polyline of two or fewer points, returns pts unchanged.
func SimplifyPolyline(pts []Vertex, spacing float64) []Vertex {
	if spacing <= 0 || len(pts) < 3 {
		return pts
	}
	keep := make([]bool, len(pts))
	keep[0] = true
	keep[len(pts)-1] = true
	simplifyRange(pts, 0, len(pts)-1, spacing, keep)

	out := make([]Vertex, 0, len(pts))
	for i, k := range keep {
		if k {
			out = append(out, pts[i])
		}
	}
	return out
}

func simplifyRange(pts []Vertex, lo, hi int, spacing float64, keep []bool) {
	if hi-lo < 2 {
		return
	}
	maxDist := -1.0
	maxIdx := -1
	for i := lo + 1; i < hi; i++ {
		d := distToSegment(pts[i], pts[lo], pts[hi])
		if d > maxDist {
			maxDist, maxIdx = d, i
		}
	}
	if maxDist <= spacing {
		return
	}
	keep[maxIdx] = true
	simplifyRange(pts, lo, maxIdx, spacing, keep)
	simplifyRange(pts, maxIdx, hi, spacing, keep)
}

func distToSegment(p, a, b Vertex) float64 {
	ab := vsub(b, a)
	ap := vsub(p, a)
	abLenSqr := ab.X*ab.X + ab.Y*ab.Y + ab.Z*ab.Z
	if abLenSqr < 1e-20 {
		return vdist(p, a)
	}
	t := (ap.X*ab.X + ap.Y*ab.Y + ap.Z*ab.Z) / abLenSqr
	t = math.Max(0, math.Min(1, t))
	proj := vadd(a, vscale(ab, t))
	return vdist(p, proj)
}
