package meshcsg

import "math"

const (
	baryDetMinEps  = 1e-12
	baryOutsideEps = -1e-10
)

// jitter is a single deterministic 2D offset applied to a candidate
// point's in-plane coordinates before a ray is cast, in order to dodge
// exact coplanarity with the opposing surface.
type jitter struct{ da, db float64 }

// axisJitters holds the three deterministic offsets used per axis.
// Each axis uses a different triple so that a point exactly on a grid
// boundary or face along one axis is unlikely to be so along another.
var axisJitters = [3][3]jitter{
	// ProjectionXY (ray axis Z)
	{{3.1e-4, -1.7e-4}, {-2.3e-4, 2.9e-4}, {1.1e-5, 4.1e-4}},
	// ProjectionYZ (ray axis X)
	{{2.7e-4, 1.3e-4}, {-4.3e-4, -2.1e-4}, {1.9e-4, -3.3e-5}},
	// ProjectionXZ (ray axis Y)
	{{-1.9e-4, 3.7e-4}, {4.1e-4, -1.1e-4}, {-3.7e-5, -2.9e-4}},
}

// Grids3 holds one spatial grid per projection plane, indexed by
// Projection. The point classifier needs all three; build them lazily
// if memory is constrained.
type Grids3 [3]*Grid

// BuildGrids3 builds the three projection grids for mesh, using the
// cell size derived from mesh's own average edge length.
func BuildGrids3(mesh Soup) Grids3 {
	cell := gridCellSize(mesh)
	return Grids3{
		NewGrid(mesh, cell, ProjectionXY),
		NewGrid(mesh, cell, ProjectionYZ),
		NewGrid(mesh, cell, ProjectionXZ),
	}
}

// ClassifyPointMultiAxis decides whether p lies inside the solid
// bounded by mesh, tolerating open surfaces and coplanar faces, by
// casting along three axes (+Z, +X, +Y) with three deterministic
// jittered offsets each, and combining the per-axis majority votes.
func ClassifyPointMultiAxis(p Vertex, mesh Soup, grids Grids3) Classification {
	var insideVotes, outsideVotes int
	for axis := ProjectionXY; axis <= ProjectionXZ; axis++ {
		grid := grids[axis]
		if grid == nil {
			continue
		}
		vote, hadHits := axisVote(p, mesh, grid, axis)
		if !hadHits {
			continue
		}
		if vote == Inside {
			insideVotes++
		} else {
			outsideVotes++
		}
	}

	switch {
	case insideVotes >= 2:
		return Inside
	case outsideVotes >= 1:
		return Outside
	case insideVotes == 1:
		return Inside
	default:
		return Outside
	}
}

// axisVote casts the three jittered rays for one axis and returns its
// majority-parity vote plus whether any ray produced a crossing at all.
func axisVote(p Vertex, mesh Soup, grid *Grid, axis Projection) (Classification, bool) {
	pa, pb, pray := project2D(p, axis)
	var oddCount, evenCount, anyHits int

	for _, j := range axisJitters[axis] {
		ja, jb := pa+j.da, pb+j.db
		hits := 0
		for _, idx := range grid.QueryPoint(ja, jb) {
			t := mesh[idx]
			if crossesAbove(t, axis, ja, jb, pray) {
				hits++
			}
		}
		if hits > 0 {
			anyHits++
		}
		if hits%2 == 1 {
			oddCount++
		} else {
			evenCount++
		}
	}
	if anyHits == 0 {
		return Unclassified, false
	}
	if oddCount > evenCount {
		return Inside, true
	}
	return Outside, true
}

// crossesAbove reports whether the ray along axis's third (ray) axis at
// in-plane position (a, b) crosses triangle t's plane strictly above
// rayCoord, within
// t's 2D footprint under the given projection.
func crossesAbove(t Triangle, axis Projection, a, b, rayCoord float64) bool {
	a0, b0, r0 := project2D(t.V0, axis)
	a1, b1, r1 := project2D(t.V1, axis)
	a2, b2, r2 := project2D(t.V2, axis)

	det := (b1-b2)*(a0-a2) + (a2-a1)*(b0-b2)
	if math.Abs(det) < baryDetMinEps {
		return false
	}
	w0 := ((b1-b2)*(a-a2) + (a2-a1)*(b-b2)) / det
	w1 := ((b2-b0)*(a-a2) + (a0-a2)*(b-b2)) / det
	w2 := 1 - w0 - w1
	if w0 < baryOutsideEps || w1 < baryOutsideEps || w2 < baryOutsideEps {
		return false
	}
	interp := w0*r0 + w1*r1 + w2*r2
	return interp > rayCoord
}
