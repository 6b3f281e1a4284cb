package meshcsg

import (
	"fmt"

	"github.com/arl/go-meshcsg/meshrepair"
)

// Operation selects which Boolean set operation Boolean performs.
type Operation int

const (
	// OpSubtract keeps the part of a outside b, plus the part of b
	// inside a with its winding reversed.
	OpSubtract Operation = iota
	// OpUnion keeps the parts of a and b that lie outside the other.
	OpUnion
	// OpIntersect keeps the parts of a and b that lie inside the other.
	OpIntersect
)

// dedupSeamTolerance is the distance under which two boundary vertices
// produced independently by the two input soups are considered the same
// point when welding the result back into an indexed mesh. The seam
// dedup and the final weld share this default.
const dedupSeamTolerance = 1e-4

// Group identifies which of the four classified groups an output
// triangle came from. It is diagnostic metadata: Boolean itself never
// consults it.
type Group int8

const (
	GroupAOutside Group = iota
	GroupAInside
	GroupBOutside
	GroupBInside
)

// Result is the outcome of a Boolean operation: a welded indexed mesh,
// plus the same data flattened as a triangle soup for convenience.
// Groups runs parallel to Soup, recording the classified group each
// triangle was taken from.
type Result struct {
	Soup      Soup
	Groups    []Group
	Points    []Vertex
	Triangles [][3]int
}

// taggedTriangle carries a triangle plus its classification against the
// other input, so the combination step can decide, per operation,
// whether to keep it and with which winding.
type taggedTriangle struct {
	Triangle
	class Classification
}

// Options controls the parts of the assembler pipeline that legitimately
// vary with the scale of the input geometry. The intersector and
// classifier tolerances stay fixed regardless of Options, since they
// are part of the algorithm's contract, not a per-run setting.
type Options struct {
	// WeldTolerance is the distance under which two vertices produced
	// independently by a and b are merged into one in the result. Zero
	// selects dedupSeamTolerance.
	WeldTolerance float64
}

// Boolean computes the union, intersection, or difference of triangle
// soups a and b, using default Options. It is a thin wrapper over
// BooleanWithOptions for callers that don't need the run's log,
// timings, or a non-default weld tolerance.
func Boolean(a, b Soup, op Operation) (*Result, error) {
	return BooleanWithOptions(nil, a, b, op, Options{})
}

// BooleanWithContext runs the pipeline with default Options, recording
// progress messages and phase timings into ctx.
func BooleanWithContext(ctx *meshrepair.Context, a, b Soup, op Operation) (*Result, error) {
	return BooleanWithOptions(ctx, a, b, op, Options{})
}

// BooleanWithOptions runs the full assembler pipeline:
// tag crossing segments, classify each side's triangles against the
// other by region flood-fill and per-sub-triangle ray casting,
// deduplicate seams and propagate consistent winding within each
// classified group, combine the kept groups per op, and weld into an
// indexed mesh. A nil Result with a nil error means the operation has
// nothing meaningful to emit. ctx may be nil; a non-nil error is
// reserved for caller mistakes, never for geometric degeneracy.
func BooleanWithOptions(ctx *meshrepair.Context, a, b Soup, op Operation, opts Options) (*Result, error) {
	if ctx == nil {
		ctx = meshrepair.NewContext()
	}
	switch op {
	case OpSubtract, OpUnion, OpIntersect:
	default:
		return nil, fmt.Errorf("meshcsg: unknown operation %d", op)
	}

	if len(a) == 0 || len(b) == 0 {
		ctx.Progressf("one input soup is empty, nothing to assemble")
		return nil, nil
	}

	weldTol := opts.WeldTolerance
	if weldTol <= 0 {
		weldTol = dedupSeamTolerance
	}

	ctx.StartTimer(meshrepair.TimerIntersect)
	segs := IntersectMeshPairTagged(a, b)
	ctx.StopTimer(meshrepair.TimerIntersect)

	if len(segs) == 0 {
		// The surfaces never cross: union is the plain concatenation,
		// intersection is empty, and subtraction leaves a untouched.
		ctx.Progressf("no intersection segments")
		switch op {
		case OpIntersect:
			return nil, nil
		case OpUnion:
			combined := make(Soup, 0, len(a)+len(b))
			combined = append(combined, a...)
			combined = append(combined, b...)
			groups := groupTags(GroupAOutside, len(a))
			groups = append(groups, groupTags(GroupBOutside, len(b))...)
			return finishResult(ctx, combined, groups, weldTol)
		default: // OpSubtract
			combined := make(Soup, len(a))
			copy(combined, a)
			return finishResult(ctx, combined, groupTags(GroupAOutside, len(a)), weldTol)
		}
	}

	rings := meshrepair.ChainSegments(toRepairSegments(segs))
	ctx.Progressf("%d intersection segments chaining into %d polylines", len(segs), len(rings))

	crossedA := crossedSetA(segs)
	crossedB := crossedSetB(segs)
	curve := curveKeys(segs)

	ctx.Progressf("building spatial grids for %d / %d input triangles", len(a), len(b))
	gridsA := BuildGrids3(a)
	gridsB := BuildGrids3(b)

	ctx.StartTimer(meshrepair.TimerClassify)
	classifiedA, knownA := classifySide(a, crossedA, b, gridsB)
	classifiedB, knownB := classifySide(b, crossedB, a, gridsA)
	ctx.StopTimer(meshrepair.TimerClassify)

	ctx.StartTimer(meshrepair.TimerSplit)
	for i, segsForT := range crossedA {
		sub := SplitStraddlingAndClassify(a[i], segsForT, knownA, curve, b, gridsB)
		for _, st := range sub {
			classifiedA = append(classifiedA, taggedTriangle{Triangle: st.Triangle, class: st.Class})
		}
	}
	for i, segsForT := range crossedB {
		sub := SplitStraddlingAndClassify(b[i], segsForT, knownB, curve, a, gridsA)
		for _, st := range sub {
			classifiedB = append(classifiedB, taggedTriangle{Triangle: st.Triangle, class: st.Class})
		}
	}
	ctx.StopTimer(meshrepair.TimerSplit)

	aInside, aOutside := partitionByClass(classifiedA)
	bInside, bOutside := partitionByClass(classifiedB)

	ctx.StartTimer(meshrepair.TimerDedup)
	for _, group := range []*Soup{&aInside, &aOutside, &bInside, &bOutside} {
		*group = dedupSeams(*group, weldTol)
		*group = PropagateWinding(*group)
	}
	ctx.StopTimer(meshrepair.TimerDedup)

	var combined Soup
	var groups []Group
	keep := func(s Soup, g Group) {
		combined = append(combined, s...)
		groups = append(groups, groupTags(g, len(s))...)
	}
	switch op {
	case OpUnion:
		keep(aOutside, GroupAOutside)
		keep(bOutside, GroupBOutside)
	case OpIntersect:
		keep(aInside, GroupAInside)
		keep(bInside, GroupBInside)
	default: // OpSubtract
		keep(aOutside, GroupAOutside)
		for _, t := range bInside {
			combined = append(combined, t.flip())
			groups = append(groups, GroupBInside)
		}
	}

	if len(combined) == 0 {
		ctx.Progressf("operation produced no triangles")
		return nil, nil
	}
	return finishResult(ctx, combined, groups, weldTol)
}

// finishResult welds the combined soup into an indexed mesh and wraps
// both forms into a Result.
func finishResult(ctx *meshrepair.Context, combined Soup, groups []Group, weldTol float64) (*Result, error) {
	ctx.StartTimer(meshrepair.TimerWeld)
	idx, err := weld(combined, weldTol)
	ctx.StopTimer(meshrepair.TimerWeld)
	if err != nil {
		ctx.Errorf("weld failed: %v", err)
		return nil, err
	}
	ctx.Progressf("assembled %d triangles, %d unique vertices", len(idx.Triangles), len(idx.Points))

	return &Result{
		Soup:      combined,
		Groups:    groups,
		Points:    idx.Points,
		Triangles: idx.Triangles,
	}, nil
}

func groupTags(g Group, n int) []Group {
	tags := make([]Group, n)
	for i := range tags {
		tags[i] = g
	}
	return tags
}

// classifySide runs the region classifier over every non-crossed
// triangle of mesh against opposing, and returns both the tagged
// results and a vertex-key lookup of their verdicts (first write wins),
// used as the adjacency hint for splitting mesh's own crossed
// triangles.
func classifySide(mesh Soup, crossed crossedSet, opposing Soup, opposingGrids Grids3) ([]taggedTriangle, map[vkey]Classification) {
	classes := regionClassify(mesh, opposing, crossed, opposingGrids)

	var out []taggedTriangle
	known := make(map[vkey]Classification)
	for i, t := range mesh {
		if crossed[i] != nil {
			continue
		}
		out = append(out, taggedTriangle{Triangle: t, class: classes[i]})
		for _, v := range [3]Vertex{t.V0, t.V1, t.V2} {
			k := vertexKey(v)
			if _, ok := known[k]; !ok {
				known[k] = classes[i]
			}
		}
	}
	return out, known
}

// curveKeys collects the topological keys of every intersection-segment
// endpoint: the vertices lying on the intersection curve, which must
// not vote during sub-triangle classification.
func curveKeys(segs []TaggedSegment) map[vkey]bool {
	curve := make(map[vkey]bool, 2*len(segs))
	for _, s := range segs {
		curve[vertexKey(s.P0)] = true
		curve[vertexKey(s.P1)] = true
	}
	return curve
}

// partitionByClass splits classified triangles into the inside and
// outside groups consumed by the combination step. Triangles that never
// received a verdict are treated as outside, the conservative choice
// for open geometry.
func partitionByClass(tagged []taggedTriangle) (inside, outside Soup) {
	for _, t := range tagged {
		if t.class == Inside {
			inside = append(inside, t.Triangle)
		} else {
			outside = append(outside, t.Triangle)
		}
	}
	return inside, outside
}

func toRepairSegments(segs []TaggedSegment) []meshrepair.Segment {
	out := make([]meshrepair.Segment, len(segs))
	for i, s := range segs {
		out[i] = meshrepair.Segment{
			P0: meshrepair.Vertex{X: s.P0.X, Y: s.P0.Y, Z: s.P0.Z},
			P1: meshrepair.Vertex{X: s.P1.X, Y: s.P1.Y, Z: s.P1.Z},
		}
	}
	return out
}

func toMeshrepairSoup(s Soup) meshrepair.Soup {
	out := make(meshrepair.Soup, len(s))
	for i, t := range s {
		out[i] = toRepairTriangle(t)
	}
	return out
}

func fromMeshrepairSoup(s meshrepair.Soup) Soup {
	out := make(Soup, len(s))
	for i, t := range s {
		out[i] = Triangle{
			V0: Vertex{X: t.V0.X, Y: t.V0.Y, Z: t.V0.Z},
			V1: Vertex{X: t.V1.X, Y: t.V1.Y, Z: t.V1.Z},
			V2: Vertex{X: t.V2.X, Y: t.V2.Y, Z: t.V2.Z},
		}
	}
	return out
}

// dedupSeams snaps positionally coincident vertices of s (within tol)
// onto a shared representative and drops triangles left degenerate by
// the snapping, delegating to the repair collaborator.
func dedupSeams(s Soup, tol float64) Soup {
	return fromMeshrepairSoup(meshrepair.DedupSeams(toMeshrepairSoup(s), tol))
}

// weld merges coincident vertices of the assembled soup into a single
// indexed mesh, delegating to the repair collaborator.
func weld(s Soup, tol float64) (IndexedMesh, error) {
	pts, tris, err := meshrepair.Weld(toMeshrepairSoup(s), tol)
	if err != nil {
		return IndexedMesh{}, err
	}
	out := IndexedMesh{Points: make([]Vertex, len(pts)), Triangles: tris}
	for i, p := range pts {
		out.Points[i] = Vertex{X: p.X, Y: p.Y, Z: p.Z}
	}
	return out, nil
}
