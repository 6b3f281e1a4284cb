package meshcsg

// Grid is a 2D uniform hash grid over triangle bounding boxes, projected
// onto one of the three coordinate planes. A triangle spanning many
// cells is indexed redundantly; queries deduplicate by a hit-set of
// triangle indices.
//
// The projection is caller-chosen because the point classifier needs an
// independent grid per projection plane.
type Grid struct {
	proj     Projection
	cellSize float64
	buckets  map[cellCoord][]int
}

type cellCoord struct {
	cx, cy int64
}

// NewGrid builds a spatial grid over triangles, indexing each one by the
// integer cells its projected AABB spans.
func NewGrid(triangles Soup, cellSize float64, proj Projection) *Grid {
	if cellSize <= 0 {
		cellSize = 0.1
	}
	g := &Grid{
		proj:     proj,
		cellSize: cellSize,
		buckets:  make(map[cellCoord][]int, len(triangles)),
	}
	for i, t := range triangles {
		bb := t.AABB()
		aMin, bMin, _ := project2D(bb.Min, proj)
		aMax, bMax, _ := project2D(bb.Max, proj)
		g.insert(i, aMin, bMin, aMax, bMax)
	}
	return g
}

func (g *Grid) cellOf(a, b float64) cellCoord {
	return cellCoord{floorDiv(a, g.cellSize), floorDiv(b, g.cellSize)}
}

func floorDiv(v, cell float64) int64 {
	q := v / cell
	f := int64(q)
	if q < 0 && float64(f) != q {
		f--
	}
	return f
}

func (g *Grid) insert(idx int, aMin, bMin, aMax, bMax float64) {
	cMin := g.cellOf(aMin, bMin)
	cMax := g.cellOf(aMax, bMax)
	for cy := cMin.cy; cy <= cMax.cy; cy++ {
		for cx := cMin.cx; cx <= cMax.cx; cx++ {
			c := cellCoord{cx, cy}
			g.buckets[c] = append(g.buckets[c], idx)
		}
	}
}

// QueryBox returns the unique set of triangle indices whose cells
// overlap the 2D box [aMin,bMin]-[aMax,bMax] in the grid's projection.
func (g *Grid) QueryBox(aMin, bMin, aMax, bMax float64) []int {
	cMin := g.cellOf(aMin, bMin)
	cMax := g.cellOf(aMax, bMax)
	seen := make(map[int]bool)
	var out []int
	for cy := cMin.cy; cy <= cMax.cy; cy++ {
		for cx := cMin.cx; cx <= cMax.cx; cx++ {
			for _, idx := range g.buckets[cellCoord{cx, cy}] {
				if !seen[idx] {
					seen[idx] = true
					out = append(out, idx)
				}
			}
		}
	}
	return out
}

// QueryPoint returns the (possibly empty) set of triangle indices from
// the single cell containing (a, b).
func (g *Grid) QueryPoint(a, b float64) []int {
	return g.buckets[g.cellOf(a, b)]
}

// AABBBox2D projects an AABB onto the grid's plane, returning the 2D
// box bounds suitable for QueryBox.
func (g *Grid) AABBBox2D(bb AABB) (aMin, bMin, aMax, bMax float64) {
	aMin, bMin, _ = project2D(bb.Min, g.proj)
	aMax, bMax, _ = project2D(bb.Max, g.proj)
	return
}
