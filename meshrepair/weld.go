package meshrepair

import (
	"fmt"
	"math"
)

// Weld keys every vertex of s by rounding its coordinates to multiples
// of tol, pools all vertices sharing a key into a single point (the
// first one seen), and returns the resulting unique-vertex point list
// plus triangles referencing it by index. Two vertices closer than tol
// that round into neighbouring cells are not merged. Degenerate
// triangles left behind by welding (fewer than three distinct vertex
// indices) are dropped.
func Weld(s Soup, tol float64) (points []Vertex, triangles [][3]int, err error) {
	if tol <= 0 {
		return nil, nil, fmt.Errorf("meshrepair: weld tolerance must be positive, got %g", tol)
	}
	scale := 1.0 / tol

	index := make(map[[3]int64]int)
	for _, t := range s {
		for _, v := range [3]Vertex{t.V0, t.V1, t.V2} {
			k := weldKey(v, scale)
			if _, ok := index[k]; !ok {
				index[k] = len(points)
				points = append(points, v)
			}
		}
	}

	for _, t := range s {
		i0 := index[weldKey(t.V0, scale)]
		i1 := index[weldKey(t.V1, scale)]
		i2 := index[weldKey(t.V2, scale)]
		if i0 == i1 || i1 == i2 || i0 == i2 {
			continue
		}
		triangles = append(triangles, [3]int{i0, i1, i2})
	}
	return points, triangles, nil
}

func weldKey(v Vertex, scale float64) [3]int64 {
	return [3]int64{
		int64(math.Round(v.X * scale)),
		int64(math.Round(v.Y * scale)),
		int64(math.Round(v.Z * scale)),
	}
}
