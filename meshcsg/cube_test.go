package meshcsg

// patchSoup returns an open, flat rectangular patch centered at c,
// spanning w by h in X and Y at constant Z, subdivided into div x div
// quads of two triangles each.
func patchSoup(c Vertex, w, h float64, div int) Soup {
	var soup Soup
	x0, y0 := c.X-w/2, c.Y-h/2
	dx, dy := w/float64(div), h/float64(div)
	for i := 0; i < div; i++ {
		for j := 0; j < div; j++ {
			a := Vertex{x0 + float64(i)*dx, y0 + float64(j)*dy, c.Z}
			b := Vertex{x0 + float64(i+1)*dx, y0 + float64(j)*dy, c.Z}
			cc := Vertex{x0 + float64(i+1)*dx, y0 + float64(j+1)*dy, c.Z}
			d := Vertex{x0 + float64(i)*dx, y0 + float64(j+1)*dy, c.Z}
			soup = append(soup, Triangle{a, b, cc}, Triangle{a, cc, d})
		}
	}
	return soup
}

// cubeSoup returns a closed, 12-triangle cube centered at c with half
// extent h, used as shared fixture geometry across this package's
// tests.
func cubeSoup(c Vertex, h float64) Soup {
	v := func(dx, dy, dz float64) Vertex {
		return Vertex{c.X + dx*h, c.Y + dy*h, c.Z + dz*h}
	}
	v000, v100 := v(-1, -1, -1), v(1, -1, -1)
	v010, v110 := v(-1, 1, -1), v(1, 1, -1)
	v001, v101 := v(-1, -1, 1), v(1, -1, 1)
	v011, v111 := v(-1, 1, 1), v(1, 1, 1)

	quad := func(a, b, c, d Vertex) []Triangle {
		return []Triangle{{a, b, c}, {a, c, d}}
	}

	var soup Soup
	soup = append(soup, quad(v000, v010, v110, v100)...) // -Z
	soup = append(soup, quad(v001, v101, v111, v011)...) // +Z
	soup = append(soup, quad(v000, v100, v101, v001)...) // -Y
	soup = append(soup, quad(v010, v011, v111, v110)...) // +Y
	soup = append(soup, quad(v000, v001, v011, v010)...) // -X
	soup = append(soup, quad(v100, v110, v111, v101)...) // +X
	return soup
}
