// Package meshio reads and writes triangle meshes to and from the
// Wavefront OBJ format used throughout the example inputs and outputs
// of the meshcsg CLI.
package meshio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/arl/gobj"

	"github.com/arl/go-meshcsg/meshcsg"
)

// LoadOBJ reads an OBJ file and returns its content as a triangle soup,
// fan-triangulating any face with more than three vertices.
func LoadOBJ(path string) (meshcsg.Soup, error) {
	obj, err := gobj.Load(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: load %q: %w", path, err)
	}

	verts := obj.Verts()

	var soup meshcsg.Soup
	for _, poly := range obj.Polys() {
		if len(poly) < 3 {
			continue
		}
		v0 := toMeshVertex(verts[poly[0]])
		for i := 2; i < len(poly); i++ {
			soup = append(soup, meshcsg.Triangle{
				V0: v0,
				V1: toMeshVertex(verts[poly[i-1]]),
				V2: toMeshVertex(verts[poly[i]]),
			})
		}
	}
	return soup, nil
}

func toMeshVertex(v gobj.Vertex) meshcsg.Vertex {
	return meshcsg.Vertex{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// SaveOBJ writes mesh to path as an OBJ file: one "v" line per point and
// one "f" line per triangle, using 1-based vertex indices.
//
// gobj only decodes OBJ files; it carries no encoder, so this writes
// the handful of lines the format needs directly rather than adopting a
// second OBJ library for the opposite direction.
func SaveOBJ(path string, mesh meshcsg.IndexedMesh) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("meshio: create %q: %w", path, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, p := range mesh.Points {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	for _, t := range mesh.Triangles {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1); err != nil {
			return err
		}
	}
	return w.Flush()
}
