package terrain

import "fmt"

// MinResolution is the smallest grid Generate accepts.
const MinResolution = 2

// Generate builds a resolution x resolution grid covering the unit square
// centered at the origin on the XZ plane (height 0).
//
// Vertex (i, j) is stored at index i*resolution+j. Each cell is split along
// the (i+1, j)-(i, j+1) diagonal into two triangles. Generate keeps no state
// between calls. It panics when resolution < MinResolution; callers clamp
// the requested resolution before asking for a mesh.
func Generate(resolution int) *Mesh {
	if resolution < MinResolution {
		panic(fmt.Sprintf("terrain: resolution %d below minimum %d", resolution, MinResolution))
	}

	mesh := &Mesh{
		Resolution: resolution,
		Vertices:   make([]Vertex, 0, VertexCount(resolution)),
		Indices:    make([]uint32, 0, IndexCount(resolution)),
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}

	step := float32(resolution - 1)
	for i := 0; i < resolution; i++ {
		u := float32(i) / step
		for j := 0; j < resolution; j++ {
			v := float32(j) / step
			pos := [3]float32{u - 0.5, 0, v - 0.5}
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: pos,
				TexCoord: [2]float32{u, v},
			})
			updateBounds(&mesh.Bounds, pos)
		}
	}

	r := uint32(resolution)
	for i := uint32(0); i < r-1; i++ {
		for j := uint32(0); j < r-1; j++ {
			topLeft := i*r + j
			bottomLeft := (i+1)*r + j
			topRight := i*r + j + 1
			bottomRight := (i+1)*r + j + 1

			mesh.Indices = append(mesh.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return mesh
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
