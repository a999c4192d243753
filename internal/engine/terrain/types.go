// Package terrain builds the tessellated ground surface drawn by the viewer.
package terrain

// Vertex is a single grid vertex. The surface carries no normals; shading
// comes from texture blending only.
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
}

// Mesh holds an indexed grid ready for GPU upload.
type Mesh struct {
	Resolution int
	Vertices   []Vertex // row-major, Resolution*Resolution entries
	Indices    []uint32 // two triangles per grid cell
	Bounds     Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// IndexCount returns the number of indices to draw.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// VertexCount returns the number of vertices a grid of the given resolution has.
func VertexCount(resolution int) int {
	return resolution * resolution
}

// IndexCount returns the number of indices a grid of the given resolution has.
func IndexCount(resolution int) int {
	cells := resolution - 1
	return 6 * cells * cells
}
