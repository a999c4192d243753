// Package renderer draws the terrain mesh with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/heightmaps/internal/engine/shader"
	"github.com/Faultbox/heightmaps/internal/engine/terrain"
	"github.com/Faultbox/heightmaps/internal/logger"
	"github.com/Faultbox/heightmaps/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	ClearColor  [3]float32
	ModelScale  float32 // uniform scale applied to the unit grid
	HeightScale float32 // vertical displacement for a white heightmap texel
	Tiling      float32 // color texture repeats across the grid
}

// Uniform names shared with the terrain shaders.
const (
	uniformMVP         = "mvp"
	uniformHeightScale = "heightScale"
	uniformTiling      = "tiling"
)

// Init loads the OpenGL function pointers.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)
	return nil
}

// Renderer owns the terrain GPU state.
type Renderer struct {
	config  Config
	program *shader.Program
	model   math.Mat4

	vao, vbo, ebo uint32
	indexCount    int

	textures [unitCount]*Texture
}

// New creates a renderer drawing with program. The renderer takes ownership
// of the program and deletes it on Close.
func New(cfg Config, program *shader.Program) *Renderer {
	r := &Renderer{
		config:  cfg,
		program: program,
		model:   math.Scale(cfg.ModelScale, cfg.ModelScale, cfg.ModelScale),
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	program.Use()
	for unit := TextureUnit(0); unit < unitCount; unit++ {
		program.SetInt(unit.Sampler(), int32(unit))
	}
	program.SetFloat(uniformHeightScale, cfg.HeightScale)
	program.SetFloat(uniformTiling, cfg.Tiling)

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	return r
}

// UploadMesh replaces the GPU vertex and index buffers with mesh.
func (r *Renderer) UploadMesh(mesh *terrain.Mesh) {
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), unsafe.Offsetof(terrain.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)

	// TexCoord (location 1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, int32(vertexSize), unsafe.Offsetof(terrain.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.indexCount = mesh.IndexCount()

	logger.Debug("terrain mesh uploaded",
		zap.Int("resolution", mesh.Resolution),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("indices", r.indexCount),
		zap.Float32s("min", mesh.Bounds.Min[:]),
		zap.Float32s("max", mesh.Bounds.Max[:]),
	)
}

// IndexCount returns the number of indices in the uploaded mesh.
func (r *Renderer) IndexCount() int {
	return r.indexCount
}

// SetTexture assigns a texture to a unit. The renderer deletes assigned
// textures on Close.
func (r *Renderer) SetTexture(unit TextureUnit, tex *Texture) {
	if old := r.textures[unit]; old != nil && old != tex {
		old.Delete()
	}
	r.textures[unit] = tex
}

// SetViewProjection uploads MVP = projection * view * model.
func (r *Renderer) SetViewProjection(view, projection math.Mat4) {
	mvp := projection.Mul(view).Mul(r.model)
	r.program.Use()
	r.program.SetMat4(uniformMVP, mvp)
}

// Begin clears the frame and binds the program and textures.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	for unit, tex := range r.textures {
		if tex != nil {
			tex.Bind(TextureUnit(unit))
		}
	}
	r.program.Use()
}

// Draw issues one indexed triangle draw of indexCount indices.
func (r *Renderer) Draw(indexCount int) {
	if indexCount <= 0 {
		return
	}
	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, int32(indexCount), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// ReadPixels reads back the default framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Close releases buffers, textures and the shader program.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for i, tex := range r.textures {
		if tex != nil {
			tex.Delete()
			r.textures[i] = nil
		}
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
}
