package renderer

import (
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/heightmaps/internal/engine/texture"
)

// TextureUnit is a fixed sampler slot in the terrain shaders.
type TextureUnit int

const (
	UnitGrass TextureUnit = iota
	UnitRock
	UnitSnow
	UnitHeightMap

	unitCount
)

var samplerNames = [unitCount]string{
	UnitGrass:     "textureGrass",
	UnitRock:      "textureRock",
	UnitSnow:      "textureSnow",
	UnitHeightMap: "heightMap",
}

// Sampler returns the shader uniform bound to the unit.
func (u TextureUnit) Sampler() string {
	return samplerNames[u]
}

// Clamped reports whether textures on this unit use CLAMP_TO_EDGE.
func (u TextureUnit) Clamped() bool {
	return u == UnitHeightMap
}

// Fallback returns the 1x1 texture used when the unit's image cannot be loaded.
// Color layers get mid grey; the heightmap gets black, which leaves the
// terrain flat.
func (u TextureUnit) Fallback() *texture.Image {
	if u == UnitHeightMap {
		return texture.Solid("fallback-heightmap", color.RGBA{A: 255})
	}
	return texture.Solid("fallback-"+u.Sampler(), color.RGBA{R: 128, G: 128, B: 128, A: 255})
}

// Texture is an uploaded 2D texture.
type Texture struct {
	id uint32
}

// UploadTexture creates a mipmapped, linearly filtered 2D texture. clamp
// selects CLAMP_TO_EDGE wrapping instead of REPEAT.
func UploadTexture(img *texture.Image, clamp bool) *Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Width()), int32(img.Height()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.RGBA.Pix))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	wrap := int32(gl.REPEAT)
	if clamp {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &Texture{id: id}
}

// Bind binds the texture to a texture unit.
func (t *Texture) Bind(unit TextureUnit) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
