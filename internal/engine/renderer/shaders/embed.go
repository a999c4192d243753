// Package shaders embeds the default terrain GLSL sources.
package shaders

import _ "embed"

//go:embed terrain.vert
var TerrainVertexShader string

//go:embed terrain.frag
var TerrainFragmentShader string
