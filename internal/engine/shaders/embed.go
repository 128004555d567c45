// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader transforms interleaved mesh vertices (location 0
// position, 1 normal, 2 texture coordinate).
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader shades with a Lambert term and a UV checker so seams
// and texture mapping are visible.
//
//go:embed mesh.frag
var MeshFragmentShader string
