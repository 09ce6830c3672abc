// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// RiverVertexShader is the default terrain and water vertex shader. A
// river.vert in the asset directory takes its place.
//
//go:embed river.vert
var RiverVertexShader string

// RiverFragmentShader is the default terrain and water fragment shader.
//
//go:embed river.frag
var RiverFragmentShader string

// AxesVertexShader is the vertex shader for the axes lines.
//
//go:embed axes.vert
var AxesVertexShader string

// AxesFragmentShader is the fragment shader for the axes lines.
//
//go:embed axes.frag
var AxesFragmentShader string
