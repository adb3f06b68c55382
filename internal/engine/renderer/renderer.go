// Package renderer draws the tube mesh with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/andrepology/pond/internal/engine/shader"
	"github.com/andrepology/pond/internal/logger"
	"github.com/andrepology/pond/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the GL state for the tube mesh: one VAO with dynamic
// position/normal/uv buffers rewritten every frame and a static index
// buffer uploaded once per topology.
type Renderer struct {
	config Config

	program  uint32
	locMVP   int32
	locLight int32
	locColor int32

	vao     uint32
	vboPos  uint32
	vboNorm uint32
	vboUV   uint32
	ebo     uint32

	// sizes the GPU buffers were last allocated for
	vertexFloats int
	indexCount   int32
}

// New creates a new renderer.
// Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.96, 0.96, 0.95, 1.0)

	program, err := shader.CompileProgram(tubeVertexShader, tubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("tube shader: %w", err)
	}
	r.program = program
	r.locMVP = shader.GetUniform(program, "uMVP")
	r.locLight = shader.GetUniform(program, "uLightDir")
	r.locColor = shader.GetUniform(program, "uBaseColor")

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vboPos)
	gl.GenBuffers(1, &r.vboNorm)
	gl.GenBuffers(1, &r.vboUV)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboPos)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboNorm)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboUV)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BindVertexArray(0)

	return r, nil
}

// UploadMesh pushes the current attribute buffers to the GPU. The first
// call (and any call after the topology grows) allocates GPU storage;
// steady-state calls reuse it with BufferSubData.
func (r *Renderer) UploadMesh(positions, normals, uvs []float32, indices []uint32) {
	gl.BindVertexArray(r.vao)

	if len(positions) != r.vertexFloats {
		r.vertexFloats = len(positions)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vboPos)
		gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.DYNAMIC_DRAW)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vboNorm)
		gl.BufferData(gl.ARRAY_BUFFER, len(normals)*4, unsafe.Pointer(&normals[0]), gl.DYNAMIC_DRAW)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vboUV)
		gl.BufferData(gl.ARRAY_BUFFER, len(uvs)*4, unsafe.Pointer(&uvs[0]), gl.DYNAMIC_DRAW)

		r.indexCount = int32(len(indices))
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

		logger.Debug("mesh buffers allocated",
			zap.Int("vertices", len(positions)/3),
			zap.Int("indices", len(indices)),
		)
	} else {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vboPos)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(positions)*4, unsafe.Pointer(&positions[0]))
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vboNorm)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(normals)*4, unsafe.Pointer(&normals[0]))
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vboUV)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(uvs)*4, unsafe.Pointer(&uvs[0]))
	}

	gl.BindVertexArray(0)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the tube with the given model-view-projection matrix.
func (r *Renderer) Draw(mvp math.Mat4) {
	if r.indexCount == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMVP, 1, false, mvp.Ptr())
	gl.Uniform3f(r.locLight, 0.4, 0.8, 0.45)
	gl.Uniform3f(r.locColor, 0.94, 0.48, 0.23)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Aspect returns the current width/height ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	gl.DeleteBuffers(1, &r.vboPos)
	gl.DeleteBuffers(1, &r.vboNorm)
	gl.DeleteBuffers(1, &r.vboUV)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteVertexArrays(1, &r.vao)
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

const tubeVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aUV;

uniform mat4 uMVP;

out vec3 vNormal;
out vec2 vUV;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vNormal = aNormal;
	vUV = aUV;
}`

const tubeFragmentShader = `#version 410 core
in vec3 vNormal;
in vec2 vUV;

uniform vec3 uLightDir;
uniform vec3 uBaseColor;

out vec4 fragColor;

void main() {
	vec3 n = normalize(vNormal);
	float diff = max(dot(n, normalize(uLightDir)), 0.0);
	// darken slightly toward the tail so the taper reads
	float fade = 1.0 - 0.25 * vUV.y;
	vec3 color = uBaseColor * fade * (0.35 + 0.65 * diff);
	fragColor = vec4(color, 1.0);
}`
