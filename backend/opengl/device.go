// Package opengl provides the OpenGL 4.1 core Device and the GLFW window and
// context for the triangle package.
package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/triangle"
)

const sizeofFloat32 = int(unsafe.Sizeof(float32(0)))

// Device implements triangle.Device with go-gl.
// The context it was created for must be current on the calling thread.
type Device struct{}

var _ triangle.Device = Device{}

// Info reports the GL_VENDOR, GL_RENDERER, GL_VERSION and
// GL_SHADING_LANGUAGE_VERSION strings.
func (Device) Info() triangle.Info {
	return triangle.Info{
		Vendor:          glString(gl.VENDOR),
		Renderer:        glString(gl.RENDERER),
		Version:         glString(gl.VERSION),
		ShadingLanguage: glString(gl.SHADING_LANGUAGE_VERSION),
	}
}

func glString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (Device) CreateShader(stage triangle.Stage) uint32 {
	return gl.CreateShader(glStage(stage))
}

func glStage(stage triangle.Stage) uint32 {
	if stage == triangle.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// ShaderSource passes an explicit length, so source needs no NUL terminator.
func (Device) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source)
	length := int32(len(source))
	gl.ShaderSource(shader, 1, csource, &length)
	free()
}

func (Device) CompileShader(shader uint32) triangle.Status {
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return triangle.Status{OK: true}
	}

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return triangle.Status{Log: gl.GoStr(&log[0])}
}

func (Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (Device) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (Device) LinkProgram(program uint32) triangle.Status {
	gl.LinkProgram(program)
	return programStatus(program, gl.LINK_STATUS)
}

func (Device) ValidateProgram(program uint32) triangle.Status {
	gl.ValidateProgram(program)
	return programStatus(program, gl.VALIDATE_STATUS)
}

func programStatus(program, pname uint32) triangle.Status {
	var status int32
	gl.GetProgramiv(program, pname, &status)
	if status == gl.TRUE {
		return triangle.Status{OK: true}
	}

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return triangle.Status{Log: gl.GoStr(&log[0])}
}

func (Device) UseProgram(program uint32) { gl.UseProgram(program) }

func (Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Device) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (Device) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (Device) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (Device) BindArrayBuffer(buffer uint32) { gl.BindBuffer(gl.ARRAY_BUFFER, buffer) }

func (Device) ArrayBufferData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*sizeofFloat32, gl.Ptr(data), gl.STATIC_DRAW)
}

func (Device) ReadArrayBuffer(n int) []float32 {
	out := make([]float32, n)
	if n == 0 {
		return out
	}
	gl.GetBufferSubData(gl.ARRAY_BUFFER, 0, n*sizeofFloat32, gl.Ptr(out))
	return out
}

func (Device) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (Device) VertexAttribPointer(index uint32, size int32) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, 0, 0)
}

func (Device) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Device) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (Device) DisableDepthTest() { gl.Disable(gl.DEPTH_TEST) }

func (Device) DisableCullFace() { gl.Disable(gl.CULL_FACE) }

func (Device) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (Device) Clear(c triangle.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (Device) DrawTriangles(first, count int32) { gl.DrawArrays(gl.TRIANGLES, first, count) }
