package triangle_test

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/triangle"
)

// fakeDevice is an in-memory Device. It compiles any source that declares
// main with balanced braces, and records the calls the pipeline makes.
type fakeDevice struct {
	next  uint32
	calls []string

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	buffers  map[uint32][]float32
	vaos     map[uint32]bool

	boundVAO     uint32
	boundBuffer  uint32
	boundProgram uint32
	enabled      map[uint32]bool
	depthTest    bool
	cullFace     bool

	viewports [][4]int32
	clears    []triangle.Color
	draws     []fakeDraw
}

type fakeShader struct {
	stage  triangle.Stage
	source string
}

type fakeProgram struct {
	attached []uint32
	linked   bool
}

type fakeDraw struct {
	program, vao, buffer uint32
	attribEnabled        bool
	first, count         int32
	vertices             []float32
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		shaders:   map[uint32]*fakeShader{},
		programs:  map[uint32]*fakeProgram{},
		buffers:   map[uint32][]float32{},
		vaos:      map[uint32]bool{},
		enabled:   map[uint32]bool{},
		depthTest: true,
		cullFace:  true,
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) id() uint32 {
	d.next++
	return d.next
}

// live returns the number of shader, program, buffer and vertex array
// objects not yet deleted.
func (d *fakeDevice) live() int {
	return len(d.shaders) + len(d.programs) + len(d.buffers) + len(d.vaos)
}

func (d *fakeDevice) Info() triangle.Info {
	return triangle.Info{
		Vendor:          "fake",
		Renderer:        "fake renderer",
		Version:         "4.1 fake",
		ShadingLanguage: "4.10",
	}
}

func (d *fakeDevice) CreateShader(stage triangle.Stage) uint32 {
	id := d.id()
	d.shaders[id] = &fakeShader{stage: stage}
	d.record("CreateShader %s", stage)
	return id
}

func (d *fakeDevice) ShaderSource(shader uint32, source string) {
	d.shaders[shader].source = source
}

func (d *fakeDevice) CompileShader(shader uint32) triangle.Status {
	d.record("CompileShader %d", shader)
	src := d.shaders[shader].source
	switch {
	case !strings.Contains(src, "void main"):
		return triangle.Status{Log: "ERROR: 0:1: 'main' : function not defined"}
	case strings.Count(src, "{") != strings.Count(src, "}"):
		return triangle.Status{Log: "ERROR: 0:6: '' : syntax error: unexpected end of file"}
	}
	return triangle.Status{OK: true}
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.record("DeleteShader %d", shader)
	delete(d.shaders, shader)
}

func (d *fakeDevice) CreateProgram() uint32 {
	id := d.id()
	d.programs[id] = &fakeProgram{}
	d.record("CreateProgram")
	return id
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	p := d.programs[program]
	p.attached = append(p.attached, shader)
}

func (d *fakeDevice) DetachShader(program, shader uint32) {
	p := d.programs[program]
	for i, s := range p.attached {
		if s == shader {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			return
		}
	}
}

func (d *fakeDevice) LinkProgram(program uint32) triangle.Status {
	d.record("LinkProgram %d", program)
	p := d.programs[program]
	stages := map[triangle.Stage]bool{}
	for _, s := range p.attached {
		if sh, ok := d.shaders[s]; ok {
			stages[sh.stage] = true
		}
	}
	if !stages[triangle.StageVertex] || !stages[triangle.StageFragment] {
		return triangle.Status{Log: "ERROR: program is missing a stage"}
	}
	p.linked = true
	return triangle.Status{OK: true}
}

func (d *fakeDevice) ValidateProgram(program uint32) triangle.Status {
	d.record("ValidateProgram %d", program)
	if !d.programs[program].linked {
		return triangle.Status{Log: "program not linked"}
	}
	if d.boundVAO == 0 {
		return triangle.Status{Log: "Validation Failed: No vertex array object bound."}
	}
	return triangle.Status{OK: true}
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.record("UseProgram %d", program)
	d.boundProgram = program
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.record("DeleteProgram %d", program)
	delete(d.programs, program)
}

func (d *fakeDevice) GenVertexArray() uint32 {
	id := d.id()
	d.vaos[id] = true
	return id
}

func (d *fakeDevice) BindVertexArray(vao uint32) {
	d.record("BindVertexArray %d", vao)
	d.boundVAO = vao
}

func (d *fakeDevice) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray %d", vao)
	delete(d.vaos, vao)
}

func (d *fakeDevice) GenBuffer() uint32 {
	id := d.id()
	d.buffers[id] = nil
	return id
}

func (d *fakeDevice) BindArrayBuffer(buffer uint32) {
	d.record("BindArrayBuffer %d", buffer)
	d.boundBuffer = buffer
}

func (d *fakeDevice) ArrayBufferData(data []float32) {
	d.record("ArrayBufferData %d", len(data))
	d.buffers[d.boundBuffer] = append([]float32(nil), data...)
}

func (d *fakeDevice) ReadArrayBuffer(n int) []float32 {
	return append([]float32(nil), d.buffers[d.boundBuffer][:n]...)
}

func (d *fakeDevice) DeleteBuffer(buffer uint32) {
	d.record("DeleteBuffer %d", buffer)
	delete(d.buffers, buffer)
}

func (d *fakeDevice) VertexAttribPointer(index uint32, size int32) {
	d.record("VertexAttribPointer %d %d", index, size)
}

func (d *fakeDevice) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray %d", index)
	d.enabled[index] = true
}

func (d *fakeDevice) DisableVertexAttribArray(index uint32) {
	d.record("DisableVertexAttribArray %d", index)
	d.enabled[index] = false
}

func (d *fakeDevice) DisableDepthTest() { d.depthTest = false }

func (d *fakeDevice) DisableCullFace() { d.cullFace = false }

func (d *fakeDevice) Viewport(x, y, width, height int32) {
	d.viewports = append(d.viewports, [4]int32{x, y, width, height})
}

func (d *fakeDevice) Clear(c triangle.Color) {
	d.record("Clear")
	d.clears = append(d.clears, c)
}

func (d *fakeDevice) DrawTriangles(first, count int32) {
	d.record("DrawTriangles %d %d", first, count)
	d.draws = append(d.draws, fakeDraw{
		program:       d.boundProgram,
		vao:           d.boundVAO,
		buffer:        d.boundBuffer,
		attribEnabled: d.enabled[0],
		first:         first,
		count:         count,
		vertices:      append([]float32(nil), d.buffers[d.boundBuffer]...),
	})
}

// fakeWindow is a scripted Window. events[i] is returned by the i-th poll.
type fakeWindow struct {
	width, height int
	events        map[int][]triangle.Event
	polls         int
	swaps         int
}

func newFakeWindow(width, height int) *fakeWindow {
	return &fakeWindow{width: width, height: height, events: map[int][]triangle.Event{}}
}

// closeAt injects a close event at the given poll.
func (w *fakeWindow) closeAt(poll int) {
	w.events[poll] = append(w.events[poll], triangle.Event{Kind: triangle.EventQuit})
}

func (w *fakeWindow) PollEvents() []triangle.Event {
	ev := w.events[w.polls]
	w.polls++
	for _, e := range ev {
		if e.Kind == triangle.EventResize {
			w.width, w.height = e.Width, e.Height
		}
	}
	return ev
}

func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) SwapBuffers() { w.swaps++ }

const (
	passVertex = `#version 410 core
layout (location = 0) in vec3 position;
void main() {
    gl_Position = vec4(position, 1.0);
}
`
	passFragment = `#version 410 core
out vec4 color;
void main() {
    color = vec4(1.0, 0.5, 0.0, 1.0);
}
`
	// brokenFragment is missing its closing brace.
	brokenFragment = `#version 410 core
out vec4 color;
void main() {
    color = vec4(1.0, 0.5, 0.0, 1.0);
`
)

var passSources = triangle.ShaderSources{Vertex: passVertex, Fragment: passFragment}
