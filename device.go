package triangle

// Device is the subset of OpenGL the pipeline drives. All methods must be
// called from the goroutine that owns the current context.
//
// backend/opengl provides the go-gl implementation.
type Device interface {
	// Info reports vendor, renderer and version strings.
	Info() Info

	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	// CompileShader compiles the stage object and reports its compile status.
	CompileShader(shader uint32) Status
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	// LinkProgram links the program and reports its link status.
	LinkProgram(program uint32) Status
	// ValidateProgram validates the program against the current state and
	// reports its validate status.
	ValidateProgram(program uint32) Status
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindArrayBuffer(buffer uint32)
	// ArrayBufferData uploads data to the bound array buffer with static usage.
	ArrayBufferData(data []float32)
	// ReadArrayBuffer reads n floats back from the bound array buffer.
	ReadArrayBuffer(n int) []float32
	DeleteBuffer(buffer uint32)

	// VertexAttribPointer describes attribute index as size tightly packed
	// floats starting at offset zero of the bound array buffer.
	VertexAttribPointer(index uint32, size int32)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	DisableDepthTest()
	DisableCullFace()
	Viewport(x, y, width, height int32)
	// Clear clears the color and depth buffers to c.
	Clear(c Color)
	// DrawTriangles issues a non-indexed triangle draw.
	DrawTriangles(first, count int32)
}

// Window is the platform window the frame driver presents to.
type Window interface {
	// PollEvents drains all pending platform events without blocking.
	PollEvents() []Event
	// FramebufferSize returns the current drawable size in pixels.
	FramebufferSize() (width, height int)
	// SwapBuffers presents the back buffer. It may block until the display
	// accepts a new frame.
	SwapBuffers()
}

// WindowConfig describes the window and context to request.
type WindowConfig struct {
	Title         string
	Width, Height int

	// GL context request. Profile is always core.
	Major, Minor int
	DoubleBuffer bool
	DepthBits    int

	Resizable    bool
	Visible      bool
	SwapInterval int
}

// DefaultWindowConfig returns the 640x480 OpenGL 4.1 core window used by the
// example program.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:        "hello triangle",
		Width:        640,
		Height:       480,
		Major:        4,
		Minor:        1,
		DoubleBuffer: true,
		DepthBits:    24,
		Visible:      true,
		SwapInterval: 1,
	}
}
