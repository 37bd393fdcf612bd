package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/triangle"
)

// Context is a GLFW window with its current OpenGL context.
// It implements triangle.Window.
type Context struct {
	window *glfw.Window
	events []triangle.Event
}

var _ triangle.Window = (*Context)(nil)

// Open initializes GLFW, creates the window and its context, makes the
// context current and loads the GL function pointers. The calling goroutine
// must be locked to the main OS thread.
//
// On failure, whatever was acquired is released before returning.
func Open(cfg triangle.WindowConfig) (*Context, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	for _, h := range windowHints(cfg) {
		glfw.WindowHint(h.hint, h.value)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	c := &Context{window: window}
	window.SetCloseCallback(c.closeCallback)
	window.SetFramebufferSizeCallback(c.framebufferSizeCallback)
	return c, nil
}

// Device returns the GL device for this context.
func (c *Context) Device() triangle.Device { return Device{} }

// PollEvents processes pending GLFW events and returns them.
func (c *Context) PollEvents() []triangle.Event {
	glfw.PollEvents()
	return c.drain()
}

func (c *Context) drain() []triangle.Event {
	events := c.events
	c.events = nil
	return events
}

// FramebufferSize returns the drawable size in pixels, which differs from the
// window size on high-DPI displays.
func (c *Context) FramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// SwapBuffers presents the back buffer.
func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

// RequestClose requests the window to close. The request is delivered as
// triangle.EventQuit by the next PollEvents.
func (c *Context) RequestClose() {
	c.window.SetShouldClose(true)
	c.closeCallback(c.window)
}

// Destroy destroys the window and its context, then terminates GLFW.
func (c *Context) Destroy() {
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
	glfw.Terminate()
}

func (c *Context) closeCallback(w *glfw.Window) {
	c.events = append(c.events, triangle.Event{Kind: triangle.EventQuit})
}

func (c *Context) framebufferSizeCallback(w *glfw.Window, width, height int) {
	c.events = append(c.events, triangle.Event{
		Kind:   triangle.EventResize,
		Width:  width,
		Height: height,
	})
}

type windowHint struct {
	hint  glfw.Hint
	value int
}

// windowHints maps cfg to GLFW hints. The profile is always core and
// forward compatible, which macOS requires for 4.1.
func windowHints(cfg triangle.WindowConfig) []windowHint {
	return []windowHint{
		{glfw.ContextVersionMajor, cfg.Major},
		{glfw.ContextVersionMinor, cfg.Minor},
		{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
		{glfw.OpenGLForwardCompatible, glfw.True},
		{glfw.DoubleBuffer, glfwBool(cfg.DoubleBuffer)},
		{glfw.DepthBits, cfg.DepthBits},
		{glfw.Resizable, glfwBool(cfg.Resizable)},
		{glfw.Visible, glfwBool(cfg.Visible)},
	}
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
