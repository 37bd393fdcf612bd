/*
Package triangle draws a single triangle with OpenGL: it uploads one
position-only vertex buffer, builds a pass-through shader program, and runs a
render loop until the window is closed.

The package is GL-agnostic. It drives a Device (the GL calls it needs) and a
Window (event poll, framebuffer size, buffer swap); backend/opengl provides
both on top of go-gl and GLFW.

# Quick Start

	ctx, err := opengl.Open(triangle.DefaultWindowConfig())
	if err != nil {
	    return err
	}
	defer ctx.Destroy()

	app, err := triangle.New(ctx, ctx.Device())
	if err != nil {
	    return err
	}
	defer app.Close()

	app.Run()

# Frame Loop

Each iteration of Driver.Step runs, in order:

	input     drain platform events; a close event switches to Quitting
	pre-draw  disable depth test and culling, viewport to framebuffer size,
	          clear color and depth, use the program
	draw      bind geometry, one non-indexed triangle draw, unbind
	present   swap buffers

The loop checks for Quitting before each iteration, so it ends within one
iteration of the close event. There is no frame pacing; the swap interval
gates the loop.

# Bindings

Geometry.Bind returns the matching unbind func. Upload, draw and readback all
run inside such a scope, so no vertex array, buffer or attribute stays
enabled between unrelated calls:

	defer geom.Bind(dev)()

# Threading

A GL context is current on one OS thread. Every Device call must happen on
the goroutine that steps the Driver. Other goroutines may read files
(LoadShaderPair does) or hand GPU work to the render thread with Driver.Do.
*/
package triangle
