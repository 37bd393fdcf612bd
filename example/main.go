// Example opens a 640x480 OpenGL 4.1 core window and draws one triangle until
// the window is closed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run from the repository root so ./shaders resolves
//
// Exits with status 1 if the window, context, GL loader or shader program
// cannot be set up, and 0 when the window is closed.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
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
	return nil
}
