// Command gen renders one frame of each pipeline variant into a hidden window,
// captures framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single pipeline capture.
type screenshot struct {
	name string            // filename without extension
	opts []triangle.Option // pipeline options
}

func run() error {
	cfg := triangle.DefaultWindowConfig()
	cfg.Title = "screenshot-gen"
	cfg.Visible = false

	ctx, err := opengl.Open(cfg)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "window", opts: []triangle.Option{triangle.WithoutGeometry()}},
		{name: "triangle"},
	}

	for _, s := range shots {
		if err := capture(ctx, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg\n", s.name)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(ctx *opengl.Context, s screenshot, outDir string) error {
	// Fresh app per screenshot so GPU resources don't leak between captures.
	app, err := triangle.New(ctx, ctx.Device(), s.opts...)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Driver().RenderFrame()
	w, h := ctx.FramebufferSize()
	img := opengl.ReadPixels(w, h)
	ctx.SwapBuffers()

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
