package triangle

import (
	"context"
	"fmt"
)

// App owns the GPU resources and the frame driver for one window.
// The window and its context belong to the caller and must outlive the App.
type App struct {
	win Window
	dev Device

	geometry *Geometry
	program  *Program
	driver   *Driver
}

// New prepares the pipeline: it logs the driver info, uploads geometry,
// loads and builds the shader program, and creates the frame driver.
// On failure, everything acquired so far is released.
func New(win Window, dev Device, opts ...Option) (*App, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	logInfo(dev.Info())

	a := &App{win: win, dev: dev}
	if cfg.vertices != nil {
		if err := a.setupGeometry(cfg); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.driver = NewDriver(dev, win, DriverConfig{
		Program:    a.program,
		Geometry:   a.geometry,
		ClearColor: cfg.clearColor,
	})
	return a, nil
}

func (a *App) setupGeometry(cfg config) error {
	geom, err := UploadGeometry(a.dev, cfg.vertices)
	if err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	a.geometry = geom

	var src ShaderSources
	if cfg.sources != nil {
		src = *cfg.sources
	} else {
		src, err = LoadShaderPair(context.Background(), cfg.vertPath, cfg.fragPath)
		if err != nil {
			return fmt.Errorf("shaders: %w", err)
		}
	}

	prog, err := BuildProgram(a.dev, src)
	if err != nil {
		return fmt.Errorf("shaders: %w", err)
	}
	a.program = prog

	if cfg.validate {
		unbind := geom.Bind(a.dev)
		err := prog.Validate(a.dev)
		unbind()
		if err != nil {
			return fmt.Errorf("shaders: %w", err)
		}
	}
	return nil
}

func logInfo(info Info) {
	logger.Info("vendor", "value", info.Vendor)
	logger.Info("renderer", "value", info.Renderer)
	logger.Info("version", "value", info.Version)
	logger.Info("shading language", "value", info.ShadingLanguage)
}

// Run drives frames until the window is closed.
func (a *App) Run() {
	a.driver.Run()
}

// Driver returns the frame driver.
func (a *App) Driver() *Driver { return a.driver }

// Geometry returns the uploaded geometry, or nil without a geometry stage.
func (a *App) Geometry() *Geometry { return a.geometry }

// Program returns the linked program, or nil without a geometry stage.
func (a *App) Program() *Program { return a.program }

// Close releases GPU resources in reverse acquisition order. It is safe to
// call more than once.
func (a *App) Close() {
	if a.program != nil {
		a.program.Delete(a.dev)
		a.program = nil
	}
	if a.geometry != nil {
		a.geometry.Delete(a.dev)
		a.geometry = nil
	}
}
