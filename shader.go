package triangle

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// Default shader locations, relative to the working directory.
const (
	DefaultVertexShaderPath   = "./shaders/vert.glsl"
	DefaultFragmentShaderPath = "./shaders/frag.glsl"
)

// ShaderSources holds the text of a vertex/fragment pair.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// LoadShader reads the shader file at path. Every call reads from disk.
//
// If the file cannot be read, LoadShader logs the failure and returns an
// empty string with an error wrapping ErrShaderNotFound.
func LoadShader(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		logger.Error("unable to open shader file", "path", path, "err", err)
		return "", fmt.Errorf("load shader %q: %w: %w", path, ErrShaderNotFound, err)
	}
	return string(b), nil
}

// LoadShaderPair reads the vertex and fragment files concurrently. It only
// touches the filesystem and is safe to call off the render thread.
func LoadShaderPair(ctx context.Context, vertPath, fragPath string) (ShaderSources, error) {
	var src ShaderSources
	g, ctx := errgroup.WithContext(ctx)

	load := func(path string, dst *string) func() error {
		return func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := LoadShader(path)
			if err != nil {
				return err
			}
			*dst = s
			return nil
		}
	}
	g.Go(load(vertPath, &src.Vertex))
	g.Go(load(fragPath, &src.Fragment))

	if err := g.Wait(); err != nil {
		return ShaderSources{}, err
	}
	return src, nil
}

// Shader is a compiled pipeline stage.
type Shader struct {
	id    uint32
	stage Stage
}

// ID returns the driver handle.
func (s *Shader) ID() uint32 { return s.id }

// Stage returns the pipeline stage the shader was compiled for.
func (s *Shader) Stage() Stage { return s.stage }

// Delete releases the stage object.
func (s *Shader) Delete(dev Device) {
	if s.id != 0 {
		dev.DeleteShader(s.id)
		s.id = 0
	}
}

// CompileShader compiles source for the given stage. Empty source is rejected
// before any driver call. On failure the stage object is released and a
// *StatusError carrying the compiler log is returned.
func CompileShader(dev Device, stage Stage, source string) (*Shader, error) {
	if source == "" {
		return nil, &StatusError{
			Op:    OpCompile,
			Stage: stage,
			Log:   ErrEmptySource.Error(),
			err:   ErrEmptySource,
		}
	}

	id := dev.CreateShader(stage)
	dev.ShaderSource(id, source)
	if err := dev.CompileShader(id).err(OpCompile, stage); err != nil {
		dev.DeleteShader(id)
		return nil, err
	}

	logger.Debug("compiled shader", "stage", stage, "id", id)
	return &Shader{id: id, stage: stage}, nil
}

// Program is a linked vertex/fragment program.
type Program struct {
	id uint32
}

// ID returns the driver handle.
func (p *Program) ID() uint32 { return p.id }

// LinkProgram links vs and fs into a program. On success both stage objects
// are detached and deleted, since the program no longer needs them.
func LinkProgram(dev Device, vs, fs *Shader) (*Program, error) {
	if vs.stage != StageVertex || fs.stage != StageFragment {
		return nil, fmt.Errorf("link: want vertex and fragment stages, got %s and %s", vs.stage, fs.stage)
	}

	id := dev.CreateProgram()
	dev.AttachShader(id, vs.id)
	dev.AttachShader(id, fs.id)
	if err := dev.LinkProgram(id).err(OpLink, 0); err != nil {
		dev.DeleteProgram(id)
		return nil, err
	}

	dev.DetachShader(id, vs.id)
	dev.DetachShader(id, fs.id)
	vs.Delete(dev)
	fs.Delete(dev)

	logger.Debug("linked program", "id", id)
	return &Program{id: id}, nil
}

// BuildProgram compiles and links a vertex/fragment pair. Anything allocated
// along the way is released on failure.
func BuildProgram(dev Device, src ShaderSources) (*Program, error) {
	vs, err := CompileShader(dev, StageVertex, src.Vertex)
	if err != nil {
		return nil, err
	}
	fs, err := CompileShader(dev, StageFragment, src.Fragment)
	if err != nil {
		vs.Delete(dev)
		return nil, err
	}

	prog, err := LinkProgram(dev, vs, fs)
	if err != nil {
		vs.Delete(dev)
		fs.Delete(dev)
		return nil, err
	}
	return prog, nil
}

// Validate checks the program can execute against the current GPU state.
// In a core profile a vertex array must be bound.
func (p *Program) Validate(dev Device) error {
	return dev.ValidateProgram(p.id).err(OpValidate, 0)
}

// Use binds the program as current.
func (p *Program) Use(dev Device) {
	dev.UseProgram(p.id)
}

// Delete releases the program.
func (p *Program) Delete(dev Device) {
	if p.id != 0 {
		dev.DeleteProgram(p.id)
		p.id = 0
	}
}
