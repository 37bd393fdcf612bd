package triangle

// Option configures an App.
type Option func(*config)

type config struct {
	clearColor Color
	vertices   []float32 // nil means no geometry stage
	vertPath   string
	fragPath   string
	sources    *ShaderSources
	validate   bool
}

func defaultConfig() config {
	return config{
		clearColor: DefaultClearColor,
		vertices:   TriangleVertices,
		vertPath:   DefaultVertexShaderPath,
		fragPath:   DefaultFragmentShaderPath,
		validate:   true,
	}
}

// WithClearColor sets the color each frame is cleared to.
func WithClearColor(c Color) Option {
	return func(o *config) { o.clearColor = c }
}

// WithVertices replaces the default triangle with position-only vertex data.
func WithVertices(v []float32) Option {
	return func(o *config) { o.vertices = v }
}

// WithoutGeometry drops the geometry and shader stages. The app then only
// opens the window, clears and presents.
func WithoutGeometry() Option {
	return func(o *config) { o.vertices = nil }
}

// WithShaderPaths sets the files the vertex and fragment sources are read from.
func WithShaderPaths(vert, frag string) Option {
	return func(o *config) {
		o.vertPath = vert
		o.fragPath = frag
		o.sources = nil
	}
}

// WithShaderSources uses inline sources instead of reading files.
func WithShaderSources(src ShaderSources) Option {
	return func(o *config) { o.sources = &src }
}

// WithValidation toggles the program validate step after linking.
func WithValidation(v bool) Option {
	return func(o *config) { o.validate = v }
}
