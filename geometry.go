package triangle

import "fmt"

// ComponentsPerVertex is the number of floats in a vertex position.
const ComponentsPerVertex = 3

// positionAttrib is the attribute slot positions are bound to.
const positionAttrib = 0

// TriangleVertices is the default triangle in clip space.
var TriangleVertices = []float32{
	-0.8, -0.8, 0.0,
	0.8, -0.8, 0.0,
	0.0, 0.8, 0.0,
}

// Geometry is a vertex array plus the buffer holding its positions.
type Geometry struct {
	vao, vbo uint32
	count    int32
}

// UploadGeometry uploads position-only vertex data to a new static buffer and
// describes it in a new vertex array. No binding is left active on return.
func UploadGeometry(dev Device, vertices []float32) (*Geometry, error) {
	if len(vertices) == 0 || len(vertices)%ComponentsPerVertex != 0 {
		return nil, fmt.Errorf("upload %d floats: %w", len(vertices), ErrInvalidVertexData)
	}

	g := &Geometry{
		vao:   dev.GenVertexArray(),
		vbo:   dev.GenBuffer(),
		count: int32(len(vertices) / ComponentsPerVertex),
	}

	unbind := g.Bind(dev)
	dev.ArrayBufferData(vertices)
	dev.VertexAttribPointer(positionAttrib, ComponentsPerVertex)
	unbind()

	logger.Debug("uploaded geometry", "vao", g.vao, "vbo", g.vbo, "vertices", g.count)
	return g, nil
}

// Bind binds the vertex array and buffer and enables the position attribute.
// The returned func reverses all three; pair them with defer:
//
//	defer g.Bind(dev)()
func (g *Geometry) Bind(dev Device) (unbind func()) {
	dev.BindVertexArray(g.vao)
	dev.BindArrayBuffer(g.vbo)
	dev.EnableVertexAttribArray(positionAttrib)
	return func() {
		dev.DisableVertexAttribArray(positionAttrib)
		dev.BindVertexArray(0)
		dev.BindArrayBuffer(0)
	}
}

// Draw issues one non-indexed triangle draw covering every vertex.
func (g *Geometry) Draw(dev Device) {
	defer g.Bind(dev)()
	dev.DrawTriangles(0, g.count)
}

// Contents reads the vertex buffer back from the GPU.
func (g *Geometry) Contents(dev Device) []float32 {
	defer g.Bind(dev)()
	return dev.ReadArrayBuffer(int(g.count) * ComponentsPerVertex)
}

// Count returns the number of vertices.
func (g *Geometry) Count() int32 { return g.count }

// VertexArray returns the vertex array handle.
func (g *Geometry) VertexArray() uint32 { return g.vao }

// Buffer returns the vertex buffer handle.
func (g *Geometry) Buffer() uint32 { return g.vbo }

// Delete releases the buffer and vertex array.
func (g *Geometry) Delete(dev Device) {
	if g.vbo != 0 {
		dev.DeleteBuffer(g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		dev.DeleteVertexArray(g.vao)
		g.vao = 0
	}
}
