package canvas

import "image/color"

// VertexBuffer holds a triangle list: every three consecutive vertices form
// one triangle. Positions are in canvas coordinates, UVs are normalized
// texture coordinates, and colors carry straight (non-premultiplied) alpha.
//
// The three slices always have equal length.
type VertexBuffer struct {
	Positions []Point
	UVs       []Point
	Colors    []color.NRGBA
}

// NewVertexBuffer creates an empty vertex buffer with capacity for n
// vertices.
func NewVertexBuffer(n int) *VertexBuffer {
	return &VertexBuffer{
		Positions: make([]Point, 0, n),
		UVs:       make([]Point, 0, n),
		Colors:    make([]color.NRGBA, 0, n),
	}
}

// Append adds one vertex.
func (vb *VertexBuffer) Append(pos, uv Point, col color.NRGBA) {
	vb.Positions = append(vb.Positions, pos)
	vb.UVs = append(vb.UVs, uv)
	vb.Colors = append(vb.Colors, col)
}

// Len returns the number of vertices.
func (vb *VertexBuffer) Len() int {
	return len(vb.Positions)
}

// TriangleCount returns the number of complete triangles.
func (vb *VertexBuffer) TriangleCount() int {
	return len(vb.Positions) / 3
}
