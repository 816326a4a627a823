package uipaint

import (
	"image/color"

	"github.com/gogpu/uipaint/canvas"
)

// Vertex is one mesh vertex as the UI library emits it: a position in
// device-independent units, a normalized UV coordinate, and a
// premultiplied RGBA color.
type Vertex struct {
	Pos   canvas.Point
	UV    canvas.Point
	Color color.RGBA
}

// Mesh is a textured triangle mesh. Indices reference Vertices in groups
// of three. The index count is unbounded; the Painter partitions a mesh
// that exceeds the 16-bit addressable vertex range into smaller batches.
type Mesh struct {
	Texture  TextureID
	Vertices []Vertex
	Indices  []uint32
}

// ClippedPrimitive pairs a primitive with the rectangle bounding its
// visible area, in device-independent units.
type ClippedPrimitive struct {
	ClipRect  canvas.Rect
	Primitive Primitive
}

// Primitive is one drawable unit: either a mesh or a paint callback.
//
// This is a closed variant type: the only implementations are the ones
// returned by MeshPrimitive and CallbackPrimitive, so a Painter can never
// encounter a payload it does not recognize.
type Primitive interface {
	// isPrimitive seals the interface.
	isPrimitive()
}

// meshPrimitive wraps a Mesh as a Primitive.
type meshPrimitive struct {
	mesh *Mesh
}

func (meshPrimitive) isPrimitive() {}

// MeshPrimitive returns a Primitive drawing the given mesh.
func MeshPrimitive(m *Mesh) Primitive {
	return meshPrimitive{mesh: m}
}

// callbackPrimitive wraps a PaintCallback and its target rectangle.
type callbackPrimitive struct {
	rect     canvas.Rect
	callback *PaintCallback
}

func (callbackPrimitive) isPrimitive() {}

// CallbackPrimitive returns a Primitive that invokes a paint callback for
// the given rectangle (device-independent units).
func CallbackPrimitive(rect canvas.Rect, cb *PaintCallback) Primitive {
	return callbackPrimitive{rect: rect, callback: cb}
}
