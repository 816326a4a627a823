package recording

import (
	"image"
	"image/color"

	"github.com/gogpu/uipaint/canvas"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Mutable resources are cloned on Add so a finished Recording stays valid
// even if the caller keeps mutating the originals.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	images   []image.Image
	paints   []canvas.Paint
	vertices []*canvas.VertexBuffer
}

// NewResourcePool creates an empty resource pool with pre-allocated
// capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		images:   make([]image.Image, 0, 8),
		paints:   make([]canvas.Paint, 0, 16),
		vertices: make([]*canvas.VertexBuffer, 0, 8),
	}
}

// AddImage adds an image to the pool and returns its reference.
// The image is stored by reference; callers must not mutate its pixels
// while the recording is alive.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	p.images = append(p.images, img)
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// AddPaint adds a paint to the pool and returns its reference.
// The paint is copied by value; the shader, if any, is shared.
func (p *ResourcePool) AddPaint(paint *canvas.Paint) PaintRef {
	if paint == nil {
		paint = canvas.NewPaint()
	}
	p.paints = append(p.paints, *paint)
	return PaintRef(uint32(len(p.paints) - 1))
}

// GetPaint returns the paint for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetPaint(ref PaintRef) *canvas.Paint {
	if int(ref) >= len(p.paints) {
		return nil
	}
	return &p.paints[ref]
}

// AddVertices adds a vertex buffer to the pool and returns its reference.
// The buffer's slices are cloned so later mutation of the original cannot
// corrupt the recording.
func (p *ResourcePool) AddVertices(vb *canvas.VertexBuffer) VerticesRef {
	if vb == nil {
		p.vertices = append(p.vertices, nil)
		return VerticesRef(uint32(len(p.vertices) - 1))
	}
	cloned := &canvas.VertexBuffer{
		Positions: append([]canvas.Point(nil), vb.Positions...),
		UVs:       append([]canvas.Point(nil), vb.UVs...),
		Colors:    append([]color.NRGBA(nil), vb.Colors...),
	}
	p.vertices = append(p.vertices, cloned)
	return VerticesRef(uint32(len(p.vertices) - 1))
}

// GetVertices returns the vertex buffer for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetVertices(ref VerticesRef) *canvas.VertexBuffer {
	if int(ref) >= len(p.vertices) {
		return nil
	}
	return p.vertices[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int { return len(p.images) }

// PaintCount returns the number of paints in the pool.
func (p *ResourcePool) PaintCount() int { return len(p.paints) }

// VerticesCount returns the number of vertex buffers in the pool.
func (p *ResourcePool) VerticesCount() int { return len(p.vertices) }
