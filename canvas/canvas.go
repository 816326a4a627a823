// Package canvas implements an immediate-mode software rasterizer over an
// RGBA pixel buffer.
//
// A Canvas maintains a transformation matrix and a rectangular clip, both
// scoped by a Save/Restore stack, and offers clear, rectangle, image, and
// textured-triangle draw operations. Pixels are stored premultiplied
// (image.RGBA semantics); draw calls composite source-over after the
// requested color combine.
//
// Canvas is not safe for concurrent use.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/uipaint/internal/blend"
)

// Canvas is a drawing target backed by an *image.RGBA.
type Canvas struct {
	img    *image.RGBA
	matrix Matrix
	clip   image.Rectangle

	stack []canvasState
}

// canvasState stores the graphics state for Save/Restore.
type canvasState struct {
	matrix Matrix
	clip   image.Rectangle
}

// New creates a canvas with a fresh transparent pixel buffer.
func New(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return NewForImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewForImage creates a canvas that draws into an existing image.
// The image is mutated in place; the canvas takes no ownership.
func NewForImage(img *image.RGBA) *Canvas {
	return &Canvas{
		img:    img,
		matrix: Identity(),
		clip:   img.Bounds(),
		stack:  make([]canvasState, 0, 8),
	}
}

// Image returns the underlying image. This is a direct reference, not a
// copy.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Save pushes the current transform and clip onto the state stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, canvasState{matrix: c.matrix, clip: c.clip})
}

// Restore pops the most recently saved state. Restoring with an empty
// stack is a no-op.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.matrix = top.matrix
	c.clip = top.clip
}

// Matrix returns the current transformation matrix.
func (c *Canvas) Matrix() Matrix {
	return c.matrix
}

// SetMatrix replaces the current transformation matrix.
func (c *Canvas) SetMatrix(m Matrix) {
	c.matrix = m
}

// ResetMatrix restores the identity transform.
func (c *Canvas) ResetMatrix() {
	c.matrix = Identity()
}

// Scale post-multiplies the current matrix with a scale.
func (c *Canvas) Scale(sx, sy float32) {
	c.matrix = c.matrix.Multiply(Scaling(sx, sy))
}

// Translate post-multiplies the current matrix with a translation.
func (c *Canvas) Translate(x, y float32) {
	c.matrix = c.matrix.Multiply(Translation(x, y))
}

// ClipRect intersects the current clip with a rectangle given in canvas
// coordinates. The rectangle is mapped through the current matrix; clipping
// is axis-aligned, so a rotated rect clips to its bounding box.
func (c *Canvas) ClipRect(r Rect) {
	device := c.matrix.TransformRect(r).Outer()
	c.clip = c.clip.Intersect(device)
}

// ClipBounds returns the current device-space clip rectangle.
func (c *Canvas) ClipBounds() image.Rectangle {
	return c.clip
}

// Clear fills the clip region with a color, replacing existing pixels.
func (c *Canvas) Clear(col color.Color) {
	if c.clip.Empty() {
		return
	}
	draw.Draw(c.img, c.clip, &image.Uniform{col}, image.Point{}, draw.Src)
}

// FillRect fills a rectangle with the paint's solid color using the given
// blend mode against the destination. Shader paints fall back to their
// color.
func (c *Canvas) FillRect(r Rect, paint *Paint, mode blend.Mode) {
	device := c.matrix.TransformRect(r).Outer().Intersect(c.clip)
	if device.Empty() {
		return
	}

	col := paint.Color
	sr := blend.MulDiv255(col.R, col.A)
	sg := blend.MulDiv255(col.G, col.A)
	sb := blend.MulDiv255(col.B, col.A)
	sa := col.A

	f := blend.GetFunc(mode)
	for y := device.Min.Y; y < device.Max.Y; y++ {
		i := c.img.PixOffset(device.Min.X, y)
		for x := device.Min.X; x < device.Max.X; x++ {
			pix := c.img.Pix[i : i+4 : i+4]
			pix[0], pix[1], pix[2], pix[3] = f(sr, sg, sb, sa, pix[0], pix[1], pix[2], pix[3])
			i += 4
		}
	}
}

// DrawImage draws src scaled into the destination rectangle (canvas
// coordinates), composited source-over and confined to the current clip.
func (c *Canvas) DrawImage(src image.Image, dst Rect, filter FilterMode) {
	if src == nil || dst.IsEmpty() {
		return
	}
	device := c.matrix.TransformRect(dst).Outer()
	if device.Intersect(c.clip).Empty() {
		return
	}

	target, ok := c.img.SubImage(c.clip).(*image.RGBA)
	if !ok || target.Bounds().Empty() {
		return
	}

	var scaler xdraw.Scaler
	switch filter {
	case FilterNearest:
		scaler = xdraw.NearestNeighbor
	default:
		scaler = xdraw.BiLinear
	}
	scaler.Scale(target, device, src, src.Bounds(), draw.Over, nil)
}

// DrawVertices rasterizes a textured triangle list.
//
// For every covered pixel, the paint's shader sample (or solid color) is
// combined with the interpolated vertex color using mode, with the shader
// as the source operand and the vertex color as the destination, and the
// result is composited source-over onto the canvas. Vertex colors carry
// straight alpha and are premultiplied before combining.
//
// Anti-aliasing is not applied; meshes are expected to carry their own
// feathering geometry.
func (c *Canvas) DrawVertices(vb *VertexBuffer, mode blend.Mode, paint *Paint) {
	if vb == nil || paint == nil {
		return
	}
	combine := blend.GetFunc(mode)
	n := vb.Len() - vb.Len()%3
	for i := 0; i < n; i += 3 {
		c.rasterTriangle(vb, i, combine, paint)
	}
}
