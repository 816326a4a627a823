package uipaint

import (
	"log/slog"

	"github.com/gogpu/uipaint/canvas"
	"github.com/gogpu/uipaint/internal/blend"
)

// Painter converts one frame of UI output, an ordered primitive list and
// a texture delta, into draw calls against a canvas. It owns the cache of
// texture paints, patched incrementally as the UI reports changed pixel
// regions.
//
// A Painter is created once and reused across frames; the canvas is
// borrowed only for the duration of one PaintAndUpdateTextures call.
// Painter is not safe for concurrent use.
type Painter struct {
	paints *paintCache
	log    *slog.Logger
}

// NewPainter creates a Painter with an empty texture cache.
func NewPainter(opts ...Option) *Painter {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	log := options.logger
	if log == nil {
		log = Logger()
	}
	return &Painter{
		paints: newPaintCache(options.mipmaps, log),
		log:    log,
	}
}

// PaintAndUpdateTextures processes one frame.
//
// The frame's phases run strictly in order: every delta.Set entry is
// applied to the texture cache, then every primitive is drawn in list
// order, then every delta.Free id is evicted. Frees never happen
// mid-frame, so a texture freed this frame can still be drawn by this
// frame's primitives.
//
// deviceScale is the device-pixel-per-logical-unit ratio; primitive
// coordinates and clip rectangles are in logical units. A non-positive
// deviceScale is treated as 1.
//
// On error the canvas may be left partially drawn; the caller can skip
// presenting the frame. The cache keeps all updates applied before the
// failure.
func (p *Painter) PaintAndUpdateTextures(cv *canvas.Canvas, deviceScale float32, primitives []ClippedPrimitive, delta TexturesDelta) error {
	if cv == nil {
		return ErrNilCanvas
	}
	if deviceScale <= 0 {
		deviceScale = 1
	}

	for i := range delta.Set {
		upd := &delta.Set[i]
		if err := p.paints.apply(upd.ID, &upd.Delta); err != nil {
			return err
		}
	}

	for i := range primitives {
		if err := p.paintPrimitive(cv, deviceScale, &primitives[i]); err != nil {
			return err
		}
	}

	for _, id := range delta.Free {
		p.paints.free(id)
	}
	return nil
}

// paintPrimitive dispatches one clipped primitive.
func (p *Painter) paintPrimitive(cv *canvas.Canvas, scale float32, cp *ClippedPrimitive) error {
	switch prim := cp.Primitive.(type) {
	case meshPrimitive:
		return p.paintMesh(cv, scale, cp.ClipRect, prim.mesh)
	case callbackPrimitive:
		return p.paintCallback(cv, scale, cp.ClipRect, prim)
	default:
		// Primitive is sealed; only a nil primitive lands here.
		return nil
	}
}

// paintMesh draws a triangle mesh under the primitive's clip.
func (p *Painter) paintMesh(cv *canvas.Canvas, scale float32, clip canvas.Rect, mesh *Mesh) error {
	if mesh == nil || len(mesh.Indices) == 0 {
		return nil
	}

	paint, err := p.paints.paintFor(mesh.Texture)
	if err != nil {
		return err
	}

	// Mesh coordinates are always logical. Replace whatever transform the
	// previous primitive left with the single device scale, and scope the
	// clip so later primitives start clean.
	cv.SetMatrix(canvas.Scaling(scale, scale))
	cv.Save()
	defer cv.Restore()
	cv.ClipRect(clip)

	for _, batch := range splitMesh(mesh) {
		cv.DrawVertices(batchBuffer(batch, p.log), blend.Modulate, paint)
	}
	return nil
}

// paintCallback records the callback's drawing and replays it under the
// primitive's clip, origin-translated to the target rectangle. The
// callback gets the device-scaled rectangle and replay applies no further
// device scale.
func (p *Painter) paintCallback(cv *canvas.Canvas, scale float32, clip canvas.Rect, prim callbackPrimitive) error {
	if prim.callback == nil {
		return nil
	}

	scaled := prim.rect.Scale(scale)
	rec := prim.callback.record(scaled)

	cv.SetMatrix(canvas.Identity())
	cv.Save()
	defer cv.Restore()
	cv.ClipRect(clip.Scale(scale))
	cv.Translate(scaled.MinX, scaled.MinY)
	rec.Playback(cv)
	return nil
}

// TextureCount returns the number of live texture cache entries.
func (p *Painter) TextureCount() int {
	return p.paints.len()
}

// HasTexture reports whether a texture id currently has a cached paint.
func (p *Painter) HasTexture(id TextureID) bool {
	return p.paints.contains(id)
}
