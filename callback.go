package uipaint

import (
	"github.com/gogpu/uipaint/canvas"
	"github.com/gogpu/uipaint/recording"
)

// PaintCallback captures custom drawing intent as a closure. When its
// primitive is reached, the Painter invokes the closure synchronously with
// an already device-scaled rectangle and a Recorder; everything recorded
// is replayed onto the live canvas clipped to the primitive's clip
// rectangle and with the origin translated to the rectangle's top-left
// corner.
//
// The callback draws in coordinates relative to that origin, in device
// pixels: unlike the mesh path, the Painter applies no device scale during
// replay, so the callback is responsible for any further coordinate
// scaling itself. The rectangle parameter carries the device-scaled size
// to make that possible.
//
// The recorded output is plain data (see package recording), so it may be
// produced on a different goroutine than the one replaying it, as long as
// recording has finished before the frame is painted.
type PaintCallback struct {
	fn func(rect canvas.Rect, rec *recording.Recorder)
}

// NewPaintCallback creates a callback from a drawing function.
func NewPaintCallback(fn func(rect canvas.Rect, rec *recording.Recorder)) *PaintCallback {
	return &PaintCallback{fn: fn}
}

// record invokes the callback, capturing its drawing into a Recording.
func (cb *PaintCallback) record(rect canvas.Rect) *recording.Recording {
	rec := recording.NewRecorder()
	if cb != nil && cb.fn != nil {
		cb.fn(rect, rec)
	}
	return rec.Finish()
}
