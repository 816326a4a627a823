package recording

import (
	"image"
	"image/color"

	"github.com/gogpu/uipaint/canvas"
	"github.com/gogpu/uipaint/internal/blend"
)

// Recorder captures drawing operations as commands.
// It mirrors the canvas drawing API but generates commands instead of
// rasterizing pixels. Use Finish to obtain an immutable Recording that can
// be replayed onto a canvas.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands  []Command
	resources *ResourcePool
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// Save records a state save.
func (r *Recorder) Save() {
	r.commands = append(r.commands, SaveCommand{})
}

// Restore records a state restore.
func (r *Recorder) Restore() {
	r.commands = append(r.commands, RestoreCommand{})
}

// SetMatrix records a matrix replacement.
func (r *Recorder) SetMatrix(m canvas.Matrix) {
	r.commands = append(r.commands, SetMatrixCommand{Matrix: m})
}

// Translate records a translation.
func (r *Recorder) Translate(x, y float32) {
	r.commands = append(r.commands, TranslateCommand{X: x, Y: y})
}

// Scale records a scale.
func (r *Recorder) Scale(x, y float32) {
	r.commands = append(r.commands, ScaleCommand{X: x, Y: y})
}

// ClipRect records a clip intersection.
func (r *Recorder) ClipRect(rect canvas.Rect) {
	r.commands = append(r.commands, ClipRectCommand{Rect: rect})
}

// Clear records a clear of the clip region.
func (r *Recorder) Clear(col color.NRGBA) {
	r.commands = append(r.commands, ClearCommand{Color: col})
}

// FillRect records a rectangle fill.
func (r *Recorder) FillRect(rect canvas.Rect, paint *canvas.Paint, mode blend.Mode) {
	ref := r.resources.AddPaint(paint)
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Paint: ref, Mode: mode})
}

// DrawImage records an image draw into a destination rectangle.
func (r *Recorder) DrawImage(img image.Image, dst canvas.Rect, filter canvas.FilterMode) {
	ref := r.resources.AddImage(img)
	r.commands = append(r.commands, DrawImageCommand{Image: ref, Dst: dst, Filter: filter})
}

// DrawVertices records a textured triangle list draw.
func (r *Recorder) DrawVertices(vb *canvas.VertexBuffer, mode blend.Mode, paint *canvas.Paint) {
	vref := r.resources.AddVertices(vb)
	pref := r.resources.AddPaint(paint)
	r.commands = append(r.commands, DrawVerticesCommand{Vertices: vref, Mode: mode, Paint: pref})
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Finish returns an immutable Recording containing all recorded commands.
// After calling Finish, the Recorder should not be used again.
func (r *Recorder) Finish() *Recording {
	return &Recording{
		commands:  r.commands,
		resources: r.resources,
	}
}
