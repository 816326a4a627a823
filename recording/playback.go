package recording

import (
	"github.com/gogpu/uipaint/canvas"
)

// Recording is an immutable list of drawing commands plus the resources
// they reference. A Recording is plain data: it may be created on one
// goroutine and replayed on another, as long as the two do not run
// concurrently with each other for the same target canvas.
type Recording struct {
	commands  []Command
	resources *ResourcePool
}

// Commands returns the recorded command list.
// The returned slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool backing the commands.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording onto a canvas. Recorded transforms are
// relative to the canvas matrix at the start of playback: a recorded
// SetMatrix composes onto that base rather than replacing it, so a
// recording made against a local origin replays correctly wherever the
// caller has positioned it. Any saves left unbalanced by the recording
// are restored before returning, so a misbehaved recording cannot leak
// transform or clip state into later drawing.
func (r *Recording) Playback(c *canvas.Canvas) {
	if c == nil {
		return
	}

	base := c.Matrix()
	depth := 0
	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case SaveCommand:
			c.Save()
			depth++
		case RestoreCommand:
			if depth > 0 {
				c.Restore()
				depth--
			}
		case SetMatrixCommand:
			c.SetMatrix(base.Multiply(cmd.Matrix))
		case TranslateCommand:
			c.Translate(cmd.X, cmd.Y)
		case ScaleCommand:
			c.Scale(cmd.X, cmd.Y)
		case ClipRectCommand:
			c.ClipRect(cmd.Rect)
		case ClearCommand:
			c.Clear(cmd.Color)
		case FillRectCommand:
			if paint := r.resources.GetPaint(cmd.Paint); paint != nil {
				c.FillRect(cmd.Rect, paint, cmd.Mode)
			}
		case DrawImageCommand:
			if img := r.resources.GetImage(cmd.Image); img != nil {
				c.DrawImage(img, cmd.Dst, cmd.Filter)
			}
		case DrawVerticesCommand:
			vb := r.resources.GetVertices(cmd.Vertices)
			paint := r.resources.GetPaint(cmd.Paint)
			if vb != nil && paint != nil {
				c.DrawVertices(vb, cmd.Mode, paint)
			}
		}
	}
	for ; depth > 0; depth-- {
		c.Restore()
	}
}
