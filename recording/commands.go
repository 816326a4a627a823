package recording

import (
	"image/color"

	"github.com/gogpu/uipaint/canvas"
	"github.com/gogpu/uipaint/internal/blend"
)

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the current canvas state (transform and clip).
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved canvas state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// SetMatrixCommand replaces the current transformation matrix.
type SetMatrixCommand struct {
	// Matrix is the new transformation matrix.
	Matrix canvas.Matrix
}

// Type implements Command.
func (SetMatrixCommand) Type() CommandType { return CmdSetMatrix }

// TranslateCommand post-multiplies the current matrix with a translation.
type TranslateCommand struct {
	X, Y float32
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// ScaleCommand post-multiplies the current matrix with a scale.
type ScaleCommand struct {
	X, Y float32
}

// Type implements Command.
func (ScaleCommand) Type() CommandType { return CmdScale }

// ClipRectCommand intersects the clip with a rectangle.
type ClipRectCommand struct {
	// Rect is given in canvas coordinates.
	Rect canvas.Rect
}

// Type implements Command.
func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// ClearCommand fills the clip region with a color, replacing existing
// pixels.
type ClearCommand struct {
	Color color.NRGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// FillRectCommand fills a rectangle with a paint.
type FillRectCommand struct {
	// Rect is the rectangle to fill.
	Rect canvas.Rect
	// Paint references the fill paint in the resource pool.
	Paint PaintRef
	// Mode is the blend mode against the destination.
	Mode blend.Mode
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// DrawImageCommand draws an image scaled into a destination rectangle.
type DrawImageCommand struct {
	// Image references the image in the resource pool.
	Image ImageRef
	// Dst is the destination rectangle in canvas coordinates.
	Dst canvas.Rect
	// Filter selects the sampling filter for scaling.
	Filter canvas.FilterMode
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// DrawVerticesCommand rasterizes a textured triangle list.
type DrawVerticesCommand struct {
	// Vertices references the triangle list in the resource pool.
	Vertices VerticesRef
	// Mode combines the paint's samples with the vertex colors.
	Mode blend.Mode
	// Paint references the paint in the resource pool.
	Paint PaintRef
}

// Type implements Command.
func (DrawVerticesCommand) Type() CommandType { return CmdDrawVertices }
