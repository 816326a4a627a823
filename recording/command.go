// Package recording provides types for recording canvas operations.
//
// The recording system captures drawing operations as typed command
// structures instead of immediate rasterization. Commands are stored in a
// Recording and can be replayed onto any canvas later, possibly on a
// different goroutine: a Recording is plain data and carries no live
// graphics state.
//
// Design follows Cairo's approach of typed command structs for
// inspectability and debuggability, rather than a binary serialization
// format.
//
// Resources (images, paints, vertex buffers) are stored in a ResourcePool
// and referenced by typed handles (ImageRef, PaintRef, VerticesRef) so a
// resource used by many commands is stored once.
//
// # Example
//
//	rec := recording.NewRecorder()
//	rec.Save()
//	rec.ClipRect(canvas.NewRect(0, 0, 100, 100))
//	rec.FillRect(canvas.NewRect(10, 10, 50, 50), paint, blend.SourceOver)
//	rec.Restore()
//	r := rec.Finish()
//
//	r.Playback(target)
package recording

// CommandType identifies the type of a command.
// Each command type corresponds to one canvas operation.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Save current state
	CmdRestore                      // Restore previous state
	CmdSetMatrix                    // Replace transformation matrix
	CmdTranslate                    // Post-multiply a translation
	CmdScale                        // Post-multiply a scale
	CmdClipRect                     // Intersect clip with a rectangle

	// Drawing commands
	CmdClear        // Clear the clip region
	CmdFillRect     // Fill a rectangle
	CmdDrawImage    // Draw an image
	CmdDrawVertices // Draw a textured triangle list
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:         "Save",
	CmdRestore:      "Restore",
	CmdSetMatrix:    "SetMatrix",
	CmdTranslate:    "Translate",
	CmdScale:        "Scale",
	CmdClipRect:     "ClipRect",
	CmdClear:        "Clear",
	CmdFillRect:     "FillRect",
	CmdDrawImage:    "DrawImage",
	CmdDrawVertices: "DrawVertices",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Reference Types
// --------------------------------------------------------------------------

// ImageRef is a reference to an image in the resource pool.
// The zero value is a valid reference to the first image (if any).
type ImageRef uint32

// PaintRef is a reference to a paint in the resource pool.
// The zero value is a valid reference to the first paint (if any).
type PaintRef uint32

// VerticesRef is a reference to a vertex buffer in the resource pool.
// The zero value is a valid reference to the first buffer (if any).
type VerticesRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid image.
func (r ImageRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a valid paint.
func (r PaintRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a valid vertex buffer.
func (r VerticesRef) IsValid() bool { return uint32(r) != InvalidRef }
