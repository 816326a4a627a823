package uipaint

import "image"

// TextureKind separates the two namespaces texture ids come from: ids
// allocated by the UI library itself and ids chosen by the application.
type TextureKind uint8

const (
	// TextureManaged is an id allocated by the UI library's texture
	// manager (font atlases, managed images).
	TextureManaged TextureKind = iota
	// TextureUser is an application-chosen id.
	TextureUser
)

// TextureID identifies a logical texture. It is an opaque, comparable key;
// the id itself carries no ownership semantics.
type TextureID struct {
	Kind  TextureKind
	Index uint64
}

// ManagedTexture returns the id of a library-managed texture.
func ManagedTexture(index uint64) TextureID {
	return TextureID{Kind: TextureManaged, Index: index}
}

// UserTexture returns an application-chosen texture id.
func UserTexture(index uint64) TextureID {
	return TextureID{Kind: TextureUser, Index: index}
}

// TextureFilter selects the texel filter the UI library requests for a
// texture.
type TextureFilter uint8

const (
	// FilterNearest samples the single nearest texel.
	FilterNearest TextureFilter = iota
	// FilterLinear interpolates between neighboring texels.
	FilterLinear
)

// TextureOptions carries the sampling configuration attached to a texture
// delta. Magnification and minification are independent; minification
// additionally drives the mip-level policy of the cached paint.
type TextureOptions struct {
	Magnification TextureFilter
	Minification  TextureFilter
}

// ImageKind identifies how a delta's pixel payload is encoded.
type ImageKind uint8

const (
	// ImageColor is a full-color image: premultiplied RGBA8, row-major,
	// stride = width*4 bytes.
	ImageColor ImageKind = iota
	// ImageFont is a font atlas image: one float32 coverage value per
	// pixel, converted to premultiplied white at a global alpha
	// multiplier of 1.0.
	ImageFont
)

// ImageDelta describes new content for one texture: either a full
// replacement image (Pos nil) or a sub-rectangle patch applied onto the
// existing cached image at the given offset (Pos non-nil). A patch for a
// texture with no cached image is a contract violation.
type ImageDelta struct {
	Kind   ImageKind
	Width  int
	Height int

	// Pixels is the premultiplied RGBA8 payload for ImageColor deltas.
	Pixels []byte
	// Coverage is the per-pixel coverage payload for ImageFont deltas.
	Coverage []float32

	// Options configures the rebuilt paint's sampling.
	Options TextureOptions

	// Pos is the top-left patch offset, or nil for a full replacement.
	Pos *image.Point
}

// IsPatch reports whether the delta patches an existing image rather than
// replacing it.
func (d *ImageDelta) IsPatch() bool {
	return d.Pos != nil
}

// TextureUpdate pairs a texture id with its new content.
type TextureUpdate struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta is one frame's incremental texture changes. Set entries
// are applied in order before any primitive is drawn; Free ids are evicted
// only after all of the frame's draws complete.
type TexturesDelta struct {
	Set  []TextureUpdate
	Free []TextureID
}

// IsEmpty reports whether the delta carries no changes.
func (d *TexturesDelta) IsEmpty() bool {
	return len(d.Set) == 0 && len(d.Free) == 0
}
