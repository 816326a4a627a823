package uipaint

import "errors"

// Package errors. Contract violations (a patch without a cached base, a
// mesh referencing an unknown texture) indicate caller misuse and abort the
// frame; the canvas may be left partially drawn.
var (
	// ErrNilCanvas is returned when a frame is painted onto a nil canvas.
	ErrNilCanvas = errors.New("uipaint: nil canvas")

	// ErrTextureNotFound is returned when a mesh references a texture id
	// that was never set, or was already freed.
	ErrTextureNotFound = errors.New("uipaint: mesh references unknown texture")

	// ErrPatchWithoutBase is returned when a patch delta arrives for a
	// texture id with no cached image to patch.
	ErrPatchWithoutBase = errors.New("uipaint: patch delta for texture with no cached image")

	// ErrMalformedImage is returned when a delta's pixel buffer does not
	// match its declared dimensions.
	ErrMalformedImage = errors.New("uipaint: pixel buffer does not match image dimensions")
)
