package uipaint

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/uipaint/canvas"
	"github.com/gogpu/uipaint/internal/blend"
	"github.com/gogpu/uipaint/recording"
)

// solidDelta builds a full-replacement color delta filled with one
// premultiplied color.
func solidDelta(w, h int, c color.RGBA) ImageDelta {
	pixels := make([]byte, w*h*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i] = c.R
		pixels[i+1] = c.G
		pixels[i+2] = c.B
		pixels[i+3] = c.A
	}
	return ImageDelta{Kind: ImageColor, Width: w, Height: h, Pixels: pixels}
}

// quadMesh builds two triangles covering the rectangle, UVs spanning the
// whole texture, all vertices opaque white.
func quadMesh(id TextureID, r canvas.Rect) *Mesh {
	return &Mesh{
		Texture: id,
		Vertices: []Vertex{
			{Pos: canvas.Pt(r.MinX, r.MinY), UV: canvas.Pt(0, 0), Color: opaqueWhite},
			{Pos: canvas.Pt(r.MaxX, r.MinY), UV: canvas.Pt(1, 0), Color: opaqueWhite},
			{Pos: canvas.Pt(r.MaxX, r.MaxY), UV: canvas.Pt(1, 1), Color: opaqueWhite},
			{Pos: canvas.Pt(r.MinX, r.MaxY), UV: canvas.Pt(0, 1), Color: opaqueWhite},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestPaintNilCanvas(t *testing.T) {
	p := NewPainter()
	err := p.PaintAndUpdateTextures(nil, 1, nil, TexturesDelta{})
	if !errors.Is(err, ErrNilCanvas) {
		t.Errorf("err = %v, want ErrNilCanvas", err)
	}
}

func TestTextureLifecycle(t *testing.T) {
	p := NewPainter()
	cv := canvas.New(8, 8)
	a, b, c := ManagedTexture(0), ManagedTexture(1), UserTexture(7)

	// Frame 1: insert a and b.
	err := p.PaintAndUpdateTextures(cv, 1, nil, TexturesDelta{
		Set: []TextureUpdate{
			{ID: a, Delta: solidDelta(2, 2, color.RGBA{255, 0, 0, 255})},
			{ID: b, Delta: solidDelta(2, 2, color.RGBA{0, 255, 0, 255})},
		},
	})
	if err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if p.TextureCount() != 2 {
		t.Fatalf("TextureCount = %d, want 2", p.TextureCount())
	}

	// Frame 2: insert c, free a.
	err = p.PaintAndUpdateTextures(cv, 1, nil, TexturesDelta{
		Set:  []TextureUpdate{{ID: c, Delta: solidDelta(1, 1, color.RGBA{A: 255})}},
		Free: []TextureID{a},
	})
	if err != nil {
		t.Fatalf("frame 2: %v", err)
	}
	if p.HasTexture(a) {
		t.Error("texture a still live after free")
	}
	if !p.HasTexture(b) || !p.HasTexture(c) {
		t.Error("textures b and c must stay live")
	}
	if p.TextureCount() != 2 {
		t.Errorf("TextureCount = %d, want 2", p.TextureCount())
	}
}

func TestFreeUnknownTextureIsNoOp(t *testing.T) {
	p := NewPainter()
	cv := canvas.New(4, 4)
	err := p.PaintAndUpdateTextures(cv, 1, nil, TexturesDelta{
		Free: []TextureID{UserTexture(999)},
	})
	if err != nil {
		t.Fatalf("PaintAndUpdateTextures: %v", err)
	}
	if p.TextureCount() != 0 {
		t.Errorf("TextureCount = %d, want 0", p.TextureCount())
	}
}

func TestFreeAppliedAfterDraws(t *testing.T) {
	p := NewPainter()
	cv := canvas.New(8, 8)
	id := ManagedTexture(0)

	// One frame that inserts a texture, draws with it, and frees it.
	prims := []ClippedPrimitive{{
		ClipRect:  canvas.NewRect(0, 0, 8, 8),
		Primitive: MeshPrimitive(quadMesh(id, canvas.NewRect(0, 0, 8, 8))),
	}}
	err := p.PaintAndUpdateTextures(cv, 1, prims, TexturesDelta{
		Set:  []TextureUpdate{{ID: id, Delta: solidDelta(2, 2, color.RGBA{255, 255, 255, 255})}},
		Free: []TextureID{id},
	})
	if err != nil {
		t.Fatalf("PaintAndUpdateTextures: %v", err)
	}
	if got := cv.Image().RGBAAt(4, 4); got.A == 0 {
		t.Error("draw produced no pixels; free must not precede draws")
	}
	if p.HasTexture(id) {
		t.Error("texture still live after end of frame")
	}
}

func TestPaintMeshModulatesTexture(t *testing.T) {
	p := NewPainter()
	cv := canvas.New(8, 8)
	cv.Clear(color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	id := ManagedTexture(0)

	// Black texture under white vertices: modulate keeps black.
	prims := []ClippedPrimitive{{
		ClipRect:  canvas.NewRect(0, 0, 4, 8),
		Primitive: MeshPrimitive(quadMesh(id, canvas.NewRect(0, 0, 8, 8))),
	}}
	err := p.PaintAndUpdateTextures(cv, 1, prims, TexturesDelta{
		Set: []TextureUpdate{{ID: id, Delta: solidDelta(2, 2, color.RGBA{0, 0, 0, 255})}},
	})
	if err != nil {
		t.Fatalf("PaintAndUpdateTextures: %v", err)
	}

	if got := cv.Image().RGBAAt(2, 4); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("inside clip (2,4) = %v, want opaque black", got)
	}
	// The clip rectangle confines the mesh to the left half.
	if got := cv.Image().RGBAAt(6, 4); got != (color.RGBA{200, 200, 200, 255}) {
		t.Errorf("outside clip (6,4) = %v, want untouched background", got)
	}
}

func TestPaintMeshDeviceScale(t *testing.T) {
	p := NewPainter()
	cv := canvas.New(16, 16)
	id := ManagedTexture(0)

	// A 4x4 logical quad at device scale 2 covers 8x8 device pixels.
	prims := []ClippedPrimitive{{
		ClipRect:  canvas.NewRect(0, 0, 16, 16),
		Primitive: MeshPrimitive(quadMesh(id, canvas.NewRect(0, 0, 4, 4))),
	}}
	err := p.PaintAndUpdateTextures(cv, 2, prims, TexturesDelta{
		Set: []TextureUpdate{{ID: id, Delta: solidDelta(2, 2, color.RGBA{255, 255, 255, 255})}},
	})
	if err != nil {
		t.Fatalf("PaintAndUpdateTextures: %v", err)
	}

	if got := cv.Image().RGBAAt(6, 6); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("(6,6) = %v, want white (inside scaled quad)", got)
	}
	if got := cv.Image().RGBAAt(12, 12); got.A != 0 {
		t.Errorf("(12,12) = %v, want untouched (outside scaled quad)", got)
	}
}

func TestPaintMissingTexture(t *testing.T) {
	p := NewPainter()
	cv := canvas.New(8, 8)
	prims := []ClippedPrimitive{{
		ClipRect:  canvas.NewRect(0, 0, 8, 8),
		Primitive: MeshPrimitive(quadMesh(UserTexture(1), canvas.NewRect(0, 0, 8, 8))),
	}}
	err := p.PaintAndUpdateTextures(cv, 1, prims, TexturesDelta{})
	if !errors.Is(err, ErrTextureNotFound) {
		t.Errorf("err = %v, want ErrTextureNotFound", err)
	}
}

func TestPaintMalformedDelta(t *testing.T) {
	p := NewPainter()
	cv := canvas.New(4, 4)
	err := p.PaintAndUpdateTextures(cv, 1, nil, TexturesDelta{
		Set: []TextureUpdate{{ID: ManagedTexture(0), Delta: ImageDelta{
			Kind: ImageColor, Width: 2, Height: 2, Pixels: make([]byte, 7),
		}}},
	})
	if !errors.Is(err, ErrMalformedImage) {
		t.Errorf("err = %v, want ErrMalformedImage", err)
	}
}

func TestPaintPatchWithoutBase(t *testing.T) {
	p := NewPainter()
	cv := canvas.New(4, 4)
	pos := image.Pt(0, 0)
	err := p.PaintAndUpdateTextures(cv, 1, nil, TexturesDelta{
		Set: []TextureUpdate{{ID: ManagedTexture(3), Delta: ImageDelta{
			Kind: ImageColor, Width: 1, Height: 1,
			Pixels: []byte{255, 255, 255, 255},
			Pos:    &pos,
		}}},
	})
	if !errors.Is(err, ErrPatchWithoutBase) {
		t.Errorf("err = %v, want ErrPatchWithoutBase", err)
	}
}

func TestPaintCallback(t *testing.T) {
	p := NewPainter()
	cv := canvas.New(16, 16)

	var gotRect canvas.Rect
	cb := NewPaintCallback(func(rect canvas.Rect, rec *recording.Recorder) {
		gotRect = rect
		// Fill the callback's local rectangle; coordinates are relative
		// to the rectangle origin, already in device pixels.
		rec.FillRect(canvas.NewRect(0, 0, rect.Width(), rect.Height()),
			&canvas.Paint{Color: color.NRGBA{R: 255, A: 255}}, blend.SourceOver)
	})

	prims := []ClippedPrimitive{{
		ClipRect:  canvas.NewRect(0, 0, 16, 16),
		Primitive: CallbackPrimitive(canvas.NewRect(2, 2, 4, 4), cb),
	}}
	if err := p.PaintAndUpdateTextures(cv, 2, prims, TexturesDelta{}); err != nil {
		t.Fatalf("PaintAndUpdateTextures: %v", err)
	}

	// The callback sees the device-scaled rectangle.
	want := canvas.NewRect(4, 4, 8, 8)
	if gotRect != want {
		t.Errorf("callback rect = %v, want %v", gotRect, want)
	}

	// Replay lands at the scaled origin with no further scaling.
	if got := cv.Image().RGBAAt(6, 6); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("(6,6) = %v, want red (inside callback rect)", got)
	}
	if got := cv.Image().RGBAAt(2, 2); got.A != 0 {
		t.Errorf("(2,2) = %v, want untouched (outside scaled rect)", got)
	}
}

func TestPaintCallbackSetMatrixStaysRelative(t *testing.T) {
	p := NewPainter()
	cv := canvas.New(16, 16)

	// Resetting the matrix inside a callback must keep drawing relative
	// to the target rectangle, not jump to absolute canvas coordinates.
	cb := NewPaintCallback(func(rect canvas.Rect, rec *recording.Recorder) {
		rec.SetMatrix(canvas.Identity())
		rec.FillRect(canvas.NewRect(0, 0, 2, 2),
			&canvas.Paint{Color: color.NRGBA{R: 255, A: 255}}, blend.SourceOver)
	})

	prims := []ClippedPrimitive{{
		ClipRect:  canvas.NewRect(0, 0, 16, 16),
		Primitive: CallbackPrimitive(canvas.NewRect(8, 8, 4, 4), cb),
	}}
	if err := p.PaintAndUpdateTextures(cv, 1, prims, TexturesDelta{}); err != nil {
		t.Fatalf("PaintAndUpdateTextures: %v", err)
	}

	if got := cv.Image().RGBAAt(9, 9); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("(9,9) = %v, want red (inside translated rect)", got)
	}
	if got := cv.Image().RGBAAt(1, 1); got.A != 0 {
		t.Errorf("(1,1) = %v, want untouched (absolute origin)", got)
	}
}

func TestPaintCallbackClipped(t *testing.T) {
	p := NewPainter()
	cv := canvas.New(16, 16)

	cb := NewPaintCallback(func(rect canvas.Rect, rec *recording.Recorder) {
		rec.FillRect(canvas.NewRect(0, 0, rect.Width(), rect.Height()),
			&canvas.Paint{Color: color.NRGBA{B: 255, A: 255}}, blend.SourceOver)
	})

	// Clip covers only the left half of the callback rect.
	prims := []ClippedPrimitive{{
		ClipRect:  canvas.NewRect(0, 0, 6, 16),
		Primitive: CallbackPrimitive(canvas.NewRect(4, 4, 8, 8), cb),
	}}
	if err := p.PaintAndUpdateTextures(cv, 1, prims, TexturesDelta{}); err != nil {
		t.Fatalf("PaintAndUpdateTextures: %v", err)
	}

	if got := cv.Image().RGBAAt(5, 6); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("(5,6) = %v, want blue (inside clip)", got)
	}
	if got := cv.Image().RGBAAt(8, 6); got.A != 0 {
		t.Errorf("(8,6) = %v, want untouched (outside clip)", got)
	}
}

func TestPaintNilPrimitive(t *testing.T) {
	p := NewPainter()
	cv := canvas.New(4, 4)
	prims := []ClippedPrimitive{{ClipRect: canvas.NewRect(0, 0, 4, 4)}}
	if err := p.PaintAndUpdateTextures(cv, 1, prims, TexturesDelta{}); err != nil {
		t.Errorf("nil primitive: err = %v, want nil", err)
	}
}
