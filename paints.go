package uipaint

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	"github.com/gogpu/uipaint/canvas"
	"github.com/gogpu/uipaint/internal/cache"
)

// paintEntry is one cached texture: the raster image and the paint whose
// shader wraps it. The paint is derived from the image and is rebuilt
// whenever the image changes; it is never mutated independently.
type paintEntry struct {
	image *image.RGBA
	paint *canvas.Paint
}

// paintCache owns the TextureID → paintEntry mapping for one Painter.
// It is exclusively owned by its Painter and mutated only between frames'
// draw phases, on one logical thread of control.
type paintCache struct {
	entries *cache.Store[TextureID, *paintEntry]
	mipmaps bool
	log     *slog.Logger
}

func newPaintCache(mipmaps bool, log *slog.Logger) *paintCache {
	return &paintCache{
		entries: cache.New[TextureID, *paintEntry](),
		mipmaps: mipmaps,
		log:     log,
	}
}

// apply integrates one delta: decodes the payload, composites patches onto
// the cached base image, and rebuilds the entry's paint.
func (pc *paintCache) apply(id TextureID, delta *ImageDelta) error {
	deltaImage, err := decodeDelta(delta)
	if err != nil {
		return fmt.Errorf("texture %v: %w", id, err)
	}

	img := deltaImage
	if delta.IsPatch() {
		img, err = pc.patch(id, deltaImage, *delta.Pos)
		if err != nil {
			return err
		}
	}

	pc.entries.Set(id, &paintEntry{
		image: img,
		paint: pc.buildPaint(img, delta.Options),
	})
	pc.log.Debug("texture updated",
		slog.Any("id", id),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()),
		slog.Bool("patch", delta.IsPatch()))
	return nil
}

// patch composites a sub-rectangle update onto the cached image for id,
// preserving the base image's outer dimensions. The previous pixels inside
// the patch rectangle are discarded, not blended over.
func (pc *paintCache) patch(id TextureID, deltaImage *image.RGBA, pos image.Point) (*image.RGBA, error) {
	entry, ok := pc.entries.Get(id)
	if !ok {
		return nil, fmt.Errorf("texture %v: %w", id, ErrPatchWithoutBase)
	}
	old := entry.image

	composited := image.NewRGBA(old.Bounds())
	copy(composited.Pix, old.Pix)

	target := deltaImage.Bounds().Add(pos)
	draw.Draw(composited, target, deltaImage, deltaImage.Bounds().Min, draw.Src)
	return composited, nil
}

// buildPaint wraps an image in a clamp-tiled shader with the sampling the
// delta requested. The minification filter picks the mip policy unless the
// painter was configured without mipmaps.
func (pc *paintCache) buildPaint(img *image.RGBA, opts TextureOptions) *canvas.Paint {
	var filter canvas.FilterMode
	switch opts.Magnification {
	case FilterNearest:
		filter = canvas.FilterNearest
	case FilterLinear:
		filter = canvas.FilterLinear
	}

	mipmap := canvas.MipmapNone
	if pc.mipmaps {
		switch opts.Minification {
		case FilterNearest:
			mipmap = canvas.MipmapNearest
		case FilterLinear:
			mipmap = canvas.MipmapLinear
		}
	}

	sampling := canvas.Sampling{Filter: filter, Mipmap: mipmap}
	shader := canvas.NewImageShader(img, canvas.TileClamp, canvas.TileClamp, sampling)
	return &canvas.Paint{Shader: shader}
}

// paintFor returns the cached paint for a texture id.
func (pc *paintCache) paintFor(id TextureID) (*canvas.Paint, error) {
	entry, ok := pc.entries.Get(id)
	if !ok {
		return nil, fmt.Errorf("texture %v: %w", id, ErrTextureNotFound)
	}
	return entry.paint, nil
}

// free drops the entry for id. Freeing an absent id is a no-op.
func (pc *paintCache) free(id TextureID) {
	if pc.entries.Delete(id) {
		pc.log.Debug("texture freed", slog.Any("id", id))
	}
}

// len returns the number of live cache entries.
func (pc *paintCache) len() int {
	return pc.entries.Len()
}

// contains reports whether id has a live entry.
func (pc *paintCache) contains(id TextureID) bool {
	return pc.entries.Contains(id)
}

// decodeDelta converts a delta payload into a premultiplied RGBA image.
func decodeDelta(delta *ImageDelta) (*image.RGBA, error) {
	w, h := delta.Width, delta.Height
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrMalformedImage, w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	switch delta.Kind {
	case ImageFont:
		if len(delta.Coverage) != w*h {
			return nil, fmt.Errorf("%w: %d coverage values for %dx%d",
				ErrMalformedImage, len(delta.Coverage), w, h)
		}
		// Coverage becomes premultiplied white: every channel carries
		// the coverage value, at a global alpha multiplier of 1.0.
		for i, c := range delta.Coverage {
			v := coverageByte(c)
			o := i * 4
			img.Pix[o] = v
			img.Pix[o+1] = v
			img.Pix[o+2] = v
			img.Pix[o+3] = v
		}
	default: // ImageColor
		if len(delta.Pixels) != w*h*4 {
			return nil, fmt.Errorf("%w: %d pixel bytes for %dx%d",
				ErrMalformedImage, len(delta.Pixels), w, h)
		}
		copy(img.Pix, delta.Pixels)
	}
	return img, nil
}

// coverageByte maps a coverage value in [0, 1] to a byte, clamping out-of-
// range input.
func coverageByte(c float32) byte {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return byte(c*255 + 0.5)
}
