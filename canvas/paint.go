package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"
)

// FilterMode selects how texels are sampled when a texture is drawn at a
// size other than its own.
type FilterMode uint8

const (
	// FilterNearest samples the single nearest texel.
	FilterNearest FilterMode = iota
	// FilterLinear blends the four nearest texels bilinearly.
	FilterLinear
)

// MipmapMode selects how pre-filtered mip levels participate in minified
// sampling.
type MipmapMode uint8

const (
	// MipmapNone always samples the base level.
	MipmapNone MipmapMode = iota
	// MipmapNearest samples the mip level closest to the required detail.
	MipmapNearest
	// MipmapLinear blends the two mip levels bracketing the required detail.
	MipmapLinear
)

// TileMode determines what a shader returns for coordinates outside the
// texture.
type TileMode uint8

const (
	// TileClamp extends the edge texels outward.
	TileClamp TileMode = iota
	// TileRepeat wraps coordinates around the texture.
	TileRepeat
)

// Sampling bundles the filter and mipmap settings for one shader.
type Sampling struct {
	// Filter is the magnification/level filter.
	Filter FilterMode
	// Mipmap is the minification level-selection policy.
	Mipmap MipmapMode
}

// Paint describes what a draw call paints with: either a solid color or,
// when Shader is non-nil, samples from an image shader. The Color of a
// shader paint is ignored.
type Paint struct {
	// Shader samples colors from an image, or nil for a solid paint.
	Shader *ImageShader
	// Color is the solid paint color (straight alpha).
	Color color.NRGBA
}

// NewPaint returns a solid opaque white paint.
func NewPaint() *Paint {
	return &Paint{Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}
}

// ImageShader samples colors from an image through normalized UV
// coordinates, with configurable tiling and filtering. When the sampling
// requests mipmaps, a chain of pre-filtered half-resolution levels is built
// at construction time.
//
// The wrapped image uses premultiplied alpha, and samples are returned
// premultiplied.
type ImageShader struct {
	tileX, tileY TileMode
	sampling     Sampling

	// levels[0] is the base image; each following level halves the
	// previous one, down to 1x1.
	levels []*image.RGBA
}

// NewImageShader wraps an image in a shader. The image is referenced, not
// copied; callers must not mutate it while the shader is in use.
func NewImageShader(img *image.RGBA, tileX, tileY TileMode, sampling Sampling) *ImageShader {
	s := &ImageShader{
		tileX:    tileX,
		tileY:    tileY,
		sampling: sampling,
		levels:   []*image.RGBA{img},
	}
	if sampling.Mipmap != MipmapNone {
		s.buildLevels()
	}
	return s
}

// Image returns the base-level image.
func (s *ImageShader) Image() *image.RGBA {
	return s.levels[0]
}

// Sampling returns the shader's sampling configuration.
func (s *ImageShader) Sampling() Sampling {
	return s.sampling
}

// LevelCount returns the number of mip levels, including the base.
func (s *ImageShader) LevelCount() int {
	return len(s.levels)
}

// buildLevels constructs the mip chain by successive halving.
func (s *ImageShader) buildLevels() {
	prev := s.levels[0]
	for {
		b := prev.Bounds()
		w, h := b.Dx()/2, b.Dy()/2
		if w < 1 && h < 1 {
			return
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		next := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.BiLinear.Scale(next, next.Bounds(), prev, b, draw.Src, nil)
		s.levels = append(s.levels, next)
		if w == 1 && h == 1 {
			return
		}
		prev = next
	}
}

// Sample returns the premultiplied color at the normalized coordinate
// (u, v). lod is the level of detail: 0 samples the base level, each
// increment of 1 halves the sampled resolution. lod is ignored unless the
// shader was built with a mipmap mode.
func (s *ImageShader) Sample(u, v, lod float32) (r, g, b, a byte) {
	switch s.sampling.Mipmap {
	case MipmapNone:
		return s.sampleLevel(0, u, v)
	case MipmapNearest:
		return s.sampleLevel(s.clampLevel(int(math32.Round(lod))), u, v)
	default: // MipmapLinear
		if lod <= 0 {
			return s.sampleLevel(0, u, v)
		}
		lo := s.clampLevel(int(math32.Floor(lod)))
		hi := s.clampLevel(lo + 1)
		r0, g0, b0, a0 := s.sampleLevel(lo, u, v)
		if hi == lo {
			return r0, g0, b0, a0
		}
		r1, g1, b1, a1 := s.sampleLevel(hi, u, v)
		t := lod - math32.Floor(lod)
		return lerpByte(r0, r1, t), lerpByte(g0, g1, t), lerpByte(b0, b1, t), lerpByte(a0, a1, t)
	}
}

// clampLevel restricts a level index to the available chain.
func (s *ImageShader) clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level >= len(s.levels) {
		return len(s.levels) - 1
	}
	return level
}

// sampleLevel samples one mip level at the normalized coordinate (u, v).
func (s *ImageShader) sampleLevel(level int, u, v float32) (byte, byte, byte, byte) {
	img := s.levels[level]
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 0, 0, 0, 0
	}

	if s.sampling.Filter == FilterNearest {
		x := s.tileCoord(int(math32.Floor(u*float32(w))), w, s.tileX)
		y := s.tileCoord(int(math32.Floor(v*float32(h))), h, s.tileY)
		return texel(img, x, y)
	}

	// Bilinear: sample the four texels around the continuous position.
	fx := u*float32(w) - 0.5
	fy := v*float32(h) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	x0c := s.tileCoord(x0, w, s.tileX)
	x1c := s.tileCoord(x0+1, w, s.tileX)
	y0c := s.tileCoord(y0, h, s.tileY)
	y1c := s.tileCoord(y0+1, h, s.tileY)

	r00, g00, b00, a00 := texel(img, x0c, y0c)
	r10, g10, b10, a10 := texel(img, x1c, y0c)
	r01, g01, b01, a01 := texel(img, x0c, y1c)
	r11, g11, b11, a11 := texel(img, x1c, y1c)

	rTop := lerpByte(r00, r10, tx)
	gTop := lerpByte(g00, g10, tx)
	bTop := lerpByte(b00, b10, tx)
	aTop := lerpByte(a00, a10, tx)
	rBot := lerpByte(r01, r11, tx)
	gBot := lerpByte(g01, g11, tx)
	bBot := lerpByte(b01, b11, tx)
	aBot := lerpByte(a01, a11, tx)

	return lerpByte(rTop, rBot, ty), lerpByte(gTop, gBot, ty),
		lerpByte(bTop, bBot, ty), lerpByte(aTop, aBot, ty)
}

// tileCoord maps a texel index into the valid range according to the tile
// mode.
func (s *ImageShader) tileCoord(i, n int, mode TileMode) int {
	if n <= 0 {
		return 0
	}
	switch mode {
	case TileRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	default: // TileClamp
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

// texel reads one premultiplied texel.
func texel(img *image.RGBA, x, y int) (byte, byte, byte, byte) {
	b := img.Bounds()
	i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
}

// lerpByte linearly interpolates between two bytes by t in [0, 1].
func lerpByte(a, b byte, t float32) byte {
	return byte(float32(a) + (float32(b)-float32(a))*t + 0.5)
}
