package canvas

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/uipaint/internal/blend"
)

// edgeFn returns twice the signed area of the triangle (a, b, p).
// The sign encodes which side of the edge a->b the point p falls on.
func edgeFn(a, b, p Point) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// rasterTriangle rasterizes the triangle at vertex index i by point
// sampling pixel centers inside the current clip.
func (c *Canvas) rasterTriangle(vb *VertexBuffer, i int, combine blend.Func, paint *Paint) {
	p0 := c.matrix.TransformPoint(vb.Positions[i])
	p1 := c.matrix.TransformPoint(vb.Positions[i+1])
	p2 := c.matrix.TransformPoint(vb.Positions[i+2])

	area := edgeFn(p0, p1, p2)
	if area == 0 {
		return
	}
	// Accept both windings.
	sign := float32(1)
	if area < 0 {
		sign = -1
	}
	invArea := 1 / (area * sign)

	minX := int(math32.Floor(math32.Min(p0.X, math32.Min(p1.X, p2.X))))
	minY := int(math32.Floor(math32.Min(p0.Y, math32.Min(p1.Y, p2.Y))))
	maxX := int(math32.Ceil(math32.Max(p0.X, math32.Max(p1.X, p2.X))))
	maxY := int(math32.Ceil(math32.Max(p0.Y, math32.Max(p1.Y, p2.Y))))

	if minX < c.clip.Min.X {
		minX = c.clip.Min.X
	}
	if minY < c.clip.Min.Y {
		minY = c.clip.Min.Y
	}
	if maxX > c.clip.Max.X {
		maxX = c.clip.Max.X
	}
	if maxY > c.clip.Max.Y {
		maxY = c.clip.Max.Y
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Top-left fill rule: a pixel center lying exactly on an edge belongs
	// to the triangle only when that edge is a top or left edge, so two
	// triangles sharing an edge never both composite the same pixel.
	accept0 := topLeftEdge(p1, p2, sign)
	accept1 := topLeftEdge(p2, p0, sign)
	accept2 := topLeftEdge(p0, p1, sign)

	uv0, uv1, uv2 := vb.UVs[i], vb.UVs[i+1], vb.UVs[i+2]
	c0, c1, c2 := vb.Colors[i], vb.Colors[i+1], vb.Colors[i+2]

	var lod float32
	if paint.Shader != nil {
		lod = triangleLOD(paint.Shader, p0, p1, p2, uv0, uv1, uv2)
	}

	// Solid paints resolve to one premultiplied source outside the loop.
	var solidR, solidG, solidB, solidA byte
	if paint.Shader == nil {
		col := paint.Color
		solidR = blend.MulDiv255(col.R, col.A)
		solidG = blend.MulDiv255(col.G, col.A)
		solidB = blend.MulDiv255(col.B, col.A)
		solidA = col.A
	}

	srcOver := blend.GetFunc(blend.SourceOver)

	for y := minY; y < maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x < maxX; x++ {
			p := Point{X: float32(x) + 0.5, Y: py}

			w0 := edgeFn(p1, p2, p) * sign
			w1 := edgeFn(p2, p0, p) * sign
			w2 := edgeFn(p0, p1, p) * sign
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			if (w0 == 0 && !accept0) || (w1 == 0 && !accept1) || (w2 == 0 && !accept2) {
				continue
			}
			b0 := w0 * invArea
			b1 := w1 * invArea
			b2 := w2 * invArea

			// Interpolate the straight-alpha vertex color, then
			// premultiply for compositing.
			cr := interpByte(c0.R, c1.R, c2.R, b0, b1, b2)
			cg := interpByte(c0.G, c1.G, c2.G, b0, b1, b2)
			cb := interpByte(c0.B, c1.B, c2.B, b0, b1, b2)
			ca := interpByte(c0.A, c1.A, c2.A, b0, b1, b2)
			vr := blend.MulDiv255(cr, ca)
			vg := blend.MulDiv255(cg, ca)
			vbb := blend.MulDiv255(cb, ca)

			var sr, sg, sb, sa byte
			if paint.Shader != nil {
				u := b0*uv0.X + b1*uv1.X + b2*uv2.X
				v := b0*uv0.Y + b1*uv1.Y + b2*uv2.Y
				sr, sg, sb, sa = paint.Shader.Sample(u, v, lod)
			} else {
				sr, sg, sb, sa = solidR, solidG, solidB, solidA
			}

			fr, fg, fb, fa := combine(sr, sg, sb, sa, vr, vg, vbb, ca)

			idx := c.img.PixOffset(x, y)
			pix := c.img.Pix[idx : idx+4 : idx+4]
			pix[0], pix[1], pix[2], pix[3] = srcOver(fr, fg, fb, fa, pix[0], pix[1], pix[2], pix[3])
		}
	}
}

// topLeftEdge reports whether the edge a->b, oriented by the triangle's
// winding sign, is a top or left edge. In device coordinates (y down): a
// top edge runs rightward with the triangle below it, a left edge runs
// upward with the triangle to its right.
func topLeftEdge(a, b Point, sign float32) bool {
	dx := (b.X - a.X) * sign
	dy := (b.Y - a.Y) * sign
	return dy < 0 || (dy == 0 && dx > 0)
}

// interpByte interpolates a byte channel with barycentric weights.
func interpByte(v0, v1, v2 byte, b0, b1, b2 float32) byte {
	f := b0*float32(v0) + b1*float32(v1) + b2*float32(v2)
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return byte(f + 0.5)
}

// triangleLOD estimates the mip level of detail for one triangle from the
// ratio of covered texel area to covered pixel area.
func triangleLOD(shader *ImageShader, p0, p1, p2, uv0, uv1, uv2 Point) float32 {
	if shader.Sampling().Mipmap == MipmapNone || shader.LevelCount() == 1 {
		return 0
	}
	base := shader.Image().Bounds()
	tw := float32(base.Dx())
	th := float32(base.Dy())

	texelArea := math32.Abs((uv1.X-uv0.X)*(uv2.Y-uv0.Y)-(uv2.X-uv0.X)*(uv1.Y-uv0.Y)) * tw * th
	pixelArea := math32.Abs(edgeFn(p0, p1, p2))
	if texelArea <= 0 || pixelArea <= 0 {
		return 0
	}
	lod := 0.5 * math32.Log2(texelArea/pixelArea)
	if lod < 0 {
		return 0
	}
	return lod
}
