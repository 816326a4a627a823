package uipaint

import (
	"image/color"
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/gogpu/uipaint/canvas"
)

// maxBatchVertices is the number of vertices addressable by a 16-bit
// index.
const maxBatchVertices = 1 << 16

// uvEpsilon is the perturbation applied to all-zero UV triangles. The
// (0,0) coordinate is the UI library's sentinel for "flat color, sample
// the known-white texel"; a zero-area UV triangle hits a sampling
// degeneracy in some rasterizers, so two of the UVs are nudged apart.
const uvEpsilon = 1.0 / 65536

// meshBatch is a contiguous sub-range of a mesh whose rebased indices all
// fit within 16-bit index space.
type meshBatch struct {
	vertices []Vertex
	indices  []uint32
}

// splitMesh partitions a mesh into batches that each reference fewer than
// 65536 vertices. Small meshes pass through as a single batch. Oversized
// meshes are split on triangle boundaries: each batch covers the
// contiguous vertex range its triangles touch, duplicating vertices shared
// across batch boundaries rather than remapping indices beyond the limit.
func splitMesh(m *Mesh) []meshBatch {
	if len(m.Vertices) < maxBatchVertices {
		return []meshBatch{{vertices: m.Vertices, indices: m.Indices}}
	}

	var batches []meshBatch
	indices := m.Indices[:len(m.Indices)-len(m.Indices)%3]
	cursor := 0
	for cursor < len(indices) {
		spanStart := cursor
		minV := indices[cursor]
		maxV := indices[cursor]

		for cursor < len(indices) {
			newMin, newMax := minV, maxV
			for i := 0; i < 3; i++ {
				idx := indices[cursor+i]
				if idx < newMin {
					newMin = idx
				}
				if idx > newMax {
					newMax = idx
				}
			}
			if newMax-newMin >= maxBatchVertices {
				break
			}
			minV, maxV = newMin, newMax
			cursor += 3
		}

		// A single triangle can exceed the index spread on its own. Remap
		// its three vertices into a fresh batch so every emitted batch
		// stays within the limit and the loop always advances.
		if cursor == spanStart {
			batches = append(batches, meshBatch{
				vertices: []Vertex{
					m.Vertices[indices[cursor]],
					m.Vertices[indices[cursor+1]],
					m.Vertices[indices[cursor+2]],
				},
				indices: []uint32{0, 1, 2},
			})
			cursor += 3
			continue
		}

		rebased := make([]uint32, cursor-spanStart)
		for i, idx := range indices[spanStart:cursor] {
			rebased[i] = idx - minV
		}
		batches = append(batches, meshBatch{
			vertices: m.Vertices[minV : maxV+1],
			indices:  rebased,
		})
	}
	return batches
}

// batchBuffer de-indexes one batch into a renderer-ready triangle list,
// applying the per-triangle and per-vertex fixups.
func batchBuffer(b meshBatch, log *slog.Logger) *canvas.VertexBuffer {
	n := len(b.indices) - len(b.indices)%3
	vb := canvas.NewVertexBuffer(n)
	for i := 0; i < n; i += 3 {
		v0 := b.vertices[b.indices[i]]
		v1 := b.vertices[b.indices[i+1]]
		v2 := b.vertices[b.indices[i+2]]
		fixFlatUVs(&v1, &v2, v0.UV)
		appendVertex(vb, v0, log)
		appendVertex(vb, v1, log)
		appendVertex(vb, v2, log)
	}
	return vb
}

// fixFlatUVs perturbs the UVs of a triangle whose three UVs are all
// exactly (0,0). Only the exact all-zero case is touched.
func fixFlatUVs(v1, v2 *Vertex, uv0 canvas.Point) {
	zero := canvas.Point{}
	if uv0 == zero && v1.UV == zero && v2.UV == zero {
		v1.UV = canvas.Pt(0, uvEpsilon)
		v2.UV = canvas.Pt(uvEpsilon, 0)
	}
}

// appendVertex pushes one vertex after repairing NaN positions and
// converting the premultiplied color to straight alpha.
func appendVertex(vb *canvas.VertexBuffer, v Vertex, log *slog.Logger) {
	pos := v.Pos
	if math32.IsNaN(pos.X) || math32.IsNaN(pos.Y) {
		// A NaN position would otherwise suppress the whole draw.
		log.Warn("repaired NaN vertex position")
		pos = canvas.Point{}
	}
	vb.Append(pos, v.UV, unpremultiply(v.Color))
}

// unpremultiply converts a premultiplied color to straight alpha,
// preserving the alpha channel. Alpha zero yields fully transparent
// black: the division is undefined there, and transparent black keeps the
// vertex invisible under every blend the pipeline uses.
func unpremultiply(c color.RGBA) color.NRGBA {
	switch c.A {
	case 0:
		return color.NRGBA{}
	case 255:
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	a := uint32(c.A)
	return color.NRGBA{
		R: unmulChannel(uint32(c.R), a),
		G: unmulChannel(uint32(c.G), a),
		B: unmulChannel(uint32(c.B), a),
		A: c.A,
	}
}

// unmulChannel divides a premultiplied channel by alpha with rounding,
// clamping channels that exceed their alpha (invalid premultiplied input).
func unmulChannel(v, a uint32) byte {
	r := (v*255 + a/2) / a
	if r > 255 {
		return 255
	}
	return byte(r)
}
