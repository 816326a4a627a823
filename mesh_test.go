package uipaint

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/uipaint/canvas"
	"github.com/gogpu/uipaint/internal/blend"
)

var opaqueWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func TestSplitMeshSmallPassesThrough(t *testing.T) {
	m := &Mesh{
		Vertices: make([]Vertex, 3),
		Indices:  []uint32{0, 1, 2},
	}
	batches := splitMesh(m)
	if len(batches) != 1 {
		t.Fatalf("len(batches) = %d, want 1", len(batches))
	}
	if len(batches[0].vertices) != 3 || len(batches[0].indices) != 3 {
		t.Errorf("batch = %d vertices / %d indices, want 3/3",
			len(batches[0].vertices), len(batches[0].indices))
	}
}

// bigMesh builds a mesh with more than 65535 indexed vertices: a long
// strip of tiny triangles, three fresh vertices each.
func bigMesh(triangles int) *Mesh {
	m := &Mesh{}
	for i := 0; i < triangles; i++ {
		base := uint32(len(m.Vertices))
		x := float32(i%14) + 1
		y := float32((i/14)%14) + 1
		m.Vertices = append(m.Vertices,
			Vertex{Pos: canvas.Pt(x, y), UV: canvas.Pt(0.5, 0.5), Color: opaqueWhite},
			Vertex{Pos: canvas.Pt(x+1, y), UV: canvas.Pt(0.5, 0.5), Color: opaqueWhite},
			Vertex{Pos: canvas.Pt(x, y+1), UV: canvas.Pt(0.5, 0.5), Color: opaqueWhite},
		)
		m.Indices = append(m.Indices, base, base+1, base+2)
	}
	return m
}

func TestSplitMeshOversized(t *testing.T) {
	// 24000 triangles = 72000 vertices, beyond 16-bit index space.
	m := bigMesh(24000)
	batches := splitMesh(m)

	if len(batches) < 2 {
		t.Fatalf("len(batches) = %d, want at least 2", len(batches))
	}

	totalTriangles := 0
	for i, b := range batches {
		if len(b.vertices) > maxBatchVertices {
			t.Errorf("batch %d references %d vertices, want < %d",
				i, len(b.vertices), maxBatchVertices)
		}
		for _, idx := range b.indices {
			if int(idx) >= len(b.vertices) {
				t.Fatalf("batch %d: rebased index %d out of range %d",
					i, idx, len(b.vertices))
			}
		}
		totalTriangles += len(b.indices) / 3
	}
	if totalTriangles != 24000 {
		t.Errorf("total triangles across batches = %d, want 24000", totalTriangles)
	}
}

func TestSplitMeshWideTriangle(t *testing.T) {
	// One triangle whose indices span more than the 16-bit range gets
	// remapped into its own three-vertex batch.
	m := bigMesh(24000)
	last := uint32(len(m.Vertices) - 1)
	m.Indices = append([]uint32{0, last, 1}, m.Indices...)

	batches := splitMesh(m)
	if len(batches) < 3 {
		t.Fatalf("len(batches) = %d, want at least 3", len(batches))
	}

	first := batches[0]
	if len(first.vertices) != 3 {
		t.Errorf("wide-triangle batch has %d vertices, want 3 (remapped)", len(first.vertices))
	}
	wantIdx := []uint32{0, 1, 2}
	for i, idx := range first.indices {
		if idx != wantIdx[i] {
			t.Errorf("wide-triangle index %d = %d, want %d", i, idx, wantIdx[i])
		}
	}
	if first.vertices[1].Pos != m.Vertices[last].Pos {
		t.Errorf("remapped vertex 2 = %v, want original vertex %d", first.vertices[1].Pos, last)
	}

	for i, b := range batches {
		if len(b.vertices) > maxBatchVertices {
			t.Errorf("batch %d references %d vertices, want at most %d",
				i, len(b.vertices), maxBatchVertices)
		}
	}
}

func TestSplitMeshRenderingMatchesUnsplit(t *testing.T) {
	m := bigMesh(24000)
	log := newNopLogger()

	// Render via splitting.
	split := canvas.New(16, 16)
	for _, b := range splitMesh(m) {
		split.DrawVertices(batchBuffer(b, log), blend.Modulate, canvas.NewPaint())
	}

	// Render as one hypothetical unsplit batch.
	whole := canvas.New(16, 16)
	whole.DrawVertices(batchBuffer(meshBatch{vertices: m.Vertices, indices: m.Indices}, log),
		blend.Modulate, canvas.NewPaint())

	sp := split.Image().Pix
	wp := whole.Image().Pix
	for i := range sp {
		if sp[i] != wp[i] {
			t.Fatalf("pixel byte %d differs: split %d, unsplit %d", i, sp[i], wp[i])
		}
	}
}

func TestFlatUVFixup(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{
			{Pos: canvas.Pt(0, 0), Color: opaqueWhite},
			{Pos: canvas.Pt(4, 0), Color: opaqueWhite},
			{Pos: canvas.Pt(0, 4), Color: opaqueWhite},
		},
		Indices: []uint32{0, 1, 2},
	}

	vb := batchBuffer(splitMesh(m)[0], newNopLogger())

	if vb.UVs[0] != canvas.Pt(0, 0) {
		t.Errorf("vertex 1 UV = %v, want untouched (0,0)", vb.UVs[0])
	}
	if vb.UVs[1] != canvas.Pt(0, 1.0/65536) {
		t.Errorf("vertex 2 UV = %v, want (0, 1/65536)", vb.UVs[1])
	}
	if vb.UVs[2] != canvas.Pt(1.0/65536, 0) {
		t.Errorf("vertex 3 UV = %v, want (1/65536, 0)", vb.UVs[2])
	}
}

func TestFlatUVFixupLeavesOtherTrianglesAlone(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{
			{UV: canvas.Pt(0, 0), Color: opaqueWhite},
			{UV: canvas.Pt(0.5, 0), Color: opaqueWhite},
			{UV: canvas.Pt(0, 0), Color: opaqueWhite},
		},
		Indices: []uint32{0, 1, 2},
	}

	vb := batchBuffer(splitMesh(m)[0], newNopLogger())

	// One non-zero UV means the triangle is not the flat-color sentinel.
	want := []canvas.Point{canvas.Pt(0, 0), canvas.Pt(0.5, 0), canvas.Pt(0, 0)}
	for i, uv := range vb.UVs {
		if uv != want[i] {
			t.Errorf("vertex %d UV = %v, want %v (unmodified)", i+1, uv, want[i])
		}
	}
}

func TestNaNPositionRepair(t *testing.T) {
	nan := math32.NaN()
	m := &Mesh{
		Vertices: []Vertex{
			{Pos: canvas.Pt(nan, 2), UV: canvas.Pt(0.5, 0.5), Color: color.RGBA{R: 10, G: 20, B: 30, A: 255}},
			{Pos: canvas.Pt(4, 0), UV: canvas.Pt(0.25, 0.25), Color: opaqueWhite},
			{Pos: canvas.Pt(0, 4), UV: canvas.Pt(0.75, 0.75), Color: opaqueWhite},
		},
		Indices: []uint32{0, 1, 2},
	}

	vb := batchBuffer(splitMesh(m)[0], newNopLogger())

	if vb.Positions[0] != canvas.Pt(0, 0) {
		t.Errorf("NaN position = %v, want forced to (0,0)", vb.Positions[0])
	}
	if vb.UVs[0] != canvas.Pt(0.5, 0.5) {
		t.Errorf("UV of repaired vertex = %v, want untouched (0.5,0.5)", vb.UVs[0])
	}
	if vb.Colors[0] != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("color of repaired vertex = %v, want untouched", vb.Colors[0])
	}
	if vb.Positions[1] != canvas.Pt(4, 0) || vb.Positions[2] != canvas.Pt(0, 4) {
		t.Error("other vertices in the triangle must be untouched")
	}
}

func TestUnpremultiply(t *testing.T) {
	tests := []struct {
		name string
		in   color.RGBA
		want color.NRGBA
	}{
		{"opaque white round trip", color.RGBA{255, 255, 255, 255}, color.NRGBA{255, 255, 255, 255}},
		{"opaque color passthrough", color.RGBA{10, 20, 30, 255}, color.NRGBA{10, 20, 30, 255}},
		{"half alpha gray", color.RGBA{64, 64, 64, 128}, color.NRGBA{128, 128, 128, 128}},
		{"zero alpha is transparent black", color.RGBA{0, 0, 0, 0}, color.NRGBA{}},
		{"invalid premul clamps to 255", color.RGBA{200, 0, 0, 100}, color.NRGBA{255, 0, 0, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unpremultiply(tt.in); got != tt.want {
				t.Errorf("unpremultiply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
