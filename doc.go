// Package uipaint bridges the per-frame output of a retained-mode UI
// library (an ordered list of clipped draw primitives plus incremental
// texture updates) onto an immediate-mode software canvas.
//
// The Painter is the core type. Each frame it applies the pending texture
// delta to its paint cache, walks the primitive list in order, converting
// triangle meshes and paint callbacks into canvas draw calls with correct
// clipping, blending, and device-scale handling, and finally evicts freed
// textures:
//
//	p := uipaint.NewPainter()
//	cv := canvas.New(800, 600)
//
//	// once per frame:
//	err := p.PaintAndUpdateTextures(cv, deviceScale, primitives, delta)
//
// Layout and widget logic, font rasterization, and the window event loop
// are external collaborators: the Painter only consumes one frame's
// (deviceScale, primitives, texturesDelta) and mutates the canvas in
// place.
package uipaint
