// Package blend implements the Porter-Duff compositing operators and the
// modulate combine used by the canvas vertex pipeline.
//
// All blend operations work with premultiplied alpha values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a compositing or combine operation.
type Mode uint8

const (
	// Porter-Duff modes (standard compositing operators)
	Clear           Mode = iota // Result: 0 (clear destination)
	Source                      // Result: S (replace with source)
	Destination                 // Result: D (keep destination)
	SourceOver                  // Result: S + D*(1-Sa) [default]
	DestinationOver             // Result: S*(1-Da) + D
	DestinationIn               // Result: D*Sa
	DestinationOut              // Result: D*(1-Sa)
	Plus                        // Result: S + D (clamped to 255)
	Modulate                    // Result: S*D (component-wise multiply)
)

// modeNames maps Mode values to their string representation.
var modeNames = [...]string{
	Clear:           "Clear",
	Source:          "Source",
	Destination:     "Destination",
	SourceOver:      "SourceOver",
	DestinationOver: "DestinationOver",
	DestinationIn:   "DestinationIn",
	DestinationOut:  "DestinationOut",
	Plus:            "Plus",
	Modulate:        "Modulate",
}

// String returns the string representation of a Mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Unknown"
}

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting color (r, g, b, a) after blending.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the blend function for the given mode.
// Returns sourceOver for unknown modes.
func GetFunc(mode Mode) Func {
	switch mode {
	case Clear:
		return blendClear
	case Source:
		return blendSource
	case Destination:
		return blendDestination
	case SourceOver:
		return blendSourceOver
	case DestinationOver:
		return blendDestinationOver
	case DestinationIn:
		return blendDestinationIn
	case DestinationOut:
		return blendDestinationOut
	case Plus:
		return blendPlus
	case Modulate:
		return blendModulate
	default:
		return blendSourceOver
	}
}

// blendClear clears the destination to transparent black.
func blendClear(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

// blendSource replaces destination with source.
func blendSource(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// blendDestination keeps destination unchanged.
func blendDestination(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

// blendSourceOver composites source over destination (default blend mode).
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp255(sr, MulDiv255(dr, invSa)),
		addClamp255(sg, MulDiv255(dg, invSa)),
		addClamp255(sb, MulDiv255(db, invSa)),
		addClamp255(sa, MulDiv255(da, invSa))
}

// blendDestinationOver composites destination over source.
// Formula: S * (1 - Da) + D
func blendDestinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp255(MulDiv255(sr, invDa), dr),
		addClamp255(MulDiv255(sg, invDa), dg),
		addClamp255(MulDiv255(sb, invDa), db),
		addClamp255(MulDiv255(sa, invDa), da)
}

// blendDestinationIn shows destination where source is opaque.
// Formula: D * Sa
func blendDestinationIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return MulDiv255(dr, sa), MulDiv255(dg, sa), MulDiv255(db, sa), MulDiv255(da, sa)
}

// blendDestinationOut shows destination where source is transparent.
// Formula: D * (1 - Sa)
func blendDestinationOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return MulDiv255(dr, invSa), MulDiv255(dg, invSa), MulDiv255(db, invSa), MulDiv255(da, invSa)
}

// blendPlus adds source and destination with clamping.
// Formula: S + D
func blendPlus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp255(sr, dr), addClamp255(sg, dg), addClamp255(sb, db), addClamp255(sa, da)
}

// blendModulate multiplies source and destination component-wise.
// Formula: S * D
//
// This is the combine the vertex pipeline uses to tint texture samples by
// per-vertex colors (rendered color = vertex color × sampled texture color).
func blendModulate(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return MulDiv255(sr, dr), MulDiv255(sg, dg), MulDiv255(sb, db), MulDiv255(sa, da)
}
