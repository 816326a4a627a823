package blend

// MulDiv255 multiplies two byte values and divides by 255 with proper rounding.
// Formula: (a * b + 127) / 255
// The +127 provides correct rounding (equivalent to adding 0.5 before truncation).
//
// Rounding exactness matters here: the un-premultiply round trip in the bridge
// relies on MulDiv255(255, x) == x so that opaque white survives the pipeline
// bit-exact.
func MulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp255 adds two byte values with clamping to 255.
func addClamp255(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
