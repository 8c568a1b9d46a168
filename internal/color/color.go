// Package color implements the numeric color space conversions behind the
// token generators: sRGB bytes, linear RGB, OKLab/OKLCH and HSL.
//
// Every function is pure. Out-of-range intermediate values are clamped
// rather than rejected, so callers always receive a representable color.
package color

// Hue boundaries in degrees.
const (
	hueMin = 0.0
	hueMax = 360.0
)

// NormalizeHue wraps h into [0, 360).
func NormalizeHue(h float64) float64 {
	h = mod(h, hueMax)
	if h < hueMin {
		h += hueMax
	}
	// -tiny + 360 rounds to exactly 360 in float64
	if h >= hueMax {
		h = hueMin
	}
	return h
}

// HueDelta returns the signed shortest rotation from a to b, in (-180, 180].
func HueDelta(a, b float64) float64 {
	d := NormalizeHue(b - a)
	if d > 180 {
		d -= hueMax
	}
	return d
}

// ClampByte restricts v to [0, 255] and rounds it to the nearest byte.
// NaN maps to 0.
func ClampByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	//nolint:gosec // G115: v is clamped to [0,255] range
	return uint8(v + 0.5)
}

// clamp01 restricts v to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
