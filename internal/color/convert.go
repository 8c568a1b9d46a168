package color

// SRGBToLinear expands an 8-bit sRGB channel to linear light in [0, 1]
// (EOTF). Below 0.04045 the curve is linear, above it a 2.4 power.
//
// Example:
//
//	SRGBToLinear(128) // ~0.2159 (not 0.5!)
func SRGBToLinear(c uint8) float64 {
	return sRGBToLinearLUT[c]
}

// LinearToSRGB encodes linear light to an 8-bit sRGB channel (OETF).
//
// The input is clamped to [0, 1] before the curve is applied, so
// out-of-gamut values from OKLab math degrade to 0 or 255 instead of
// producing NaN or wrapped bytes.
func LinearToSRGB(v float64) uint8 {
	return ClampByte(linearToSRGBSlow(clamp01(v)) * 255)
}

// LinearToSRGBFloat is LinearToSRGB without the final rounding; the result
// is in [0, 1].
func LinearToSRGBFloat(v float64) float64 {
	return linearToSRGBSlow(clamp01(v))
}
