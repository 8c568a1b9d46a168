package color

import "math"

// sRGBToLinearLUT holds the expanded value of every sRGB byte.
// 256 float64 entries, 2KB.
var sRGBToLinearLUT [256]float64

func init() {
	for i := 0; i < 256; i++ {
		sRGBToLinearLUT[i] = srgbToLinearSlow(float64(i) / 255.0)
	}
}

// srgbToLinearSlow is the reference EOTF on a normalized component.
func srgbToLinearSlow(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// linearToSRGBSlow is the reference OETF on a normalized component.
func linearToSRGBSlow(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}
