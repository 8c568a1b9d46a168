package color

import "math"

// LinearToOKLab converts linear RGB to OKLab using the published matrices
// (Björn Ottosson, 2020). The coefficients are literal; do not re-derive.
func LinearToOKLab(r, g, b float64) (L, a, bb float64) {
	// M1: linear RGB → LMS
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	// M2: LMS' → Lab
	L = 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	a = 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	bb = 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return L, a, bb
}

// OKLabToLinear is the inverse of LinearToOKLab. The result may fall
// outside [0, 1] for colors the sRGB gamut cannot represent.
func OKLabToLinear(L, a, b float64) (r, g, bl float64) {
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r = +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return r, g, bl
}

// OKLabToOKLCH converts rectangular a/b to chroma and hue (degrees, [0, 360)).
func OKLabToOKLCH(L, a, b float64) (l, c, h float64) {
	c = math.Sqrt(a*a + b*b)
	h = NormalizeHue(math.Atan2(b, a) * 180 / math.Pi)
	return L, c, h
}

// OKLCHToOKLab converts chroma and hue back to rectangular a/b.
func OKLCHToOKLab(l, c, h float64) (L, a, b float64) {
	rad := h * math.Pi / 180
	return l, c * math.Cos(rad), c * math.Sin(rad)
}

// RGBToOKLCH converts 8-bit sRGB to OKLCH.
func RGBToOKLCH(r, g, b uint8) (l, c, h float64) {
	L, a, bb := LinearToOKLab(SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b))
	return OKLabToOKLCH(L, a, bb)
}

// OKLCHToRGB converts OKLCH to 8-bit sRGB. Out-of-gamut channels are
// clamped per channel; there is no perceptual gamut compression.
func OKLCHToRGB(l, c, h float64) (r, g, b uint8) {
	lr, lg, lb := OKLabToLinear(OKLCHToOKLab(l, c, h))
	return LinearToSRGB(lr), LinearToSRGB(lg), LinearToSRGB(lb)
}

// mod is math.Mod that maps NaN and Inf to 0.
func mod(x, y float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Mod(x, y)
}
