package color

import "math"

// RGBToHSL derives hue (degrees), saturation and lightness (percent) from
// 8-bit sRGB, each rounded to an integer. Achromatic input (max == min)
// yields hue 0 and saturation 0.
func RGBToHSL(r, g, b uint8) (h, s, l int) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	hi := math.Max(rf, math.Max(gf, bf))
	lo := math.Min(rf, math.Min(gf, bf))
	lf := (hi + lo) / 2

	if hi == lo {
		return 0, 0, int(math.Round(lf * 100))
	}

	d := hi - lo
	var sf float64
	if lf > 0.5 {
		sf = d / (2 - hi - lo)
	} else {
		sf = d / (hi + lo)
	}

	var hf float64
	switch hi {
	case rf:
		hf = (gf - bf) / d
		if gf < bf {
			hf += 6
		}
	case gf:
		hf = (bf-rf)/d + 2
	default:
		hf = (rf-gf)/d + 4
	}
	hf *= 60

	h = int(math.Round(hf))
	if h >= 360 {
		h -= 360
	}
	return h, int(math.Round(sf * 100)), int(math.Round(lf * 100))
}
