package tokens

// WCAG 2.x contrast thresholds.
const (
	ContrastAA      = 4.5
	ContrastAALarge = 3.0
	ContrastAAA     = 7.0
)

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c RGB) float64 {
	return 0.2126*SRGBToLinear(c.R) + 0.7152*SRGBToLinear(c.G) + 0.0722*SRGBToLinear(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in
// [1, 21]. The order of the arguments does not matter.
func ContrastRatio(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ReadableForeground picks black or white text for a background. Black
// wins when it meets AA or contrasts at least as well as white.
func ReadableForeground(bg RGB) RGB {
	onBlack := ContrastRatio(Black, bg)
	if onBlack >= ContrastAA || onBlack >= ContrastRatio(White, bg) {
		return Black
	}
	return White
}

// Foreground returns the readable text color for the stop.
func (s ColorStop) Foreground() RGB {
	return ReadableForeground(s.RGB)
}
