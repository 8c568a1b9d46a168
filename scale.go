package tokens

import (
	"log/slog"

	"github.com/designkit/tokens/internal/color"
)

// ColorStop is one position of a generated scale.
//
// OKLCH holds the target the stop was built from (fixed lightness, chroma
// after compensation, base hue). Hex, RGB and HSL describe the sRGB color
// actually produced, after gamut clamping.
type ColorStop struct {
	Step  int
	Hex   string
	OKLCH OKLCH
	RGB   RGB
	HSL   HSL
}

// LightnessStop pairs a scale step with its OKLCH lightness.
type LightnessStop struct {
	Step int
	L    float64
}

// lightnessStops is the fixed stop table. Lightness strictly decreases as
// step increases.
var lightnessStops = [...]LightnessStop{
	{Step: 50, L: 0.97},
	{Step: 100, L: 0.93},
	{Step: 200, L: 0.87},
	{Step: 300, L: 0.78},
	{Step: 400, L: 0.68},
	{Step: 500, L: 0.58},
	{Step: 600, L: 0.50},
	{Step: 700, L: 0.42},
	{Step: 800, L: 0.34},
	{Step: 900, L: 0.26},
	{Step: 950, L: 0.18},
}

// LightnessStops returns a copy of the standard stop table.
func LightnessStops() []LightnessStop {
	out := make([]LightnessStop, len(lightnessStops))
	copy(out, lightnessStops[:])
	return out
}

// Steps returns the standard step identifiers in ascending order.
func Steps() []int {
	out := make([]int, len(lightnessStops))
	for i, s := range lightnessStops {
		out[i] = s.Step
	}
	return out
}

// ChromaPolicy scales chroma near the ends of the lightness range.
// Full chroma at L > 0.9 washes out to pastel noise and at L < 0.2 turns
// muddy, so those stops get a reduced multiplier.
type ChromaPolicy struct {
	LightThreshold float64 // stops lighter than this use LightFactor
	LightFactor    float64
	DarkThreshold  float64 // stops darker than this use DarkFactor
	DarkFactor     float64
}

// DefaultChromaPolicy is the compensation used by the standard scale.
var DefaultChromaPolicy = ChromaPolicy{
	LightThreshold: 0.9,
	LightFactor:    0.3,
	DarkThreshold:  0.2,
	DarkFactor:     0.7,
}

// Factor returns the chroma multiplier for lightness l.
func (p ChromaPolicy) Factor(l float64) float64 {
	switch {
	case l > p.LightThreshold:
		return p.LightFactor
	case l < p.DarkThreshold:
		return p.DarkFactor
	default:
		return 1
	}
}

// GenerateColorScale builds the eleven-stop scale for a base color.
//
// Only the chroma and hue of the base survive; lightness always comes from
// the stop table, so a pale and a deep input with the same hue produce the
// same scale shape. Stops are returned in ascending step order.
func GenerateColorScale(hex string, opts ...ScaleOption) []ColorStop {
	o := newScaleOptions(opts)
	base := HexToRGB(hex).OKLCH()
	return buildScale(base.C, base.H, o)
}

// buildScale emits one stop per table entry for the given chroma and hue.
func buildScale(chroma, hue float64, o scaleOptions) []ColorStop {
	stops := make([]ColorStop, 0, len(o.stops))
	for _, ls := range o.stops {
		target := OKLCH{
			L: ls.L,
			C: chroma * o.chroma.Factor(ls.L),
			H: color.NormalizeHue(hue),
		}
		stops = append(stops, newColorStop(ls.Step, target))
	}
	Logger().Debug("tokens: scale generated",
		slog.Float64("chroma", chroma),
		slog.Float64("hue", hue),
		slog.Int("stops", len(stops)))
	return stops
}

// newColorStop converts a target OKLCH color into a ColorStop.
func newColorStop(step int, target OKLCH) ColorStop {
	rgb := target.RGB()
	return ColorStop{
		Step:  step,
		Hex:   rgb.Hex(),
		OKLCH: target,
		RGB:   rgb,
		HSL:   rgb.HSL(),
	}
}
