package tokens

import "math"

// Defaults for GenerateSpacingScale.
const (
	DefaultSpacingBase  = 4.0
	DefaultSpacingRatio = 1.5
	DefaultSpacingCount = 10
)

// RootFontSize is the px size of 1rem.
const RootFontSize = 16.0

// SpacingStep is one entry of a spacing scale.
type SpacingStep struct {
	Index int
	Px    float64
	Rem   float64
}

// GenerateSpacingScale returns count steps of the geometric sequence
// basePx × ratio^i, starting at i = 0. Non-positive arguments fall back to
// the defaults; a ratio below 1 is allowed and yields a shrinking scale.
func GenerateSpacingScale(basePx, ratio float64, count int) []SpacingStep {
	if !(basePx > 0) {
		basePx = DefaultSpacingBase
	}
	if !(ratio > 0) {
		ratio = DefaultSpacingRatio
	}
	if count <= 0 {
		count = DefaultSpacingCount
	}

	steps := make([]SpacingStep, count)
	for i := range steps {
		px := round2(basePx * math.Pow(ratio, float64(i)))
		steps[i] = SpacingStep{Index: i, Px: px, Rem: toRem(px)}
	}
	return steps
}

// round2 rounds to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// toRem converts px to rem with four decimals.
func toRem(px float64) float64 {
	return math.Round(px/RootFontSize*10000) / 10000
}
