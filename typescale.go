package tokens

import "math"

// Common modular scale ratios.
const (
	MinorSecond     = 1.067
	MajorSecond     = 1.125
	MinorThird      = 1.2
	MajorThird      = 1.25
	PerfectFourth   = 1.333
	AugmentedFourth = 1.414
	PerfectFifth    = 1.5
	GoldenRatio     = 1.618
)

// DefaultTypeBase is the body text size in px.
const DefaultTypeBase = 16.0

// TypeStep is one named size of a type scale.
type TypeStep struct {
	Name string
	Px   float64
	Rem  float64
}

// typeSteps maps size names to exponents of the ratio.
var typeSteps = [...]struct {
	name string
	exp  int
}{
	{"xs", -2},
	{"sm", -1},
	{"base", 0},
	{"lg", 1},
	{"xl", 2},
	{"2xl", 3},
	{"3xl", 4},
	{"4xl", 5},
	{"5xl", 6},
}

// GenerateTypeScale returns the sizes xs through 5xl, where size n is
// basePx × ratio^n and "base" is n = 0. Non-positive arguments fall back
// to DefaultTypeBase and MajorThird.
func GenerateTypeScale(basePx, ratio float64) []TypeStep {
	if !(basePx > 0) {
		basePx = DefaultTypeBase
	}
	if !(ratio > 0) {
		ratio = MajorThird
	}

	steps := make([]TypeStep, len(typeSteps))
	for i, ts := range typeSteps {
		px := round2(basePx * math.Pow(ratio, float64(ts.exp)))
		steps[i] = TypeStep{Name: ts.name, Px: px, Rem: toRem(px)}
	}
	return steps
}
