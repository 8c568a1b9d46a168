package tokens

import (
	"github.com/designkit/tokens/internal/color"
)

// Semantic role names, as used for map keys and token names.
const (
	RoleSuccess = "success"
	RoleWarning = "warning"
	RoleError   = "error"
	RoleInfo    = "info"
)

// SemanticRole describes how one semantic scale is derived: a fixed base
// hue pulled toward the brand hue by Influence (0 keeps the base hue,
// 1 adopts the brand hue).
type SemanticRole struct {
	Name      string
	Hue       float64
	Influence float64
}

// semanticRoles is ordered for deterministic output.
var semanticRoles = [...]SemanticRole{
	{Name: RoleSuccess, Hue: 145, Influence: 0.10},
	{Name: RoleWarning, Hue: 70, Influence: 0.10},
	{Name: RoleError, Hue: 25, Influence: 0.08},
	{Name: RoleInfo, Hue: 250, Influence: 0.15},
}

// SemanticRoles returns the semantic role table in output order.
func SemanticRoles() []SemanticRole {
	out := make([]SemanticRole, len(semanticRoles))
	copy(out, semanticRoles[:])
	return out
}

// Synthetic base colors for derived scales.
const (
	neutralL = 0.55
	neutralC = 0.01

	semanticL = 0.55
	semanticC = 0.15
)

// BlendHue moves base toward brand by influence along the shorter arc of
// the hue circle and returns the result in [0, 360).
//
//	BlendHue(10, 350, 0.5) // 0, not 180
func BlendHue(base, brand, influence float64) float64 {
	return color.NormalizeHue(base + color.HueDelta(base, brand)*influence)
}

// GenerateNeutralScale builds a near-gray scale tinted toward the brand
// hue. The brand's own chroma and lightness are ignored.
func GenerateNeutralScale(hex string, opts ...ScaleOption) []ColorStop {
	brand := HexToRGB(hex).OKLCH()
	return GenerateColorScale(syntheticHex(neutralL, neutralC, brand.H), opts...)
}

// GenerateSemanticColors builds success, warning, error and info scales
// whose hues are harmonized with the brand color. The map has exactly
// those four keys.
func GenerateSemanticColors(hex string, opts ...ScaleOption) map[string][]ColorStop {
	brand := HexToRGB(hex).OKLCH()
	out := make(map[string][]ColorStop, len(semanticRoles))
	for _, role := range semanticRoles {
		hue := BlendHue(role.Hue, brand.H, role.Influence)
		out[role.Name] = GenerateColorScale(syntheticHex(semanticL, semanticC, hue), opts...)
	}
	return out
}

// syntheticHex renders an OKLCH color to hex so derived scales go through
// the same path as user input.
func syntheticHex(l, c, h float64) string {
	return OKLCH{L: l, C: c, H: h}.RGB().Hex()
}
