package tokens

import (
	"math"
	"sort"
	"testing"
)

func TestBlendHue(t *testing.T) {
	tests := []struct {
		name                   string
		base, brand, influence float64
		want                   float64
	}{
		{"wrap across zero", 10, 350, 0.5, 0},
		{"wrap the other way", 350, 10, 0.5, 0},
		{"no influence", 145, 260, 0, 145},
		{"full influence", 145, 260, 1, 260},
		{"success toward blue", 145, 260, 0.10, 156.5},
		{"same hue", 70, 70, 0.10, 70},
		{"error toward pink", 25, 354, 0.08, 22.52},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BlendHue(tt.base, tt.brand, tt.influence)
			if got < 0 || got >= 360 {
				t.Fatalf("BlendHue = %v, outside [0,360)", got)
			}
			if !floatNear(got, tt.want, 1e-9) {
				t.Errorf("BlendHue(%v, %v, %v) = %v, want %v", tt.base, tt.brand, tt.influence, got, tt.want)
			}
		})
	}
}

// TestBlendHueShortArc checks the result stays on the short arc between
// 350° and 10° for every influence.
func TestBlendHueShortArc(t *testing.T) {
	for i := 0; i <= 10; i++ {
		got := BlendHue(10, 350, float64(i)/10)
		if !(got >= 350 || got <= 10) {
			t.Errorf("influence %.1f: %v left the short arc", float64(i)/10, got)
		}
	}
}

func TestGenerateSemanticColors(t *testing.T) {
	sem := GenerateSemanticColors("#3B82F6")
	keys := make([]string, 0, len(sem))
	for k := range sem {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	want := []string{"error", "info", "success", "warning"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	for name, scale := range sem {
		t.Run(name, func(t *testing.T) {
			if len(scale) != 11 {
				t.Fatalf("len = %d, want 11", len(scale))
			}
			assertMonotonic(t, scale)
			for _, s := range scale {
				if !hexPattern.MatchString(s.Hex) {
					t.Errorf("stop %d: bad hex %q", s.Step, s.Hex)
				}
			}
		})
	}
}

func TestGenerateSemanticColorsHueHarmonized(t *testing.T) {
	brand := HexToRGB("#3B82F6").OKLCH()
	sem := GenerateSemanticColors("#3B82F6")
	for _, role := range SemanticRoles() {
		want := BlendHue(role.Hue, brand.H, role.Influence)
		got := sem[role.Name][5].OKLCH.H
		// gamut clipping of the synthetic base shifts hue a few degrees
		if math.Abs(hueDiff(got, want)) > 5 {
			t.Errorf("%s: hue %v, want about %v", role.Name, got, want)
		}
	}
}

// TestGenerateSemanticColorsNearZeroHue uses a brand whose hue sits just
// below 360°, where a linear blend would drag the error hue to ~51°.
func TestGenerateSemanticColorsNearZeroHue(t *testing.T) {
	const pink = "#ec4899"
	brand := HexToRGB(pink).OKLCH()
	if brand.H < 340 {
		t.Fatalf("test brand hue = %v, want near 360", brand.H)
	}
	errHue := GenerateSemanticColors(pink)[RoleError][5].OKLCH.H
	if errHue < 18 || errHue > 25 {
		t.Errorf("error hue = %v, want between 18 and 25 (short-arc blend from 25° toward %v)", errHue, brand.H)
	}
}

func TestGenerateNeutralScale(t *testing.T) {
	scale := GenerateNeutralScale("#3B82F6")
	if len(scale) != 11 {
		t.Fatalf("len = %d, want 11", len(scale))
	}
	assertMonotonic(t, scale)
	for _, s := range scale {
		if s.OKLCH.C > 0.02 {
			t.Errorf("stop %d: chroma %v, want near-neutral", s.Step, s.OKLCH.C)
		}
		if s.HSL.S > 30 {
			t.Errorf("stop %d: saturation %d%%, want a gray", s.Step, s.HSL.S)
		}
	}
	// Tinted toward blue: blue channel leads in the mid tones.
	mid := scale[5].RGB
	if mid.B < mid.R {
		t.Errorf("stop 500 %+v not tinted toward brand blue", mid)
	}
}

func TestSemanticRolesIsCopy(t *testing.T) {
	r := SemanticRoles()
	r[0].Hue = 0
	if SemanticRoles()[0].Hue != 145 {
		t.Fatal("SemanticRoles exposed the package table")
	}
}

func hueDiff(a, b float64) float64 {
	d := math.Mod(b-a+540, 360) - 180
	return d
}
