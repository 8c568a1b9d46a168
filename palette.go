package tokens

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Palette groups every scale derived from one brand color.
type Palette struct {
	Brand    string // normalized "#rrggbb"
	Primary  []ColorStop
	Neutral  []ColorStop
	Semantic map[string][]ColorStop
}

// Group is a named scale within a palette.
type Group struct {
	Name  string
	Stops []ColorStop
}

// GeneratePalette derives the primary, neutral and semantic scales for a
// brand color. Options apply to every scale.
func GeneratePalette(hex string, opts ...ScaleOption) Palette {
	return Palette{
		Brand:    HexToRGB(hex).Hex(),
		Primary:  GenerateColorScale(hex, opts...),
		Neutral:  GenerateNeutralScale(hex, opts...),
		Semantic: GenerateSemanticColors(hex, opts...),
	}
}

// Groups returns the palette scales in a fixed order: primary, neutral,
// then the semantic roles in SemanticRoles order.
func (p Palette) Groups() []Group {
	groups := []Group{
		{Name: "primary", Stops: p.Primary},
		{Name: "neutral", Stops: p.Neutral},
	}
	for _, role := range semanticRoles {
		if stops, ok := p.Semantic[role.Name]; ok {
			groups = append(groups, Group{Name: role.Name, Stops: stops})
		}
	}
	return groups
}

// Fingerprint returns a 16-digit hex digest of every stop color in the
// palette. Palettes with identical output colors share a fingerprint,
// which emitters use as a version stamp.
func (p Palette) Fingerprint() string {
	h := xxhash.New()
	_, _ = h.WriteString(p.Brand)
	for _, g := range p.Groups() {
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(g.Name)
		for _, s := range g.Stops {
			_, _ = h.Write([]byte{0})
			_, _ = h.WriteString(strconv.Itoa(s.Step))
			_, _ = h.WriteString(s.Hex)
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
