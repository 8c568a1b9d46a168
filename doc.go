// Package tokens generates design-system tokens from a single brand color.
//
// # Overview
//
// The heart of the package is a perceptually uniform color scale
// generator. A brand color is converted to OKLCH, its chroma and hue are
// kept, and eleven fixed lightness stops (50 through 950) are rebuilt from
// them. Because OKLCH lightness tracks perceived brightness, every scale
// produced this way steps evenly from near-white to near-black.
//
// # Quick Start
//
//	import "github.com/designkit/tokens"
//
//	scale := tokens.GenerateColorScale("#3B82F6")
//	for _, stop := range scale {
//	    fmt.Println(stop.Step, tokens.FormatColor(stop, tokens.FormatOKLCH))
//	}
//
//	// Harmonized success/warning/error/info scales and a tinted gray.
//	semantic := tokens.GenerateSemanticColors("#3B82F6")
//	neutral := tokens.GenerateNeutralScale("#3B82F6")
//
// # Failure Semantics
//
// Generators never return errors and never panic. Malformed hex input is
// treated as black, and colors that fall outside the sRGB gamut are clamped
// per channel. Use [ParseHex] when input must be validated.
//
// # Architecture
//
// The module is organized into:
//   - Public API: scales, semantic/neutral derivation, palette, formatting,
//     contrast, spacing and type scales
//   - internal/color: sRGB, linear RGB, OKLab/OKLCH and HSL math
//   - export: CSS, Tailwind, JSON and YAML emitters
//   - preview: terminal and image swatches for visual inspection
//
// # Concurrency
//
// All generators are pure functions and may be called from any number of
// goroutines. The only package state is the logger, which is stored
// atomically.
package tokens

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
