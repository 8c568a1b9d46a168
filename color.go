package tokens

import (
	"errors"
	"log/slog"

	"github.com/designkit/tokens/internal/color"
	"go.trai.ch/zerr"
)

// ErrInvalidHex is returned by ParseHex for input that is not a 6-digit
// hex color.
var ErrInvalidHex = errors.New("tokens: invalid hex color")

// RGB is an 8-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

// OKLCH is a color in the cylindrical form of OKLab.
// L is lightness [0, 1], C is chroma (>= 0), H is hue in degrees [0, 360).
type OKLCH struct {
	L, C, H float64
}

// HSL is a CSS-style HSL triple: hue in degrees [0, 360), saturation and
// lightness in percent [0, 100].
type HSL struct {
	H, S, L int
}

// Hex returns the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return color.FormatHex(c.R, c.G, c.B)
}

// OKLCH converts the color to OKLCH.
func (c RGB) OKLCH() OKLCH {
	return RGBToOKLCH(c)
}

// HSL converts the color to HSL.
func (c RGB) HSL() HSL {
	return RGBToHSL(c)
}

// RGB converts the color to sRGB, clamping channels that fall outside the
// gamut.
func (c OKLCH) RGB() RGB {
	return OKLCHToRGB(c)
}

// Black is the fallback for unparseable input.
var Black = RGB{}

// White is the lightest sRGB color.
var White = RGB{R: 255, G: 255, B: 255}

// HexToRGB parses "#RRGGBB" or "RRGGBB" (case-insensitive).
//
// Malformed input does not fail: it yields black. This keeps every
// generator total; use ParseHex to detect bad input instead.
func HexToRGB(hex string) RGB {
	r, g, b, ok := color.ParseHex(hex)
	if !ok {
		Logger().Debug("tokens: malformed hex, using black", slog.String("input", hex))
		return Black
	}
	return RGB{R: r, G: g, B: b}
}

// ParseHex is the strict form of HexToRGB. The returned error wraps
// ErrInvalidHex and carries the offending input.
func ParseHex(hex string) (RGB, error) {
	r, g, b, ok := color.ParseHex(hex)
	if !ok {
		return RGB{}, zerr.With(ErrInvalidHex, "input", hex)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// RGBToHex encodes channel values as "#rrggbb". Each channel is clamped to
// [0, 255] and rounded first, so any input yields a valid hex string.
//
//	RGBToHex(300, -10, 128) // "#ff0080"
func RGBToHex(r, g, b float64) string {
	return color.FormatHex(color.ClampByte(r), color.ClampByte(g), color.ClampByte(b))
}

// SRGBToLinear expands an sRGB channel byte to linear light in [0, 1].
func SRGBToLinear(c uint8) float64 {
	return color.SRGBToLinear(c)
}

// LinearToSRGB encodes linear light to an sRGB channel byte. Input is
// clamped to [0, 1] first.
func LinearToSRGB(v float64) uint8 {
	return color.LinearToSRGB(v)
}

// RGBToOKLCH converts sRGB to OKLCH.
func RGBToOKLCH(c RGB) OKLCH {
	l, ch, h := color.RGBToOKLCH(c.R, c.G, c.B)
	return OKLCH{L: l, C: ch, H: h}
}

// OKLCHToRGB converts OKLCH to sRGB. Colors outside the sRGB gamut are
// clamped per channel; no perceptual gamut mapping is attempted.
func OKLCHToRGB(c OKLCH) RGB {
	r, g, b := color.OKLCHToRGB(c.L, c.C, c.H)
	return RGB{R: r, G: g, B: b}
}

// RGBToHSL converts sRGB to HSL. Achromatic colors have hue and
// saturation 0.
func RGBToHSL(c RGB) HSL {
	h, s, l := color.RGBToHSL(c.R, c.G, c.B)
	return HSL{H: h, S: s, L: l}
}
