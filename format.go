package tokens

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.trai.ch/zerr"
)

// ErrUnknownFormat is returned by ParseFormat for unrecognized names.
var ErrUnknownFormat = errors.New("tokens: unknown color format")

// Format selects the CSS notation used by FormatColor.
type Format uint8

const (
	// FormatHex renders "#rrggbb".
	FormatHex Format = iota
	// FormatOKLCH renders "oklch(55.0% 0.150 25.3)".
	FormatOKLCH
	// FormatHSL renders "hsl(10 75% 55%)".
	FormatHSL
	// FormatRGB renders "rgb(200 50 40)".
	FormatRGB
)

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatOKLCH:
		return "oklch"
	case FormatHSL:
		return "hsl"
	case FormatRGB:
		return "rgb"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// ParseFormat maps "hex", "oklch", "hsl" or "rgb" (case-insensitive) to a
// Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex":
		return FormatHex, nil
	case "oklch":
		return FormatOKLCH, nil
	case "hsl":
		return FormatHSL, nil
	case "rgb":
		return FormatRGB, nil
	default:
		return FormatHex, zerr.With(ErrUnknownFormat, "format", s)
	}
}

// FormatColor renders a stop as a CSS color literal. Emitters concatenate
// these strings directly, so the output is stable character for character.
// Unknown formats fall back to hex.
func FormatColor(stop ColorStop, f Format) string {
	switch f {
	case FormatOKLCH:
		c := stop.OKLCH
		return fmt.Sprintf("oklch(%.1f%% %.3f %.1f)", c.L*100, c.C, c.H)
	case FormatHSL:
		c := stop.HSL
		return fmt.Sprintf("hsl(%d %d%% %d%%)", c.H, c.S, c.L)
	case FormatRGB:
		c := stop.RGB
		return fmt.Sprintf("rgb(%d %d %d)", c.R, c.G, c.B)
	case FormatHex:
		return stop.Hex
	default:
		Logger().Debug("tokens: unknown format, using hex", slog.Int("format", int(f)))
		return stop.Hex
	}
}
