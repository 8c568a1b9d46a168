package tokens

import (
	"errors"
	"testing"
)

func TestFormatColor(t *testing.T) {
	stop := ColorStop{
		Step:  500,
		Hex:   "#c83228",
		OKLCH: OKLCH{L: 0.55, C: 0.15, H: 25.3},
		RGB:   RGB{200, 50, 40},
		HSL:   HSL{10, 75, 55},
	}
	tests := []struct {
		format Format
		want   string
	}{
		{FormatOKLCH, "oklch(55.0% 0.150 25.3)"},
		{FormatHSL, "hsl(10 75% 55%)"},
		{FormatRGB, "rgb(200 50 40)"},
		{FormatHex, "#c83228"},
		{Format(99), "#c83228"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := FormatColor(stop, tt.format); got != tt.want {
				t.Errorf("FormatColor(%v) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatColorGenerated(t *testing.T) {
	scale := GenerateColorScale("#3B82F6")
	s := scale[5]
	if got, want := FormatColor(s, FormatOKLCH), "oklch(58.0% 0.188 259.8)"; got != want {
		t.Errorf("FormatColor(500, oklch) = %q, want %q", got, want)
	}
	if got, want := FormatColor(s, FormatHex), s.Hex; got != want {
		t.Errorf("FormatColor(500, hex) = %q, want %q", got, want)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"hex", FormatHex},
		{"OKLCH", FormatOKLCH},
		{" hsl ", FormatHSL},
		{"rgb", FormatRGB},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if back, _ := ParseFormat(got.String()); back != got {
			t.Errorf("ParseFormat(%v.String()) = %v", got, back)
		}
	}

	if _, err := ParseFormat("cmyk"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(cmyk) error = %v, want ErrUnknownFormat", err)
	}
}
