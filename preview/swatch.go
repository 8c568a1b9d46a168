package preview

import (
	"image"
	"image/color"
	"strconv"

	"github.com/designkit/tokens"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// SwatchOption configures Swatch.
type SwatchOption func(*swatchOptions)

type swatchOptions struct {
	cellW, cellH int
	labels       bool
}

func defaultSwatchOptions() swatchOptions {
	return swatchOptions{cellW: 96, cellH: 64, labels: true}
}

// WithCellSize sets the size of one stop cell in pixels. Non-positive
// values keep the default.
func WithCellSize(w, h int) SwatchOption {
	return func(o *swatchOptions) {
		if w > 0 {
			o.cellW = w
		}
		if h > 0 {
			o.cellH = h
		}
	}
}

// WithLabels toggles the step and hex labels.
func WithLabels(on bool) SwatchOption {
	return func(o *swatchOptions) {
		o.labels = on
	}
}

// labelInset is the gap between a cell edge and its text.
const labelInset = 4

// Swatch paints the stops side by side into a new image, one cell per
// stop in the given order. Labels are drawn only when the cell can hold
// the hex string.
func Swatch(stops []tokens.ColorStop, opts ...SwatchOption) *image.RGBA {
	o := defaultSwatchOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, o.cellW*len(stops), o.cellH))
	face := basicfont.Face7x13
	canLabel := o.labels &&
		o.cellW >= 2*labelInset+7*face.Advance &&
		o.cellH >= 2*labelInset+2*face.Height

	for i, s := range stops {
		cell := image.Rect(i*o.cellW, 0, (i+1)*o.cellW, o.cellH)
		draw.Draw(img, cell, image.NewUniform(rgba(s.RGB)), image.Point{}, draw.Src)
		if !canLabel {
			continue
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(rgba(s.Foreground())),
			Face: face,
		}
		x := cell.Min.X + labelInset
		y := cell.Min.Y + labelInset + face.Ascent
		d.Dot = fixed.P(x, y)
		d.DrawString(strconv.Itoa(s.Step))
		d.Dot = fixed.P(x, y+face.Height)
		d.DrawString(s.Hex)
	}
	return img
}

func rgba(c tokens.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
