package tokens

import (
	"log/slog"
	"slices"
)

// ScaleOption configures scale generation.
// Use functional options to customize the stop table or chroma policy.
//
// Example:
//
//	// Default eleven-stop scale
//	scale := tokens.GenerateColorScale("#3B82F6")
//
//	// Keep full chroma at the extremes
//	scale := tokens.GenerateColorScale("#3B82F6",
//	    tokens.WithChromaPolicy(tokens.ChromaPolicy{LightFactor: 1, DarkFactor: 1}))
type ScaleOption func(*scaleOptions)

// scaleOptions holds optional configuration for scale generation.
type scaleOptions struct {
	stops  []LightnessStop
	chroma ChromaPolicy
}

// defaultScaleOptions returns the options that reproduce the standard scale.
func defaultScaleOptions() scaleOptions {
	return scaleOptions{
		stops:  lightnessStops[:],
		chroma: DefaultChromaPolicy,
	}
}

// newScaleOptions applies opts over the defaults.
func newScaleOptions(opts []ScaleOption) scaleOptions {
	o := defaultScaleOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLightnessStops replaces the stop table. The table is copied and
// sorted by ascending step; an empty table keeps the default.
//
// Lightness is not required to decrease with step, but the scale is only
// monotonic if it does.
func WithLightnessStops(stops []LightnessStop) ScaleOption {
	return func(o *scaleOptions) {
		if len(stops) == 0 {
			Logger().Debug("tokens: empty stop table ignored")
			return
		}
		cp := slices.Clone(stops)
		slices.SortStableFunc(cp, func(a, b LightnessStop) int { return a.Step - b.Step })
		o.stops = cp
	}
}

// WithChromaPolicy replaces the chroma compensation applied at the
// lightness extremes.
func WithChromaPolicy(p ChromaPolicy) ScaleOption {
	return func(o *scaleOptions) {
		o.chroma = p
		Logger().Debug("tokens: chroma policy",
			slog.Float64("light_threshold", p.LightThreshold),
			slog.Float64("dark_threshold", p.DarkThreshold))
	}
}
