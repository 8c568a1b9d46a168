package export

import "github.com/designkit/tokens"

// Option configures an emitter.
type Option func(*options)

// options holds emitter configuration.
type options struct {
	format tokens.Format
	prefix string
}

// defaultOptions emits hex literals under the "color" prefix.
func defaultOptions() options {
	return options{
		format: tokens.FormatHex,
		prefix: "color",
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithFormat selects the color notation written for every stop.
func WithFormat(f tokens.Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithPrefix sets the token name prefix ("color" gives --color-primary-500).
// An empty prefix drops the prefix segment entirely.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// tokenName joins the prefix, group and step into a CSS identifier.
func (o options) tokenName(group string, step int) string {
	if o.prefix == "" {
		return group + "-" + itoa(step)
	}
	return o.prefix + "-" + group + "-" + itoa(step)
}
