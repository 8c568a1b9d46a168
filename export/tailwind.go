package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/designkit/tokens"
)

// Tailwind writes a tailwind.config.js module extending theme.colors with
// every palette group. The prefix option is not used; Tailwind derives
// class names from the object keys.
func Tailwind(w io.Writer, p tokens.Palette, opts ...Option) error {
	o := newOptions(opts)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// brand %s, fingerprint %s\n", p.Brand, p.Fingerprint())
	bw.WriteString("module.exports = {\n  theme: {\n    extend: {\n      colors: {\n")
	for _, g := range p.Groups() {
		fmt.Fprintf(bw, "        %s: {\n", g.Name)
		for _, s := range g.Stops {
			fmt.Fprintf(bw, "          %d: %s,\n", s.Step, strconv.Quote(tokens.FormatColor(s, o.format)))
		}
		bw.WriteString("        },\n")
	}
	bw.WriteString("      },\n    },\n  },\n};\n")

	if err := bw.Flush(); err != nil {
		return writeFailed(err, "tailwind")
	}
	return nil
}
