package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/designkit/tokens"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.English)

// CSS writes the palette as custom properties on :root, one block comment
// per group.
//
//	:root {
//	  /* Primary */
//	  --color-primary-50: #dff7ff;
//	  ...
//	}
func CSS(w io.Writer, p tokens.Palette, opts ...Option) error {
	o := newOptions(opts)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "/* brand %s, fingerprint %s */\n", p.Brand, p.Fingerprint())
	bw.WriteString(":root {\n")
	for i, g := range p.Groups() {
		if i > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "  /* %s */\n", titleCase.String(g.Name))
		for _, s := range g.Stops {
			fmt.Fprintf(bw, "  --%s: %s;\n", o.tokenName(g.Name, s.Step), tokens.FormatColor(s, o.format))
		}
	}
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return writeFailed(err, "css")
	}
	return nil
}

// SpacingCSS writes a spacing scale as --space-N custom properties in rem.
func SpacingCSS(w io.Writer, steps []tokens.SpacingStep) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(":root {\n")
	for _, s := range steps {
		fmt.Fprintf(bw, "  --space-%d: %srem;\n", s.Index, formatFloat(s.Rem))
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		return writeFailed(err, "spacing-css")
	}
	return nil
}

// TypeCSS writes a type scale as --font-size-NAME custom properties in rem.
func TypeCSS(w io.Writer, steps []tokens.TypeStep) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(":root {\n")
	for _, s := range steps {
		fmt.Fprintf(bw, "  --font-size-%s: %srem;\n", s.Name, formatFloat(s.Rem))
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		return writeFailed(err, "type-css")
	}
	return nil
}

// formatFloat prints the shortest decimal that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
