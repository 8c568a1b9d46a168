// Package export renders generated tokens in the formats front-end tooling
// consumes: CSS custom properties, a Tailwind theme extension, JSON and
// YAML.
//
// Emitters write to an io.Writer and never touch the filesystem. Color
// values are produced by [tokens.FormatColor], so a given palette and
// format always emit byte-identical output.
//
//	p := tokens.GeneratePalette("#3B82F6")
//	var buf bytes.Buffer
//	if err := export.CSS(&buf, p, export.WithFormat(tokens.FormatOKLCH)); err != nil {
//	    return err
//	}
package export
