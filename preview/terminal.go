package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/designkit/tokens"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleCase = cases.Title(language.English)

	labelStyle = lipgloss.NewStyle().Bold(true)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1).Width(11).Align(lipgloss.Center)
)

// Terminal renders one row of cells, each painted with its stop color and
// labelled with the step and hex in a readable foreground. name is shown
// title-cased above the row.
//
// Colors degrade with the terminal's profile; without color support only
// the labels remain.
func Terminal(name string, stops []tokens.ColorStop) string {
	cells := make([]string, 0, len(stops))
	for _, s := range stops {
		style := cellStyle.
			Background(lipgloss.Color(s.Hex)).
			Foreground(lipgloss.Color(s.Foreground().Hex()))
		cells = append(cells, style.Render(strconv.Itoa(s.Step)+"\n"+s.Hex))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if name == "" {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(titleCase.String(name)), row)
}

// TerminalPalette renders every group of a palette, separated by blank
// lines, headed by the brand color and fingerprint.
func TerminalPalette(p tokens.Palette) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Brand " + p.Brand + " (" + p.Fingerprint() + ")"))
	for _, g := range p.Groups() {
		b.WriteString("\n\n")
		b.WriteString(Terminal(g.Name, g.Stops))
	}
	b.WriteString("\n")
	return b.String()
}
