// Package preview renders generated scales for visual inspection: styled
// terminal output via lipgloss and in-memory swatch images.
//
// Nothing here writes files; callers decide where the output goes.
package preview
