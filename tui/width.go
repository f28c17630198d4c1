package tui

import "github.com/charmbracelet/lipgloss"

// tabWidth is the standard terminal tab stop interval.
const tabWidth = 8

// displayWidth calculates the display width of a string, correctly
// handling tab characters which expand to the next 8-column boundary
// (lipgloss.Width returns 0 for a bare tab).
func displayWidth(s string) int {
	return displayWidthFrom(s, 0)
}

// displayWidthFrom calculates the display width of a string starting from
// a given column position, since tab expansion depends on the current
// column.
func displayWidthFrom(s string, startCol int) int {
	col := startCol
	for _, r := range s {
		if r == '\t' {
			col = ((col / tabWidth) + 1) * tabWidth
		} else {
			col += lipgloss.Width(string(r))
		}
	}
	return col
}
