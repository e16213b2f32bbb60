package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	panelTitle = lipgloss.NewStyle().Bold(true)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))
)

// Panel renders a bordered detail panel with a title and label/value
// lines.
func Panel(title string, fields [][2]string, noColor bool) string {
	label := labelStyle
	titleStyle := panelTitle
	if noColor {
		label = lipgloss.NewStyle()
		titleStyle = lipgloss.NewStyle()
	}

	width := 0
	for _, f := range fields {
		if len(f[0]) > width {
			width = len(f[0])
		}
	}

	lines := make([]string, 0, len(fields)+1)
	lines = append(lines, titleStyle.Render(title))
	for _, f := range fields {
		lines = append(lines, label.Render(padRight(f[0]+":", width+1))+" "+f[1])
	}

	return panelBorder.Render(strings.Join(lines, "\n"))
}
