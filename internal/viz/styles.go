// Package viz renders solver output for the terminal: lipgloss styles for
// solve summaries and asciigraph plots for sweeps and radial distributions.
package viz

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	StatusConverged = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	StatusDiverged  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Status renders a converged flag as a colored tag.
func Status(converged bool) string {
	if converged {
		return StatusConverged.Render("converged")
	}
	return StatusDiverged.Render("not converged")
}
