package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the renderer.
// With an Ascii color profile every style renders as plain text.
type Styles struct {
	Label   lipgloss.Style
	Error   lipgloss.Style
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Kind    lipgloss.Style
}

// NewStyles builds the style set on the given lipgloss renderer.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Label:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Error:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Header1: lr.NewStyle().Bold(true).Underline(true),
		Header2: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Bold:    lr.NewStyle().Bold(true),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("245")),
		Kind:    lr.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
	}
}
