package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title          *lipgloss.Style
	Border         *lipgloss.Style
	PanelTitle     *lipgloss.Style
	Item           *lipgloss.Style
	Indent         *lipgloss.Style
	DirIcon        *lipgloss.Style
	FileIcon       *lipgloss.Style
	Marker         *lipgloss.Style
	SelectedItem   *lipgloss.Style
	PreviewLabel   *lipgloss.Style
	PreviewBody    *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	Footer         *lipgloss.Style
	RenameTitle    *lipgloss.Style
	RenameHint     *lipgloss.Style
	FinderPrompt   *lipgloss.Style
	FinderQuery    *lipgloss.Style
	FinderNoMatch  *lipgloss.Style
	Banner         *lipgloss.Style
	CountdownLabel *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true),
	),
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Indent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	DirIcon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	FileIcon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Marker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	PreviewLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	PreviewBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	RenameTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	RenameHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FinderPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FinderQuery: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FinderNoMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	),
	Banner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	),
	CountdownLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
