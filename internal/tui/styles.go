package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the picker.
var Colors = struct {
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color
}{
	Primary:       lipgloss.Color("#6C5CE7"), // Purple
	Muted:         lipgloss.Color("#636E72"), // Gray
	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray
	DescSelected:  lipgloss.Color("#B2BEC3"), // Light gray
}

// Styles contains all the lipgloss styles for the picker.
type Styles struct {
	App   lipgloss.Style
	Title lipgloss.Style

	SelectionIndicator lipgloss.Style
	Path               lipgloss.Style
	PathSelected       lipgloss.Style
	Meta               lipgloss.Style
	MetaSelected       lipgloss.Style
}

// DefaultStyles returns the default styles for the picker.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected),

		Path: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		PathSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		Meta: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		MetaSelected: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),
	}
}
