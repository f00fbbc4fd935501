package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Breadcrumb  lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Card        lipgloss.Style
	Chevron     lipgloss.Style
	MonthTitle  lipgloss.Style
	Weekday     lipgloss.Style
	Day         lipgloss.Style
	OutsideDay  lipgloss.Style
	Today       lipgloss.Style
	SlideText   lipgloss.Style
	SlideMeta   lipgloss.Style
	Counter     lipgloss.Style
	MenuItem    lipgloss.Style
	MenuCursor  lipgloss.Style
	MenuDesc    lipgloss.Style
	Popup       lipgloss.Style
	HelpSection lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Breadcrumb: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:        lipgloss.NewStyle().Faint(true),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:       lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		Chevron:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		MonthTitle: lipgloss.NewStyle().Bold(true),
		Weekday:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Day:        lipgloss.NewStyle().Bold(true),
		OutsideDay: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Today:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		SlideText:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		SlideMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Counter:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuItem:   lipgloss.NewStyle().Bold(true),
		MenuCursor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		MenuDesc:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		HelpSection: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		HelpKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HelpDesc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// SlideBackground returns the fill style for a slide color
func SlideBackground(color string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(color))
}

// ThumbStyle returns the style of a thumbnail cell
func ThumbStyle(color string, active bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	if !active {
		s = s.Faint(true)
	}
	return s
}
