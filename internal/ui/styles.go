package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds every lipgloss style the views render with, rebuilt from the
// active Theme. The root model owns the single instance and shares it with
// the child models; a theme change rewrites it in place (single writer,
// applied inside one update).
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	Accent lipgloss.Style
	Laser  lipgloss.Style
	Badge  lipgloss.Style

	MessageFromMe    lipgloss.Style
	MessageFromOther lipgloss.Style
	MessageHeader    lipgloss.Style
	Input            lipgloss.Style

	Card       lipgloss.Style
	ActiveCard lipgloss.Style

	// Gradient panel styles cycled by text-only feed posts (index mod 3).
	Gradients [3]lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) *Styles {
	s := &Styles{}
	s.Apply(theme)
	return s
}

// Apply rebuilds every style from the given theme.
func (s *Styles) Apply(theme Theme) {
	s.Theme = theme

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	s.Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Italic(true)

	s.Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	s.Status = lipgloss.NewStyle().
		Foreground(lipgloss.Color("117"))

	s.Normal = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255"))

	s.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	s.Selected = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary)

	s.Accent = lipgloss.NewStyle().
		Foreground(theme.Primary)

	s.Laser = lipgloss.NewStyle().
		Foreground(theme.Secondary)

	s.Badge = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(theme.Secondary).
		Padding(0, 1)

	s.MessageFromMe = lipgloss.NewStyle().
		Foreground(lipgloss.Color("111")).
		Align(lipgloss.Right)

	s.MessageFromOther = lipgloss.NewStyle().
		Foreground(lipgloss.Color("120"))

	s.MessageHeader = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Italic(true)

	s.Input = lipgloss.NewStyle().
		Foreground(lipgloss.Color("117")).
		Bold(true)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	s.ActiveCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	s.Gradients = [3]lipgloss.Style{
		lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("93")).
			Padding(1, 2),
		lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("166")).
			Padding(1, 2),
		lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("36")).
			Padding(1, 2),
	}
}
