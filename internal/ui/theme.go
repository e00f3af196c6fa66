package ui

import "github.com/charmbracelet/lipgloss"

// Theme is the two-color preset selectable from the profile view. The root
// model owns the active theme; only the profile surface may change it.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:      "neon",
		Primary:   lipgloss.Color("#b9fbc0"),
		Secondary: lipgloss.Color("#d60270"),
	}
	ThemeCyber = Theme{
		Name:      "cyber",
		Primary:   lipgloss.Color("#00f2ff"),
		Secondary: lipgloss.Color("#7000ff"),
	}
	ThemeVoid = Theme{
		Name:      "void",
		Primary:   lipgloss.Color("#ff0055"),
		Secondary: lipgloss.Color("#ffffff"),
	}
)

// ThemeByName resolves a configured preset name, defaulting to neon.
func ThemeByName(name string) Theme {
	switch name {
	case "cyber":
		return ThemeCyber
	case "void":
		return ThemeVoid
	default:
		return ThemeNeon
	}
}
