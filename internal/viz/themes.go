package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name   string
	Ink    lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Alert  lipgloss.Color
}

var (
	ThemeEInk = Theme{
		Name:   "eink",
		Ink:    lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#aaaaaa"),
		Text:   lipgloss.Color("#dddddd"),
		Muted:  lipgloss.Color("#777777"),
		Alert:  lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Ink:    lipgloss.Color("#00ff00"), // Green phosphor
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00cc00"),
		Muted:  lipgloss.Color("#005500"),
		Alert:  lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Ink:    lipgloss.Color("#00a8cc"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Alert:  lipgloss.Color("#ff4444"),
	}

	Themes = []Theme{ThemeEInk, ThemeRetroGreen, ThemeOcean}
)

// GetTheme returns a theme by name, falling back to the first.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
