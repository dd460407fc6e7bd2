package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used to draw mazes and outcomes.
type Theme struct {
	Name      string
	Floor     lipgloss.Color
	Treasure  lipgloss.Color
	Key       lipgloss.Color
	Deflector lipgloss.Color
	Robot     lipgloss.Color
	Trail     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Floor:     lipgloss.Color("#444466"),
		Treasure:  lipgloss.Color("#ffff00"),
		Key:       lipgloss.Color("#00ffff"),
		Deflector: lipgloss.Color("#ff00ff"),
		Robot:     lipgloss.Color("#00ff88"),
		Trail:     lipgloss.Color("#8888ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Floor:     lipgloss.Color("#005500"),
		Treasure:  lipgloss.Color("#88ff88"),
		Key:       lipgloss.Color("#88ff88"),
		Deflector: lipgloss.Color("#00cc00"),
		Robot:     lipgloss.Color("#ffffff"),
		Trail:     lipgloss.Color("#00ff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Floor:     lipgloss.Color("#4488aa"),
		Treasure:  lipgloss.Color("#ffd700"),
		Key:       lipgloss.Color("#00a8cc"),
		Deflector: lipgloss.Color("#0077be"),
		Robot:     lipgloss.Color("#00ff88"),
		Trail:     lipgloss.Color("#e0f0ff"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
	}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}
