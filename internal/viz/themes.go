package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Panel      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color

	// bar colors per highlight category
	Unsorted  lipgloss.Color
	Comparing lipgloss.Color
	Swapping  lipgloss.Color
	Sorted    lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:       "classic",
		Primary:    lipgloss.Color("#818cf8"),
		Secondary:  lipgloss.Color("#6366f1"),
		Accent:     lipgloss.Color("#fde047"),
		Background: lipgloss.Color("#1f2937"),
		Panel:      lipgloss.Color("#374151"),
		Text:       lipgloss.Color("#d1d5db"),
		Muted:      lipgloss.Color("#9ca3af"),
		Error:      lipgloss.Color("#dc2626"),
		Unsorted:   lipgloss.Color("#6366f1"), // Indigo
		Comparing:  lipgloss.Color("#f59e0b"), // Amber
		Swapping:   lipgloss.Color("#ef4444"), // Red
		Sorted:     lipgloss.Color("#10b981"), // Green
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#ff00ff"), // Magenta
		Secondary:  lipgloss.Color("#00ffff"), // Cyan
		Accent:     lipgloss.Color("#ffff00"), // Yellow
		Background: lipgloss.Color("#0a0a0a"),
		Panel:      lipgloss.Color("#1a001a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Error:      lipgloss.Color("#ff0000"),
		Unsorted:   lipgloss.Color("#00ffff"),
		Comparing:  lipgloss.Color("#ffff00"),
		Swapping:   lipgloss.Color("#ff00ff"),
		Sorted:     lipgloss.Color("#00ff00"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Panel:      lipgloss.Color("#002200"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Error:      lipgloss.Color("#ff0000"),
		Unsorted:   lipgloss.Color("#007700"),
		Comparing:  lipgloss.Color("#ffff00"),
		Swapping:   lipgloss.Color("#ff8800"),
		Sorted:     lipgloss.Color("#88ff88"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"), // Ocean blue
		Secondary:  lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Panel:      lipgloss.Color("#002b55"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Error:      lipgloss.Color("#ff4444"),
		Unsorted:   lipgloss.Color("#0077be"),
		Comparing:  lipgloss.Color("#ffcc00"),
		Swapping:   lipgloss.Color("#ff4444"),
		Sorted:     lipgloss.Color("#00ff88"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Panel:      lipgloss.Color("#3e2640"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Error:      lipgloss.Color("#ff4757"),
		Unsorted:   lipgloss.Color("#8b6b8c"),
		Comparing:  lipgloss.Color("#ffc048"),
		Swapping:   lipgloss.Color("#ff4757"),
		Sorted:     lipgloss.Color("#5fd068"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Color returns the bar color for a highlight category.
func (t Theme) Color(c sorting.Category) lipgloss.Color {
	switch c {
	case sorting.Comparing:
		return t.Comparing
	case sorting.Swapping:
		return t.Swapping
	case sorting.Sorted:
		return t.Sorted
	default:
		return t.Unsorted
	}
}

// Palette converts the theme for GIF and SVG export.
func (t Theme) Palette() export.Palette {
	return export.Palette{
		Background: string(t.Background),
		Panel:      string(t.Panel),
		Text:       string(t.Accent),
		Unsorted:   string(t.Unsorted),
		Comparing:  string(t.Comparing),
		Swapping:   string(t.Swapping),
		Sorted:     string(t.Sorted),
	}
}
