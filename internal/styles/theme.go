package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines a complete botanical color scheme for the application
type Theme struct {
	// Surfaces
	Background lipgloss.Color
	CardBg     lipgloss.Color
	InputBg    lipgloss.Color

	// Text colors
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	FactText      lipgloss.Color
	OnAccent      lipgloss.Color

	// Accents
	Accent     lipgloss.Color
	AccentDark lipgloss.Color

	// UI element colors
	Border       lipgloss.Color
	ToggleBg     lipgloss.Color
	ToggleCircle lipgloss.Color
	ToggleOff    lipgloss.Color
}

// LightTheme is the light mode color scheme
var LightTheme = Theme{
	Background: lipgloss.Color("#ffffff"),
	CardBg:     lipgloss.Color("#fcfff8"),
	InputBg:    lipgloss.Color("#f7faf5"),

	TextPrimary:   lipgloss.Color("#2e4a1f"),
	TextSecondary: lipgloss.Color("#6b8e23"), // Olive drab
	FactText:      lipgloss.Color("#3b662a"),
	OnAccent:      lipgloss.Color("#ffffff"),

	Accent:     lipgloss.Color("#4caf50"), // Leaf green
	AccentDark: lipgloss.Color("#3b662a"),

	Border:       lipgloss.Color("#dbe7d1"),
	ToggleBg:     lipgloss.Color("#a5d6a7"),
	ToggleCircle: lipgloss.Color("#ffffff"),
	ToggleOff:    lipgloss.Color("#cccccc"),
}

// DarkTheme is the dark mode color scheme
var DarkTheme = Theme{
	Background: lipgloss.Color("#1a1a1a"),
	CardBg:     lipgloss.Color("#2e4233"),
	InputBg:    lipgloss.Color("#26332c"),

	TextPrimary:   lipgloss.Color("#a5d6a7"),
	TextSecondary: lipgloss.Color("#8dc63f"),
	FactText:      lipgloss.Color("#9fc97e"),
	OnAccent:      lipgloss.Color("#ffffff"),

	Accent:     lipgloss.Color("#7ccc4c"),
	AccentDark: lipgloss.Color("#5ea031"),

	Border:       lipgloss.Color("#445544"),
	ToggleBg:     lipgloss.Color("#37472f"),
	ToggleCircle: lipgloss.Color("#cce3a2"),
	ToggleOff:    lipgloss.Color("#cccccc"),
}

// For returns the palette for the given mode
func For(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}

// DetectDark reports whether the terminal has a dark background
func DetectDark() bool {
	return lipgloss.HasDarkBackground()
}

// HeaderBg is the header strip color. The dark header uses the darker accent.
func (t Theme) HeaderBg(dark bool) lipgloss.Color {
	if dark {
		return t.AccentDark
	}
	return t.Accent
}

// GlamourStyle names the glamour standard style matching the palette
func GlamourStyle(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
