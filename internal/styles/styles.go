package styles

import "github.com/charmbracelet/lipgloss"

const (
	DefaultCardWidth = 52
	MinCardWidth     = 40
	MaxCardWidth     = 120
)

// Styles holds every lipgloss style the views need for one palette and card width.
// It is rebuilt whenever the theme or the window changes.
type Styles struct {
	Theme Theme
	Width int

	Card         lipgloss.Style
	Header       lipgloss.Style
	Body         lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Section      lipgloss.Style
	SectionTitle lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Italic       lipgloss.Style
	Strong       lipgloss.Style
	Price        lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Label         lipgloss.Style

	UserBubble lipgloss.Style
	BotBubble  lipgloss.Style

	SubTab       lipgloss.Style
	SubTabActive lipgloss.Style

	Nav       lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style

	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	Hint       lipgloss.Style
	Error      lipgloss.Style
}

// New builds the style set for a palette. width is the outer card width in cells.
func New(t Theme, dark bool, width int) Styles {
	if width < MinCardWidth {
		width = MinCardWidth
	}
	if width > MaxCardWidth {
		width = MaxCardWidth
	}
	inner := width - 4

	s := Styles{Theme: t, Width: width}

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Background).
		Foreground(t.TextPrimary).
		Width(width - 2)

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.OnAccent).
		Background(t.HeaderBg(dark)).
		Padding(0, 1).
		Width(width - 2)

	s.Body = lipgloss.NewStyle().
		Background(t.Background).
		Padding(1, 1).
		Width(width - 2)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(t.TextSecondary).
		Width(inner)

	s.Section = lipgloss.NewStyle().
		Background(t.CardBg).
		Padding(0, 1).
		MarginTop(1).
		Width(inner)

	s.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.AccentDark)

	s.Text = lipgloss.NewStyle().Foreground(t.TextPrimary)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextSecondary)
	s.Italic = lipgloss.NewStyle().Foreground(t.TextSecondary).Italic(true)
	s.Strong = lipgloss.NewStyle().Foreground(t.AccentDark).Bold(true)
	s.Price = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	s.Button = lipgloss.NewStyle().
		Foreground(t.OnAccent).
		Background(t.Accent).
		Bold(true).
		Padding(0, 2)

	s.ButtonFocused = s.Button.
		Background(t.AccentDark).
		Underline(true)

	s.Input = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.TextPrimary).
		Padding(0, 1).
		Width(inner - 2)

	s.InputFocused = s.Input.BorderForeground(t.Accent)

	s.Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.AccentDark)

	s.UserBubble = lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.ToggleBg).
		Padding(0, 1)

	s.BotBubble = lipgloss.NewStyle().
		Foreground(t.OnAccent).
		Background(t.Accent).
		Padding(0, 1)

	s.SubTab = lipgloss.NewStyle().
		Foreground(t.TextSecondary).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.HiddenBorder())

	s.SubTabActive = lipgloss.NewStyle().
		Foreground(t.AccentDark).
		Bold(true).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(t.Accent)

	s.Nav = lipgloss.NewStyle().
		Background(t.CardBg).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Width(width - 2)

	s.NavItem = lipgloss.NewStyle().
		Foreground(t.TextSecondary).
		Background(t.CardBg).
		Align(lipgloss.Center)

	s.NavActive = s.NavItem.
		Foreground(t.Accent).
		Bold(true)

	s.Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Background(t.CardBg).
		Foreground(t.TextPrimary).
		Padding(1, 2).
		Width(inner - 4)

	s.ModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		MarginBottom(1)

	s.Hint = lipgloss.NewStyle().Foreground(t.TextSecondary).Faint(true)

	s.Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF9A9A")).
		Bold(true)

	return s
}

// Inner returns the usable content width inside the card body
func (s Styles) Inner() int {
	return s.Width - 4
}
