package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sproutly/internal/styles"
)

// TruncateRunes shortens s to at most max terminal cells, ending with an ellipsis
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, max, "…")
}

// SpaceBetween lays out left and right on one line of the given width
func SpaceBetween(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// cardWidthFor fits the configured card width into the window
func cardWidthFor(configured, window int) int {
	w := configured
	if window > 0 && window-2 < w {
		w = window - 2
	}
	if w < styles.MinCardWidth {
		w = styles.MinCardWidth
	}
	if w > styles.MaxCardWidth {
		w = styles.MaxCardWidth
	}
	return w
}

func styleInput(ti *textinput.Model, st styles.Styles) {
	ti.Width = st.Inner() - 6
	ti.TextStyle = st.Text
	ti.PlaceholderStyle = st.Hint
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(st.Theme.Accent)
}

// button renders a labelled button, highlighted when focused
func (m *Model) button(label string, focused bool) string {
	if focused {
		return m.styles.ButtonFocused.Render(label)
	}
	return m.styles.Button.Render(label)
}

func (m *Model) inputBox(ti textinput.Model) string {
	if ti.Focused() {
		return m.styles.InputFocused.Render(ti.View())
	}
	return m.styles.Input.Render(ti.View())
}

// applyTheme rebuilds every style for the current mode and card width
func (m *Model) applyTheme() {
	m.styles = styles.New(styles.For(m.Dark), m.Dark, cardWidthFor(m.cardWidth, m.WindowWidth))
	for _, ti := range []*textinput.Model{&m.sellName, &m.sellPrice, &m.nameInput, &m.emailInput} {
		styleInput(ti, m.styles)
	}
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(m.styles.Theme.AccentDark)
	m.help.Styles.ShortDesc = m.styles.Hint
	m.help.Styles.ShortSeparator = m.styles.Hint
	m.help.Width = m.styles.Width
	m.feed.Width = m.styles.Inner()
	m.splash = m.splash.WithTheme(m.styles.Theme)
	if m.chat != nil {
		m.chat.SetStyles(m.styles)
	}
	m.refreshFeed()
}
