package splash

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	stemRows     = 8
	stemGrowTime = 3 * time.Second
	factWidth    = 40
)

// leaf appearance, relative to Start
var (
	leftLeafAt  = 3000 * time.Millisecond
	rightLeafAt = 3500 * time.Millisecond
	topLeafAt   = 4000 * time.Millisecond
)

// Plant renders the growing plant for the current elapsed time
func (m Model) Plant() string {
	stem := lipgloss.NewStyle().Foreground(m.theme.AccentDark).Bold(true)
	leaf := lipgloss.NewStyle().Foreground(m.theme.Accent)

	grown := int(float64(stemRows) * float64(m.elapsed) / float64(stemGrowTime))
	if m.elapsed > 0 && grown == 0 {
		grown = 1
	}
	if grown > stemRows {
		grown = stemRows
	}

	rows := make([]string, 0, stemRows)
	for r := 0; r < stemRows; r++ {
		left, mid, right := "   ", " ", "   "
		if r >= stemRows-grown {
			mid = stem.Render("┃")
		}
		switch {
		case r == 0 && m.elapsed >= topLeafAt:
			left, right = leaf.Render(" ▗▟"), leaf.Render("▙▖ ")
		case r == 3 && m.elapsed >= leftLeafAt:
			left = leaf.Render("▟██")
		case r == 4 && m.elapsed >= rightLeafAt:
			right = leaf.Render("██▙")
		}
		rows = append(rows, left+mid+right)
	}
	return strings.Join(rows, "\n")
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func (m Model) View() string {
	accent := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	fact := lipgloss.NewStyle().
		Foreground(m.theme.FactText).
		Italic(true).
		Width(factWidth).
		Align(lipgloss.Center)
	footer := lipgloss.NewStyle().Foreground(m.theme.TextSecondary)

	shift := m.OffsetRows()
	pad := int(Amplitude / UnitsPerRow)
	plant := strings.Repeat("\n", pad+shift) + m.Plant() + strings.Repeat("\n", pad-shift)

	name := accent.Render(spaced(m.Typed()))
	if m.NameVisible() {
		name += accent.Render("▏")
	}

	factLine := ""
	if m.NameVisible() {
		factLine = m.Fact()
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		plant,
		"",
		name,
		"",
		fact.Render(factLine),
	)

	if m.width == 0 || m.height == 0 {
		return lipgloss.JoinVertical(lipgloss.Center, body, "", footer.Render("Loading..."))
	}

	bg := lipgloss.WithWhitespaceBackground(m.theme.Background)
	main := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, body, bg)
	bottom := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer.Render("Loading..."), bg)
	return lipgloss.JoinVertical(lipgloss.Left, main, bottom)
}
