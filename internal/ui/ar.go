package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"sproutly/internal/styles"
)

// renderAR renders the AR description once per theme and width
func (m *Model) renderAR() string {
	width := m.styles.Inner()
	cacheKey := fmt.Sprintf("%t/%d", m.Dark, width)
	if m.arKey == cacheKey {
		return m.arRendered
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.GlamourStyle(m.Dark)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.log.Error(err, "create markdown renderer")
		return ARDescription
	}
	out, err := r.Render(ARDescription)
	if err != nil {
		m.log.Error(err, "render AR description")
		return ARDescription
	}
	m.arKey = cacheKey
	m.arRendered = out
	return out
}

func (m *Model) updateAR(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Activate) {
		m.ShowNotice(NoticeAR)
	}
	return nil
}

func (m *Model) arView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderAR(),
		m.button("View", m.Focus == 0),
	)
}
