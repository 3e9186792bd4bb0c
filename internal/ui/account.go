package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sproutly/internal/models"
)

// Account focus slots
const (
	accountName = iota
	accountEmail
	accountLogout
	accountSlots
)

// Profile returns the current, unvalidated account inputs
func (m *Model) Profile() models.Profile {
	return models.Profile{Name: m.nameInput.Value(), Email: m.emailInput.Value()}
}

func (m *Model) updateAccount(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.Focus {
	case accountName:
		if key.Matches(msg, m.keys.Activate) {
			return m.MoveFocus(1)
		}
		m.nameInput, cmd = m.nameInput.Update(msg)
	case accountEmail:
		if key.Matches(msg, m.keys.Activate) {
			return m.MoveFocus(1)
		}
		m.emailInput, cmd = m.emailInput.Update(msg)
	case accountLogout:
		if key.Matches(msg, m.keys.Activate) {
			m.log.Info("logout requested")
			m.ShowNotice(NoticeLogout)
		}
	}
	return cmd
}

func (m *Model) accountView() string {
	history := make([]string, 0, len(m.content.History))
	for _, h := range m.content.History {
		history = append(history, m.styles.Text.Render("• "+h))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("My Account"),
		m.styles.Label.Render("Name"),
		m.inputBox(m.nameInput),
		m.styles.Label.Render("Email (Gmail)"),
		m.inputBox(m.emailInput),
		"",
		m.button("Logout", m.Focus == accountLogout),
		"",
		m.styles.SectionTitle.Render("History"),
		lipgloss.JoinVertical(lipgloss.Left, history...),
	)
}
