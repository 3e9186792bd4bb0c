package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sproutly/internal/models"
)

func (m *Model) RenderHeader() string {
	t := m.styles.Theme
	brand := "🌱 " + m.content.Brand

	track := lipgloss.NewStyle().Background(t.ToggleBg).Foreground(t.ToggleCircle)
	label := "light"
	knob := track.Render("●") + track.Render("   ")
	if m.Dark {
		label = "dark"
		knob = track.Render("   ") + track.Render("●")
	}
	toggle := lipgloss.JoinHorizontal(lipgloss.Center, label+" ", knob)

	return m.styles.Header.Render(SpaceBetween(m.styles.Width-4, brand, toggle))
}

func (m *Model) RenderNav() string {
	perRow := 3
	cell := (m.styles.Width - 2) / perRow
	var rows []string
	for start := 0; start < len(models.Tabs); start += perRow {
		var items []string
		for i := start; i < start+perRow && i < len(models.Tabs); i++ {
			tab := models.Tabs[i]
			label := TruncateRunes(fmt.Sprintf("F%d %s", i+1, tab), cell-1)
			style := m.styles.NavItem
			if tab == m.ActiveTab {
				style = m.styles.NavActive
			}
			items = append(items, style.Width(cell).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, items...))
	}
	return m.styles.Nav.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) RenderBody() string {
	var body string
	switch m.ActiveTab {
	case models.TabHome:
		body = m.homeView()
	case models.TabChatbot:
		if m.chat != nil {
			body = m.chat.View()
		}
	case models.TabCommunity:
		body = m.communityView()
	case models.TabMarketplace:
		body = m.marketView()
	case models.TabAR:
		body = m.arView()
	case models.TabAccount:
		body = m.accountView()
	}
	return m.styles.Body.Render(body)
}

func (m *Model) RenderNotice() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ModalTitle.Render(m.content.Brand),
		m.styles.Text.Render(m.Notice),
		"",
		m.button("OK", true),
	)
	return m.styles.Modal.Render(content)
}

func (m *Model) RenderPicker() string {
	title := "Choose an image"
	rows := []string{
		m.styles.ModalTitle.Render(title),
		m.styles.Muted.Render(TruncateRunes(m.picker.CurrentDirectory, m.styles.Inner()-8)),
		m.picker.View(),
	}
	if m.pickerErr != nil {
		rows = append(rows, m.styles.Error.Render(TruncateRunes(m.pickerErr.Error(), m.styles.Inner()-8)))
	}
	rows = append(rows, m.styles.Hint.Render("enter: select • ←: up • esc: cancel"))
	return m.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) place(s string) string {
	if m.WindowWidth == 0 || m.WindowHeight == 0 {
		return s
	}
	return lipgloss.Place(m.WindowWidth, m.WindowHeight, lipgloss.Center, lipgloss.Center, s,
		lipgloss.WithWhitespaceBackground(m.styles.Theme.Background))
}

func (m *Model) View() string {
	if !m.Loaded {
		return m.splash.View()
	}

	if m.PickerOpen {
		return m.place(m.RenderPicker())
	}
	if m.Notice != "" {
		return m.place(m.RenderNotice())
	}

	card := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.RenderHeader(),
		m.RenderBody(),
		m.RenderNav(),
	))
	helpView := m.help.View(m.keys)
	return m.place(strings.TrimRight(lipgloss.JoinVertical(lipgloss.Center, card, helpView), "\n"))
}
