package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) refreshFeed() {
	posts := make([]string, 0, len(m.content.Posts))
	for _, p := range m.content.Posts {
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Strong.Render(p.User),
			m.styles.Text.Width(m.styles.Inner()-2).Render(p.Text),
		)
		posts = append(posts, m.styles.Section.Render(body))
	}
	m.feed.SetContent(strings.Join(posts, "\n"))
}

func (m *Model) updateCommunity(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.feed, cmd = m.feed.Update(msg)
	return cmd
}

func (m *Model) communityView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Community Feed"),
		m.feed.View(),
	)
}
