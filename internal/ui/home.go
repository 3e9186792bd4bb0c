package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sproutly/internal/media"
	"sproutly/internal/models"
)

// Home focus slots
const (
	homeSoil = iota
	homePlant
	homeSlots
)

func (m *Model) updateHome(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Activate):
		if m.Focus == homeSoil {
			return m.openPicker(pickSoil)
		}
		return m.openPicker(pickPlant)
	case key.Matches(msg, m.keys.Clear):
		if m.Focus == homeSoil {
			m.SoilImage = nil
		} else {
			m.PlantImage = nil
		}
	}
	return nil
}

func (m *Model) uploadSection(title, alt string, ref *models.ImageRef, focused bool) string {
	control := m.button("Choose image", focused)
	rows := []string{m.styles.SectionTitle.Render(title), control}
	if ref != nil {
		preview := m.styles.Strong.Render("▣ " + alt)
		desc := m.styles.Muted.Render(TruncateRunes(media.Describe(*ref), m.styles.Inner()-4))
		rows = append(rows, "", preview, desc)
		if focused {
			rows = append(rows, m.styles.Hint.Render("del: remove image"))
		}
	}
	return m.styles.Section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) homeView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Your AI Gardening Assistant"),
		m.styles.Subtitle.Render("Upload images below to detect soil type and identify plant diseases."),
		m.uploadSection("Soil Image for Soil Type Detection", "Uploaded Soil Preview", m.SoilImage, m.Focus == homeSoil),
		m.uploadSection("Plant Image for Disease Identification", "Uploaded Plant Preview", m.PlantImage, m.Focus == homePlant),
	)
}
