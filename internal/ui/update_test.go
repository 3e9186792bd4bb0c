package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"sproutly/internal/models"
	"sproutly/internal/splash"
	"sproutly/internal/styles"
)

func TestStartsOnHome(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, models.TabHome, m.ActiveTab)
	require.True(t, m.Loaded)
	require.Nil(t, m.ChatPanel())
	require.Contains(t, m.View(), "Your AI Gardening Assistant")
}

func TestTabSelectionKeepsOneActiveTab(t *testing.T) {
	m := newTestModel(t)

	sequence := []models.Tab{
		models.TabChatbot, models.TabChatbot, models.TabAccount, models.TabHome,
		models.TabMarketplace, models.TabAR, models.TabAR, models.TabCommunity,
		models.Tab(42), models.Tab(-1),
	}
	for _, tab := range sequence {
		before := m.ActiveTab
		m.SelectTab(tab)
		require.True(t, m.ActiveTab.Valid())
		if tab.Valid() {
			require.Equal(t, tab, m.ActiveTab)
		} else {
			require.Equal(t, before, m.ActiveTab)
		}
		require.Equal(t, m.ActiveTab == models.TabChatbot, m.ChatPanel() != nil)
	}
}

func TestSelectingActiveTabIsNoop(t *testing.T) {
	m := newTestModel(t)
	m.SelectTab(models.TabChatbot)
	panel := m.ChatPanel()
	panel.SetInput("hello")
	panel.Send()

	require.Nil(t, m.SelectTab(models.TabChatbot))
	require.Same(t, panel, m.ChatPanel())
	require.Len(t, m.ChatPanel().Messages(), 2)
}

func TestTabKeys(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyF4)
	require.Equal(t, models.TabMarketplace, m.ActiveTab)

	press(m, tea.KeyCtrlRight)
	require.Equal(t, models.TabAR, m.ActiveTab)

	press(m, tea.KeyCtrlLeft)
	press(m, tea.KeyCtrlLeft)
	require.Equal(t, models.TabCommunity, m.ActiveTab)

	press(m, tea.KeyF6)
	press(m, tea.KeyCtrlRight)
	require.Equal(t, models.TabHome, m.ActiveTab)

	press(m, tea.KeyCtrlLeft)
	require.Equal(t, models.TabAccount, m.ActiveTab)
}

func TestToggleThemeTwiceRestoresPalette(t *testing.T) {
	m := newTestModel(t)
	original := m.styles.Theme
	require.Equal(t, styles.LightTheme, original)

	press(m, tea.KeyCtrlT)
	require.True(t, m.Dark)
	require.Equal(t, styles.DarkTheme, m.styles.Theme)

	press(m, tea.KeyCtrlT)
	require.False(t, m.Dark)
	require.Equal(t, original, m.styles.Theme)
}

func TestThemeToggleKeepsState(t *testing.T) {
	m := newTestModel(t)
	m.SelectTab(models.TabChatbot)
	panel := m.ChatPanel()

	press(m, tea.KeyCtrlT)
	require.Equal(t, models.TabChatbot, m.ActiveTab)
	require.Same(t, panel, m.ChatPanel())
	require.Contains(t, m.View(), "dark")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNoticeIsModal(t *testing.T) {
	m := newTestModel(t)
	m.ShowNotice(NoticeLogout)
	require.Contains(t, m.View(), NoticeLogout)

	press(m, tea.KeyF2)
	require.Equal(t, models.TabHome, m.ActiveTab)
	require.Equal(t, NoticeLogout, m.Notice)

	press(m, tea.KeyEsc)
	require.Empty(t, m.Notice)

	m.ShowNotice(NoticePurchase)
	press(m, tea.KeyEnter)
	require.Empty(t, m.Notice)
	require.NotContains(t, m.View(), NoticePurchase)
}

func TestFocusCycles(t *testing.T) {
	m := newTestModel(t)
	m.SelectTab(models.TabAccount)
	require.Equal(t, accountName, m.Focus)
	require.True(t, m.nameInput.Focused())

	press(m, tea.KeyTab)
	require.Equal(t, accountEmail, m.Focus)
	require.False(t, m.nameInput.Focused())
	require.True(t, m.emailInput.Focused())

	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	require.Equal(t, accountName, m.Focus)

	press(m, tea.KeyShiftTab)
	require.Equal(t, accountLogout, m.Focus)
	require.False(t, m.emailInput.Focused())
}

func TestSplashGatesTheApp(t *testing.T) {
	m := newTestModel(t, withSplash)
	require.False(t, m.Loaded)
	require.Equal(t, splash.StateFactsCycling, m.splash.State())
	require.Contains(t, m.View(), "Loading...")

	press(m, tea.KeyF2)
	press(m, tea.KeyCtrlT)
	require.Equal(t, models.TabHome, m.ActiveTab)
	require.False(t, m.Dark)

	m.Update(splash.FinishedMsg{ID: m.splash.ID() + 1000})
	require.False(t, m.Loaded)

	m.Update(splash.FinishedMsg{ID: m.splash.ID()})
	require.True(t, m.Loaded)
	require.True(t, m.splash.Stopped())
	require.NotContains(t, m.View(), "Loading...")

	m.Update(splash.FinishedMsg{ID: m.splash.ID()})
	require.True(t, m.Loaded)

	press(m, tea.KeyF2)
	require.Equal(t, models.TabChatbot, m.ActiveTab)
}

func TestSplashStillQuits(t *testing.T) {
	m := newTestModel(t, withSplash)
	cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNavShowsEveryTab(t *testing.T) {
	m := newTestModel(t)
	nav := m.RenderNav()
	for _, tab := range models.Tabs {
		require.Contains(t, nav, tab.String())
	}
}
