package ui

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sproutly/internal/media"
	"sproutly/internal/models"
	"sproutly/internal/splash"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowWidth = msg.Width
		m.WindowHeight = msg.Height
		m.splash = m.splash.SetSize(msg.Width, msg.Height)
		m.applyTheme()
		if m.PickerOpen {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		return m, nil

	case splash.FinishedMsg:
		if msg.ID != m.splash.ID() || m.Loaded {
			return m, nil
		}
		m.Loaded = true
		m.splash = m.splash.Stop()
		m.log.Info("loading screen finished")
		m.applyFocus()
		return m, nil

	case botReplyMsg:
		if m.chat == nil || !m.chat.Receive(msg) {
			m.log.WithFields(map[string]any{"panel": msg.panel}).Debug("dropped stale chat reply")
		}
		return m, nil
	}

	if !m.Loaded {
		if km, ok := msg.(tea.KeyMsg); ok {
			if key.Matches(km, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.splash, cmd = m.splash.Update(msg)
		return m, cmd
	}

	if m.PickerOpen {
		return m, m.updatePicker(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateActiveInput(msg)
	}

	if m.Notice != "" {
		switch {
		case key.Matches(km, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(km, m.keys.Dismiss):
			m.Notice = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.ToggleTheme):
		m.ToggleTheme()
		return m, nil
	case key.Matches(km, m.keys.NextTab):
		return m, m.SelectTab(m.ActiveTab.Next())
	case key.Matches(km, m.keys.PrevTab):
		return m, m.SelectTab(m.ActiveTab.Prev())
	case key.Matches(km, m.keys.NextFocus):
		return m, m.MoveFocus(1)
	case key.Matches(km, m.keys.PrevFocus):
		return m, m.MoveFocus(-1)
	}
	for i, b := range m.keys.Tabs {
		if key.Matches(km, b) {
			return m, m.SelectTab(models.Tabs[i])
		}
	}

	switch m.ActiveTab {
	case models.TabHome:
		return m, m.updateHome(km)
	case models.TabChatbot:
		if m.chat == nil {
			return m, nil
		}
		if key.Matches(km, m.keys.Activate) {
			return m, m.sendChat()
		}
		return m, m.chat.Update(km)
	case models.TabCommunity:
		return m, m.updateCommunity(km)
	case models.TabMarketplace:
		return m, m.updateMarket(km)
	case models.TabAR:
		return m, m.updateAR(km)
	case models.TabAccount:
		return m, m.updateAccount(km)
	}
	return m, nil
}

// updateActiveInput forwards non-key messages such as cursor blinks to the
// focused text input
func (m *Model) updateActiveInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.ActiveTab {
	case models.TabChatbot:
		if m.chat != nil {
			cmd = m.chat.Update(msg)
		}
	case models.TabMarketplace:
		switch {
		case m.sellName.Focused():
			m.sellName, cmd = m.sellName.Update(msg)
		case m.sellPrice.Focused():
			m.sellPrice, cmd = m.sellPrice.Update(msg)
		}
	case models.TabAccount:
		switch {
		case m.nameInput.Focused():
			m.nameInput, cmd = m.nameInput.Update(msg)
		case m.emailInput.Focused():
			m.emailInput, cmd = m.emailInput.Update(msg)
		}
	}
	return cmd
}

func (m *Model) sendChat() tea.Cmd {
	cmd := m.chat.Send()
	if cmd != nil {
		m.log.WithFields(map[string]any{"panel": m.chat.ID()}).Debug("chat message sent")
	}
	return cmd
}

// ChatPanel returns the mounted chat panel, or nil off the Chatbot tab
func (m *Model) ChatPanel() *ChatPanel {
	return m.chat
}

// SelectTab activates t. Selecting the active tab, or an unknown one, does
// nothing. Leaving the Chatbot tab discards its conversation.
func (m *Model) SelectTab(t models.Tab) tea.Cmd {
	if !t.Valid() || t == m.ActiveTab {
		return nil
	}
	prev := m.ActiveTab
	if prev == models.TabChatbot && m.chat != nil {
		m.log.WithFields(map[string]any{"panel": m.chat.ID()}).Debug("chat panel unmounted")
		m.chat = nil
	}

	m.ActiveTab = t
	m.Focus = 0
	m.log.WithFields(map[string]any{"from": prev.String(), "to": t.String()}).Info("tab selected")

	if t == models.TabChatbot {
		m.chat = NewChatPanel(m.bot, m.replyDelay, m.styles)
		m.log.WithFields(map[string]any{"panel": m.chat.ID()}).Debug("chat panel mounted")
	}
	return m.applyFocus()
}

func (m *Model) ToggleTheme() {
	m.Dark = !m.Dark
	m.applyTheme()
	m.log.WithFields(map[string]any{"dark": m.Dark}).Info("theme toggled")
}

func (m *Model) ShowNotice(text string) {
	m.Notice = text
}

func (m *Model) focusSlots() int {
	switch m.ActiveTab {
	case models.TabHome:
		return homeSlots
	case models.TabMarketplace:
		return m.marketSlots()
	case models.TabAR:
		return 1
	case models.TabAccount:
		return accountSlots
	default:
		return 1
	}
}

// MoveFocus cycles the focused control inside the active tab
func (m *Model) MoveFocus(delta int) tea.Cmd {
	n := m.focusSlots()
	m.Focus = ((m.Focus+delta)%n + n) % n
	return m.applyFocus()
}

// applyFocus focuses the text input under the cursor and blurs the rest
func (m *Model) applyFocus() tea.Cmd {
	m.sellName.Blur()
	m.sellPrice.Blur()
	m.nameInput.Blur()
	m.emailInput.Blur()

	switch m.ActiveTab {
	case models.TabMarketplace:
		if m.MarketView != models.MarketSell {
			return nil
		}
		switch m.Focus {
		case slotSellName:
			return m.sellName.Focus()
		case slotSellPrice:
			return m.sellPrice.Focus()
		}
	case models.TabAccount:
		switch m.Focus {
		case accountName:
			return m.nameInput.Focus()
		case accountEmail:
			return m.emailInput.Focus()
		}
	}
	return nil
}

// openPicker shows the image picker for the given control
func (m *Model) openPicker(target pickTarget) tea.Cmd {
	fp := filepicker.New()
	fp.AllowedTypes = media.ImageTypes
	fp.CurrentDirectory = m.startDir
	fp.AutoHeight = false
	fp.SetHeight(PickerHeight)
	fp.KeyMap.Back.SetKeys("h", "backspace", "left")
	fp.Styles.Cursor = fp.Styles.Cursor.Foreground(m.styles.Theme.Accent)
	fp.Styles.Selected = fp.Styles.Selected.Foreground(m.styles.Theme.Accent)

	m.picker = fp
	m.PickerOpen = true
	m.pickerTarget = target
	m.pickerErr = nil
	return m.picker.Init()
}

func (m *Model) closePicker() {
	m.PickerOpen = false
	m.pickerTarget = pickNone
	m.pickerErr = nil
}

func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Quit):
			return tea.Quit
		case km.String() == "esc":
			m.closePicker()
			return nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m.setImage(m.pickerTarget, path)
	}
	return cmd
}

// setImage resolves path and stores it on the control that opened the picker
func (m *Model) setImage(target pickTarget, path string) tea.Cmd {
	ref, err := media.Resolve(path)
	if err != nil {
		m.log.Error(err, "resolve image")
		m.pickerErr = err
		return nil
	}
	switch target {
	case pickSoil:
		m.SoilImage = &ref
	case pickPlant:
		m.PlantImage = &ref
	case pickListing:
		m.SellImage = &ref
	}
	m.log.WithFields(map[string]any{"name": ref.Name, "size": ref.Size}).Debug("image selected")
	m.closePicker()
	return nil
}
