package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit        key.Binding
	ToggleTheme key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Tabs        [6]key.Binding
	NextFocus   key.Binding
	PrevFocus   key.Binding
	Activate    key.Binding
	Dismiss     key.Binding
	Clear       key.Binding
	Left        key.Binding
	Right       key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "quit")),
		ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("^t", "theme")),
		NextTab:     key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("^→", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("^←", "prev tab")),
		Tabs: [6]key.Binding{
			key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "home")),
			key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "chatbot")),
			key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "community")),
			key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "marketplace")),
			key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "ar")),
			key.NewBinding(key.WithKeys("f6"), key.WithHelp("f6", "account")),
		},
		NextFocus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		PrevFocus:  key.NewBinding(key.WithKeys("shift+tab")),
		Activate:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Dismiss:    key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "close")),
		Clear:      key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "clear")),
		Left:       key.NewBinding(key.WithKeys("left")),
		Right:      key.NewBinding(key.WithKeys("right")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "pgup")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "pgdown")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Activate, k.ToggleTheme, k.NextTab, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		k.Tabs[:],
	}
}
