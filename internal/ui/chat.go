package ui

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sproutly/internal/chatbot"
	"sproutly/internal/models"
	"sproutly/internal/styles"
)

var lastPanelID int64

// ChatPanel is the conversation shown on the Chatbot tab. It lives only
// while the tab is active; replies addressed to an older panel are dropped.
type ChatPanel struct {
	id       int
	messages []models.ChatMessage
	nextID   int64
	input    textinput.Model
	viewport viewport.Model
	bot      *chatbot.Bot
	delay    time.Duration
	styles   styles.Styles
}

func NewChatPanel(bot *chatbot.Bot, delay time.Duration, st styles.Styles) *ChatPanel {
	ti := textinput.New()
	ti.Placeholder = "Type your gardening question..."
	ti.Prompt = "❯ "
	ti.CharLimit = 500
	ti.Focus()

	p := &ChatPanel{
		id:       int(atomic.AddInt64(&lastPanelID, 1)),
		input:    ti,
		viewport: viewport.New(st.Inner(), ChatViewportHeight),
		bot:      bot,
		delay:    delay,
	}
	p.SetStyles(st)
	p.append(models.SenderBot, chatbot.Greeting)
	return p
}

func (p *ChatPanel) ID() int                       { return p.id }
func (p *ChatPanel) Input() string                 { return p.input.Value() }
func (p *ChatPanel) SetInput(s string)             { p.input.SetValue(s) }
func (p *ChatPanel) Messages() []models.ChatMessage { return append([]models.ChatMessage(nil), p.messages...) }

func (p *ChatPanel) SetStyles(st styles.Styles) {
	p.styles = st
	p.input.Width = st.Inner() - 6
	p.input.PromptStyle = lipgloss.NewStyle().Foreground(st.Theme.Accent).Bold(true)
	p.input.TextStyle = st.Text
	p.input.PlaceholderStyle = st.Hint
	p.input.Cursor.Style = lipgloss.NewStyle().Foreground(st.Theme.Accent)
	p.viewport.Width = st.Inner()
	p.refresh()
}

func (p *ChatPanel) append(sender models.Sender, text string) {
	p.messages = append(p.messages, models.ChatMessage{ID: p.nextID, Sender: sender, Text: text})
	p.nextID++
	p.refresh()
}

// Send appends the trimmed input as a user message and schedules the bot
// reply. Empty input does nothing.
func (p *ChatPanel) Send() tea.Cmd {
	text := strings.TrimSpace(p.input.Value())
	if text == "" {
		return nil
	}
	p.append(models.SenderUser, text)
	p.input.SetValue("")

	reply := p.bot.Reply(text)
	id := p.id
	return tea.Tick(p.delay, func(time.Time) tea.Msg {
		return botReplyMsg{panel: id, text: reply}
	})
}

// Receive appends a delayed reply. It reports false for replies addressed
// to another panel.
func (p *ChatPanel) Receive(msg botReplyMsg) bool {
	if msg.panel != p.id {
		return false
	}
	p.append(models.SenderBot, msg.text)
	return true
}

func (p *ChatPanel) Update(msg tea.Msg) tea.Cmd {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "up", "down", "pgup", "pgdown":
			p.viewport, vpCmd = p.viewport.Update(msg)
			return vpCmd
		}
	}
	p.input, tiCmd = p.input.Update(msg)
	return tiCmd
}

func (p *ChatPanel) FormatMessage(msg models.ChatMessage) string {
	width := p.styles.Inner()
	limit := width * 4 / 5
	w := lipgloss.Width(msg.Text) + 2
	if w > limit {
		w = limit
	}
	if msg.Sender == models.SenderUser {
		bubble := p.styles.UserBubble.Width(w).Render(msg.Text)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble)
	}
	bubble := p.styles.BotBubble.Width(w).Render(msg.Text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, bubble)
}

// refresh rebuilds the transcript and scrolls to the newest message
func (p *ChatPanel) refresh() {
	lines := make([]string, 0, len(p.messages))
	for _, msg := range p.messages {
		lines = append(lines, p.FormatMessage(msg))
	}
	p.viewport.SetContent(strings.Join(lines, "\n\n"))
	p.viewport.GotoBottom()
}

func (p *ChatPanel) View() string {
	input := p.styles.InputFocused.Render(p.input.View())
	hint := p.styles.Hint.Render("enter: send • ↑/↓: scroll")
	return lipgloss.JoinVertical(lipgloss.Left,
		p.viewport.View(),
		"",
		input,
		hint,
	)
}
