package ui

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"sproutly/internal/chatbot"
	"sproutly/internal/logger"
	"sproutly/internal/models"
	"sproutly/internal/splash"
	"sproutly/internal/styles"
)

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = limit
	return ti
}

// NewModel builds the shell. The catalog is owned by the caller.
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	bot := opts.Bot
	if bot == nil {
		bot = chatbot.New(nil)
	}
	delay := opts.ReplyDelay
	if delay <= 0 {
		delay = DefaultReplyDelay
	}
	timings := opts.Timings
	if timings == (splash.Timings{}) {
		timings = splash.DefaultTimings()
	}
	width := opts.Width
	if width == 0 {
		width = styles.DefaultCardWidth
	}
	startDir := opts.StartDir
	if startDir == "" {
		startDir, _ = os.Getwd()
	}

	m := &Model{
		ctx:        ctx,
		log:        log,
		content:    opts.Content,
		catalog:    opts.Catalog,
		bot:        bot,
		Dark:       opts.Dark,
		ActiveTab:  models.TabHome,
		Loaded:     opts.SkipSplash,
		cardWidth:  width,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		replyDelay: delay,
		MarketView: models.MarketBuy,
		sellName:   newInput("Product name", 60),
		sellPrice:  newInput("Price", 20),
		nameInput:  newInput("Name", 60),
		emailInput: newInput("Email", 80),
		startDir:   startDir,
	}
	m.nameInput.SetValue(opts.Content.Profile.Name)
	m.emailInput.SetValue(opts.Content.Profile.Email)

	m.splash = splash.New(opts.Content.Facts, opts.Content.Brand, timings).
		WithScheduler(opts.Scheduler)
	m.feed = viewport.New(width-4, FeedViewportHeight)

	m.applyTheme()
	m.refreshListings()
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.Loaded {
		return textinput.Blink
	}
	var cmd tea.Cmd
	m.splash, cmd = m.splash.Start(time.Now())
	m.log.Debug("loading screen started")
	return tea.Batch(cmd, textinput.Blink)
}

func NewProgram(m *Model, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(m, opts...)
}
