package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"sproutly/internal/chatbot"
	"sproutly/internal/content"
	"sproutly/internal/logger"
	"sproutly/internal/market"
	"sproutly/internal/models"
	"sproutly/internal/splash"
	"sproutly/internal/styles"
)

const (
	ChatViewportHeight = 10
	FeedViewportHeight = 10
	PickerHeight       = 10
	DefaultReplyDelay  = time.Second
)

// Notices shown in the modal overlay
const (
	NoticePurchase = "Purchase functionality coming soon!"
	NoticeAdded    = "Product added to sell list!"
	NoticeAR       = "Launching AR view (demo placeholder)..."
	NoticeLogout   = "Logged out!"
	NoticeStorage  = "Something went wrong saving your listing."
)

const ARDescription = `## AR Features

The **Augmented Reality** feature allows you to visualize plants and gardening
setups in your real environment using your device camera. Simply press the
**View** button below to launch the AR experience.

> Note: This is a demo placeholder. Real AR requires device support and permissions.
`

// pickTarget names the control that opened the file picker
type pickTarget int

const (
	pickNone pickTarget = iota
	pickSoil
	pickPlant
	pickListing
)

// botReplyMsg delivers a delayed chatbot reply to the panel that asked for it
type botReplyMsg struct {
	panel int
	text  string
}

// Options configures the shell. Zero values fall back to defaults.
type Options struct {
	Context    context.Context
	Dark       bool
	Width      int
	SkipSplash bool
	ReplyDelay time.Duration
	Timings    splash.Timings
	Scheduler  splash.Scheduler
	Bot        *chatbot.Bot
	Catalog    *market.Catalog
	Content    content.Content
	Logger     *logger.Logger
	StartDir   string
}

type Model struct {
	ctx     context.Context
	log     *logger.Logger
	content content.Content
	catalog *market.Catalog
	bot     *chatbot.Bot

	Dark         bool
	ActiveTab    models.Tab
	Loaded       bool
	Focus        int
	WindowWidth  int
	WindowHeight int
	cardWidth    int
	styles       styles.Styles
	keys         KeyMap
	help         help.Model

	splash     splash.Model
	replyDelay time.Duration

	// Home
	SoilImage  *models.ImageRef
	PlantImage *models.ImageRef

	// Chatbot, nil unless the tab is active
	chat *ChatPanel

	// Community
	feed viewport.Model

	// Marketplace
	MarketView models.MarketView
	sellName   textinput.Model
	sellPrice  textinput.Model
	SellImage  *models.ImageRef
	listings   []models.Listing

	// AR Features
	arKey      string
	arRendered string

	// Account
	nameInput  textinput.Model
	emailInput textinput.Model

	// Overlays
	Notice       string
	PickerOpen   bool
	picker       filepicker.Model
	pickerTarget pickTarget
	pickerErr    error
	startDir     string
}
