package models

import "strings"

// Tab is one of the six top-level screens of the app
type Tab int

const (
	TabHome Tab = iota
	TabChatbot
	TabCommunity
	TabMarketplace
	TabAR
	TabAccount
)

// Tabs lists every tab in navigation order
var Tabs = []Tab{TabHome, TabChatbot, TabCommunity, TabMarketplace, TabAR, TabAccount}

var tabNames = map[Tab]string{
	TabHome:        "Home",
	TabChatbot:     "Chatbot",
	TabCommunity:   "Community",
	TabMarketplace: "Marketplace",
	TabAR:          "AR Features",
	TabAccount:     "My Account",
}

func (t Tab) String() string {
	if name, ok := tabNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether t is one of the six named tabs
func (t Tab) Valid() bool {
	_, ok := tabNames[t]
	return ok
}

// Next returns the following tab, wrapping around
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(Tabs))
}

// Prev returns the preceding tab, wrapping around
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(Tabs) - 1) % len(Tabs))
}

// ParseTab resolves a tab from its display name, case-insensitively
func ParseTab(name string) (Tab, bool) {
	name = strings.TrimSpace(name)
	for _, t := range Tabs {
		if strings.EqualFold(t.String(), name) {
			return t, true
		}
	}
	return TabHome, false
}

// MarketView is the Buy/Sell sub-tab inside the marketplace
type MarketView int

const (
	MarketBuy MarketView = iota
	MarketSell
)

func (v MarketView) String() string {
	if v == MarketSell {
		return "Sell"
	}
	return "Buy"
}

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type ChatMessage struct {
	ID     int64
	Sender Sender
	Text   string
}

// ImageRef is a local reference to a user-selected image file.
// Only its existence is checked; the file is never read.
type ImageRef struct {
	Path string
	Name string
	Size int64
}

type Listing struct {
	ID    string
	Name  string
	Price string
	Image ImageRef
	// ImageLabel describes sample artwork that has no local file
	ImageLabel string
}

type Profile struct {
	Name  string
	Email string
}

type Post struct {
	ID   int    `yaml:"id"`
	User string `yaml:"user"`
	Text string `yaml:"text"`
}
