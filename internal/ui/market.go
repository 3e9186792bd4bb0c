package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sproutly/internal/market"
	"sproutly/internal/media"
	"sproutly/internal/models"
)

// Marketplace focus slots. Slot 0 is the Buy | Sell switch; Buy uses one
// slot per sample listing after it.
const (
	slotMarketSwitch = iota
	slotSellName
	slotSellPrice
	slotSellImage
	slotSellSubmit
	sellSlots
)

// SetMarketView switches the Buy | Sell sub-tab
func (m *Model) SetMarketView(v models.MarketView) {
	if m.MarketView == v {
		return
	}
	m.MarketView = v
	m.Focus = slotMarketSwitch
	m.applyFocus()
}

// SellForm returns the current form contents
func (m *Model) SellForm() market.SellForm {
	return market.SellForm{
		Name:  m.sellName.Value(),
		Price: m.sellPrice.Value(),
		Image: m.SellImage,
	}
}

// SetSellForm fills the form
func (m *Model) SetSellForm(f market.SellForm) {
	m.sellName.SetValue(f.Name)
	m.sellPrice.SetValue(f.Price)
	m.SellImage = f.Image
}

// Listings returns the user listings in submission order
func (m *Model) Listings() []models.Listing {
	return append([]models.Listing(nil), m.listings...)
}

func (m *Model) refreshListings() {
	if m.catalog == nil {
		return
	}
	items, err := m.catalog.Listings(m.ctx)
	if err != nil {
		m.log.Error(err, "load listings")
		return
	}
	m.listings = items
}

// SubmitListing validates the sell form and appends it to the catalog.
// An incomplete form leaves everything unchanged.
func (m *Model) SubmitListing() {
	form := m.SellForm()
	if err := form.Validate(); err != nil {
		m.log.WithFields(map[string]any{"reason": err.Error()}).Debug("listing rejected")
		m.ShowNotice(market.IncompleteMessage)
		return
	}
	if m.catalog == nil {
		m.log.Error(errors.New("no catalog"), "add listing")
		m.ShowNotice(NoticeStorage)
		return
	}

	listing, err := m.catalog.Add(m.ctx, form)
	if err != nil {
		m.log.Error(err, "add listing")
		m.ShowNotice(NoticeStorage)
		return
	}
	m.log.WithFields(map[string]any{"id": listing.ID, "name": listing.Name}).Info("listing added")

	m.SetSellForm(market.SellForm{})
	m.refreshListings()
	m.ShowNotice(NoticeAdded)
}

func (m *Model) marketSlots() int {
	if m.MarketView == models.MarketSell {
		return sellSlots
	}
	return 1 + len(m.content.Products)
}

func (m *Model) updateMarket(msg tea.KeyMsg) tea.Cmd {
	if m.Focus == slotMarketSwitch {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.SetMarketView(models.MarketBuy)
		case key.Matches(msg, m.keys.Right):
			m.SetMarketView(models.MarketSell)
		case key.Matches(msg, m.keys.Activate):
			if m.MarketView == models.MarketBuy {
				m.SetMarketView(models.MarketSell)
			} else {
				m.SetMarketView(models.MarketBuy)
			}
		}
		return nil
	}

	if m.MarketView == models.MarketBuy {
		if key.Matches(msg, m.keys.Activate) {
			m.ShowNotice(NoticePurchase)
		}
		return nil
	}

	var cmd tea.Cmd
	switch m.Focus {
	case slotSellName:
		if key.Matches(msg, m.keys.Activate) {
			return m.MoveFocus(1)
		}
		m.sellName, cmd = m.sellName.Update(msg)
	case slotSellPrice:
		if key.Matches(msg, m.keys.Activate) {
			return m.MoveFocus(1)
		}
		m.sellPrice, cmd = m.sellPrice.Update(msg)
	case slotSellImage:
		switch {
		case key.Matches(msg, m.keys.Activate):
			return m.openPicker(pickListing)
		case key.Matches(msg, m.keys.Clear):
			m.SellImage = nil
		}
	case slotSellSubmit:
		if key.Matches(msg, m.keys.Activate) {
			m.SubmitListing()
		}
	}
	return cmd
}

func (m *Model) marketSwitchView() string {
	buy, sell := m.styles.SubTab, m.styles.SubTab
	if m.MarketView == models.MarketBuy {
		buy = m.styles.SubTabActive
	} else {
		sell = m.styles.SubTabActive
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Bottom, buy.Render("Buy"), sell.Render("Sell"))
	if m.Focus == slotMarketSwitch {
		bar = lipgloss.JoinHorizontal(lipgloss.Center, bar, "  ", m.styles.Hint.Render("←/→"))
	}
	return bar
}

func (m *Model) listingCard(l models.Listing, action string) string {
	art := l.ImageLabel
	if l.Image.Path != "" {
		art = media.Describe(l.Image)
	}
	rows := []string{
		SpaceBetween(m.styles.Inner()-2, m.styles.Strong.Render(TruncateRunes(l.Name, m.styles.Inner()-12)), m.styles.Price.Render(l.Price)),
		m.styles.Italic.Render(TruncateRunes(art, m.styles.Inner()-2)),
	}
	if action != "" {
		rows = append(rows, action)
	}
	return m.styles.Section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) buyView() string {
	cards := make([]string, 0, len(m.content.Products))
	for i, p := range m.content.Products {
		cards = append(cards, m.listingCard(p, m.button("Buy", m.Focus == i+1)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m *Model) sellView() string {
	image := m.styles.Muted.Render("No image selected")
	if m.SellImage != nil {
		image = m.styles.Text.Render(TruncateRunes(media.Describe(*m.SellImage), m.styles.Inner()-14))
	}

	rows := []string{
		m.styles.Label.Render("Product Name"),
		m.inputBox(m.sellName),
		m.styles.Label.Render("Price"),
		m.inputBox(m.sellPrice),
		m.styles.Label.Render("Product Image"),
		lipgloss.JoinHorizontal(lipgloss.Center, m.button("Upload", m.Focus == slotSellImage), " ", image),
		"",
		m.button("Add Product", m.Focus == slotSellSubmit),
	}

	if len(m.listings) > 0 {
		rows = append(rows, "", m.styles.SectionTitle.Render("Your Listed Products"))
		for _, l := range m.listings {
			rows = append(rows, m.listingCard(l, ""))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) marketView() string {
	body := m.buyView()
	if m.MarketView == models.MarketSell {
		body = m.sellView()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Marketplace"),
		m.marketSwitchView(),
		body,
	)
}
