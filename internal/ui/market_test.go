package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"sproutly/internal/market"
	"sproutly/internal/media"
	"sproutly/internal/models"
)

func openSell(t *testing.T, m *Model) {
	t.Helper()
	press(m, tea.KeyF4)
	require.Equal(t, models.MarketBuy, m.MarketView)
	press(m, tea.KeyEnter)
	require.Equal(t, models.MarketSell, m.MarketView)
}

func TestBuyShowsComingSoon(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyF4)
	view := m.View()
	require.Contains(t, view, "Organic Tomato Seeds")
	require.Contains(t, view, "$12.99")

	press(m, tea.KeyTab)
	press(m, tea.KeyEnter)
	require.Equal(t, NoticePurchase, m.Notice)
	require.Empty(t, m.Listings())
}

func TestSellWithoutImageIsRejected(t *testing.T) {
	m := newTestModel(t)
	openSell(t, m)

	press(m, tea.KeyTab)
	typeText(m, "Carrots")
	press(m, tea.KeyTab)
	typeText(m, "$2.00")
	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	require.Equal(t, slotSellSubmit, m.Focus)

	press(m, tea.KeyEnter)
	require.Equal(t, market.IncompleteMessage, m.Notice)
	require.Empty(t, m.Listings())

	n, err := m.catalog.Count(m.ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	form := m.SellForm()
	require.Equal(t, "Carrots", form.Name)
	require.Equal(t, "$2.00", form.Price)
	require.Nil(t, form.Image)
}

func TestSellWithAllFieldsAppendsAndClears(t *testing.T) {
	m := newTestModel(t)
	openSell(t, m)

	ref, err := media.Resolve(writeImage(t, "carrots.png", 2048))
	require.NoError(t, err)
	m.SetSellForm(market.SellForm{Name: " Carrots ", Price: "$2.00", Image: &ref})
	m.Focus = slotSellSubmit
	m.applyFocus()

	press(m, tea.KeyEnter)
	require.Equal(t, NoticeAdded, m.Notice)

	listings := m.Listings()
	require.Len(t, listings, 1)
	require.Equal(t, "Carrots", listings[0].Name)
	require.Equal(t, "$2.00", listings[0].Price)
	require.Equal(t, ref, listings[0].Image)
	require.NotEmpty(t, listings[0].ID)

	require.Equal(t, market.SellForm{}, m.SellForm())

	press(m, tea.KeyEnter)
	require.Empty(t, m.Notice)
	view := m.View()
	require.Contains(t, view, "Your Listed Products")
	require.Contains(t, view, "carrots.png")
}

func TestDuplicateListingsAreKept(t *testing.T) {
	m := newTestModel(t)
	openSell(t, m)
	ref, err := media.Resolve(writeImage(t, "kale.jpg", 10))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		m.SetSellForm(market.SellForm{Name: "Kale", Price: "$1", Image: &ref})
		m.SubmitListing()
		m.Notice = ""
	}
	require.Len(t, m.Listings(), 2)
}

func TestListedProductsHiddenUntilFirstListing(t *testing.T) {
	m := newTestModel(t)
	openSell(t, m)
	require.NotContains(t, m.View(), "Your Listed Products")
}

func TestMarketViewSurvivesTabSwitch(t *testing.T) {
	m := newTestModel(t)
	openSell(t, m)

	press(m, tea.KeyF1)
	press(m, tea.KeyF4)
	require.Equal(t, models.MarketSell, m.MarketView)

	press(m, tea.KeyLeft)
	require.Equal(t, models.MarketBuy, m.MarketView)
	press(m, tea.KeyRight)
	require.Equal(t, models.MarketSell, m.MarketView)
}

func TestSellImageFromPicker(t *testing.T) {
	m := newTestModel(t)
	openSell(t, m)
	m.Focus = slotSellImage

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	require.True(t, m.PickerOpen)

	m.setImage(m.pickerTarget, writeImage(t, "beans.webp", 5))
	require.False(t, m.PickerOpen)
	require.NotNil(t, m.SellImage)
	require.Equal(t, "beans.webp", m.SellImage.Name)

	press(m, tea.KeyDelete)
	require.Nil(t, m.SellImage)
}
