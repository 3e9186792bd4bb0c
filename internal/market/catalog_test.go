package market

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"sproutly/internal/models"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(context.Background(), []models.Listing{
		{ID: "1", Name: "Organic Tomato Seeds", Price: "$5.99", ImageLabel: "seed packet"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, c.Close()) })
	return c
}

func image() *models.ImageRef {
	return &models.ImageRef{Path: "/tmp/carrots.png", Name: "carrots.png", Size: 1234}
}

func TestAddRejectsMissingImage(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	_, err := c.Add(ctx, SellForm{Name: "Carrots", Price: "$2.00"})
	require.ErrorIs(t, err, ErrIncompleteListing)
	require.ErrorContains(t, err, "image")

	n, err := c.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestAddRejectsBlankFields(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	_, err := c.Add(ctx, SellForm{Name: "   ", Price: "\t", Image: image()})
	require.ErrorIs(t, err, ErrIncompleteListing)
	require.ErrorContains(t, err, "name")
	require.ErrorContains(t, err, "price")

	_, err = c.Add(ctx, SellForm{Name: "Carrots", Price: "$2.00", Image: &models.ImageRef{}})
	require.ErrorIs(t, err, ErrIncompleteListing)

	listings, err := c.Listings(ctx)
	require.NoError(t, err)
	require.Empty(t, listings)
}

func TestAddAppendsTrimmedListing(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	got, err := c.Add(ctx, SellForm{Name: "  Carrots ", Price: " $2.00", Image: image()})
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)
	require.Equal(t, "Carrots", got.Name)
	require.Equal(t, "$2.00", got.Price)
	require.Equal(t, "carrots.png", got.Image.Name)

	listings, err := c.Listings(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.Listing{got}, listings)
}

func TestListingsKeepSubmissionOrderAndDuplicates(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	for _, name := range []string{"Kale", "Basil", "Kale"} {
		_, err := c.Add(ctx, SellForm{Name: name, Price: "$1", Image: image()})
		require.NoError(t, err)
	}

	listings, err := c.Listings(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 3)
	require.Equal(t, "Kale", listings[0].Name)
	require.Equal(t, "Basil", listings[1].Name)
	require.Equal(t, "Kale", listings[2].Name)
	require.NotEqual(t, listings[0].ID, listings[2].ID)

	n, err := c.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestSamplesAreNotShared(t *testing.T) {
	c := newCatalog(t)

	samples := c.Samples()
	samples[0].Name = "changed"
	require.Equal(t, "Organic Tomato Seeds", c.Samples()[0].Name)
}

func TestCatalogsAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := newCatalog(t)
	b := newCatalog(t)

	_, err := a.Add(ctx, SellForm{Name: "Mint", Price: "$3", Image: image()})
	require.NoError(t, err)

	n, err := b.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestCloseNilCatalog(t *testing.T) {
	var c *Catalog
	require.NoError(t, c.Close())
}
