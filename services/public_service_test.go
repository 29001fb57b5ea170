package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPublic(t *testing.T, db *gorm.DB) (*PublicService, *CatalogService) {
	t.Helper()
	_, _, restRepo, catRepo, itemRepo, _ := newRepos(db)
	return NewPublicService(restRepo, catRepo, itemRepo),
		NewCatalogService(db, catRepo, itemRepo)
}

func TestMenuBySlugUnknown(t *testing.T) {
	db := newTestDB(t)
	public, _ := newPublic(t, db)

	_, err := public.MenuBySlug("no-such-place")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMenuBySlugFiltersHidden(t *testing.T) {
	db := newTestDB(t)
	public, catalog := newPublic(t, db)

	createTenant(t, db, "owner@example.com", "la-taqueria")
	_, rest := createTenant(t, db, "owner2@example.com", "pizza-place")

	visible, err := catalog.CreateCategory(rest.ID, CategoryInput{
		Name: "Tacos", DisplayOrder: 0, IsVisible: true,
	})
	require.NoError(t, err)
	hidden, err := catalog.CreateCategory(rest.ID, CategoryInput{
		Name: "Secret Menu", DisplayOrder: 1, IsVisible: false,
	})
	require.NoError(t, err)
	_, err = catalog.CreateCategory(rest.ID, CategoryInput{
		Name: "Drinks", DisplayOrder: 2, IsVisible: true,
	})
	require.NoError(t, err)

	price := 7.0
	_, err = catalog.CreateItem(rest.ID, MenuItemInput{
		CategoryID: visible.ID, Name: "Al Pastor", BasePrice: &price,
		DisplayOrder: 0, IsVisible: true,
	})
	require.NoError(t, err)
	_, err = catalog.CreateItem(rest.ID, MenuItemInput{
		CategoryID: visible.ID, Name: "Off Menu", DisplayOrder: 1, IsVisible: false,
	})
	require.NoError(t, err)
	_, err = catalog.CreateItem(rest.ID, MenuItemInput{
		CategoryID: hidden.ID, Name: "Hidden Dish", DisplayOrder: 0, IsVisible: true,
	})
	require.NoError(t, err)

	menu, err := public.MenuBySlug("pizza-place")
	require.NoError(t, err)
	assert.Equal(t, rest.ID, menu.RestaurantID)

	require.Len(t, menu.Categories, 2)
	assert.Equal(t, "Tacos", menu.Categories[0].Name)
	assert.Equal(t, "Drinks", menu.Categories[1].Name)

	require.Len(t, menu.Categories[0].Items, 1)
	assert.Equal(t, "Al Pastor", menu.Categories[0].Items[0].Name)

	// empty visible categories serialize as [], never null
	assert.NotNil(t, menu.Categories[1].Items)
	assert.Empty(t, menu.Categories[1].Items)
}

func TestMenuBySlugTheme(t *testing.T) {
	db := newTestDB(t)
	public, _ := newPublic(t, db)

	createTenant(t, db, "owner@example.com", "la-taqueria")

	menu, err := public.MenuBySlug("la-taqueria")
	require.NoError(t, err)
	assert.Equal(t, "#000000", menu.Theme.PrimaryColor)
	assert.Equal(t, "#ff6b6b", menu.Theme.AccentColor)
	assert.True(t, menu.Theme.ShowPrices)
}

func TestMenuBySlugHidesDeletedCategories(t *testing.T) {
	db := newTestDB(t)
	public, catalog := newPublic(t, db)

	_, rest := createTenant(t, db, "owner@example.com", "la-taqueria")

	cat, err := catalog.CreateCategory(rest.ID, CategoryInput{Name: "Gone", IsVisible: true})
	require.NoError(t, err)
	require.NoError(t, catalog.DeleteCategory(rest.ID, cat.ID))

	menu, err := public.MenuBySlug("la-taqueria")
	require.NoError(t, err)
	assert.Empty(t, menu.Categories)
}
