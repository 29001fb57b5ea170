package services

import (
	"testing"

	"menucloud/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) (*CatalogService, *testCatalogEnv) {
	t.Helper()
	db := newTestDB(t)
	_, _, _, catRepo, itemRepo, _ := newRepos(db)
	svc := NewCatalogService(db, catRepo, itemRepo)

	_, rest := createTenant(t, db, "owner@example.com", "owner-place")
	_, other := createTenant(t, db, "other@example.com", "other-place")

	return svc, &testCatalogEnv{svc: svc, rest: rest, other: other}
}

type testCatalogEnv struct {
	svc   *CatalogService
	rest  *entity.Restaurant
	other *entity.Restaurant
}

func (e *testCatalogEnv) category(t *testing.T, restaurantID uint, name string, order int) *entity.Category {
	t.Helper()
	cat, err := e.svc.CreateCategory(restaurantID, CategoryInput{
		Name: name, DisplayOrder: order, IsVisible: true,
	})
	require.NoError(t, err)
	return cat
}

func (e *testCatalogEnv) item(t *testing.T, restaurantID, categoryID uint, name string, order int) *entity.MenuItem {
	t.Helper()
	price := 9.50
	item, err := e.svc.CreateItem(restaurantID, MenuItemInput{
		CategoryID: categoryID, Name: name, BasePrice: &price,
		DisplayOrder: order, IsVisible: true,
	})
	require.NoError(t, err)
	return item
}

func TestCategoryCRUD(t *testing.T) {
	svc, env := newCatalog(t)

	cat := env.category(t, env.rest.ID, "Starters", 0)
	assert.Equal(t, env.rest.ID, cat.RestaurantID)

	newName := "Appetizers"
	hidden := false
	updated, err := svc.UpdateCategory(env.rest.ID, cat.ID, CategoryUpdate{
		Name: &newName, IsVisible: &hidden,
	})
	require.NoError(t, err)
	assert.Equal(t, "Appetizers", updated.Name)
	assert.False(t, updated.IsVisible)

	_, err = svc.CreateCategory(env.rest.ID, CategoryInput{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCategoryListOrdering(t *testing.T) {
	svc, env := newCatalog(t)

	env.category(t, env.rest.ID, "Third", 2)
	env.category(t, env.rest.ID, "First", 0)
	env.category(t, env.rest.ID, "Second", 1)
	env.category(t, env.other.ID, "Elsewhere", 0)

	cats, err := svc.ListCategories(env.rest.ID)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "First", cats[0].Name)
	assert.Equal(t, "Second", cats[1].Name)
	assert.Equal(t, "Third", cats[2].Name)
}

func TestCategoryItemCounts(t *testing.T) {
	svc, env := newCatalog(t)

	cat := env.category(t, env.rest.ID, "Mains", 0)
	env.item(t, env.rest.ID, cat.ID, "Burger", 0)
	env.item(t, env.rest.ID, cat.ID, "Pasta", 1)

	cats, err := svc.ListCategories(env.rest.ID)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, int64(2), cats[0].ItemsCount)
}

func TestDeleteCategoryCascades(t *testing.T) {
	svc, env := newCatalog(t)

	cat := env.category(t, env.rest.ID, "Mains", 0)
	item := env.item(t, env.rest.ID, cat.ID, "Burger", 0)

	require.NoError(t, svc.DeleteCategory(env.rest.ID, cat.ID))

	cats, err := svc.ListCategories(env.rest.ID)
	require.NoError(t, err)
	assert.Empty(t, cats)

	// the item was tombstoned with its category
	items, err := svc.ListItems(env.rest.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = svc.UpdateItem(env.rest.ID, item.ID, MenuItemUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReorderCategories(t *testing.T) {
	svc, env := newCatalog(t)

	a := env.category(t, env.rest.ID, "A", 0)
	b := env.category(t, env.rest.ID, "B", 1)
	c := env.category(t, env.rest.ID, "C", 2)

	require.NoError(t, svc.ReorderCategories(env.rest.ID, []uint{c.ID, a.ID, b.ID}))

	cats, err := svc.ListCategories(env.rest.ID)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "C", cats[0].Name)
	assert.Equal(t, "A", cats[1].Name)
	assert.Equal(t, "B", cats[2].Name)
}

func TestReorderSkipsForeignCategories(t *testing.T) {
	svc, env := newCatalog(t)

	mine := env.category(t, env.rest.ID, "Mine", 5)
	theirs := env.category(t, env.other.ID, "Theirs", 5)

	require.NoError(t, svc.ReorderCategories(env.rest.ID, []uint{theirs.ID, mine.ID}))

	// mine takes its list position, theirs is untouched
	cats, err := svc.ListCategories(env.rest.ID)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, 1, cats[0].DisplayOrder)

	otherCats, err := svc.ListCategories(env.other.ID)
	require.NoError(t, err)
	require.Len(t, otherCats, 1)
	assert.Equal(t, 5, otherCats[0].DisplayOrder)
}

func TestItemCRUDAndValidation(t *testing.T) {
	svc, env := newCatalog(t)

	cat := env.category(t, env.rest.ID, "Mains", 0)
	item := env.item(t, env.rest.ID, cat.ID, "Burger", 0)
	require.NotNil(t, item.BasePrice)

	bad := -1.0
	_, err := svc.CreateItem(env.rest.ID, MenuItemInput{
		CategoryID: cat.ID, Name: "Negative", BasePrice: &bad,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateItem(env.rest.ID, item.ID, MenuItemUpdate{BasePrice: &bad})
	assert.ErrorIs(t, err, ErrValidation)

	// market price: clear the price entirely
	updated, err := svc.UpdateItem(env.rest.ID, item.ID, MenuItemUpdate{ClearPrice: true})
	require.NoError(t, err)
	assert.Nil(t, updated.BasePrice)

	// creating under a foreign category reads as not-found
	foreign := env.category(t, env.other.ID, "Foreign", 0)
	_, err = svc.CreateItem(env.rest.ID, MenuItemInput{CategoryID: foreign.ID, Name: "Smuggled"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemReparenting(t *testing.T) {
	svc, env := newCatalog(t)

	mains := env.category(t, env.rest.ID, "Mains", 0)
	sides := env.category(t, env.rest.ID, "Sides", 1)
	foreign := env.category(t, env.other.ID, "Foreign", 0)

	item := env.item(t, env.rest.ID, mains.ID, "Fries", 0)

	moved, err := svc.UpdateItem(env.rest.ID, item.ID, MenuItemUpdate{CategoryID: &sides.ID})
	require.NoError(t, err)
	assert.Equal(t, sides.ID, moved.CategoryID)

	_, err = svc.UpdateItem(env.rest.ID, item.ID, MenuItemUpdate{CategoryID: &foreign.ID})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTenantIsolation(t *testing.T) {
	svc, env := newCatalog(t)

	cat := env.category(t, env.other.ID, "Theirs", 0)
	item := env.item(t, env.other.ID, cat.ID, "Their Dish", 0)

	name := "Hijacked"
	_, err := svc.UpdateCategory(env.rest.ID, cat.ID, CategoryUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteCategory(env.rest.ID, cat.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateItem(env.rest.ID, item.ID, MenuItemUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteItem(env.rest.ID, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ListItems(env.rest.ID, cat.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReorderItemsScopedToCategory(t *testing.T) {
	svc, env := newCatalog(t)

	mains := env.category(t, env.rest.ID, "Mains", 0)
	sides := env.category(t, env.rest.ID, "Sides", 1)

	a := env.item(t, env.rest.ID, mains.ID, "A", 0)
	b := env.item(t, env.rest.ID, mains.ID, "B", 1)
	elsewhere := env.item(t, env.rest.ID, sides.ID, "Elsewhere", 7)

	require.NoError(t, svc.ReorderItems(env.rest.ID, mains.ID, []uint{b.ID, elsewhere.ID, a.ID}))

	items, err := svc.ListItems(env.rest.ID, mains.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, b.ID, items[0].ID)
	assert.Equal(t, a.ID, items[1].ID)

	// the out-of-category item kept its order and category
	sideItems, err := svc.ListItems(env.rest.ID, sides.ID)
	require.NoError(t, err)
	require.Len(t, sideItems, 1)
	assert.Equal(t, 7, sideItems[0].DisplayOrder)
	assert.Equal(t, sides.ID, sideItems[0].CategoryID)
}

func TestItemSanitization(t *testing.T) {
	svc, env := newCatalog(t)

	cat := env.category(t, env.rest.ID, "Mains", 0)
	item, err := svc.CreateItem(env.rest.ID, MenuItemInput{
		CategoryID:  cat.ID,
		Name:        "<b>Burger</b>",
		Description: "Juicy <script>alert(1)</script>",
		IsVisible:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Burger", item.Name)
	assert.Equal(t, "Juicy", item.Description)
}
