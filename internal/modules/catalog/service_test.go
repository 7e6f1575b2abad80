package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

func testCatalog() Service {
	items := []Item{
		{ID: 101, CategoryID: CategoryPrinting, Name: "Spanduk Flexi", Price: 25000, Unit: "m²", IsCustomizable: true},
		{ID: 201, CategoryID: CategoryRetail, Name: "Kaos Polos", Price: 45000, Unit: "pcs"},
		{ID: 301, CategoryID: CategoryShared, Name: "Pulpen Standard", Price: 3000, Unit: "pcs"},
	}
	categories := []Category{
		{ID: CategoryPrinting, Name: "Cetak Digital"},
		{ID: CategoryRetail, Name: "Seragam & Konveksi"},
		{ID: CategoryShared, Name: "ATK & Umum"},
	}
	return NewService(NewMemoryRepository(items, categories))
}

func itemIDs(items []Item) []int {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestListItemsByStoreContext(t *testing.T) {
	svc := testCatalog()
	ctx := context.Background()

	printing, err := svc.ListItems(ctx, Filter{Store: user.StorePrinting})
	require.NoError(t, err)
	assert.Equal(t, []int{101, 301}, itemIDs(printing))

	retail, err := svc.ListItems(ctx, Filter{Store: user.StoreRetail})
	require.NoError(t, err)
	assert.Equal(t, []int{201, 301}, itemIDs(retail))

	general, err := svc.ListItems(ctx, Filter{Store: user.StoreGeneral})
	require.NoError(t, err)
	assert.Len(t, general, 3)
}

func TestListItemsSearchIsCaseInsensitive(t *testing.T) {
	svc := testCatalog()
	items, err := svc.ListItems(context.Background(), Filter{Search: "spanduk"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 101, items[0].ID)
}

func TestListItemsByCategory(t *testing.T) {
	svc := testCatalog()
	items, err := svc.ListItems(context.Background(), Filter{CategoryID: CategoryShared})
	require.NoError(t, err)
	assert.Equal(t, []int{301}, itemIDs(items))
}

func TestListCategoriesByStoreContext(t *testing.T) {
	svc := testCatalog()
	cats, err := svc.ListCategories(context.Background(), user.StoreRetail)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, CategoryRetail, cats[0].ID)
	assert.Equal(t, CategoryShared, cats[1].ID)
}

func TestGetItem(t *testing.T) {
	svc := testCatalog()
	item, err := svc.GetItem(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, "Spanduk Flexi", item.Name)

	_, err = svc.GetItem(context.Background(), 999)
	assert.True(t, apierr.IsNotFound(err))
}
