package menu_test

import (
	"context"
	"testing"

	"github.com/Slava47/barkocobarka/internal/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := menu.NewInMemoryStore()

	require.NoError(t, s.PutCatalog(ctx, menu.DefaultCatalog()))

	c, err := s.GetCatalog(ctx)
	require.NoError(t, err)
	assert.Len(t, c.Categories, 4)
	assert.Equal(t, len(menu.DefaultCatalog().Items), len(c.Items))

	it, err := s.GetItem(ctx, "da-hong-pao")
	require.NoError(t, err)
	assert.Equal(t, "Да Хун Пао", it.Name)

	_, err = s.GetItem(ctx, "nope")
	assert.Error(t, err)
}

func TestMemoryStoreSkipsInvalidItems(t *testing.T) {
	ctx := context.Background()
	s := menu.NewInMemoryStore()

	err := s.PutCatalog(ctx, menu.Catalog{
		Categories: []menu.Category{{ID: "tea", Name: "Чай"}},
		Items: []menu.MenuItem{
			{ID: "", Name: "no id", Category: "tea"},
			{ID: "ok", Name: "ok", Category: "tea"},
		},
	})
	require.NoError(t, err)

	items, err := s.ListItems(ctx, menu.ListOpts{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ok", items[0].ID)
}

func TestListItemsFilterAndPaging(t *testing.T) {
	ctx := context.Background()
	s := menu.NewInMemoryStore()
	require.NoError(t, s.PutCatalog(ctx, menu.DefaultCatalog()))

	teas, err := s.ListItems(ctx, menu.ListOpts{Category: "tea"})
	require.NoError(t, err)
	for _, it := range teas {
		assert.Equal(t, "tea", it.Category)
	}

	page, err := s.ListItems(ctx, menu.ListOpts{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	all, err := s.ListItems(ctx, menu.ListOpts{})
	require.NoError(t, err)
	assert.Equal(t, all[1].ID, page[0].ID)

	empty, err := s.ListItems(ctx, menu.ListOpts{Offset: 1000})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestImageRefFallbackOrder(t *testing.T) {
	both := menu.MenuItem{Image: "a.jpg", Images: []string{"b.jpg", "c.jpg"}}
	assert.Equal(t, "b.jpg", both.ImageRef())

	single := menu.MenuItem{Image: "a.jpg"}
	assert.Equal(t, "a.jpg", single.ImageRef())

	none := menu.MenuItem{}
	assert.Equal(t, "", none.ImageRef())
}
