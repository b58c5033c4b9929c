package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halasue/endfield-aic-calculator/internal/application/production/queries"
	"github.com/Halasue/endfield-aic-calculator/internal/application/production/services"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
	"github.com/Halasue/endfield-aic-calculator/test/helpers"
)

func namedCatalogLoader() *services.CatalogLoader {
	catalog := helpers.NewCatalogBuilder().
		WithNamedItem("plate", "鉄板", "Iron Plate").
		WithSeed("ore").
		WithNamedItem("unused", "", "").
		WithFacility("smelter", 1).
		WithRecipe("r-plate", "plate", "smelter", 1).
		WithMaterial("r-plate", "ore", 1).
		Build()
	return services.NewStaticCatalogLoader(catalog)
}

func TestListItems_CatalogOrderAndLocale(t *testing.T) {
	handler := queries.NewListItemsHandler(namedCatalogLoader())

	result, err := handler.Handle(context.Background(), &queries.ListItemsQuery{Locale: production.LocaleEN})

	require.NoError(t, err)
	items := result.(*queries.ListItemsResponse).Items
	require.Len(t, items, 3)
	assert.Equal(t, "plate", items[0].ID)
	assert.Equal(t, "Iron Plate", items[0].Name)
	assert.Equal(t, "鉄板 (Iron Plate)", items[0].Label)
	assert.True(t, items[1].IsSeed)
	assert.Equal(t, "unused", items[2].Name)
}

func TestListItems_ProducibleOnly(t *testing.T) {
	handler := queries.NewListItemsHandler(namedCatalogLoader())

	result, err := handler.Handle(context.Background(), &queries.ListItemsQuery{Locale: production.LocaleJA, ProducibleOnly: true})

	require.NoError(t, err)
	items := result.(*queries.ListItemsResponse).Items
	require.Len(t, items, 1)
	assert.Equal(t, "鉄板", items[0].Name)
}

func TestGetItem(t *testing.T) {
	handler := queries.NewGetItemHandler(namedCatalogLoader())

	result, err := handler.Handle(context.Background(), &queries.GetItemQuery{ItemID: "plate", Locale: production.LocaleJA})

	require.NoError(t, err)
	response := result.(*queries.GetItemResponse)
	assert.Equal(t, "鉄板", response.Name)
	require.Len(t, response.Recipes, 1)
	assert.Equal(t, "smelter", response.Recipes[0].FacilityID)
}

func TestGetItem_NotFound(t *testing.T) {
	handler := queries.NewGetItemHandler(namedCatalogLoader())

	_, err := handler.Handle(context.Background(), &queries.GetItemQuery{ItemID: "ghost"})

	var notFound *production.ErrItemNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.ItemID)
}
