package queries

import (
	"context"
	"fmt"

	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/application/production/services"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

// ListItemsQuery lists every item in catalog order for an item picker
type ListItemsQuery struct {
	Locale production.Locale

	// Only items that at least one recipe produces
	ProducibleOnly bool
}

// ItemListing is one entry of the item picker
type ItemListing struct {
	ID     string
	Name   string
	Label  string
	IsSeed bool
}

// ListItemsResponse represents the result of listing items
type ListItemsResponse struct {
	Items []ItemListing
}

// ListItemsHandler handles the ListItems query
type ListItemsHandler struct {
	catalogs *services.CatalogLoader
}

// NewListItemsHandler creates a new ListItemsHandler
func NewListItemsHandler(catalogs *services.CatalogLoader) *ListItemsHandler {
	return &ListItemsHandler{catalogs: catalogs}
}

// Handle executes the ListItems query
func (h *ListItemsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListItemsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListItemsQuery")
	}

	catalog, err := h.catalogs.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	items := catalog.Items()
	listings := make([]ItemListing, 0, len(items))
	for _, item := range items {
		if query.ProducibleOnly && len(catalog.RecipesProducing(item.ID)) == 0 {
			continue
		}
		listings = append(listings, ItemListing{
			ID:     item.ID,
			Name:   item.DisplayName(query.Locale),
			Label:  item.PickerLabel(),
			IsSeed: item.IsSeed,
		})
	}

	return &ListItemsResponse{Items: listings}, nil
}

// GetItemQuery looks up one item with its producing recipes
type GetItemQuery struct {
	ItemID string
	Locale production.Locale
}

// GetItemResponse represents the result of getting an item
type GetItemResponse struct {
	Item    production.Item
	Name    string
	Recipes []production.Recipe
}

// GetItemHandler handles the GetItem query
type GetItemHandler struct {
	catalogs *services.CatalogLoader
}

// NewGetItemHandler creates a new GetItemHandler
func NewGetItemHandler(catalogs *services.CatalogLoader) *GetItemHandler {
	return &GetItemHandler{catalogs: catalogs}
}

// Handle executes the GetItem query
func (h *GetItemHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetItemQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetItemQuery")
	}

	catalog, err := h.catalogs.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	item, found := catalog.FindItem(query.ItemID)
	if !found {
		return nil, &production.ErrItemNotFound{ItemID: query.ItemID}
	}

	return &GetItemResponse{
		Item:    item,
		Name:    item.DisplayName(query.Locale),
		Recipes: catalog.RecipesProducing(item.ID),
	}, nil
}
