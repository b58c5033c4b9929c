package helpers

import (
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

// CatalogBuilder assembles datasets for tests
type CatalogBuilder struct {
	dataset production.Dataset
}

// NewCatalogBuilder creates an empty catalog builder
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{}
}

// WithItem adds a non-seed item
func (b *CatalogBuilder) WithItem(itemID string) *CatalogBuilder {
	b.dataset.Items = append(b.dataset.Items, production.Item{ID: itemID, NameEN: itemID, NameJP: itemID})
	return b
}

// WithNamedItem adds a non-seed item with Japanese and English names
func (b *CatalogBuilder) WithNamedItem(itemID, nameJP, nameEN string) *CatalogBuilder {
	b.dataset.Items = append(b.dataset.Items, production.Item{ID: itemID, NameJP: nameJP, NameEN: nameEN})
	return b
}

// WithSeed adds a seed item
func (b *CatalogBuilder) WithSeed(itemID string) *CatalogBuilder {
	b.dataset.Items = append(b.dataset.Items, production.Item{ID: itemID, NameEN: itemID, NameJP: itemID, IsSeed: true})
	return b
}

// WithFacility adds a facility with a cycle time in minutes
func (b *CatalogBuilder) WithFacility(facilityID string, processTime float64) *CatalogBuilder {
	b.dataset.Facilities = append(b.dataset.Facilities, production.Facility{ID: facilityID, ProcessTime: processTime})
	return b
}

// WithRecipe adds a recipe producing outputQuantity of itemID per cycle on facilityID
func (b *CatalogBuilder) WithRecipe(recipeID, itemID, facilityID string, outputQuantity float64) *CatalogBuilder {
	b.dataset.Recipes = append(b.dataset.Recipes, production.Recipe{
		ID:             recipeID,
		ItemID:         itemID,
		FacilityID:     facilityID,
		OutputQuantity: outputQuantity,
	})
	return b
}

// WithMaterial adds a material consumed by recipeID
func (b *CatalogBuilder) WithMaterial(recipeID, materialID string, quantity float64) *CatalogBuilder {
	b.dataset.Materials = append(b.dataset.Materials, production.Material{
		RecipeID:   recipeID,
		MaterialID: materialID,
		Quantity:   quantity,
	})
	return b
}

// Dataset returns a copy of the assembled dataset
func (b *CatalogBuilder) Dataset() *production.Dataset {
	return production.NewCatalog(&b.dataset).Dataset()
}

// Build returns the catalog
func (b *CatalogBuilder) Build() *production.Catalog {
	return production.NewCatalog(&b.dataset)
}

// PlateCatalog is the reference chain: plate is made on a smelter (1 min, 2 per cycle)
// from 4 ore per cycle, and ore has no recipe
func PlateCatalog() *production.Catalog {
	return NewCatalogBuilder().
		WithItem("plate").
		WithItem("ore").
		WithFacility("smelter", 1).
		WithRecipe("r-plate", "plate", "smelter", 2).
		WithMaterial("r-plate", "ore", 4).
		Build()
}
