package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

const insertBatchSize = 200

// GormCatalogRepository implements CatalogRepository using GORM
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Load reads the whole dataset in catalog order
func (r *GormCatalogRepository) Load(ctx context.Context) (*production.Dataset, error) {
	db := r.db.WithContext(ctx)

	var items []ItemModel
	if err := db.Order("position").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	var facilities []FacilityModel
	if err := db.Order("position").Find(&facilities).Error; err != nil {
		return nil, fmt.Errorf("failed to load facilities: %w", err)
	}

	var recipes []RecipeModel
	if err := db.Order("position").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	var materials []MaterialModel
	if err := db.Order("position").Find(&materials).Error; err != nil {
		return nil, fmt.Errorf("failed to load materials: %w", err)
	}

	dataset := &production.Dataset{
		Items:      make([]production.Item, 0, len(items)),
		Facilities: make([]production.Facility, 0, len(facilities)),
		Recipes:    make([]production.Recipe, 0, len(recipes)),
		Materials:  make([]production.Material, 0, len(materials)),
	}
	for _, m := range items {
		dataset.Items = append(dataset.Items, modelToItem(&m))
	}
	for _, m := range facilities {
		dataset.Facilities = append(dataset.Facilities, production.Facility{
			ID:          m.FacilityID,
			ProcessTime: m.ProcessTime,
			SpriteCol:   m.SpriteCol,
			SpriteRow:   m.SpriteRow,
		})
	}
	for _, m := range recipes {
		dataset.Recipes = append(dataset.Recipes, production.Recipe{
			ID:             m.RecipeID,
			ItemID:         m.ItemID,
			FacilityID:     m.FacilityID,
			OutputQuantity: m.OutputQuantity,
		})
	}
	for _, m := range materials {
		dataset.Materials = append(dataset.Materials, production.Material{
			RecipeID:   m.RecipeID,
			MaterialID: m.MaterialID,
			Quantity:   m.Quantity,
		})
	}

	return dataset, nil
}

// Save replaces the stored dataset in one transaction
func (r *GormCatalogRepository) Save(ctx context.Context, dataset *production.Dataset) error {
	if dataset == nil {
		return fmt.Errorf("dataset cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete the previous catalog; positions are reassigned below
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range AllModels() {
			if err := wipe.Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", model, err)
			}
		}

		if len(dataset.Items) > 0 {
			models := make([]ItemModel, len(dataset.Items))
			for i, item := range dataset.Items {
				models[i] = itemToModel(i+1, item)
			}
			if err := tx.CreateInBatches(&models, insertBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert items: %w", err)
			}
		}

		if len(dataset.Facilities) > 0 {
			models := make([]FacilityModel, len(dataset.Facilities))
			for i, facility := range dataset.Facilities {
				models[i] = FacilityModel{
					Position:    i + 1,
					FacilityID:  facility.ID,
					ProcessTime: facility.ProcessTime,
					SpriteCol:   facility.SpriteCol,
					SpriteRow:   facility.SpriteRow,
				}
			}
			if err := tx.CreateInBatches(&models, insertBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert facilities: %w", err)
			}
		}

		if len(dataset.Recipes) > 0 {
			models := make([]RecipeModel, len(dataset.Recipes))
			for i, recipe := range dataset.Recipes {
				models[i] = RecipeModel{
					Position:       i + 1,
					RecipeID:       recipe.ID,
					ItemID:         recipe.ItemID,
					FacilityID:     recipe.FacilityID,
					OutputQuantity: recipe.OutputQuantity,
				}
			}
			if err := tx.CreateInBatches(&models, insertBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert recipes: %w", err)
			}
		}

		if len(dataset.Materials) > 0 {
			models := make([]MaterialModel, len(dataset.Materials))
			for i, material := range dataset.Materials {
				models[i] = MaterialModel{
					Position:   i + 1,
					RecipeID:   material.RecipeID,
					MaterialID: material.MaterialID,
					Quantity:   material.Quantity,
				}
			}
			if err := tx.CreateInBatches(&models, insertBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert materials: %w", err)
			}
		}

		return nil
	})
}

func itemToModel(position int, item production.Item) ItemModel {
	isSeed := 0
	if item.IsSeed {
		isSeed = 1
	}
	return ItemModel{
		Position:  position,
		ItemID:    item.ID,
		NameJP:    item.NameJP,
		NameEN:    item.NameEN,
		SpriteCol: item.SpriteCol,
		SpriteRow: item.SpriteRow,
		IsSeed:    isSeed,
	}
}

func modelToItem(model *ItemModel) production.Item {
	return production.Item{
		ID:        model.ItemID,
		NameJP:    model.NameJP,
		NameEN:    model.NameEN,
		SpriteCol: model.SpriteCol,
		SpriteRow: model.SpriteRow,
		IsSeed:    model.IsSeed == 1,
	}
}
