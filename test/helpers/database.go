package helpers

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/Halasue/endfield-aic-calculator/internal/adapters/persistence"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
	"github.com/Halasue/endfield-aic-calculator/internal/infrastructure/database"
)

// NewTestDB creates an in-memory SQLite catalog store with the catalog tables
// already migrated. It is closed when the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close(db)
	})

	return db
}

// NewTestCatalogRepository returns a catalog repository over a fresh NewTestDB
func NewTestCatalogRepository(t *testing.T) *persistence.GormCatalogRepository {
	return persistence.NewGormCatalogRepository(NewTestDB(t))
}

// NewSeededCatalogRepository returns a catalog repository already holding dataset
func NewSeededCatalogRepository(t *testing.T, dataset *production.Dataset) *persistence.GormCatalogRepository {
	repo := NewTestCatalogRepository(t)
	if err := repo.Save(context.Background(), dataset); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
	return repo
}
