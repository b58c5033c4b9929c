package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

// CatalogLoader loads the catalog from its source on first use and serves the same
// immutable instance afterwards. A failed load is remembered and returned again.
type CatalogLoader struct {
	source production.DatasetSource

	once    sync.Once
	catalog *production.Catalog
	err     error
}

// NewCatalogLoader creates a loader over a dataset source
func NewCatalogLoader(source production.DatasetSource) *CatalogLoader {
	return &CatalogLoader{source: source}
}

// NewStaticCatalogLoader wraps an already built catalog
func NewStaticCatalogLoader(catalog *production.Catalog) *CatalogLoader {
	loader := &CatalogLoader{catalog: catalog}
	loader.once.Do(func() {})
	return loader
}

// Catalog returns the loaded catalog
func (l *CatalogLoader) Catalog(ctx context.Context) (*production.Catalog, error) {
	l.once.Do(func() {
		dataset, err := l.source.Load(ctx)
		if err != nil {
			l.err = fmt.Errorf("failed to load catalog: %w", err)
			return
		}
		l.catalog = production.NewCatalog(dataset)

		common.LoggerFromContext(ctx).Log(common.LevelDebug, "Catalog loaded", map[string]interface{}{
			"items":      len(dataset.Items),
			"facilities": len(dataset.Facilities),
			"recipes":    len(dataset.Recipes),
			"materials":  len(dataset.Materials),
		})
	})
	return l.catalog, l.err
}
