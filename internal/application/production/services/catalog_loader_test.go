package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halasue/endfield-aic-calculator/internal/application/production/services"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
	"github.com/Halasue/endfield-aic-calculator/test/helpers"
)

type countingSource struct {
	dataset *production.Dataset
	err     error
	calls   int
}

func (s *countingSource) Load(ctx context.Context) (*production.Dataset, error) {
	s.calls++
	return s.dataset, s.err
}

func TestCatalogLoader_LoadsOnce(t *testing.T) {
	source := &countingSource{dataset: helpers.PlateCatalog().Dataset()}
	loader := services.NewCatalogLoader(source)

	first, err := loader.Catalog(context.Background())
	require.NoError(t, err)
	second, err := loader.Catalog(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, source.calls)
	_, ok := first.FindItem("plate")
	assert.True(t, ok)
}

func TestCatalogLoader_RemembersFailure(t *testing.T) {
	source := &countingSource{err: errors.New("disk on fire")}
	loader := services.NewCatalogLoader(source)

	_, err := loader.Catalog(context.Background())
	assert.ErrorContains(t, err, "disk on fire")

	_, err = loader.Catalog(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, source.calls)
}

func TestStaticCatalogLoader(t *testing.T) {
	catalog := helpers.PlateCatalog()

	loaded, err := services.NewStaticCatalogLoader(catalog).Catalog(context.Background())

	require.NoError(t, err)
	assert.Same(t, catalog, loaded)
}
