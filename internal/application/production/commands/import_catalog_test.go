package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/application/production/commands"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
	"github.com/Halasue/endfield-aic-calculator/test/helpers"
)

type stubReader struct {
	dataset *production.Dataset
	err     error
	path    string
}

func (r *stubReader) ReadFile(path string) (*production.Dataset, error) {
	r.path = path
	return r.dataset, r.err
}

type memoryRepository struct {
	saved   *production.Dataset
	saveErr error
}

func (r *memoryRepository) Load(ctx context.Context) (*production.Dataset, error) {
	return r.saved, nil
}

func (r *memoryRepository) Save(ctx context.Context, dataset *production.Dataset) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = dataset
	return nil
}

func TestImportCatalog_SavesDataset(t *testing.T) {
	// Arrange
	reader := &stubReader{dataset: helpers.PlateCatalog().Dataset()}
	repo := &memoryRepository{}
	handler := commands.NewImportCatalogHandler(reader, repo)

	// Act
	result, err := handler.Handle(context.Background(), &commands.ImportCatalogCommand{Path: "data.json"})

	// Assert
	require.NoError(t, err)
	response := result.(*commands.ImportCatalogResponse)
	assert.Equal(t, "data.json", reader.path)
	assert.Equal(t, 2, response.Items)
	assert.Equal(t, 1, response.Facilities)
	assert.Equal(t, 1, response.Recipes)
	assert.Equal(t, 1, response.Materials)
	assert.Empty(t, response.Dangling)
	require.NotNil(t, repo.saved)
	assert.Len(t, repo.saved.Items, 2)
}

func TestImportCatalog_ReportsDanglingReferences(t *testing.T) {
	// Arrange
	dataset := helpers.NewCatalogBuilder().
		WithItem("gear").
		WithRecipe("r-gear", "gear", "press", 1).
		Dataset()
	logger := helpers.NewMockLogger()
	ctx := common.WithLogger(context.Background(), logger)
	handler := commands.NewImportCatalogHandler(&stubReader{dataset: dataset}, &memoryRepository{})

	// Act
	result, err := handler.Handle(ctx, &commands.ImportCatalogCommand{Path: "broken.yaml"})

	// Assert
	require.NoError(t, err)
	response := result.(*commands.ImportCatalogResponse)
	require.Len(t, response.Dangling, 1)
	assert.Equal(t, "press", response.Dangling[0].MissingID)
	assert.Len(t, logger.EntriesWithLevel(common.LevelWarn), 1)
}

func TestImportCatalog_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		handler := commands.NewImportCatalogHandler(&stubReader{}, &memoryRepository{})

		_, err := handler.Handle(context.Background(), &commands.ImportCatalogCommand{})

		assert.ErrorContains(t, err, "dataset path is required")
	})

	t.Run("read failure", func(t *testing.T) {
		handler := commands.NewImportCatalogHandler(&stubReader{err: errors.New("no such file")}, &memoryRepository{})

		_, err := handler.Handle(context.Background(), &commands.ImportCatalogCommand{Path: "x.json"})

		assert.ErrorContains(t, err, "no such file")
	})

	t.Run("save failure", func(t *testing.T) {
		repo := &memoryRepository{saveErr: errors.New("database is locked")}
		handler := commands.NewImportCatalogHandler(&stubReader{dataset: &production.Dataset{}}, repo)

		_, err := handler.Handle(context.Background(), &commands.ImportCatalogCommand{Path: "x.json"})

		assert.ErrorContains(t, err, "failed to save catalog")
		assert.ErrorContains(t, err, "database is locked")
	})
}
