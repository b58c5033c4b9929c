package commands

import (
	"context"
	"fmt"

	"github.com/Halasue/endfield-aic-calculator/internal/application/common"
	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

// DatasetFileReader reads a dataset file from disk
type DatasetFileReader interface {
	ReadFile(path string) (*production.Dataset, error)
}

// ImportCatalogCommand replaces the stored catalog with the contents of a dataset file
type ImportCatalogCommand struct {
	Path string
}

// ImportCatalogResponse reports what was imported
type ImportCatalogResponse struct {
	Items      int
	Facilities int
	Recipes    int
	Materials  int

	// References the builder will degrade at build time
	Dangling []production.DanglingReference
}

// ImportCatalogHandler handles the ImportCatalog command
type ImportCatalogHandler struct {
	reader     DatasetFileReader
	repository production.CatalogRepository
}

// NewImportCatalogHandler creates a new ImportCatalogHandler
func NewImportCatalogHandler(reader DatasetFileReader, repository production.CatalogRepository) *ImportCatalogHandler {
	return &ImportCatalogHandler{
		reader:     reader,
		repository: repository,
	}
}

// Handle executes the ImportCatalog command
func (h *ImportCatalogHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ImportCatalogCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ImportCatalogCommand")
	}

	if cmd.Path == "" {
		return nil, fmt.Errorf("dataset path is required")
	}

	dataset, err := h.reader.ReadFile(cmd.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", cmd.Path, err)
	}

	if err := h.repository.Save(ctx, dataset); err != nil {
		return nil, fmt.Errorf("failed to save catalog: %w", err)
	}

	dangling := production.FindDanglingReferences(dataset)

	logger := common.LoggerFromContext(ctx)
	for _, ref := range dangling {
		logger.Log(common.LevelWarn, "Dangling catalog reference", map[string]interface{}{
			"field":      ref.Field,
			"owner_id":   ref.OwnerID,
			"missing_id": ref.MissingID,
		})
	}
	logger.Log(common.LevelInfo, "Catalog imported", map[string]interface{}{
		"path":       cmd.Path,
		"items":      len(dataset.Items),
		"facilities": len(dataset.Facilities),
		"recipes":    len(dataset.Recipes),
		"materials":  len(dataset.Materials),
	})

	return &ImportCatalogResponse{
		Items:      len(dataset.Items),
		Facilities: len(dataset.Facilities),
		Recipes:    len(dataset.Recipes),
		Materials:  len(dataset.Materials),
		Dangling:   dangling,
	}, nil
}
