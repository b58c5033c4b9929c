package production

import "context"

// DatasetSource supplies the dataset a Catalog is built from
type DatasetSource interface {
	Load(ctx context.Context) (*Dataset, error)
}

// CatalogRepository loads and replaces the stored dataset
type CatalogRepository interface {
	DatasetSource
	Save(ctx context.Context, dataset *Dataset) error
}
