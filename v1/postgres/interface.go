package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/metaspace/smquery/v1/relational"
)

// Client is the dataset store backed by PostgreSQL.
type Client interface {
	ListDatasets(ctx context.Context, q *relational.Query) ([]Dataset, error)
	CountDatasets(ctx context.Context, q *relational.Query) (int64, error)
	DatasetByID(ctx context.Context, id string) (*Dataset, error)
	DatasetByName(ctx context.Context, name string) (*Dataset, error)
	MetadataSuggestions(ctx context.Context, q *relational.Query) ([]string, error)
	InsertDataset(ctx context.Context, ds *Dataset) error

	DB() *gorm.DB
	GracefulShutdown() error
}

var _ Client = (*Postgres)(nil)
