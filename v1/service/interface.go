package service

import (
	"context"

	"github.com/metaspace/smquery/v1/elastic"
	"github.com/metaspace/smquery/v1/postgres"
	"github.com/metaspace/smquery/v1/relational"
	"github.com/metaspace/smquery/v1/search"
)

//go:generate mockgen -source=interface.go -destination=mocks_test.go -package=service

// DatasetStore executes dataset queries. postgres.Client satisfies it.
type DatasetStore interface {
	ListDatasets(ctx context.Context, q *relational.Query) ([]postgres.Dataset, error)
	CountDatasets(ctx context.Context, q *relational.Query) (int64, error)
	DatasetByID(ctx context.Context, id string) (*postgres.Dataset, error)
	DatasetByName(ctx context.Context, name string) (*postgres.Dataset, error)
	MetadataSuggestions(ctx context.Context, q *relational.Query) ([]string, error)
}

// AnnotationStore executes annotation queries. elastic.Client satisfies it.
type AnnotationStore interface {
	SearchAnnotations(ctx context.Context, q *search.Query) ([]elastic.Hit, error)
	CountAnnotations(ctx context.Context, q *search.Query) (int64, error)
	AnnotationByID(ctx context.Context, id string) (*elastic.Hit, error)
}

// Logger is the logging surface this package needs.
type Logger interface {
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

var (
	_ DatasetStore    = (postgres.Client)(nil)
	_ AnnotationStore = (elastic.Client)(nil)
)
