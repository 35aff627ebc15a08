package elastic

import (
	"context"

	"github.com/metaspace/smquery/v1/search"
)

// Client is the annotation store backed by Elasticsearch.
type Client interface {
	SearchAnnotations(ctx context.Context, q *search.Query) ([]Hit, error)
	CountAnnotations(ctx context.Context, q *search.Query) (int64, error)
	AnnotationByID(ctx context.Context, id string) (*Hit, error)
	IndexAnnotation(ctx context.Context, id string, doc Document, refresh bool) error
	Ping(ctx context.Context) error
}

var _ Client = (*Elastic)(nil)
