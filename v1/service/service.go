package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/metaspace/smquery/v1/elastic"
	"github.com/metaspace/smquery/v1/filters"
	"github.com/metaspace/smquery/v1/metrics"
	"github.com/metaspace/smquery/v1/postgres"
	"github.com/metaspace/smquery/v1/query"
	"github.com/metaspace/smquery/v1/tracer"
)

// Backend and translator labels used in metrics and spans.
const (
	BackendPostgres = "postgres"
	BackendElastic  = "elastic"

	TranslatorDataset    = "dataset"
	TranslatorAnnotation = "annotation"
)

// Service answers dataset and annotation queries.
type Service struct {
	registry    *filters.Registry
	datasets    *query.DatasetTranslator
	annotations *query.AnnotationTranslator

	datasetStore    DatasetStore
	annotationStore AnnotationStore

	logger  Logger
	metrics metrics.MetricsCollector
	tracer  *tracer.Tracer
}

// New creates a Service. Both translators share registry.
func New(
	registry *filters.Registry,
	datasetStore DatasetStore,
	annotationStore AnnotationStore,
	logger Logger,
	collector metrics.MetricsCollector,
	tr *tracer.Tracer,
) *Service {
	return &Service{
		registry:        registry,
		datasets:        query.NewDatasetTranslator(registry),
		annotations:     query.NewAnnotationTranslator(registry),
		datasetStore:    datasetStore,
		annotationStore: annotationStore,
		logger:          logger,
		metrics:         collector,
		tracer:          tr,
	}
}

// Registry returns the filter definitions the service translates with.
func (s *Service) Registry() *filters.Registry {
	return s.registry
}

// DatasetAnnotations is a dataset together with a page of its annotations.
type DatasetAnnotations struct {
	Dataset     *postgres.Dataset
	Annotations []elastic.Hit
}

// AllDatasets lists the datasets matching c.
func (s *Service) AllDatasets(ctx context.Context, c query.DatasetCriteria) ([]postgres.Dataset, error) {
	q, err := s.datasets.Translate(c)
	if err != nil {
		return nil, s.translationFailed(ctx, TranslatorDataset, err)
	}
	return run(ctx, s, BackendPostgres, "list_datasets", func(ctx context.Context) ([]postgres.Dataset, error) {
		return s.datasetStore.ListDatasets(ctx, q)
	})
}

// CountDatasets counts the datasets matching c. Order and window are ignored.
func (s *Service) CountDatasets(ctx context.Context, c query.DatasetCriteria) (int64, error) {
	q, err := s.datasets.TranslateCount(c)
	if err != nil {
		return 0, s.translationFailed(ctx, TranslatorDataset, err)
	}
	return run(ctx, s, BackendPostgres, "count_datasets", func(ctx context.Context) (int64, error) {
		return s.datasetStore.CountDatasets(ctx, q)
	})
}

// Dataset loads one dataset by id.
func (s *Service) Dataset(ctx context.Context, id string) (*postgres.Dataset, error) {
	return run(ctx, s, BackendPostgres, "dataset_by_id", func(ctx context.Context) (*postgres.Dataset, error) {
		return s.datasetStore.DatasetByID(ctx, id)
	})
}

// DatasetByName loads one dataset by exact name.
func (s *Service) DatasetByName(ctx context.Context, name string) (*postgres.Dataset, error) {
	return run(ctx, s, BackendPostgres, "dataset_by_name", func(ctx context.Context) (*postgres.Dataset, error) {
		return s.datasetStore.DatasetByName(ctx, name)
	})
}

// MetadataSuggestions returns the distinct values of a metadata field that
// contain substr. field is a filter name or a dotted metadata path.
func (s *Service) MetadataSuggestions(ctx context.Context, field, substr string) ([]string, error) {
	q, err := s.datasets.TranslateSuggestions(field, substr)
	if err != nil {
		return nil, s.translationFailed(ctx, TranslatorDataset, err)
	}
	return run(ctx, s, BackendPostgres, "metadata_suggestions", func(ctx context.Context) ([]string, error) {
		return s.datasetStore.MetadataSuggestions(ctx, q)
	})
}

// AllAnnotations searches the annotations matching c.
func (s *Service) AllAnnotations(ctx context.Context, c query.AnnotationCriteria) ([]elastic.Hit, error) {
	q, err := s.annotations.Translate(c)
	if err != nil {
		return nil, s.translationFailed(ctx, TranslatorAnnotation, err)
	}
	return run(ctx, s, BackendElastic, "search_annotations", func(ctx context.Context) ([]elastic.Hit, error) {
		return s.annotationStore.SearchAnnotations(ctx, q)
	})
}

// CountAnnotations counts the annotations matching c.
func (s *Service) CountAnnotations(ctx context.Context, c query.AnnotationCriteria) (int64, error) {
	q, err := s.annotations.TranslateCount(c)
	if err != nil {
		return 0, s.translationFailed(ctx, TranslatorAnnotation, err)
	}
	return run(ctx, s, BackendElastic, "count_annotations", func(ctx context.Context) (int64, error) {
		return s.annotationStore.CountAnnotations(ctx, q)
	})
}

// Annotation loads one annotation by id.
func (s *Service) Annotation(ctx context.Context, id string) (*elastic.Hit, error) {
	return run(ctx, s, BackendElastic, "annotation_by_id", func(ctx context.Context) (*elastic.Hit, error) {
		return s.annotationStore.AnnotationByID(ctx, id)
	})
}

// DatasetWithAnnotations loads a dataset and searches its annotations
// concurrently. c.DatasetID is replaced by id. The first failure cancels the
// other read and is returned.
func (s *Service) DatasetWithAnnotations(ctx context.Context, id string, c query.AnnotationCriteria) (*DatasetAnnotations, error) {
	c.DatasetID = id
	q, err := s.annotations.Translate(c)
	if err != nil {
		return nil, s.translationFailed(ctx, TranslatorAnnotation, err)
	}

	ctx, span := s.tracer.StartSpan(ctx, "service.dataset_with_annotations")
	defer span.End()

	var out DatasetAnnotations
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ds, err := run(gctx, s, BackendPostgres, "dataset_by_id", func(ctx context.Context) (*postgres.Dataset, error) {
			return s.datasetStore.DatasetByID(ctx, id)
		})
		out.Dataset = ds
		return err
	})
	g.Go(func() error {
		hits, err := run(gctx, s, BackendElastic, "search_annotations", func(ctx context.Context) ([]elastic.Hit, error) {
			return s.annotationStore.SearchAnnotations(ctx, q)
		})
		out.Annotations = hits
		return err
	})

	if err := g.Wait(); err != nil {
		s.tracer.RecordErrorOnSpan(span, err)
		return nil, err
	}
	return &out, nil
}

func (s *Service) translationFailed(ctx context.Context, translator string, err error) error {
	s.metrics.IncrementTranslationErrors(translator)
	s.logger.DebugWithContext(ctx, "Rejected query criteria", err, map[string]interface{}{
		"translator": translator,
	})
	return err
}

// run executes one backend call inside a span and records its outcome.
func run[T any](ctx context.Context, s *Service, backend, operation string, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := s.tracer.StartSpan(ctx, "service."+operation)
	defer span.End()
	s.tracer.SetAttributes(span, map[string]interface{}{
		"backend":   backend,
		"operation": operation,
	})

	start := time.Now()
	out, err := fn(ctx)
	s.metrics.ObserveBackendQuery(backend, operation, start, err)

	if err != nil {
		s.tracer.RecordErrorOnSpan(span, err)
		fields := map[string]interface{}{
			"backend":   backend,
			"operation": operation,
		}
		if IsNotFound(err) || errors.Is(err, context.Canceled) {
			s.logger.DebugWithContext(ctx, "Backend query ended without a result", err, fields)
		} else {
			s.logger.ErrorWithContext(ctx, "Backend query failed", err, fields)
		}
	}
	return out, err
}

// IsNotFound reports whether err means a single-record lookup matched nothing.
func IsNotFound(err error) bool {
	return errors.Is(err, postgres.ErrRecordNotFound) || errors.Is(err, elastic.ErrNotFound)
}
