package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/metaspace/smquery/v1/elastic"
	"github.com/metaspace/smquery/v1/filters"
	"github.com/metaspace/smquery/v1/metrics"
	"github.com/metaspace/smquery/v1/postgres"
	"github.com/metaspace/smquery/v1/query"
	"github.com/metaspace/smquery/v1/service"
	"github.com/metaspace/smquery/v1/tracer"
)

// Querier is the query surface the handlers call. *service.Service
// implements it.
type Querier interface {
	AllDatasets(ctx context.Context, c query.DatasetCriteria) ([]postgres.Dataset, error)
	CountDatasets(ctx context.Context, c query.DatasetCriteria) (int64, error)
	Dataset(ctx context.Context, id string) (*postgres.Dataset, error)
	DatasetByName(ctx context.Context, name string) (*postgres.Dataset, error)
	MetadataSuggestions(ctx context.Context, field, substr string) ([]string, error)
	AllAnnotations(ctx context.Context, c query.AnnotationCriteria) ([]elastic.Hit, error)
	CountAnnotations(ctx context.Context, c query.AnnotationCriteria) (int64, error)
	Annotation(ctx context.Context, id string) (*elastic.Hit, error)
	DatasetWithAnnotations(ctx context.Context, id string, c query.AnnotationCriteria) (*service.DatasetAnnotations, error)
	Registry() *filters.Registry
}

var _ Querier = (*service.Service)(nil)

// Logger is the logging surface this package needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Server is the HTTP front end.
type Server struct {
	cfg     Config
	querier Querier
	logger  Logger
	metrics metrics.MetricsCollector
	tracer  *tracer.Tracer

	collapsed *prometheus.CounterVec
	engine    *gin.Engine
	server    *http.Server
}

// NewServer builds the router. Call Start to listen.
func NewServer(cfg Config, querier Querier, logger Logger, collector metrics.MetricsCollector, tr *tracer.Tracer) *Server {
	cfg = cfg.withDefaults()
	gin.SetMode(cfg.Mode)

	s := &Server{
		cfg:     cfg,
		querier: querier,
		logger:  logger,
		metrics: collector,
		tracer:  tr,
		collapsed: collector.CreateCounter("collapsed_failures_total",
			"Execution failures answered with an empty result", []string{"route"}),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.traceMiddleware(), s.metricsMiddleware(), corsMiddleware(cfg.AllowedOrigin))
	s.routes(engine)
	s.engine = engine

	s.server = &http.Server{
		Addr:         cfg.Address,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/v1")
	{
		v1.POST("/datasets", s.listDatasets)
		v1.POST("/datasets/count", s.countDatasets)
		v1.GET("/datasets/by-name/:name", s.datasetByName)
		v1.GET("/datasets/:id", s.datasetByID)
		v1.GET("/datasets/:id/annotations", s.datasetAnnotations)

		v1.POST("/annotations", s.listAnnotations)
		v1.POST("/annotations/count", s.countAnnotations)
		v1.GET("/annotations/:id", s.annotationByID)

		v1.GET("/metadata/suggestions", s.metadataSuggestions)
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start serves in the background until Shutdown.
func (s *Server) Start() {
	go func() {
		s.logger.Info("Starting HTTP server", nil, map[string]interface{}{
			"address": s.server.Addr,
		})
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped unexpectedly", err, nil)
		}
	}()
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server", nil, nil)
	return s.server.Shutdown(ctx)
}
