package elastic

import (
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v7"

	"github.com/metaspace/smquery/v1/search"
)

// Logger is the logging surface this package needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Elastic executes annotation queries against one index.
type Elastic struct {
	cfg     Config
	dialect search.Dialect
	client  *elasticsearch.Client
	logger  Logger
}

// NewElastic creates a client for the cluster described by cfg. No request is
// sent; use Ping to check reachability.
func NewElastic(cfg Config, logger Logger) (*Elastic, error) {
	cfg = cfg.withDefaults()

	dialect, err := search.ParseDialect(cfg.Dialect)
	if err != nil {
		return nil, err
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:  cfg.Addresses,
		Username:   cfg.Username,
		Password:   cfg.Password,
		MaxRetries: cfg.MaxRetries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	logger.Info("Elasticsearch client created", nil, map[string]interface{}{
		"addresses": cfg.Addresses,
		"index":     cfg.Index,
		"dialect":   string(dialect),
	})

	return &Elastic{
		cfg:     cfg,
		dialect: dialect,
		client:  client,
		logger:  logger,
	}, nil
}

// Index returns the name of the annotation index.
func (e *Elastic) Index() string {
	return e.cfg.Index
}

// Dialect returns the clause vocabulary used for request bodies.
func (e *Elastic) Dialect() search.Dialect {
	return e.dialect
}

// Ping checks that the cluster answers.
func (e *Elastic) Ping(ctx context.Context) error {
	if e.client == nil {
		return ErrNotConnected
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
	defer cancel()

	res, err := e.client.Ping(e.client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch ping failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return &ResponseError{StatusCode: res.StatusCode}
	}
	return nil
}
