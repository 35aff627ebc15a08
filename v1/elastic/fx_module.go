package elastic

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides *Elastic and the Client interface.
var FXModule = fx.Module("elastic",
	fx.Provide(
		NewElasticClientWithDI,
		fx.Annotate(
			ProvideClient,
			fx.As(new(Client)),
		),
	),
	fx.Invoke(RegisterElasticLifecycle),
)

// ProvideClient exposes *Elastic as Client.
func ProvideClient(e *Elastic) Client {
	return e
}

// ElasticParams are the dependencies of NewElasticClientWithDI.
type ElasticParams struct {
	fx.In

	Config Config
	Logger Logger
}

// NewElasticClientWithDI creates the client from the injected configuration.
func NewElasticClientWithDI(params ElasticParams) (*Elastic, error) {
	return NewElastic(params.Config, params.Logger)
}

// RegisterElasticLifecycle pings the cluster on start. An unreachable
// cluster is logged and does not fail the start.
func RegisterElasticLifecycle(lc fx.Lifecycle, e *Elastic) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := e.Ping(ctx); err != nil {
				e.logger.Error("Elasticsearch is not reachable", err, map[string]interface{}{
					"addresses": e.cfg.Addresses,
				})
				return nil
			}
			e.logger.Info("Elasticsearch is reachable", nil, nil)
			return nil
		},
	})
}
