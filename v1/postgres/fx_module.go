package postgres

import (
	"context"
	"sync"

	"go.uber.org/fx"
)

// FXModule provides *Postgres and the Client interface, and runs the
// connection monitor for the lifetime of the application.
var FXModule = fx.Module("postgres",
	fx.Provide(
		NewPostgresClientWithDI,
		fx.Annotate(
			ProvideClient,
			fx.As(new(Client)),
		),
	),
	fx.Invoke(RegisterPostgresLifecycle),
)

// ProvideClient exposes *Postgres as Client.
func ProvideClient(pg *Postgres) Client {
	return pg
}

// PostgresParams are the dependencies of NewPostgresClientWithDI.
type PostgresParams struct {
	fx.In

	Config Config
	Logger Logger
}

// NewPostgresClientWithDI connects using the injected configuration.
func NewPostgresClientWithDI(params PostgresParams) (*Postgres, error) {
	return NewPostgres(params.Config, params.Logger)
}

// PostgresLifeCycleParams are the dependencies of RegisterPostgresLifecycle.
type PostgresLifeCycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Postgres  *Postgres
}

// RegisterPostgresLifecycle starts the monitor and retry loops on start and
// stops them and closes the pool on stop.
func RegisterPostgresLifecycle(params PostgresLifeCycleParams) {
	wg := &sync.WaitGroup{}
	loopCtx, cancel := context.WithCancel(context.Background())

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			wg.Add(2)
			go func() {
				defer wg.Done()
				params.Postgres.MonitorConnection(loopCtx)
			}()
			go func() {
				defer wg.Done()
				params.Postgres.RetryConnection(loopCtx)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			params.Postgres.closeShutdownOnce.Do(func() {
				close(params.Postgres.shutdownSignal)
			})
			wg.Wait()
			return params.Postgres.GracefulShutdown()
		},
	})
}
