package httpapi

import (
	"context"

	"go.uber.org/fx"

	"github.com/metaspace/smquery/v1/service"
)

// FXModule provides the HTTP server and runs it for the lifetime of the
// application.
var FXModule = fx.Module("httpapi",
	fx.Provide(
		func(s *service.Service) Querier { return s },
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts the server on start and drains it on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
}
