package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/metaspace/smquery/v1/config"
	"github.com/metaspace/smquery/v1/elastic"
	"github.com/metaspace/smquery/v1/filters"
	"github.com/metaspace/smquery/v1/httpapi"
	"github.com/metaspace/smquery/v1/logger"
	"github.com/metaspace/smquery/v1/metrics"
	"github.com/metaspace/smquery/v1/postgres"
	"github.com/metaspace/smquery/v1/service"
	"github.com/metaspace/smquery/v1/tracer"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API.",
		Long: `Run the HTTP API until interrupted.

Configuration is read from the file given with --config and from SMQUERY_
prefixed environment variables, e.g. SMQUERY_POSTGRES_CONNECTION_HOST.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			app := newApp(cfg)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

func newApp(cfg config.Config) *fx.App {
	return fx.New(appOptions(cfg)...)
}

// appOptions wires every component. The structured logger is exposed under
// each package's Logger interface.
func appOptions(cfg config.Config) []fx.Option {
	return []fx.Option{
		config.Provide(cfg),
		logger.FXModule,
		fx.Provide(
			fx.Annotate(
				func(l *logger.Logger) *logger.Logger { return l },
				fx.As(new(postgres.Logger)),
				fx.As(new(elastic.Logger)),
				fx.As(new(metrics.Logger)),
				fx.As(new(tracer.Logger)),
				fx.As(new(service.Logger)),
				fx.As(new(httpapi.Logger)),
			),
		),
		fx.WithLogger(func(l *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Zap}
		}),
		metrics.FXModule,
		tracer.FXModule,
		filters.FXModule,
		postgres.FXModule,
		elastic.FXModule,
		service.FXModule,
		httpapi.FXModule,
	}
}
