package service

import (
	"go.uber.org/fx"

	"github.com/metaspace/smquery/v1/elastic"
	"github.com/metaspace/smquery/v1/postgres"
)

// FXModule provides *Service on top of the postgres and elastic clients.
var FXModule = fx.Module("service",
	fx.Provide(
		func(c postgres.Client) DatasetStore { return c },
		func(c elastic.Client) AnnotationStore { return c },
		New,
	),
)
