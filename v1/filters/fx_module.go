package filters

import "go.uber.org/fx"

// FXModule provides the sealed default filter registry.
var FXModule = fx.Module("filters",
	fx.Provide(Default),
)
