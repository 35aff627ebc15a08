package tracer

// Config controls the OpenTelemetry tracer provider.
type Config struct {
	ServiceName string `yaml:"service_name" mapstructure:"service_name" envconfig:"TRACER_SERVICE_NAME"`
	AppEnv      string `yaml:"app_env" mapstructure:"app_env" envconfig:"APP_ENV"`

	// EnableExport ships spans over OTLP/HTTP. The exporter reads its endpoint
	// from the standard OTEL_EXPORTER_OTLP_* variables unless Endpoint is set.
	EnableExport bool   `yaml:"enable_export" mapstructure:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
	Endpoint     string `yaml:"endpoint" mapstructure:"endpoint" envconfig:"TRACER_ENDPOINT"`
	Insecure     bool   `yaml:"insecure" mapstructure:"insecure" envconfig:"TRACER_INSECURE"`
}
