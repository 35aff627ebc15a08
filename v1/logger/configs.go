package logger

// Log levels accepted in Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls the structured logger.
type Config struct {
	// Level is one of Debug, Info, Warning, Error. Anything else selects Info.
	Level string `yaml:"level" mapstructure:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// EnableTracing adds trace_id and span_id of the active span to entries
	// written through the *WithContext methods.
	EnableTracing bool `yaml:"enable_tracing" mapstructure:"enable_tracing"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}
