package metrics

// DefaultMetricsAddress is the listen address of the /metrics server.
const DefaultMetricsAddress = ":9090"

// Config controls metric registration and exposition.
type Config struct {
	// Address is the listen address of the exposition server, e.g. ":9090".
	Address string `yaml:"address" mapstructure:"address" envconfig:"METRICS_ADDRESS"`

	// EnableDefaultCollectors registers the Go runtime, process and build info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" mapstructure:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace" mapstructure:"namespace" envconfig:"METRICS_NAMESPACE"`

	// ServiceName is attached to every metric as the "service" label.
	ServiceName string `yaml:"service_name" mapstructure:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}
