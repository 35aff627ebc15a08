// Package config loads the service configuration from an optional YAML file
// and SMQUERY_ prefixed environment variables.
//
// Keys are the mapstructure paths of Config joined with dots; the matching
// variable upper-cases the key and replaces dots with underscores:
//
//	postgres.connection.host  ->  SMQUERY_POSTGRES_CONNECTION_HOST
//	elastic.addresses         ->  SMQUERY_ELASTIC_ADDRESSES (comma separated)
//
// Environment variables take precedence over the file, the file over the
// defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/metaspace/smquery/v1/elastic"
	"github.com/metaspace/smquery/v1/httpapi"
	"github.com/metaspace/smquery/v1/logger"
	"github.com/metaspace/smquery/v1/metrics"
	"github.com/metaspace/smquery/v1/postgres"
	"github.com/metaspace/smquery/v1/tracer"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SMQUERY"

// ServiceName is the default service name of logs, metrics and traces.
const ServiceName = "smquery"

// Config aggregates the configuration of every component.
type Config struct {
	Logger   logger.Config   `yaml:"logger" mapstructure:"logger"`
	Metrics  metrics.Config  `yaml:"metrics" mapstructure:"metrics"`
	Tracer   tracer.Config   `yaml:"tracer" mapstructure:"tracer"`
	Postgres postgres.Config `yaml:"postgres" mapstructure:"postgres"`
	Elastic  elastic.Config  `yaml:"elastic" mapstructure:"elastic"`
	HTTP     httpapi.Config  `yaml:"http" mapstructure:"http"`
}

var defaults = map[string]any{
	"logger.level":          logger.Info,
	"logger.enable_tracing": false,
	"logger.service_name":   ServiceName,

	"metrics.address":                   metrics.DefaultMetricsAddress,
	"metrics.enable_default_collectors": true,
	"metrics.namespace":                 ServiceName,
	"metrics.service_name":              ServiceName,

	"tracer.service_name":  ServiceName,
	"tracer.app_env":       "development",
	"tracer.enable_export": false,
	"tracer.endpoint":      "",
	"tracer.insecure":      false,

	"postgres.connection.host":                          "localhost",
	"postgres.connection.port":                          "5432",
	"postgres.connection.user":                          "sm",
	"postgres.connection.password":                      "",
	"postgres.connection.db_name":                       "sm",
	"postgres.connection.ssl_mode":                      "disable",
	"postgres.connection_details.max_open_conns":        postgres.DefaultMaxOpenConns,
	"postgres.connection_details.max_idle_conns":        postgres.DefaultMaxIdleConns,
	"postgres.connection_details.conn_max_lifetime":     postgres.DefaultConnMaxLifetime,
	"postgres.connection_details.health_check_interval": postgres.DefaultHealthCheckInterval,

	"elastic.addresses":       []string{elastic.DefaultAddress},
	"elastic.username":        "",
	"elastic.password":        "",
	"elastic.index":           elastic.DefaultIndex,
	"elastic.dialect":         "legacy",
	"elastic.max_retries":     elastic.DefaultMaxRetries,
	"elastic.request_timeout": elastic.DefaultRequestTimeout,

	"http.address":        httpapi.DefaultAddress,
	"http.mode":           httpapi.DefaultMode,
	"http.read_timeout":   httpapi.DefaultReadTimeout,
	"http.write_timeout":  httpapi.DefaultWriteTimeout,
	"http.default_limit":  httpapi.DefaultPageSize,
	"http.allowed_origin": "",
}

// Load reads the configuration. path may be empty, in which case only the
// defaults and the environment are used.
func Load(path string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config file %q not found: %w", path, err)
			}
			return Config{}, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Provide supplies the component configurations to an fx graph.
func Provide(cfg Config) fx.Option {
	return fx.Supply(
		cfg.Logger,
		cfg.Metrics,
		cfg.Tracer,
		cfg.Postgres,
		cfg.Elastic,
		cfg.HTTP,
	)
}
