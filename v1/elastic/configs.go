package elastic

import "time"

// Config holds the connection settings of the search index.
type Config struct {
	Addresses []string `yaml:"addresses" mapstructure:"addresses" envconfig:"ELASTIC_ADDRESSES"`
	Username  string   `yaml:"username" mapstructure:"username" envconfig:"ELASTIC_USERNAME"`
	Password  string   `yaml:"password" mapstructure:"password" envconfig:"ELASTIC_PASSWORD"`

	// Index holds the annotation documents.
	Index string `yaml:"index" mapstructure:"index" envconfig:"ELASTIC_INDEX"`

	// Dialect is "legacy" or "modern", see search.Dialect.
	Dialect string `yaml:"dialect" mapstructure:"dialect" envconfig:"ELASTIC_DIALECT"`

	MaxRetries     int           `yaml:"max_retries" mapstructure:"max_retries" envconfig:"ELASTIC_MAX_RETRIES"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout" envconfig:"ELASTIC_REQUEST_TIMEOUT"`
}

// Defaults.
const (
	DefaultAddress        = "http://localhost:9200"
	DefaultIndex          = "sm"
	DefaultMaxRetries     = 3
	DefaultRequestTimeout = 10 * time.Second
)

// DefaultConfig returns a configuration for a local single-node cluster.
func DefaultConfig() Config {
	return Config{
		Addresses:      []string{DefaultAddress},
		Index:          DefaultIndex,
		MaxRetries:     DefaultMaxRetries,
		RequestTimeout: DefaultRequestTimeout,
	}
}

func (c Config) withDefaults() Config {
	if len(c.Addresses) == 0 {
		c.Addresses = []string{DefaultAddress}
	}
	if c.Index == "" {
		c.Index = DefaultIndex
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	return c
}
