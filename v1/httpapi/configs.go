package httpapi

import "time"

// Config controls the HTTP server.
type Config struct {
	Address string `yaml:"address" mapstructure:"address" envconfig:"HTTP_ADDRESS"`

	// Mode is the gin mode: "debug", "release" or "test".
	Mode string `yaml:"mode" mapstructure:"mode" envconfig:"HTTP_MODE"`

	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout" envconfig:"HTTP_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout" envconfig:"HTTP_WRITE_TIMEOUT"`

	// DefaultLimit replaces a missing or zero limit in list requests.
	DefaultLimit int `yaml:"default_limit" mapstructure:"default_limit" envconfig:"HTTP_DEFAULT_LIMIT"`

	AllowedOrigin string `yaml:"allowed_origin" mapstructure:"allowed_origin" envconfig:"HTTP_ALLOWED_ORIGIN"`
}

// Defaults.
const (
	DefaultAddress      = ":8080"
	DefaultMode         = "release"
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultPageSize     = 10
)

func (c Config) withDefaults() Config {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.Mode == "" {
		c.Mode = DefaultMode
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.DefaultLimit == 0 {
		c.DefaultLimit = DefaultPageSize
	}
	return c
}
