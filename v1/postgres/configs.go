package postgres

import (
	"fmt"
	"time"
)

// Config holds the connection settings of the relational store.
type Config struct {
	Connection        Connection        `yaml:"connection" mapstructure:"connection"`
	ConnectionDetails ConnectionDetails `yaml:"connection_details" mapstructure:"connection_details"`
}

// Connection identifies the server and database.
type Connection struct {
	Host     string `yaml:"host" mapstructure:"host" envconfig:"POSTGRES_HOST"`
	Port     string `yaml:"port" mapstructure:"port" envconfig:"POSTGRES_PORT"`
	User     string `yaml:"user" mapstructure:"user" envconfig:"POSTGRES_USER"`
	Password string `yaml:"password" mapstructure:"password" envconfig:"POSTGRES_PASSWORD"`
	DbName   string `yaml:"db_name" mapstructure:"db_name" envconfig:"POSTGRES_DB"`
	SSLMode  string `yaml:"ssl_mode" mapstructure:"ssl_mode" envconfig:"POSTGRES_SSLMODE"`
}

// ConnectionDetails tunes the database/sql pool. Zero values select defaults.
type ConnectionDetails struct {
	MaxOpenConns    int           `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`

	// HealthCheckInterval is the period of the connection monitor.
	HealthCheckInterval time.Duration `yaml:"health_check_interval" mapstructure:"health_check_interval"`
}

// Pool defaults.
const (
	DefaultMaxOpenConns        = 50
	DefaultMaxIdleConns        = 25
	DefaultConnMaxLifetime     = time.Minute
	DefaultHealthCheckInterval = 10 * time.Second
)

// DSN renders the key/value connection string.
func (c Config) DSN() string {
	sslMode := c.Connection.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Connection.Host,
		c.Connection.Port,
		c.Connection.User,
		c.Connection.Password,
		c.Connection.DbName,
		sslMode)
}

func (d ConnectionDetails) withDefaults() ConnectionDetails {
	if d.MaxOpenConns == 0 {
		d.MaxOpenConns = DefaultMaxOpenConns
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = DefaultMaxIdleConns
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = DefaultConnMaxLifetime
	}
	if d.HealthCheckInterval == 0 {
		d.HealthCheckInterval = DefaultHealthCheckInterval
	}
	return d
}
