package postgres

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Logger is the logging surface this package needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Postgres executes dataset queries. The gorm handle is swapped atomically
// when the connection monitor reconnects.
type Postgres struct {
	cfg             Config
	logger          Logger
	client          atomic.Pointer[gorm.DB]
	shutdownSignal  chan struct{}
	retryChanSignal chan error

	closeRetryChanOnce sync.Once
	closeShutdownOnce  sync.Once
}

// NewPostgres connects to the database described by cfg.
func NewPostgres(cfg Config, logger Logger) (*Postgres, error) {
	cfg.ConnectionDetails = cfg.ConnectionDetails.withDefaults()

	conn, err := connectToPostgres(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error in connecting to postgres: %w", err)
	}

	pg := newPostgres(cfg, logger)
	pg.client.Store(conn)
	return pg, nil
}

// NewFromDB wraps an existing gorm handle, e.g. a DryRun session.
func NewFromDB(db *gorm.DB, logger Logger) *Postgres {
	pg := newPostgres(Config{ConnectionDetails: ConnectionDetails{}.withDefaults()}, logger)
	pg.client.Store(db)
	return pg
}

func newPostgres(cfg Config, logger Logger) *Postgres {
	return &Postgres{
		cfg:             cfg,
		logger:          logger,
		shutdownSignal:  make(chan struct{}),
		retryChanSignal: make(chan error, 1),
	}
}

// DB returns the current gorm handle.
func (p *Postgres) DB() *gorm.DB {
	return p.client.Load()
}

func connectToPostgres(cfg Config, logger Logger) (*gorm.DB, error) {
	database, err := gorm.Open(
		postgres.Open(cfg.DSN()),
		&gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get PostgreSQL database instance: %w", err)
	}

	details := cfg.ConnectionDetails.withDefaults()
	sqlDB.SetMaxOpenConns(details.MaxOpenConns)
	sqlDB.SetMaxIdleConns(details.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(details.ConnMaxLifetime)

	logger.Info("Successfully connected to PostgreSQL database", nil, map[string]interface{}{
		"host":     cfg.Connection.Host,
		"database": cfg.Connection.DbName,
	})
	return database, nil
}

// RetryConnection reconnects whenever MonitorConnection reports a failed
// health check, until shutdown or ctx cancellation.
func (p *Postgres) RetryConnection(ctx context.Context) {
outerLoop:
	for {
		select {
		case <-p.shutdownSignal:
			p.logger.Info("Stopping RetryConnection loop due to shutdown signal", nil, nil)
			return
		case <-ctx.Done():
			return
		case cause, ok := <-p.retryChanSignal:
			if !ok {
				return
			}
			p.logger.Warn("PostgreSQL health check failed, reconnecting", cause, nil)
		innerLoop:
			for {
				select {
				case <-p.shutdownSignal:
					return
				case <-ctx.Done():
					return
				default:
					newConn, err := connectToPostgres(p.cfg, p.logger)
					if err != nil {
						p.logger.Error("PostgreSQL reconnection failed", err, nil)
						time.Sleep(time.Second)
						continue innerLoop
					}
					old := p.client.Swap(newConn)
					if old != nil {
						if sqlDB, err := old.DB(); err == nil {
							_ = sqlDB.Close()
						}
					}
					p.logger.Info("Successfully reconnected to PostgreSQL database", nil, nil)
					continue outerLoop
				}
			}
		}
	}
}

// MonitorConnection pings the database periodically and signals
// RetryConnection on failure.
func (p *Postgres) MonitorConnection(ctx context.Context) {
	defer p.closeRetryChanOnce.Do(func() {
		close(p.retryChanSignal)
	})

	ticker := time.NewTicker(p.cfg.ConnectionDetails.withDefaults().HealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.shutdownSignal:
			p.logger.Info("Stopping MonitorConnection loop due to shutdown signal", nil, nil)
			return
		case <-ticker.C:
			if err := p.healthCheck(ctx); err != nil {
				select {
				case p.retryChanSignal <- err:
				default:
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

func (p *Postgres) healthCheck(ctx context.Context) error {
	dbConn := p.DB()
	if dbConn == nil {
		return ErrNotConnected
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance during health check: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed during health check: %w", err)
	}
	return nil
}

// GracefulShutdown stops the monitor loops and closes the pool.
func (p *Postgres) GracefulShutdown() error {
	p.closeShutdownOnce.Do(func() {
		close(p.shutdownSignal)
	})

	dbConn := p.DB()
	if dbConn == nil {
		return nil
	}
	sqlDB, err := dbConn.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
