package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/metaspace/smquery/v1/elastic"
	"github.com/metaspace/smquery/v1/httpapi"
	"github.com/metaspace/smquery/v1/postgres"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, ServiceName, cfg.Metrics.Namespace)
	assert.Equal(t, "localhost", cfg.Postgres.Connection.Host)
	assert.Equal(t, postgres.DefaultHealthCheckInterval, cfg.Postgres.ConnectionDetails.HealthCheckInterval)
	assert.Equal(t, []string{elastic.DefaultAddress}, cfg.Elastic.Addresses)
	assert.Equal(t, "legacy", cfg.Elastic.Dialect)
	assert.Equal(t, httpapi.DefaultPageSize, cfg.HTTP.DefaultLimit)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smquery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logger:
  level: debug
postgres:
  connection:
    host: db.internal
    db_name: metaspace
  connection_details:
    max_open_conns: 7
elastic:
  index: annotations
  dialect: modern
http:
  address: ":9000"
`), 0o600))

	t.Setenv("SMQUERY_POSTGRES_CONNECTION_HOST", "override.internal")
	t.Setenv("SMQUERY_ELASTIC_ADDRESSES", "http://es1:9200,http://es2:9200")
	t.Setenv("SMQUERY_ELASTIC_REQUEST_TIMEOUT", "3s")
	t.Setenv("SMQUERY_HTTP_DEFAULT_LIMIT", "25")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "override.internal", cfg.Postgres.Connection.Host)
	assert.Equal(t, "metaspace", cfg.Postgres.Connection.DbName)
	assert.Equal(t, 7, cfg.Postgres.ConnectionDetails.MaxOpenConns)
	assert.Equal(t, postgres.DefaultMaxIdleConns, cfg.Postgres.ConnectionDetails.MaxIdleConns)
	assert.Equal(t, "annotations", cfg.Elastic.Index)
	assert.Equal(t, "modern", cfg.Elastic.Dialect)
	assert.Equal(t, []string{"http://es1:9200", "http://es2:9200"}, cfg.Elastic.Addresses)
	assert.Equal(t, 3*time.Second, cfg.Elastic.RequestTimeout)
	assert.Equal(t, ":9000", cfg.HTTP.Address)
	assert.Equal(t, 25, cfg.HTTP.DefaultLimit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestProvide(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	var got elastic.Config
	app := fxtest.New(t, Provide(cfg), fx.Populate(&got))
	app.RequireStart()
	app.RequireStop()

	assert.Equal(t, cfg.Elastic, got)
}
