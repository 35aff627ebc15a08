//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"sort"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"

	"github.com/metaspace/smquery/v1/filters"
	"github.com/metaspace/smquery/v1/logger"
	"github.com/metaspace/smquery/v1/query"
)

// PostgresContainer is a disposable PostgreSQL server.
type PostgresContainer struct {
	testcontainers.Container
	Config Config
}

func setupPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}
	portStr := fmt.Sprintf("%d", port)

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		ExposedPorts: []string{"5432/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = nat.PortMap{
				"5432/tcp": []nat.PortBinding{{HostPort: portStr}},
			}
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}
	mapped, err := c.MappedPort(ctx, "5432")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	cfg := Config{Connection: Connection{
		Host:     host,
		Port:     mapped.Port(),
		User:     "testuser",
		Password: "testpass",
		DbName:   "testdb",
		SSLMode:  "disable",
	}}
	if err := waitForPostgresReady(cfg, 30*time.Second); err != nil {
		_ = c.Terminate(ctx)
		return nil, err
	}

	return &PostgresContainer{Container: c, Config: cfg}, nil
}

func getFreePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

func waitForPostgresReady(cfg Config, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		db, err := sql.Open("postgres", cfg.DSN())
		if err == nil {
			err = db.Ping()
			_ = db.Close()
			if err == nil {
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("postgres not ready after %s", timeout)
}

var fixtures = []Dataset{
	{ID: "ds1", Name: "brain_a", Metadata: Metadata{
		"Submitted_By":       map[string]any{"Institution": "Acme"},
		"MS_Analysis":        map[string]any{"Polarity": "Positive", "Analyzer": "Orbitrap", "Ionisation_Source": "MALDI"},
		"Sample_Information": map[string]any{"Organism": "Mus musculus"},
	}},
	{ID: "ds2", Name: "brain_b", Metadata: Metadata{
		"Submitted_By":       map[string]any{"Institution": "EMBL"},
		"MS_Analysis":        map[string]any{"Polarity": "Negative", "Analyzer": "FTICR"},
		"Sample_Information": map[string]any{"Organism": "Homo sapiens"},
	}},
	{ID: "ds3", Name: "liver", Metadata: Metadata{
		"Submitted_By":       map[string]any{"Institution": "Acme Labs 100%"},
		"Sample_Information": map[string]any{"Organism": "Mus musculus"},
	}},
	{ID: "ds4", Name: "kidney", Metadata: Metadata{}},
}

func setupStore(t *testing.T) (*Postgres, func()) {
	t.Helper()
	ctx := context.Background()

	c, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	pg, err := NewPostgres(c.Config, logger.NewFromZap(zaptest.NewLogger(t), false))
	require.NoError(t, err)

	require.NoError(t, pg.DB().Exec(`CREATE TABLE dataset (id text PRIMARY KEY, name text NOT NULL, metadata json)`).Error)
	for i := range fixtures {
		require.NoError(t, pg.InsertDataset(ctx, &fixtures[i]))
	}

	return pg, func() {
		_ = pg.GracefulShutdown()
		_ = c.Terminate(ctx)
	}
}

func ids(rows []Dataset) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	sort.Strings(out)
	return out
}

func TestIntegration_DatasetQueries(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	pg, cleanup := setupStore(t)
	defer cleanup()

	ctx := context.Background()
	tr := query.NewDatasetTranslator(filters.Default())

	t.Run("name order with window", func(t *testing.T) {
		q, err := tr.Translate(query.DatasetCriteria{
			Order:  query.SortSpec{Field: query.SortByName, Direction: query.Descending},
			Offset: 1,
			Limit:  2,
		})
		require.NoError(t, err)

		rows, err := pg.ListDatasets(ctx, q)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "kidney", rows[0].Name)
		assert.Equal(t, "brain_b", rows[1].Name)
	})

	t.Run("count", func(t *testing.T) {
		q, err := tr.TranslateCount(query.DatasetCriteria{
			DatasetFilters: map[string]string{filters.Organism: "Mus musculus"},
		})
		require.NoError(t, err)

		count, err := pg.CountDatasets(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count) // ds1, ds3 and ds4 without the path
	})

	t.Run("lookup", func(t *testing.T) {
		ds, err := pg.DatasetByName(ctx, "liver")
		require.NoError(t, err)
		assert.Equal(t, "ds3", ds.ID)

		_, err = pg.DatasetByID(ctx, "missing")
		assert.True(t, errors.Is(err, ErrRecordNotFound))
	})

	t.Run("suggestions", func(t *testing.T) {
		q, err := tr.TranslateSuggestions(filters.Institution, "Acme")
		require.NoError(t, err)

		values, err := pg.MetadataSuggestions(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []string{"Acme", "Acme Labs 100%"}, values)
	})
}

// TestIntegration_RelationalMatchesInMemory checks that every relational
// predicate keeps exactly the rows the in-memory evaluation keeps.
func TestIntegration_RelationalMatchesInMemory(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	pg, cleanup := setupStore(t)
	defer cleanup()

	ctx := context.Background()
	reg := filters.Default()
	tr := query.NewDatasetTranslator(reg)

	values := map[string][]string{
		filters.Institution:      {"Acme", "EMBL", "Acme Labs 100%", "nobody"},
		filters.Polarity:         {"positive", "NEGATIVE", "sit"},
		filters.IonisationSource: {"MAL", "ESI"},
		filters.Organism:         {"Mus musculus", "Homo"},
		filters.AnalyzerType:     {"Orbitrap"},
	}

	for name, vs := range values {
		def, ok := reg.Get(name)
		require.True(t, ok)

		for _, v := range vs {
			q, err := tr.Translate(query.DatasetCriteria{
				DatasetFilters: map[string]string{name: v},
				Limit:          100,
			})
			require.NoError(t, err)

			rows, err := pg.ListDatasets(ctx, q)
			require.NoError(t, err)

			var want []string
			for _, ds := range fixtures {
				if def.Matches(filters.MapAccessor{}, ds.Metadata, v) {
					want = append(want, ds.ID)
				}
			}
			sort.Strings(want)
			assert.Equal(t, want, ids(rows), "filter %s=%q", name, v)
		}
	}
}

func TestIntegration_FXModule(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()
	c, err := setupPostgresContainer(ctx)
	require.NoError(t, err)
	defer func() { _ = c.Terminate(ctx) }()

	var client Client
	app := fxtest.New(t,
		fx.Provide(
			func() Config { return c.Config },
			func() Logger { return logger.NewFromZap(zaptest.NewLogger(t), false) },
		),
		FXModule,
		fx.Populate(&client),
	)
	app.RequireStart()

	require.NotNil(t, client)
	require.NoError(t, client.DB().Exec("SELECT 1").Error)

	app.RequireStop()
}
