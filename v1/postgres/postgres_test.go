package postgres

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/metaspace/smquery/v1/filters"
	"github.com/metaspace/smquery/v1/query"
)

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}

// dryRun returns a client on a DryRun session and a pointer to the last
// rendered query statement.
func dryRun(t *testing.T) (*Postgres, *[]*gorm.Statement) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Discard,
	})
	require.NoError(t, err)

	var statements []*gorm.Statement
	err = db.Callback().Query().After("gorm:query").Register("test:capture", func(tx *gorm.DB) {
		statements = append(statements, tx.Statement)
	})
	require.NoError(t, err)

	return NewFromDB(db, nopLogger{}), &statements
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Connection: Connection{
		Host: "db", Port: "5432", User: "sm", Password: "secret", DbName: "sm",
	}}
	assert.Equal(t, "host=db port=5432 user=sm password=secret dbname=sm sslmode=disable", cfg.DSN())

	cfg.Connection.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestConnectionDetails_Defaults(t *testing.T) {
	d := ConnectionDetails{MaxOpenConns: 5}.withDefaults()
	assert.Equal(t, 5, d.MaxOpenConns)
	assert.Equal(t, DefaultMaxIdleConns, d.MaxIdleConns)
	assert.Equal(t, DefaultConnMaxLifetime, d.ConnMaxLifetime)
	assert.Equal(t, DefaultHealthCheckInterval, d.HealthCheckInterval)
}

func TestTranslateError(t *testing.T) {
	assert.Nil(t, TranslateError(nil))
	assert.Equal(t, ErrRecordNotFound, TranslateError(gorm.ErrRecordNotFound))
	assert.Equal(t, ErrInvalidData, TranslateError(gorm.ErrInvalidData))

	other := errors.New("connection refused")
	assert.Equal(t, other, TranslateError(other))
}

func TestMetadata_ScanAndValue(t *testing.T) {
	var m Metadata
	require.NoError(t, m.Scan([]byte(`{"Submitted_By":{"Institution":"EMBL"}}`)))

	ds := Dataset{ID: "1", Metadata: m}
	v, ok := ds.Field("Submitted_By", "Institution")
	assert.True(t, ok)
	assert.Equal(t, "EMBL", v)

	def, _ := filters.Default().Get(filters.Institution)
	assert.True(t, def.Matches(filters.MapAccessor{}, ds.Metadata, "EMBL"))
	assert.False(t, def.Matches(filters.MapAccessor{}, ds.Metadata, "Acme"))

	val, err := m.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"Submitted_By":{"Institution":"EMBL"}}`, val.(string))

	require.NoError(t, m.Scan(`{}`))
	assert.Empty(t, m)
	require.NoError(t, m.Scan(nil))
	assert.Nil(t, m)
	assert.Error(t, m.Scan(42))
	assert.Error(t, m.Scan("not json"))

	var empty Metadata
	val, err = empty.Value()
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestAnalyzer_ResolvingPowerAt(t *testing.T) {
	orbitrap := Analyzer{Type: "Orbitrap", ReferenceMz: 200, ReferenceResolvingPower: 140000}
	assert.InDelta(t, 140000*math.Sqrt(0.5), orbitrap.ResolvingPowerAt(400), 1e-6)

	fticr := Analyzer{Type: "FTICR", ReferenceMz: 400, ReferenceResolvingPower: 100000}
	assert.InDelta(t, 200000, fticr.ResolvingPowerAt(200), 1e-6)

	tof := Analyzer{Type: "TOF", ReferenceMz: 400, ReferenceResolvingPower: 30000}
	assert.Equal(t, 30000.0, tof.ResolvingPowerAt(1000))

	assert.Equal(t, 140000.0, orbitrap.ResolvingPowerAt(0))
}

func TestDataset_Analyzer(t *testing.T) {
	ds := Dataset{Metadata: Metadata{
		"MS_Analysis": map[string]any{
			"Analyzer": "Orbitrap",
			"Detector_Resolving_Power": map[string]any{
				"mz":              400.0,
				"Resolving_Power": "280000",
			},
		},
	}}

	a, ok := ds.Analyzer()
	require.True(t, ok)
	assert.Equal(t, Analyzer{Type: "Orbitrap", ReferenceMz: 400, ReferenceResolvingPower: 280000}, a)

	_, ok = Dataset{Metadata: Metadata{}}.Analyzer()
	assert.False(t, ok)
}

func TestListDatasets_RendersTranslatedQuery(t *testing.T) {
	pg, statements := dryRun(t)

	q, err := query.NewDatasetTranslator(filters.Default()).Translate(query.DatasetCriteria{
		DatasetFilters: map[string]string{filters.Institution: "Acme"},
		Order:          query.SortSpec{Field: query.SortByName, Direction: query.Descending},
		Offset:         5,
		Limit:          20,
	})
	require.NoError(t, err)

	_, err = pg.ListDatasets(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, *statements, 1)

	stmt := (*statements)[0]
	sql := stmt.SQL.String()
	assert.Contains(t, sql, `SELECT * FROM "dataset"`)
	assert.Contains(t, sql, `"metadata" #>> '{Submitted_By,Institution}' IS NULL OR "metadata" #>> '{Submitted_By,Institution}' = $1`)
	assert.Contains(t, sql, `ORDER BY "name" DESC`)
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")
	require.NotEmpty(t, stmt.Vars)
	assert.Equal(t, "Acme", stmt.Vars[0])
}

func TestCountDatasets_IgnoresWindow(t *testing.T) {
	pg, statements := dryRun(t)

	q, err := query.NewDatasetTranslator(filters.Default()).Translate(query.DatasetCriteria{
		Name:  "ds",
		Order: query.SortSpec{Field: query.SortByName},
		Limit: 10,
	})
	require.NoError(t, err)

	_, err = pg.CountDatasets(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, *statements, 1)

	sql := (*statements)[0].SQL.String()
	assert.Contains(t, sql, `SELECT count(*) FROM "dataset" WHERE "name" = $1`)
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "LIMIT")
}

func TestDatasetByID_RendersLookup(t *testing.T) {
	pg, statements := dryRun(t)

	_, err := pg.DatasetByID(context.Background(), "2016-09-21_16h06m49s")
	require.NoError(t, err)
	require.Len(t, *statements, 1)

	stmt := (*statements)[0]
	assert.Contains(t, stmt.SQL.String(), `WHERE "id" = $1`)
	assert.Contains(t, stmt.SQL.String(), "LIMIT")
	require.NotEmpty(t, stmt.Vars)
	assert.Equal(t, "2016-09-21_16h06m49s", stmt.Vars[0])
}

func TestQuery_NotConnected(t *testing.T) {
	pg := newPostgres(Config{}, nopLogger{})

	_, err := pg.ListDatasets(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrNotConnected))

	assert.True(t, errors.Is(pg.healthCheck(context.Background()), ErrNotConnected))
	assert.NoError(t, pg.GracefulShutdown())
}
