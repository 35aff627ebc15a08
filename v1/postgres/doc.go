// Package postgres executes translated dataset queries against PostgreSQL
// through gorm.
//
// The executor takes a *relational.Query produced by the dataset translator
// and applies it as a gorm scope; it never builds predicates itself.
//
//	pg, err := postgres.NewPostgres(cfg, log)
//	q, err := query.NewDatasetTranslator(filters.Default()).Translate(criteria)
//	rows, err := pg.ListDatasets(ctx, q)
//
// Single-record lookups return ErrRecordNotFound when nothing matches; all
// other failures are wrapped driver errors. Callers keep the two apart.
//
// A background monitor pings the database and swaps in a fresh connection
// pool when the health check fails. FXModule wires the monitor into the
// application lifecycle.
package postgres
