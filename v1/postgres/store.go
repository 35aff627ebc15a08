package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/metaspace/smquery/v1/relational"
)

// ListDatasets runs a translated dataset query.
func (p *Postgres) ListDatasets(ctx context.Context, q *relational.Query) ([]Dataset, error) {
	var rows []Dataset
	if err := p.Query(ctx).Scopes(q.Scope).Find(&rows); err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	return rows, nil
}

// CountDatasets counts the rows matched by q, ignoring its order and window.
func (p *Postgres) CountDatasets(ctx context.Context, q *relational.Query) (int64, error) {
	var count int64
	if err := p.Query(ctx).Scopes(q.CountScope).Count(&count); err != nil {
		return 0, fmt.Errorf("failed to count datasets: %w", err)
	}
	return count, nil
}

// DatasetByID returns the dataset with the given id or ErrRecordNotFound.
func (p *Postgres) DatasetByID(ctx context.Context, id string) (*Dataset, error) {
	return p.datasetBy(ctx, relational.IDColumn, id)
}

// DatasetByName returns the first dataset with the given name or ErrRecordNotFound.
func (p *Postgres) DatasetByName(ctx context.Context, name string) (*Dataset, error) {
	return p.datasetBy(ctx, relational.NameColumn, name)
}

func (p *Postgres) datasetBy(ctx context.Context, column, value string) (*Dataset, error) {
	q := relational.NewQuery(relational.DatasetTable).
		And(relational.Equals(relational.Ident(column), value))

	var ds Dataset
	err := p.Query(ctx).Scopes(q.Scope).Take(&ds)
	if errors.Is(err, ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset by %s: %w", column, err)
	}
	return &ds, nil
}

// MetadataSuggestions runs a suggestion query and returns the distinct values.
func (p *Postgres) MetadataSuggestions(ctx context.Context, q *relational.Query) ([]string, error) {
	var values []string
	if err := p.Query(ctx).Scopes(q.Scope).Scan(&values); err != nil {
		return nil, fmt.Errorf("failed to load metadata suggestions: %w", err)
	}
	return values, nil
}

// InsertDataset stores a dataset row. It exists for fixtures and tooling;
// dataset submission is handled elsewhere.
func (p *Postgres) InsertDataset(ctx context.Context, ds *Dataset) error {
	db := p.DB()
	if db == nil {
		return ErrNotConnected
	}
	if err := TranslateError(db.WithContext(ctx).Create(ds).Error); err != nil {
		return fmt.Errorf("failed to insert dataset %q: %w", ds.ID, err)
	}
	return nil
}
