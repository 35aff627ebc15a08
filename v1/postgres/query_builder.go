package postgres

import (
	"context"

	"gorm.io/gorm"
)

// Query starts a query chain bound to ctx on the current connection.
//
// Example:
//
//	var rows []Dataset
//	err := pg.Query(ctx).
//	    Scopes(q.Scope).
//	    Find(&rows)
func (p *Postgres) Query(ctx context.Context) *QueryBuilder {
	db := p.DB()
	if db == nil {
		return &QueryBuilder{err: ErrNotConnected}
	}
	return &QueryBuilder{db: db.WithContext(ctx)}
}

// QueryBuilder is a thin fluent wrapper over gorm whose terminal methods
// translate gorm errors.
type QueryBuilder struct {
	db  *gorm.DB
	err error
}

func (qb *QueryBuilder) chain(fn func(*gorm.DB) *gorm.DB) *QueryBuilder {
	if qb.err != nil {
		return qb
	}
	qb.db = fn(qb.db)
	return qb
}

// Scopes applies gorm scopes, typically relational.Query.Scope.
func (qb *QueryBuilder) Scopes(funcs ...func(*gorm.DB) *gorm.DB) *QueryBuilder {
	return qb.chain(func(db *gorm.DB) *gorm.DB { return db.Scopes(funcs...) })
}

// Find loads every matching row into dest.
func (qb *QueryBuilder) Find(dest interface{}) error {
	if qb.err != nil {
		return qb.err
	}
	return TranslateError(qb.db.Find(dest).Error)
}

// Take loads one matching row without imposing an order.
func (qb *QueryBuilder) Take(dest interface{}) error {
	if qb.err != nil {
		return qb.err
	}
	return TranslateError(qb.db.Take(dest).Error)
}

// Scan scans the result set into dest, e.g. a []string for single-column queries.
func (qb *QueryBuilder) Scan(dest interface{}) error {
	if qb.err != nil {
		return qb.err
	}
	return TranslateError(qb.db.Scan(dest).Error)
}

// Count stores the number of matching rows in count.
func (qb *QueryBuilder) Count(count *int64) error {
	if qb.err != nil {
		return qb.err
	}
	return TranslateError(qb.db.Count(count).Error)
}
