package relational

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Direction is an ORDER BY direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// Order is a single ORDER BY entry on a named column or alias.
type Order struct {
	Column    string
	Direction Direction
}

// Query is a complete SELECT against a single table.
//
// Columns are raw select expressions; an empty list selects every column.
// Where predicates are ANDed in order.
type Query struct {
	Table    string
	Columns  []string
	Distinct bool
	Where    []Predicate
	OrderBy  []Order
	Offset   int
	Limit    int

	windowed bool
}

// NewQuery creates a query selecting every column of table.
func NewQuery(table string) *Query {
	return &Query{Table: table}
}

// And appends a predicate.
func (q *Query) And(p Predicate) *Query {
	q.Where = append(q.Where, p)
	return q
}

// Ordered reports whether the query has an ORDER BY.
func (q *Query) Ordered() bool {
	return len(q.OrderBy) > 0
}

// Windowed reports whether OFFSET/LIMIT have been applied.
func (q *Query) Windowed() bool {
	return q.windowed
}

// SetWindow sets OFFSET and LIMIT.
func (q *Query) SetWindow(offset, limit int) {
	q.Offset = offset
	q.Limit = limit
	q.windowed = true
}

// Args returns the bound values of every predicate in placeholder order.
func (q *Query) Args() []any {
	var args []any
	for _, p := range q.Where {
		args = append(args, p.Args...)
	}
	return args
}

// SQL renders the query with positional `$n` placeholders. Rendering the same
// query twice yields identical text.
func (q *Query) SQL() (string, []any) {
	var b strings.Builder

	b.WriteString("SELECT ")
	if q.Distinct {
		b.WriteString("DISTINCT ")
	}
	if len(q.Columns) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(q.Columns, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(Ident(q.Table))

	if len(q.Where) > 0 {
		parts := make([]string, 0, len(q.Where))
		for _, p := range q.Where {
			parts = append(parts, p.SQL)
		}
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(parts, " AND "))
	}

	if len(q.OrderBy) > 0 {
		parts := make([]string, 0, len(q.OrderBy))
		for _, o := range q.OrderBy {
			parts = append(parts, Ident(o.Column)+" "+string(o.Direction))
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	}

	if q.windowed {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.Itoa(q.Offset))
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.Limit))
	}

	return numberPlaceholders(b.String()), q.Args()
}

// Scope applies the query to a gorm session.
func (q *Query) Scope(db *gorm.DB) *gorm.DB {
	db = db.Table(q.Table)

	switch {
	case q.Distinct && len(q.Columns) > 0:
		db = db.Distinct(strings.Join(q.Columns, ", "))
	case len(q.Columns) > 0:
		db = db.Select(strings.Join(q.Columns, ", "))
	}

	for _, p := range q.Where {
		db = db.Where(p.SQL, p.Args...)
	}

	for _, o := range q.OrderBy {
		db = db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: o.Column},
			Desc:   o.Direction == DESC,
		})
	}

	if q.windowed {
		db = db.Offset(q.Offset).Limit(q.Limit)
	}
	return db
}

// CountScope applies only the table and the predicates, for COUNT queries.
func (q *Query) CountScope(db *gorm.DB) *gorm.DB {
	db = db.Table(q.Table)
	for _, p := range q.Where {
		db = db.Where(p.SQL, p.Args...)
	}
	return db
}

// numberPlaceholders replaces `?` outside single-quoted literals with $1, $2, ...
func numberPlaceholders(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	n := 0
	inLiteral := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'':
			inLiteral = !inLiteral
			b.WriteByte(c)
		case c == '?' && !inLiteral:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
